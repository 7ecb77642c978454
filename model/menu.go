package model

type MenuItem struct {
	DTO
	EventId     uint   `gorm:"index;not null" json:"eventId"`
	Course      string `gorm:"not null" validate:"required" json:"course"` // starter main dessert ...
	Name        string `gorm:"not null" validate:"required" json:"name"`
	Description string `json:"description"`
	Vegetarian  bool   `gorm:"default:false" json:"vegetarian"`
	Vegan       bool   `gorm:"default:false" json:"vegan"`
	GlutenFree  bool   `gorm:"default:false" json:"glutenFree"`
	Event       Event  `gorm:"foreignKey:EventId;references:ID" json:"-"`
}

// Corkage: whether the venue supplies the drink or the clients bring their own.
type Drink struct {
	DTO
	EventId  uint   `gorm:"index;not null" json:"eventId"`
	Name     string `gorm:"not null" validate:"required" json:"name"`
	Category string `json:"category"` // wine beer spirits soft
	Corkage  bool   `gorm:"default:false" json:"corkage"`
	Event    Event  `gorm:"foreignKey:EventId;references:ID" json:"-"`
}

type CreateMenuItemInput struct {
	Course      string `validate:"required,min=1,max=60" json:"course"`
	Name        string `validate:"required,min=1,max=120" json:"name"`
	Description string `json:"description"`
	Vegetarian  bool   `json:"vegetarian"`
	Vegan       bool   `json:"vegan"`
	GlutenFree  bool   `json:"glutenFree"`
}

type EditMenuItemInput struct {
	Course      *string `validate:"omitempty,min=1,max=60" json:"course"`
	Name        *string `validate:"omitempty,min=1,max=120" json:"name"`
	Description *string `json:"description"`
	Vegetarian  *bool   `json:"vegetarian"`
	Vegan       *bool   `json:"vegan"`
	GlutenFree  *bool   `json:"glutenFree"`
}

type CreateDrinkInput struct {
	Name     string `validate:"required,min=1,max=120" json:"name"`
	Category string `validate:"omitempty,max=60" json:"category"`
	Corkage  bool   `json:"corkage"`
}

type EditDrinkInput struct {
	Name     *string `validate:"omitempty,min=1,max=120" json:"name"`
	Category *string `json:"category"`
	Corkage  *bool   `json:"corkage"`
}
