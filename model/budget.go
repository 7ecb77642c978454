package model

type BudgetItem struct {
	DTO
	EventId   uint    `gorm:"index;not null" json:"eventId"`
	Category  string  `gorm:"not null" validate:"required" json:"category"`
	Name      string  `gorm:"not null" validate:"required" json:"name"`
	Estimated float64 `json:"estimated"`
	Actual    float64 `json:"actual"`
	Paid      bool    `gorm:"default:false" json:"paid"`
	Event     Event   `gorm:"foreignKey:EventId;references:ID" json:"-"`
}

type CreateBudgetItemInput struct {
	Category  string  `validate:"required,min=1,max=60" json:"category"`
	Name      string  `validate:"required,min=1,max=120" json:"name"`
	Estimated float64 `validate:"omitempty,min=0" json:"estimated"`
	Actual    float64 `validate:"omitempty,min=0" json:"actual"`
}

type EditBudgetItemInput struct {
	Category  *string  `validate:"omitempty,min=1,max=60" json:"category"`
	Name      *string  `validate:"omitempty,min=1,max=120" json:"name"`
	Estimated *float64 `validate:"omitempty,min=0" json:"estimated"`
	Actual    *float64 `validate:"omitempty,min=0" json:"actual"`
	Paid      *bool    `json:"paid"`
}

type BudgetTotals struct {
	Estimated float64 `json:"estimated"`
	Actual    float64 `json:"actual"`
	Paid      float64 `json:"paid"`
	Unpaid    float64 `json:"unpaid"`
}
