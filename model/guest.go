package model

type Guest struct {
	DTO
	EventId             uint   `gorm:"index;not null" json:"eventId"`
	FirstName           string `gorm:"not null" validate:"required" json:"firstName"`
	LastName            string `json:"lastName"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Side                string `gorm:"default:both" json:"side"` // partner1 partner2 both
	RsvpStatus          string `gorm:"not null;default:pending" json:"rsvpStatus"`
	PlusOne             bool   `gorm:"default:false" json:"plusOne"`
	PlusOneName         string `json:"plusOneName"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	// Meal selections keyed by course name, stored as a JSON object string.
	MealSelections string `json:"mealSelections"`
	InviteCode     string `gorm:"uniqueIndex;not null" json:"inviteCode"`
	Notes          string `json:"notes"`
	Event          Event  `gorm:"foreignKey:EventId;references:ID" json:"-"`
}

type CreateGuestInput struct {
	FirstName           string `validate:"required,min=1,max=80" json:"firstName"`
	LastName            string `validate:"omitempty,max=80" json:"lastName"`
	Email               string `validate:"omitempty,email" json:"email"`
	Phone               string `json:"phone"`
	Side                string `validate:"omitempty,oneof=partner1 partner2 both" json:"side"`
	PlusOne             bool   `json:"plusOne"`
	PlusOneName         string `json:"plusOneName"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	Notes               string `json:"notes"`
}

type EditGuestInput struct {
	FirstName           *string `validate:"omitempty,min=1,max=80" json:"firstName"`
	LastName            *string `json:"lastName"`
	Email               *string `validate:"omitempty,email" json:"email"`
	Phone               *string `json:"phone"`
	Side                *string `validate:"omitempty,oneof=partner1 partner2 both" json:"side"`
	RsvpStatus          *string `validate:"omitempty,oneof=pending accepted declined" json:"rsvpStatus"`
	PlusOne             *bool   `json:"plusOne"`
	PlusOneName         *string `json:"plusOneName"`
	DietaryRestrictions *string `json:"dietaryRestrictions"`
	MealSelections      *string `json:"mealSelections"`
	Notes               *string `json:"notes"`
}

type RsvpSubmitInput struct {
	Attending           *bool   `validate:"required" json:"attending"`
	PlusOne             bool    `json:"plusOne"`
	PlusOneName         string  `json:"plusOneName"`
	DietaryRestrictions string  `json:"dietaryRestrictions"`
	MealSelections      *string `json:"mealSelections"`
	Notes               string  `json:"notes"`
}

type FilterGuest struct {
	Pagination
	SearchKey  string  `json:"searchKey"`
	RsvpStatus *string `json:"rsvpStatus"`
	Side       *string `json:"side"`
	Dietary    *bool   `json:"dietary"`
	Unseated   *bool   `json:"unseated"`
}
