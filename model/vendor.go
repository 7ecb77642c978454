package model

type Vendor struct {
	DTO
	EventId     uint    `gorm:"index;not null" json:"eventId"`
	Name        string  `gorm:"not null" validate:"required" json:"name"`
	Category    string  `json:"category"` // photographer florist caterer band ...
	ContactName string  `json:"contactName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Cost        float64 `json:"cost"`
	Deposit     float64 `json:"deposit"`
	Paid        bool    `gorm:"default:false" json:"paid"`
	Notes       string  `json:"notes"`
	Event       Event   `gorm:"foreignKey:EventId;references:ID" json:"-"`
}

type CreateVendorInput struct {
	Name        string  `validate:"required,min=1,max=120" json:"name"`
	Category    string  `validate:"omitempty,max=60" json:"category"`
	ContactName string  `json:"contactName"`
	Email       string  `validate:"omitempty,email" json:"email"`
	Phone       string  `json:"phone"`
	Cost        float64 `validate:"omitempty,min=0" json:"cost"`
	Deposit     float64 `validate:"omitempty,min=0" json:"deposit"`
	Notes       string  `json:"notes"`
}

type EditVendorInput struct {
	Name        *string  `validate:"omitempty,min=1,max=120" json:"name"`
	Category    *string  `json:"category"`
	ContactName *string  `json:"contactName"`
	Email       *string  `validate:"omitempty,email" json:"email"`
	Phone       *string  `json:"phone"`
	Cost        *float64 `validate:"omitempty,min=0" json:"cost"`
	Deposit     *float64 `validate:"omitempty,min=0" json:"deposit"`
	Paid        *bool    `json:"paid"`
	Notes       *string  `json:"notes"`
}

type FilterVendor struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Category  *string `json:"category"`
	Paid      *bool   `json:"paid"`
}
