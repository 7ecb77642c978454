package model

type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Password string `gorm:"not null" validate:"required,min=6,max=50" json:"-"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	Role     string `json:"role"` // ADMIN PLANNER
}

type CreateAccountInput struct {
	Username string `validate:"required,min=3,max=50" json:"username"`
	Password string `validate:"required,min=6,max=50" json:"password"`
	Role     string `validate:"required,oneof=ADMIN PLANNER" json:"role"`
}

type AdminChangePassword struct {
	AccountId      uint   `validate:"required" json:"accountId"`
	NewPassword    string `validate:"required,min=6,max=50" json:"newPassword"`
	RepeatPassword string `validate:"required" json:"repeatPassword"`
}

type FilterAccount struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Active    *bool   `json:"active"`
	Role      *string `json:"role"`
}
