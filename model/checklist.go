package model

import "time"

type ChecklistItem struct {
	DTO
	EventId uint       `gorm:"index;not null" json:"eventId"`
	Title   string     `gorm:"not null" validate:"required" json:"title"`
	DueDate *time.Time `json:"dueDate"`
	Done    bool       `gorm:"default:false" json:"done"`
	Overdue bool       `gorm:"default:false" json:"overdue"`
	Notes   string     `json:"notes"`
	Event   Event      `gorm:"foreignKey:EventId;references:ID" json:"-"`
}

type CreateChecklistItemInput struct {
	Title   string     `validate:"required,min=1,max=200" json:"title"`
	DueDate *time.Time `json:"dueDate"`
	Notes   string     `json:"notes"`
}

type EditChecklistItemInput struct {
	Title   *string    `validate:"omitempty,min=1,max=200" json:"title"`
	DueDate *time.Time `json:"dueDate"`
	Done    *bool      `json:"done"`
	Notes   *string    `json:"notes"`
}
