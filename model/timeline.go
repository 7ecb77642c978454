package model

import "time"

type TimelineDay struct {
	DTO
	EventId uint            `gorm:"index;not null" json:"eventId"`
	Date    time.Time       `gorm:"not null" validate:"required" json:"date"`
	Title   string          `gorm:"not null" validate:"required" json:"title"`
	Event   Event           `gorm:"foreignKey:EventId;references:ID" json:"-"`
	Events  []TimelineEvent `gorm:"foreignKey:TimelineDayId;constraint:OnDelete:CASCADE" json:"events,omitempty"`
}

type TimelineEvent struct {
	DTO
	TimelineDayId uint        `gorm:"index;not null" json:"timelineDayId"`
	StartTime     string      `gorm:"not null" validate:"required" json:"startTime"` // "15:04"
	Title         string      `gorm:"not null" validate:"required" json:"title"`
	Description   string      `json:"description"`
	Location      string      `json:"location"`
	TimelineDay   TimelineDay `gorm:"foreignKey:TimelineDayId;references:ID" json:"-"`
}

type CreateTimelineDayInput struct {
	Date  time.Time `validate:"required" json:"date"`
	Title string    `validate:"required,min=1,max=120" json:"title"`
}

type EditTimelineDayInput struct {
	Date  *time.Time `json:"date"`
	Title *string    `validate:"omitempty,min=1,max=120" json:"title"`
}

type CreateTimelineEventInput struct {
	StartTime   string `validate:"required,len=5" json:"startTime"`
	Title       string `validate:"required,min=1,max=120" json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type EditTimelineEventInput struct {
	StartTime   *string `validate:"omitempty,len=5" json:"startTime"`
	Title       *string `validate:"omitempty,min=1,max=120" json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}
