package model

import "time"

type WeddingWebsite struct {
	DTO
	EventId        uint       `gorm:"uniqueIndex;not null" json:"eventId"`
	Slug           string     `gorm:"uniqueIndex;not null" json:"slug"`
	Title          string     `gorm:"not null" validate:"required" json:"title"`
	WelcomeMessage string     `json:"welcomeMessage"`
	Story          string     `json:"story"`
	Schedule       string     `json:"schedule"`
	// Gallery image URLs, stored as a JSON array string.
	GalleryUrls  string     `json:"galleryUrls"`
	RsvpDeadline *time.Time `json:"rsvpDeadline"`
	Published    bool       `gorm:"default:false" json:"published"`
	Event        Event      `gorm:"foreignKey:EventId;references:ID" json:"-"`
}

type UpsertWebsiteInput struct {
	Title          string     `validate:"required,min=1,max=120" json:"title"`
	WelcomeMessage string     `json:"welcomeMessage"`
	Story          string     `json:"story"`
	Schedule       string     `json:"schedule"`
	GalleryUrls    string     `json:"galleryUrls"`
	RsvpDeadline   *time.Time `json:"rsvpDeadline"`
}
