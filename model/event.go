package model

import "time"

type Event struct {
	DTO
	Name          string     `gorm:"not null" validate:"required" json:"name"`
	WeddingDate   *time.Time `json:"weddingDate"`
	VenueName     string     `json:"venueName"`
	VenueAddress  string     `json:"venueAddress"`
	Partner1Name  string     `json:"partner1Name"`
	Partner2Name  string     `json:"partner2Name"`
	GuestEstimate int        `json:"guestEstimate"`
	Notes         string     `json:"notes"`

	Guests     []Guest        `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE" json:"guests,omitempty"`
	FloorPlans []FloorPlan    `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE" json:"floorPlans,omitempty"`
	Website    *WeddingWebsite `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE" json:"website,omitempty"`
}

// CoupleAccount is the event-scoped couple credential. It is deliberately a
// separate principal from Account: the grant is the event id on the row.
type CoupleAccount struct {
	DTO
	EventId  uint   `gorm:"uniqueIndex;not null" json:"eventId"`
	Username string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Event    Event  `gorm:"foreignKey:EventId;references:ID" json:"-"`
}

type CreateEventInput struct {
	Name          string     `validate:"required,min=2,max=120" json:"name"`
	WeddingDate   *time.Time `json:"weddingDate"`
	VenueName     string     `json:"venueName"`
	VenueAddress  string     `json:"venueAddress"`
	Partner1Name  string     `json:"partner1Name"`
	Partner2Name  string     `json:"partner2Name"`
	GuestEstimate int        `validate:"omitempty,min=0" json:"guestEstimate"`
	Notes         string     `json:"notes"`
}

type EditEventInput struct {
	Name          *string    `validate:"omitempty,min=2,max=120" json:"name"`
	WeddingDate   *time.Time `json:"weddingDate"`
	VenueName     *string    `json:"venueName"`
	VenueAddress  *string    `json:"venueAddress"`
	Partner1Name  *string    `json:"partner1Name"`
	Partner2Name  *string    `json:"partner2Name"`
	GuestEstimate *int       `validate:"omitempty,min=0" json:"guestEstimate"`
	Notes         *string    `json:"notes"`
}

type SetCoupleCredentialsInput struct {
	Username string `validate:"required,min=3,max=50" json:"username"`
	Password string `validate:"required,min=6,max=50" json:"password"`
}

type FilterEvent struct {
	Pagination
	SearchKey string `json:"searchKey"`
}
