package model

type Accommodation struct {
	DTO
	EventId uint   `gorm:"index;not null" json:"eventId"`
	Name    string `gorm:"not null" validate:"required" json:"name"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
	Event   Event  `gorm:"foreignKey:EventId;references:ID" json:"-"`
	Rooms   []Room `gorm:"foreignKey:AccommodationId;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
}

type Room struct {
	DTO
	AccommodationId uint             `gorm:"index;not null" json:"accommodationId"`
	Label           string           `gorm:"not null" validate:"required" json:"label"`
	Capacity        int              `gorm:"not null;default:2" validate:"required,min=1,max=10" json:"capacity"`
	PricePerNight   float64          `json:"pricePerNight"`
	Accommodation   Accommodation    `gorm:"foreignKey:AccommodationId;references:ID" json:"-"`
	Allocations     []RoomAllocation `gorm:"foreignKey:RoomId;constraint:OnDelete:CASCADE" json:"allocations,omitempty"`

	Occupied int `gorm:"-" json:"occupied"`
}

type RoomAllocation struct {
	DTO
	RoomId  uint  `gorm:"index;not null" json:"roomId"`
	GuestId uint  `gorm:"index;not null" json:"guestId"`
	Room    Room  `gorm:"foreignKey:RoomId;references:ID" json:"-"`
	Guest   Guest `gorm:"foreignKey:GuestId;references:ID;constraint:OnDelete:CASCADE" json:"guest,omitempty"`
}

type CreateAccommodationInput struct {
	Name    string `validate:"required,min=1,max=120" json:"name"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type EditAccommodationInput struct {
	Name    *string `validate:"omitempty,min=1,max=120" json:"name"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

type CreateRoomInput struct {
	Label         string  `validate:"required,min=1,max=60" json:"label"`
	Capacity      int     `validate:"omitempty,min=1,max=10" json:"capacity"`
	PricePerNight float64 `validate:"omitempty,min=0" json:"pricePerNight"`
}

type AllocateRoomInput struct {
	GuestId uint `validate:"required" json:"guestId"`
}
