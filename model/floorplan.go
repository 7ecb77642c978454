package model

type FloorPlanMode string

const (
	ModeCeremony  FloorPlanMode = "ceremony"
	ModeReception FloorPlanMode = "reception"
)

type FloorPlan struct {
	DTO
	EventId uint          `gorm:"index;not null" json:"eventId"`
	Name    string        `gorm:"not null" validate:"required" json:"name"`
	Mode    FloorPlanMode `gorm:"not null" validate:"required" json:"mode"`
	Event   Event         `gorm:"foreignKey:EventId;references:ID" json:"-"`
	Tables  []Table       `gorm:"foreignKey:FloorPlanId;constraint:OnDelete:CASCADE" json:"tables,omitempty"`
	Seats   []Seat        `gorm:"foreignKey:FloorPlanId;constraint:OnDelete:CASCADE" json:"seats,omitempty"`
}

type TableType string

const (
	TableRound       TableType = "round"
	TableRectangular TableType = "rectangular"
)

type Table struct {
	DTO
	FloorPlanId uint      `gorm:"index;not null" json:"floorPlanId"`
	Name        string    `gorm:"not null" validate:"required" json:"name"`
	Type        TableType `gorm:"not null" json:"type"`
	SeatCount   int       `gorm:"not null" validate:"required,min=1,max=20" json:"seatCount"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Rotation    int       `gorm:"default:0" json:"rotation"`
	FloorPlan   FloorPlan `gorm:"foreignKey:FloorPlanId;references:ID" json:"-"`
	Seats       []Seat    `gorm:"foreignKey:TableId;constraint:OnDelete:CASCADE" json:"seats,omitempty"`

	// Derived, not persisted.
	Occupied  int     `gorm:"-" json:"occupied"`
	Occupancy float64 `gorm:"-" json:"occupancy"`
}

// Seat is the single authoritative assignment relation: a guest is seated iff
// exactly one seat row carries their id. TableId is null for ceremony seats.
type Seat struct {
	DTO
	FloorPlanId uint    `gorm:"index;not null" json:"floorPlanId"`
	TableId     *uint   `gorm:"index" json:"tableId"`
	GuestId     *uint   `gorm:"index" json:"guestId"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Guest       *Guest  `gorm:"foreignKey:GuestId;references:ID;constraint:OnDelete:SET NULL" json:"guest,omitempty"`
}

type CreateFloorPlanInput struct {
	Name string        `validate:"required,min=1,max=80" json:"name"`
	Mode FloorPlanMode `validate:"required,oneof=ceremony reception" json:"mode"`
}

type EditFloorPlanInput struct {
	Name *string `validate:"omitempty,min=1,max=80" json:"name"`
}

type CreateTableInput struct {
	Name      string    `validate:"required,min=1,max=80" json:"name"`
	Type      TableType `validate:"required,oneof=round rectangular" json:"type"`
	SeatCount int       `validate:"required,min=1,max=20" json:"seatCount"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
}

type EditTableInput struct {
	Name      *string    `validate:"omitempty,min=1,max=80" json:"name"`
	Type      *TableType `validate:"omitempty,oneof=round rectangular" json:"type"`
}

type MoveInput struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type AssignTableInput struct {
	GuestId uint `validate:"required" json:"guestId"`
}

type AssignSeatInput struct {
	GuestId *uint `json:"guestId"` // null clears the seat
}

type CreateSeatInput struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
