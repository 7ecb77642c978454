package helper

import (
	"errors"
	"math"

	"wedding_planner/constants"
	"wedding_planner/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTableFull    = errors.New("table is at full capacity")
	ErrRoomFull     = errors.New("room is at full capacity")
	ErrNoFreeSeat   = errors.New("no free seat on table")
	ErrWrongEvent   = errors.New("guest does not belong to this event")
	ErrSeatNotFound = errors.New("seat not found")
)

type SeatPosition struct {
	X float64
	Y float64
}

// SeatPositions places seatCount seats evenly on a circle of SEAT_RADIUS
// around the table center. Angle step is 2π/seatCount starting at -90°, so
// the first seat sits directly above the center.
func SeatPositions(centerX, centerY float64, seatCount int) []SeatPosition {
	positions := make([]SeatPosition, 0, seatCount)
	step := 2 * math.Pi / float64(seatCount)
	start := -math.Pi / 2

	for i := 0; i < seatCount; i++ {
		angle := start + float64(i)*step
		positions = append(positions, SeatPosition{
			X: centerX + constants.SEAT_RADIUS*math.Cos(angle),
			Y: centerY + constants.SEAT_RADIUS*math.Sin(angle),
		})
	}
	return positions
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPosition keeps an element of the given size inside the canvas,
// honoring the fixed padding. The client does the same; the server check is
// the one that counts.
func ClampPosition(x, y float64, size int) (float64, float64) {
	minV := float64(constants.CANVAS_PADDING)
	maxX := float64(constants.CANVAS_WIDTH - size - constants.CANVAS_PADDING)
	maxY := float64(constants.CANVAS_HEIGHT - size - constants.CANVAS_PADDING)
	return clamp(x, minV, maxX), clamp(y, minV, maxY)
}

func ClampTablePosition(x, y float64) (float64, float64) {
	return ClampPosition(x, y, constants.TABLE_SIZE)
}

func ClampSeatPosition(x, y float64) (float64, float64) {
	return ClampPosition(x, y, constants.SEAT_SIZE)
}

// NextRotation advances a table rotation by one step, wrapping at 360.
func NextRotation(rotation int) int {
	return (rotation + constants.ROTATION_STEP) % 360
}

// lockForUpdate takes a row lock on databases that support it. SQLite
// serializes writers on its own and rejects FOR UPDATE outright.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// TableOccupied counts occupied seats of a table.
func TableOccupied(db *gorm.DB, tableId uint) (int64, error) {
	var occupied int64
	err := db.Model(&model.Seat{}).
		Where("table_id = ? AND guest_id IS NOT NULL", tableId).
		Count(&occupied).Error
	return occupied, err
}

// ClearGuestSeats frees every seat held by the guest across the event's floor
// plans. Must run inside the caller's transaction so exclusive occupancy and
// the new assignment commit together.
func ClearGuestSeats(tx *gorm.DB, eventId, guestId uint) error {
	return tx.Model(&model.Seat{}).
		Where("guest_id = ? AND floor_plan_id IN (?)",
			guestId,
			tx.Session(&gorm.Session{NewDB: true}).Model(&model.FloorPlan{}).Select("id").Where("event_id = ?", eventId),
		).
		Update("guest_id", nil).Error
}

// AssignGuestToTable seats a guest on the first free seat of the table. The
// table row is locked for the duration of the transaction so two concurrent
// assignments cannot both pass the capacity check.
func AssignGuestToTable(tx *gorm.DB, eventId, guestId, tableId uint) (*model.Seat, error) {
	var table model.Table
	if err := lockForUpdate(tx).First(&table, tableId).Error; err != nil {
		return nil, err
	}

	var plan model.FloorPlan
	if err := tx.First(&plan, table.FloorPlanId).Error; err != nil {
		return nil, err
	}
	if plan.EventId != eventId {
		return nil, ErrWrongEvent
	}

	occupied, err := TableOccupied(tx, tableId)
	if err != nil {
		return nil, err
	}
	if occupied >= int64(table.SeatCount) {
		return nil, ErrTableFull
	}

	if err := ClearGuestSeats(tx, eventId, guestId); err != nil {
		return nil, err
	}

	var seat model.Seat
	if err := tx.Where("table_id = ? AND guest_id IS NULL", tableId).
		Order("id ASC").
		First(&seat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoFreeSeat
		}
		return nil, err
	}

	seat.GuestId = &guestId
	if err := tx.Save(&seat).Error; err != nil {
		return nil, err
	}
	return &seat, nil
}

// AssignGuestToSeat sets or clears a specific seat's occupant. Setting clears
// any other seat in the event holding the guest first, and when the seat
// belongs to a table the locked capacity check still applies. Neither a move
// within the same table nor replacing the target seat's occupant trips the
// check: the former frees the old seat first, the latter leaves the head
// count unchanged.
func AssignGuestToSeat(tx *gorm.DB, seatId uint, guestId *uint) (*model.Seat, error) {
	var seat model.Seat
	if err := lockForUpdate(tx).First(&seat, seatId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}

	if guestId == nil {
		seat.GuestId = nil
		if err := tx.Save(&seat).Error; err != nil {
			return nil, err
		}
		return &seat, nil
	}

	var plan model.FloorPlan
	if err := tx.First(&plan, seat.FloorPlanId).Error; err != nil {
		return nil, err
	}

	var guest model.Guest
	if err := tx.First(&guest, *guestId).Error; err != nil {
		return nil, err
	}
	if guest.EventId != plan.EventId {
		return nil, ErrWrongEvent
	}

	if err := ClearGuestSeats(tx, plan.EventId, *guestId); err != nil {
		return nil, err
	}

	if seat.TableId != nil {
		var table model.Table
		if err := lockForUpdate(tx).First(&table, *seat.TableId).Error; err != nil {
			return nil, err
		}
		// The target seat's occupant is being replaced, so it never counts
		// toward the head count.
		var occupied int64
		if err := tx.Model(&model.Seat{}).
			Where("table_id = ? AND guest_id IS NOT NULL AND id <> ?", table.ID, seat.ID).
			Count(&occupied).Error; err != nil {
			return nil, err
		}
		if occupied >= int64(table.SeatCount) {
			return nil, ErrTableFull
		}
	}

	seat.GuestId = guestId
	if err := tx.Save(&seat).Error; err != nil {
		return nil, err
	}
	return &seat, nil
}

// RemoveTable deletes a table together with its seats. Dropping the seat rows
// is what releases any guests seated there, so both deletes share the
// caller's transaction.
func RemoveTable(tx *gorm.DB, tableId uint) error {
	if err := tx.Where("table_id = ?", tableId).Delete(&model.Seat{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Table{}, tableId).Error
}

// AllocateRoom places a guest in an accommodation room under the same locked
// check-then-write discipline as tables.
func AllocateRoom(tx *gorm.DB, roomId, guestId uint) (*model.RoomAllocation, error) {
	var room model.Room
	if err := lockForUpdate(tx).First(&room, roomId).Error; err != nil {
		return nil, err
	}

	var occupied int64
	if err := tx.Model(&model.RoomAllocation{}).Where("room_id = ?", roomId).Count(&occupied).Error; err != nil {
		return nil, err
	}
	if occupied >= int64(room.Capacity) {
		return nil, ErrRoomFull
	}

	// One room per guest: drop any previous allocation first.
	if err := tx.Where("guest_id = ?", guestId).Delete(&model.RoomAllocation{}).Error; err != nil {
		return nil, err
	}

	allocation := model.RoomAllocation{RoomId: roomId, GuestId: guestId}
	if err := tx.Create(&allocation).Error; err != nil {
		return nil, err
	}
	return &allocation, nil
}

// FillOccupancy decorates tables with their derived occupancy fields.
func FillOccupancy(db *gorm.DB, tables []model.Table) error {
	for i := range tables {
		occupied, err := TableOccupied(db, tables[i].ID)
		if err != nil {
			return err
		}
		tables[i].Occupied = int(occupied)
		if tables[i].SeatCount > 0 {
			tables[i].Occupancy = float64(occupied) / float64(tables[i].SeatCount) * 100
		}
	}
	return nil
}
