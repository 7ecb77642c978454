package helper

import (
	"math"
	"testing"

	"wedding_planner/constants"
	"wedding_planner/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSeatPositions(t *testing.T) {
	centerX, centerY := 300.0, 200.0
	positions := SeatPositions(centerX, centerY, 8)
	require.Len(t, positions, 8)

	// Every seat sits exactly SEAT_RADIUS from the table center.
	for _, p := range positions {
		dist := math.Hypot(p.X-centerX, p.Y-centerY)
		assert.InDelta(t, constants.SEAT_RADIUS, dist, 1e-9)
	}

	// First seat is directly above the center.
	assert.InDelta(t, centerX, positions[0].X, 1e-9)
	assert.InDelta(t, centerY-constants.SEAT_RADIUS, positions[0].Y, 1e-9)

	// Even angular spacing between consecutive seats.
	step := 2 * math.Pi / 8
	for i := 1; i < len(positions); i++ {
		angle := -math.Pi/2 + float64(i)*step
		assert.InDelta(t, centerX+constants.SEAT_RADIUS*math.Cos(angle), positions[i].X, 1e-9)
		assert.InDelta(t, centerY+constants.SEAT_RADIUS*math.Sin(angle), positions[i].Y, 1e-9)
	}
}

func TestSeatPositionsSingleSeat(t *testing.T) {
	positions := SeatPositions(100, 100, 1)
	require.Len(t, positions, 1)
	assert.InDelta(t, 100.0, positions[0].X, 1e-9)
	assert.InDelta(t, 100.0-constants.SEAT_RADIUS, positions[0].Y, 1e-9)
}

func TestClampTablePosition(t *testing.T) {
	// Inside the canvas: unchanged.
	x, y := ClampTablePosition(400, 250)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 250.0, y)

	// Dragged off the top-left corner: pinned to the padding.
	x, y = ClampTablePosition(-50, -10)
	assert.Equal(t, float64(constants.CANVAS_PADDING), x)
	assert.Equal(t, float64(constants.CANVAS_PADDING), y)

	// Dragged off the bottom-right: pinned to canvas minus table minus padding.
	x, y = ClampTablePosition(5000, 5000)
	assert.Equal(t, float64(constants.CANVAS_WIDTH-constants.TABLE_SIZE-constants.CANVAS_PADDING), x)
	assert.Equal(t, float64(constants.CANVAS_HEIGHT-constants.TABLE_SIZE-constants.CANVAS_PADDING), y)
}

func TestClampSeatPosition(t *testing.T) {
	x, y := ClampSeatPosition(99999, -1)
	assert.Equal(t, float64(constants.CANVAS_WIDTH-constants.SEAT_SIZE-constants.CANVAS_PADDING), x)
	assert.Equal(t, float64(constants.CANVAS_PADDING), y)
}

func TestNextRotation(t *testing.T) {
	assert.Equal(t, 15, NextRotation(0))
	assert.Equal(t, 30, NextRotation(15))
	assert.Equal(t, 0, NextRotation(345))
	assert.Equal(t, 15, NextRotation(360))
}

func setupSeatingDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Event{},
		&model.Guest{},
		&model.FloorPlan{},
		&model.Table{},
		&model.Seat{},
		&model.Accommodation{},
		&model.Room{},
		&model.RoomAllocation{},
		&model.WeddingWebsite{},
	))
	return db
}

func seedTable(t *testing.T, db *gorm.DB, eventId uint, seatCount int) model.Table {
	t.Helper()
	plan := model.FloorPlan{EventId: eventId, Name: "Reception", Mode: model.ModeReception}
	require.NoError(t, db.Create(&plan).Error)

	table := model.Table{FloorPlanId: plan.ID, Name: "Table 1", Type: model.TableRound, SeatCount: seatCount, X: 300, Y: 200}
	require.NoError(t, db.Create(&table).Error)

	for _, p := range SeatPositions(table.X+constants.TABLE_SIZE/2, table.Y+constants.TABLE_SIZE/2, seatCount) {
		seat := model.Seat{FloorPlanId: plan.ID, TableId: &table.ID, X: p.X, Y: p.Y}
		require.NoError(t, db.Create(&seat).Error)
	}
	return table
}

func seedGuest(t *testing.T, db *gorm.DB, eventId uint, name, code string) model.Guest {
	t.Helper()
	g := model.Guest{EventId: eventId, FirstName: name, RsvpStatus: constants.RSVP_PENDING, InviteCode: code}
	require.NoError(t, db.Create(&g).Error)
	return g
}

func TestAssignGuestToTableRejectsWhenFull(t *testing.T) {
	db := setupSeatingDB(t)

	event := model.Event{Name: "Emma & Liam"}
	require.NoError(t, db.Create(&event).Error)
	table := seedTable(t, db, event.ID, 2)

	g1 := seedGuest(t, db, event.ID, "Alice", "code-1")
	g2 := seedGuest(t, db, event.ID, "Bob", "code-2")
	g3 := seedGuest(t, db, event.ID, "Carol", "code-3")

	seat, err := AssignGuestToTable(db, event.ID, g1.ID, table.ID)
	require.NoError(t, err)
	require.NotNil(t, seat.GuestId)
	assert.Equal(t, g1.ID, *seat.GuestId)

	_, err = AssignGuestToTable(db, event.ID, g2.ID, table.ID)
	require.NoError(t, err)

	_, err = AssignGuestToTable(db, event.ID, g3.ID, table.ID)
	assert.ErrorIs(t, err, ErrTableFull)

	occupied, err := TableOccupied(db, table.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, occupied)
}

func TestAssignGuestToTableMovesGuest(t *testing.T) {
	db := setupSeatingDB(t)

	event := model.Event{Name: "Emma & Liam"}
	require.NoError(t, db.Create(&event).Error)
	table1 := seedTable(t, db, event.ID, 4)
	table2 := seedTable(t, db, event.ID, 4)

	guest := seedGuest(t, db, event.ID, "Alice", "code-1")

	_, err := AssignGuestToTable(db, event.ID, guest.ID, table1.ID)
	require.NoError(t, err)
	_, err = AssignGuestToTable(db, event.ID, guest.ID, table2.ID)
	require.NoError(t, err)

	// The guest holds exactly one seat after the move.
	var held int64
	require.NoError(t, db.Model(&model.Seat{}).Where("guest_id = ?", guest.ID).Count(&held).Error)
	assert.EqualValues(t, 1, held)

	occupied, err := TableOccupied(db, table1.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, occupied)
}

func TestAssignGuestToTableWrongEvent(t *testing.T) {
	db := setupSeatingDB(t)

	eventA := model.Event{Name: "Wedding A"}
	require.NoError(t, db.Create(&eventA).Error)
	eventB := model.Event{Name: "Wedding B"}
	require.NoError(t, db.Create(&eventB).Error)

	table := seedTable(t, db, eventA.ID, 4)
	outsider := seedGuest(t, db, eventB.ID, "Mallory", "code-x")

	_, err := AssignGuestToTable(db, eventB.ID, outsider.ID, table.ID)
	assert.ErrorIs(t, err, ErrWrongEvent)
}

func TestAssignGuestToSeatSetAndClear(t *testing.T) {
	db := setupSeatingDB(t)

	event := model.Event{Name: "Emma & Liam"}
	require.NoError(t, db.Create(&event).Error)

	plan := model.FloorPlan{EventId: event.ID, Name: "Ceremony", Mode: model.ModeCeremony}
	require.NoError(t, db.Create(&plan).Error)
	seat := model.Seat{FloorPlanId: plan.ID, X: 100, Y: 100}
	require.NoError(t, db.Create(&seat).Error)

	guest := seedGuest(t, db, event.ID, "Alice", "code-1")

	updated, err := AssignGuestToSeat(db, seat.ID, &guest.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.GuestId)
	assert.Equal(t, guest.ID, *updated.GuestId)

	cleared, err := AssignGuestToSeat(db, seat.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, cleared.GuestId)
}

func TestAssignGuestToSeatMissingSeat(t *testing.T) {
	db := setupSeatingDB(t)

	_, err := AssignGuestToSeat(db, 9999, nil)
	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestAssignGuestToSeatWithinFullTable(t *testing.T) {
	db := setupSeatingDB(t)

	event := model.Event{Name: "Emma & Liam"}
	require.NoError(t, db.Create(&event).Error)
	table := seedTable(t, db, event.ID, 2)

	g1 := seedGuest(t, db, event.ID, "Alice", "code-1")
	g2 := seedGuest(t, db, event.ID, "Bob", "code-2")

	_, err := AssignGuestToTable(db, event.ID, g1.ID, table.ID)
	require.NoError(t, err)
	_, err = AssignGuestToTable(db, event.ID, g2.ID, table.ID)
	require.NoError(t, err)

	// Moving within the same table frees the old seat first, so a full table
	// does not block the swap.
	var target model.Seat
	require.NoError(t, db.Where("table_id = ? AND guest_id = ?", table.ID, g2.ID).First(&target).Error)

	_, err = AssignGuestToSeat(db, target.ID, &g1.ID)
	require.NoError(t, err)

	var held int64
	require.NoError(t, db.Model(&model.Seat{}).Where("guest_id = ?", g1.ID).Count(&held).Error)
	assert.EqualValues(t, 1, held)
}

func TestAssignGuestToSeatReplacesOccupantAtCapacity(t *testing.T) {
	db := setupSeatingDB(t)

	event := model.Event{Name: "Emma & Liam"}
	require.NoError(t, db.Create(&event).Error)
	table := seedTable(t, db, event.ID, 2)

	g1 := seedGuest(t, db, event.ID, "Alice", "code-1")
	g2 := seedGuest(t, db, event.ID, "Bob", "code-2")
	g3 := seedGuest(t, db, event.ID, "Carol", "code-3")

	_, err := AssignGuestToTable(db, event.ID, g1.ID, table.ID)
	require.NoError(t, err)
	_, err = AssignGuestToTable(db, event.ID, g2.ID, table.ID)
	require.NoError(t, err)

	// Taking over an occupied seat leaves the head count unchanged, so a
	// full table does not block it.
	var target model.Seat
	require.NoError(t, db.Where("table_id = ? AND guest_id = ?", table.ID, g1.ID).First(&target).Error)

	updated, err := AssignGuestToSeat(db, target.ID, &g3.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.GuestId)
	assert.Equal(t, g3.ID, *updated.GuestId)

	occupied, err := TableOccupied(db, table.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, occupied)

	// The displaced guest no longer holds a seat.
	var held int64
	require.NoError(t, db.Model(&model.Seat{}).Where("guest_id = ?", g1.ID).Count(&held).Error)
	assert.EqualValues(t, 0, held)
}

func TestRemoveTableFreesSeatedGuests(t *testing.T) {
	db := setupSeatingDB(t)

	event := model.Event{Name: "Emma & Liam"}
	require.NoError(t, db.Create(&event).Error)
	table := seedTable(t, db, event.ID, 4)
	other := seedTable(t, db, event.ID, 4)

	guest := seedGuest(t, db, event.ID, "Alice", "code-1")
	bystander := seedGuest(t, db, event.ID, "Bob", "code-2")

	_, err := AssignGuestToTable(db, event.ID, guest.ID, table.ID)
	require.NoError(t, err)
	_, err = AssignGuestToTable(db, event.ID, bystander.ID, other.ID)
	require.NoError(t, err)

	require.NoError(t, RemoveTable(db, table.ID))

	var tables int64
	require.NoError(t, db.Model(&model.Table{}).Where("id = ?", table.ID).Count(&tables).Error)
	assert.EqualValues(t, 0, tables)

	var seats int64
	require.NoError(t, db.Model(&model.Seat{}).Where("table_id = ?", table.ID).Count(&seats).Error)
	assert.EqualValues(t, 0, seats)

	// The seated guest is released, the other table is untouched.
	var held int64
	require.NoError(t, db.Model(&model.Seat{}).Where("guest_id = ?", guest.ID).Count(&held).Error)
	assert.EqualValues(t, 0, held)

	occupied, err := TableOccupied(db, other.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, occupied)
}

func TestAllocateRoom(t *testing.T) {
	db := setupSeatingDB(t)

	event := model.Event{Name: "Emma & Liam"}
	require.NoError(t, db.Create(&event).Error)
	hotel := model.Accommodation{EventId: event.ID, Name: "Grand Hotel"}
	require.NoError(t, db.Create(&hotel).Error)
	room1 := model.Room{AccommodationId: hotel.ID, Label: "101", Capacity: 1}
	require.NoError(t, db.Create(&room1).Error)
	room2 := model.Room{AccommodationId: hotel.ID, Label: "102", Capacity: 2}
	require.NoError(t, db.Create(&room2).Error)

	g1 := seedGuest(t, db, event.ID, "Alice", "code-1")
	g2 := seedGuest(t, db, event.ID, "Bob", "code-2")

	_, err := AllocateRoom(db, room1.ID, g1.ID)
	require.NoError(t, err)

	_, err = AllocateRoom(db, room1.ID, g2.ID)
	assert.ErrorIs(t, err, ErrRoomFull)

	// Re-allocating moves the guest, it never duplicates.
	_, err = AllocateRoom(db, room2.ID, g1.ID)
	require.NoError(t, err)

	var allocations int64
	require.NoError(t, db.Model(&model.RoomAllocation{}).Where("guest_id = ?", g1.ID).Count(&allocations).Error)
	assert.EqualValues(t, 1, allocations)

	var inRoom1 int64
	require.NoError(t, db.Model(&model.RoomAllocation{}).Where("room_id = ?", room1.ID).Count(&inRoom1).Error)
	assert.EqualValues(t, 0, inRoom1)
}

func TestFillOccupancy(t *testing.T) {
	db := setupSeatingDB(t)

	event := model.Event{Name: "Emma & Liam"}
	require.NoError(t, db.Create(&event).Error)
	table := seedTable(t, db, event.ID, 4)
	guest := seedGuest(t, db, event.ID, "Alice", "code-1")

	_, err := AssignGuestToTable(db, event.ID, guest.ID, table.ID)
	require.NoError(t, err)

	tables := []model.Table{table}
	require.NoError(t, FillOccupancy(db, tables))
	assert.Equal(t, 1, tables[0].Occupied)
	assert.InDelta(t, 25.0, tables[0].Occupancy, 1e-9)
}
