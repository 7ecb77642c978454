package handler

import (
	"errors"
	"log"

	"wedding_planner/constants"
	"wedding_planner/database"
	"wedding_planner/helper"
	"wedding_planner/model"
	"wedding_planner/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateTable creates the table and its seats on a circle around the table
// center, all in one transaction.
func CreateTable(c *fiber.Ctx) error {
	plan, ok := c.Locals("floorPlan").(model.FloorPlan)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputCreateTable").(model.CreateTableInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	x, y := helper.ClampTablePosition(input.X, input.Y)

	tx := database.DB.Begin()

	newTable := model.Table{
		FloorPlanId: plan.ID,
		Name:        input.Name,
		Type:        input.Type,
		SeatCount:   input.SeatCount,
		X:           x,
		Y:           y,
	}
	if err := tx.Create(&newTable).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create table", err)
	}

	centerX := x + float64(constants.TABLE_SIZE)/2
	centerY := y + float64(constants.TABLE_SIZE)/2
	positions := helper.SeatPositions(centerX, centerY, input.SeatCount)

	seatsToCreate := make([]model.Seat, 0, len(positions))
	for _, p := range positions {
		seatsToCreate = append(seatsToCreate, model.Seat{
			FloorPlanId: plan.ID,
			TableId:     &newTable.ID,
			X:           p.X,
			Y:           p.Y,
		})
	}
	if err := tx.Create(&seatsToCreate).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create seats", err)
	}

	var createdTable model.Table
	if err := tx.Preload("Seats").First(&createdTable, newTable.ID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load table", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	PublishFloorPlanUpdate(plan.ID, "table:created", createdTable)
	return utils.SuccessResponse(c, fiber.StatusCreated, createdTable)
}

func EditTable(c *fiber.Ctx) error {
	tableId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputEditTable").(model.EditTableInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var table model.Table
	if err := database.DB.First(&table, tableId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Table not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Name != nil {
		table.Name = *input.Name
	}
	if input.Type != nil {
		table.Type = *input.Type
	}

	if err := database.DB.Save(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	PublishFloorPlanUpdate(table.FloorPlanId, "table:updated", table)
	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

// DeleteTable removes the table and cascades to its seats, which unassigns
// any guests seated there.
func DeleteTable(c *fiber.Ctx) error {
	tableId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	tx := database.DB.Begin()

	var table model.Table
	if err := tx.First(&table, tableId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Table not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := helper.RemoveTable(tx, tableId); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	log.Printf("table deleted: id=%d floorPlan=%d", tableId, table.FloorPlanId)
	PublishFloorPlanUpdate(table.FloorPlanId, "table:deleted", fiber.Map{"tableId": tableId})
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"tableId": tableId,
		"deleted": true,
	})
}

// MoveTable clamps the new position server-side and drags the table's seats
// along by the same delta.
func MoveTable(c *fiber.Ctx) error {
	tableId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputMove").(model.MoveInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	tx := database.DB.Begin()

	var table model.Table
	if err := tx.First(&table, tableId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Table not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	newX, newY := helper.ClampTablePosition(input.X, input.Y)
	dx := newX - table.X
	dy := newY - table.Y

	table.X = newX
	table.Y = newY
	if err := tx.Save(&table).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	if dx != 0 || dy != 0 {
		if err := tx.Model(&model.Seat{}).
			Where("table_id = ?", tableId).
			Updates(map[string]any{
				"x": gorm.Expr("x + ?", dx),
				"y": gorm.Expr("y + ?", dy),
			}).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to move seats", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	PublishFloorPlanUpdate(table.FloorPlanId, "table:moved", table)
	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func RotateTable(c *fiber.Ctx) error {
	tableId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var table model.Table
	if err := database.DB.First(&table, tableId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Table not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	table.Rotation = helper.NextRotation(table.Rotation)
	if err := database.DB.Save(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	PublishFloorPlanUpdate(table.FloorPlanId, "table:rotated", table)
	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

// AssignGuestToTable seats a guest on the first free seat of the table,
// rejecting with a conflict when the table is full.
func AssignGuestToTable(c *fiber.Ctx) error {
	tableId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputAssignTable").(model.AssignTableInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	var guest model.Guest
	if err := db.First(&guest, input.GuestId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Guest not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tx := db.Begin()
	seat, err := helper.AssignGuestToTable(tx, guest.EventId, guest.ID, tableId)
	if err != nil {
		tx.Rollback()
		switch {
		case errors.Is(err, helper.ErrTableFull), errors.Is(err, helper.ErrNoFreeSeat):
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.TABLE_FULL, err, "tableId")
		case errors.Is(err, helper.ErrWrongEvent):
			return utils.ErrorResponseHaveKey(c, fiber.StatusForbidden, "Table belongs to another event", err, "tableId")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Table not found", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	PublishFloorPlanUpdate(seat.FloorPlanId, "seat:assigned", seat)
	return utils.SuccessResponse(c, fiber.StatusOK, seat)
}

// UnassignGuest frees every seat the guest holds in their event.
func UnassignGuest(c *fiber.Ctx) error {
	guestId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	var guest model.Guest
	if err := db.First(&guest, guestId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Guest not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tx := db.Begin()
	if err := helper.ClearGuestSeats(tx, guest.EventId, guest.ID); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to unassign guest", err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"guestId":    guest.ID,
		"unassigned": true,
	})
}
