package handler

import (
	"errors"

	"wedding_planner/constants"
	"wedding_planner/database"
	"wedding_planner/helper"
	"wedding_planner/model"
	"wedding_planner/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateSeat places a standalone ceremony seat on the plan. The validate
// layer only lets this through for ceremony plans.
func CreateSeat(c *fiber.Ctx) error {
	plan, ok := c.Locals("floorPlan").(model.FloorPlan)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputCreateSeat").(model.CreateSeatInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	x, y := helper.ClampSeatPosition(input.X, input.Y)
	newSeat := model.Seat{
		FloorPlanId: plan.ID,
		X:           x,
		Y:           y,
	}
	if err := database.DB.Create(&newSeat).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create seat", err)
	}

	PublishFloorPlanUpdate(plan.ID, "seat:created", newSeat)
	return utils.SuccessResponse(c, fiber.StatusCreated, newSeat)
}

func MoveSeat(c *fiber.Ctx) error {
	seatId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputMove").(model.MoveInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var seat model.Seat
	if err := database.DB.First(&seat, seatId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Seat not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Seats generated around a table move with the table, not on their own.
	if seat.TableId != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Seat is attached to a table", errors.New("SEAT ATTACHED TO TABLE"), "seatId")
	}

	seat.X, seat.Y = helper.ClampSeatPosition(input.X, input.Y)
	if err := database.DB.Save(&seat).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	PublishFloorPlanUpdate(seat.FloorPlanId, "seat:moved", seat)
	return utils.SuccessResponse(c, fiber.StatusOK, seat)
}

// AssignSeat assigns a guest to one exact seat, or clears the seat when the
// body carries a null guestId.
func AssignSeat(c *fiber.Ctx) error {
	seatId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputAssignSeat").(model.AssignSeatInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	tx := database.DB.Begin()
	seat, err := helper.AssignGuestToSeat(tx, seatId, input.GuestId)
	if err != nil {
		tx.Rollback()
		switch {
		case errors.Is(err, helper.ErrSeatNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Seat not found", err)
		case errors.Is(err, helper.ErrTableFull):
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.TABLE_FULL, err, "seatId")
		case errors.Is(err, helper.ErrWrongEvent):
			return utils.ErrorResponseHaveKey(c, fiber.StatusForbidden, "Guest belongs to another event", err, "guestId")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Guest not found", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	action := "seat:assigned"
	if input.GuestId == nil {
		action = "seat:cleared"
	}
	PublishFloorPlanUpdate(seat.FloorPlanId, action, seat)
	return utils.SuccessResponse(c, fiber.StatusOK, seat)
}

func DeleteSeat(c *fiber.Ctx) error {
	seatId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var seat model.Seat
	if err := database.DB.First(&seat, seatId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Seat not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if seat.TableId != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Seat is attached to a table", errors.New("SEAT ATTACHED TO TABLE"), "seatId")
	}

	if err := database.DB.Delete(&model.Seat{}, seatId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	PublishFloorPlanUpdate(seat.FloorPlanId, "seat:deleted", fiber.Map{"seatId": seatId})
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"seatId":  seatId,
		"deleted": true,
	})
}
