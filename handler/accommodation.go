package handler

import (
	"errors"

	"wedding_planner/constants"
	"wedding_planner/database"
	"wedding_planner/helper"
	"wedding_planner/model"
	"wedding_planner/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetAccommodations(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var accommodations []model.Accommodation
	if err := database.DB.
		Where("event_id = ?", eventId).
		Preload("Rooms.Allocations.Guest").
		Order("name ASC").
		Find(&accommodations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	for i := range accommodations {
		for j := range accommodations[i].Rooms {
			accommodations[i].Rooms[j].Occupied = len(accommodations[i].Rooms[j].Allocations)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, accommodations)
}

func CreateAccommodation(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputCreateAccommodation").(model.CreateAccommodationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var accommodation model.Accommodation
	if err := copier.Copy(&accommodation, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	accommodation.EventId = eventId

	if err := database.DB.Create(&accommodation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create accommodation", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, accommodation)
}

func EditAccommodation(c *fiber.Ctx) error {
	accommodationId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputEditAccommodation").(model.EditAccommodationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var accommodation model.Accommodation
	if err := database.DB.First(&accommodation, accommodationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Accommodation not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Name != nil {
		accommodation.Name = *input.Name
	}
	if input.Address != nil {
		accommodation.Address = *input.Address
	}
	if input.Notes != nil {
		accommodation.Notes = *input.Notes
	}

	if err := database.DB.Save(&accommodation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, accommodation)
}

// DeleteAccommodation removes the property, its rooms and the allocations in
// those rooms.
func DeleteAccommodation(c *fiber.Ctx) error {
	accommodationId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	tx := database.DB.Begin()

	var accommodation model.Accommodation
	if err := tx.First(&accommodation, accommodationId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Accommodation not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Where("room_id IN (?)",
		tx.Session(&gorm.Session{NewDB: true}).Model(&model.Room{}).Select("id").Where("accommodation_id = ?", accommodationId),
	).Delete(&model.RoomAllocation{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if err := tx.Where("accommodation_id = ?", accommodationId).Delete(&model.Room{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if err := tx.Delete(&model.Accommodation{}, accommodationId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"accommodationId": accommodationId,
		"deleted":         true,
	})
}

func CreateRoom(c *fiber.Ctx) error {
	accommodationId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputCreateRoom").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var accommodation model.Accommodation
	if err := database.DB.First(&accommodation, accommodationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Accommodation not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	room := model.Room{
		AccommodationId: accommodation.ID,
		Label:           input.Label,
		Capacity:        input.Capacity,
		PricePerNight:   input.PricePerNight,
	}
	if err := database.DB.Create(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create room", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, room)
}

func DeleteRoom(c *fiber.Ctx) error {
	roomId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	tx := database.DB.Begin()

	if err := tx.Where("room_id = ?", roomId).Delete(&model.RoomAllocation{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	result := tx.Delete(&model.Room{}, roomId)
	if result.Error != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, result.Error)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Room not found", errors.New("ROOM NOT FOUND"))
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"roomId":  roomId,
		"deleted": true,
	})
}

// AllocateRoom puts a guest in a room, rejecting with a conflict once the
// room holds capacity guests. A guest only ever holds one room.
func AllocateRoom(c *fiber.Ctx) error {
	roomId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputAllocateRoom").(model.AllocateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	tx := database.DB.Begin()
	allocation, err := helper.AllocateRoom(tx, roomId, input.GuestId)
	if err != nil {
		tx.Rollback()
		switch {
		case errors.Is(err, helper.ErrRoomFull):
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.ROOM_FULL, err, "roomId")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Room or guest not found", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, allocation)
}

func DeallocateRoom(c *fiber.Ctx) error {
	allocationId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	result := database.DB.Delete(&model.RoomAllocation{}, allocationId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Allocation not found", errors.New("ALLOCATION NOT FOUND"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"allocationId": allocationId,
		"deleted":      true,
	})
}
