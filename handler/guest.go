package handler

import (
	"errors"

	"wedding_planner/constants"
	"wedding_planner/database"
	"wedding_planner/model"
	"wedding_planner/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetGuests(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	filter, ok := c.Locals("inputFilterGuest").(model.FilterGuest)
	if !ok {
		filter = model.FilterGuest{}
	}

	db := database.DB
	query := db.Model(&model.Guest{}).Where("event_id = ?", eventId)
	if filter.SearchKey != "" {
		like := "%" + filter.SearchKey + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", like, like, like)
	}
	if filter.RsvpStatus != nil {
		query = query.Where("rsvp_status = ?", *filter.RsvpStatus)
	}
	if filter.Side != nil {
		query = query.Where("side = ?", *filter.Side)
	}
	if filter.Dietary != nil && *filter.Dietary {
		query = query.Where("dietary_restrictions != ''")
	}
	if filter.Unseated != nil && *filter.Unseated {
		query = query.Where("id NOT IN (?)", db.Session(&gorm.Session{NewDB: true}).
			Model(&model.Seat{}).Select("guest_id").Where("guest_id IS NOT NULL"))
	}

	var totalCount int64
	query.Count(&totalCount)

	var guests []model.Guest
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("last_name ASC, first_name ASC").Find(&guests).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch guests", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       guests,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetGuestById(c *fiber.Ctx) error {
	guestId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var guest model.Guest
	if err := database.DB.First(&guest, guestId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Guest not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, guest)
}

func CreateGuest(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputCreateGuest").(model.CreateGuestInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var newGuest model.Guest
	copier.Copy(&newGuest, &input)
	newGuest.EventId = eventId
	newGuest.RsvpStatus = constants.RSVP_PENDING
	newGuest.InviteCode = uuid.NewString()
	if newGuest.Side == "" {
		newGuest.Side = "both"
	}

	if err := database.DB.Create(&newGuest).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create guest", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newGuest)
}

func EditGuest(c *fiber.Ctx) error {
	guestId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputEditGuest").(model.EditGuestInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var guest model.Guest
	if err := database.DB.First(&guest, guestId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Guest not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.FirstName != nil {
		guest.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		guest.LastName = *input.LastName
	}
	if input.Email != nil {
		guest.Email = *input.Email
	}
	if input.Phone != nil {
		guest.Phone = *input.Phone
	}
	if input.Side != nil {
		guest.Side = *input.Side
	}
	if input.RsvpStatus != nil {
		guest.RsvpStatus = *input.RsvpStatus
	}
	if input.PlusOne != nil {
		guest.PlusOne = *input.PlusOne
	}
	if input.PlusOneName != nil {
		guest.PlusOneName = *input.PlusOneName
	}
	if input.DietaryRestrictions != nil {
		guest.DietaryRestrictions = *input.DietaryRestrictions
	}
	if input.MealSelections != nil {
		guest.MealSelections = *input.MealSelections
	}
	if input.Notes != nil {
		guest.Notes = *input.Notes
	}

	if err := database.DB.Save(&guest).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, guest)
}

func DeleteGuest(c *fiber.Ctx) error {
	arrayId, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	ids := arrayId.IDs

	tx := database.DB.Begin()

	// Free their seats and room allocations before removing the rows.
	if err := tx.Model(&model.Seat{}).Where("guest_id IN ?", ids).Update("guest_id", nil).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to unassign seats", err)
	}
	if err := tx.Where("guest_id IN ?", ids).Delete(&model.RoomAllocation{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete room allocations", err)
	}
	if err := tx.Where("id IN ?", ids).Delete(&model.Guest{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete guests", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Guests deleted",
		"ids":     ids,
		"deleted": true,
	})
}
