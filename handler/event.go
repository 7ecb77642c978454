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

func GetEvents(c *fiber.Ctx) error {
	var filter model.FilterEvent
	if err := c.BodyParser(&filter); err != nil {
		filter = model.FilterEvent{}
	}

	db := database.DB
	query := db.Model(&model.Event{})
	if filter.SearchKey != "" {
		query = query.Where("name ILIKE ? OR venue_name ILIKE ?", "%"+filter.SearchKey+"%", "%"+filter.SearchKey+"%")
	}

	var totalCount int64
	query.Count(&totalCount)

	var events []model.Event
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("wedding_date ASC NULLS LAST").Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch events", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       events,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetEventById(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var event model.Event
	if err := database.DB.
		Preload("Website").
		First(&event, eventId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Event not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func CreateEvent(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateEvent").(model.CreateEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var newEvent model.Event
	copier.Copy(&newEvent, &input)

	if err := database.DB.Create(&newEvent).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create event", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newEvent)
}

func EditEvent(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputEditEvent").(model.EditEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var event model.Event
	if err := database.DB.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Event not found", err)
	}

	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.WeddingDate != nil {
		event.WeddingDate = input.WeddingDate
	}
	if input.VenueName != nil {
		event.VenueName = *input.VenueName
	}
	if input.VenueAddress != nil {
		event.VenueAddress = *input.VenueAddress
	}
	if input.Partner1Name != nil {
		event.Partner1Name = *input.Partner1Name
	}
	if input.Partner2Name != nil {
		event.Partner2Name = *input.Partner2Name
	}
	if input.GuestEstimate != nil {
		event.GuestEstimate = *input.GuestEstimate
	}
	if input.Notes != nil {
		event.Notes = *input.Notes
	}

	if err := database.DB.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func DeleteEvent(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	arrayId, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	ids := arrayId.IDs

	tx := database.DB.Begin()

	// Children first, events last.
	planIds := tx.Session(&gorm.Session{NewDB: true}).Model(&model.FloorPlan{}).Select("id").Where("event_id IN ?", ids)
	if err := tx.Where("floor_plan_id IN (?)", planIds).Delete(&model.Seat{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete seats", err)
	}
	if err := tx.Where("floor_plan_id IN (?)", planIds).Delete(&model.Table{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete tables", err)
	}
	for _, m := range []any{&model.FloorPlan{}, &model.Guest{}, &model.ChecklistItem{}, &model.Vendor{}, &model.BudgetItem{}, &model.MenuItem{}, &model.Drink{}, &model.WeddingWebsite{}, &model.CoupleAccount{}} {
		if err := tx.Where("event_id IN ?", ids).Delete(m).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete event data", err)
		}
	}
	dayIds := tx.Session(&gorm.Session{NewDB: true}).Model(&model.TimelineDay{}).Select("id").Where("event_id IN ?", ids)
	if err := tx.Where("timeline_day_id IN (?)", dayIds).Delete(&model.TimelineEvent{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete timeline events", err)
	}
	if err := tx.Where("event_id IN ?", ids).Delete(&model.TimelineDay{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete timeline days", err)
	}
	accIds := tx.Session(&gorm.Session{NewDB: true}).Model(&model.Accommodation{}).Select("id").Where("event_id IN ?", ids)
	roomIds := tx.Session(&gorm.Session{NewDB: true}).Model(&model.Room{}).Select("id").Where("accommodation_id IN (?)", accIds)
	if err := tx.Where("room_id IN (?)", roomIds).Delete(&model.RoomAllocation{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete room allocations", err)
	}
	if err := tx.Where("accommodation_id IN (?)", accIds).Delete(&model.Room{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete rooms", err)
	}
	if err := tx.Where("event_id IN ?", ids).Delete(&model.Accommodation{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete accommodations", err)
	}
	if err := tx.Where("id IN ?", ids).Delete(&model.Event{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete events", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Events deleted",
		"ids":     ids,
		"deleted": true,
	})
}

// SetCoupleCredentials creates or replaces the couple login for an event.
func SetCoupleCredentials(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputCoupleCredentials").(model.SetCoupleCredentialsInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	db := database.DB
	var couple model.CoupleAccount
	err = db.Where("event_id = ?", eventId).First(&couple).Error
	switch {
	case err == nil:
		couple.Username = input.Username
		couple.Password = hash
		if err := db.Save(&couple).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		couple = model.CoupleAccount{EventId: eventId, Username: input.Username, Password: hash}
		if err := db.Create(&couple).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create couple account", err)
		}
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"eventId":  couple.EventId,
		"username": couple.Username,
	})
}
