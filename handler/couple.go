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

// coupleEventId resolves the event the logged-in couple is scoped to.
func coupleEventId(c *fiber.Ctx) (uint, error) {
	claims, couple := helper.GetInfoCoupleFromToken(c)
	if couple == nil {
		return 0, errors.New("NOT A COUPLE ACCOUNT")
	}
	if claims.EventId == nil {
		return 0, errors.New("TOKEN MISSING EVENT SCOPE")
	}
	return *claims.EventId, nil
}

// CoupleGetEvent returns the couple's own event with its website.
func CoupleGetEvent(c *fiber.Ctx) error {
	eventId, err := coupleEventId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_EVENT_MEMBER, err)
	}

	var event model.Event
	if err := database.DB.Preload("Website").First(&event, eventId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Event not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

// CoupleGetGuests returns the full guest list plus RSVP counts.
func CoupleGetGuests(c *fiber.Ctx) error {
	eventId, err := coupleEventId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_EVENT_MEMBER, err)
	}

	var guests []model.Guest
	if err := database.DB.
		Where("event_id = ?", eventId).
		Order("last_name ASC, first_name ASC").
		Find(&guests).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	stats := fiber.Map{
		constants.RSVP_PENDING:  0,
		constants.RSVP_ACCEPTED: 0,
		constants.RSVP_DECLINED: 0,
	}
	plusOnes := 0
	for _, g := range guests {
		if n, ok := stats[g.RsvpStatus].(int); ok {
			stats[g.RsvpStatus] = n + 1
		}
		if g.PlusOne && g.RsvpStatus == constants.RSVP_ACCEPTED {
			plusOnes++
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"guests":   guests,
		"rsvp":     stats,
		"plusOnes": plusOnes,
		"total":    len(guests),
	})
}

// CoupleGetSeating returns a read-only seating overview for the couple.
func CoupleGetSeating(c *fiber.Ctx) error {
	eventId, err := coupleEventId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_EVENT_MEMBER, err)
	}

	var plans []model.FloorPlan
	if err := database.DB.
		Where("event_id = ?", eventId).
		Preload("Tables.Seats.Guest").
		Preload("Seats.Guest").
		Order("name ASC").
		Find(&plans).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	for i := range plans {
		if err := helper.FillOccupancy(database.DB, plans[i].Tables); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, plans)
}

func CoupleGetChecklist(c *fiber.Ctx) error {
	eventId, err := coupleEventId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_EVENT_MEMBER, err)
	}

	var items []model.ChecklistItem
	if err := database.DB.
		Where("event_id = ?", eventId).
		Order("due_date ASC NULLS LAST, id ASC").
		Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func CoupleGetTimeline(c *fiber.Ctx) error {
	eventId, err := coupleEventId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_EVENT_MEMBER, err)
	}

	var days []model.TimelineDay
	if err := database.DB.
		Where("event_id = ?", eventId).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Order("date ASC").
		Find(&days).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, days)
}

func CoupleGetBudget(c *fiber.Ctx) error {
	eventId, err := coupleEventId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_EVENT_MEMBER, err)
	}

	var items []model.BudgetItem
	if err := database.DB.
		Where("event_id = ?", eventId).
		Order("category ASC, name ASC").
		Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	totals, err := BudgetTotalsForEvent(database.DB, eventId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"items":  items,
		"totals": totals,
	})
}

// CoupleUpsertWebsite lets the couple edit their own website content.
func CoupleUpsertWebsite(c *fiber.Ctx) error {
	eventId, err := coupleEventId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_EVENT_MEMBER, err)
	}
	c.Locals("eventId", eventId)
	return UpsertWebsite(c)
}

// CoupleGetWebsite mirrors GetWebsite for the couple's own event.
func CoupleGetWebsite(c *fiber.Ctx) error {
	eventId, err := coupleEventId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_EVENT_MEMBER, err)
	}
	c.Locals("eventId", eventId)
	return GetWebsite(c)
}
