package handler

import (
	"errors"
	"fmt"
	"strings"

	"wedding_planner/constants"
	"wedding_planner/database"
	"wedding_planner/model"
	"wedding_planner/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ExportGuestsCSV streams the full guest list as a CSV download.
func ExportGuestsCSV(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var guests []model.Guest
	if err := database.DB.
		Where("event_id = ?", eventId).
		Order("last_name ASC, first_name ASC").
		Find(&guests).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	csvDoc, err := utils.BuildGuestCSV(guests)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build CSV", err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="guests-%d.csv"`, eventId))
	return c.SendString(csvDoc)
}

// ExportEventSummary renders the printable one-document event summary.
func ExportEventSummary(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	var event model.Event
	if err := db.First(&event, eventId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Event not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var guests []model.Guest
	if err := db.Where("event_id = ?", eventId).
		Order("last_name ASC, first_name ASC").
		Find(&guests).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var menuItems []model.MenuItem
	if err := db.Where("event_id = ?", eventId).
		Order("course ASC, name ASC").
		Find(&menuItems).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var drinks []model.Drink
	if err := db.Where("event_id = ?", eventId).
		Order("category ASC, name ASC").
		Find(&drinks).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	seating, err := buildSeatingSummary(db, eventId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var timeline []model.TimelineDay
	if err := db.Where("event_id = ?", eventId).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Order("date ASC").
		Find(&timeline).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	html, err := utils.BuildEventSummaryHTML(utils.EventSummaryData{
		Event:     event,
		Guests:    guests,
		MenuItems: menuItems,
		Drinks:    drinks,
		Seating:   seating,
		Timeline:  timeline,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build summary", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// buildSeatingSummary collects per-table occupancy across the event's
// reception plans.
func buildSeatingSummary(db *gorm.DB, eventId uint) ([]utils.SeatingSummaryRow, error) {
	var tables []model.Table
	if err := db.
		Joins("JOIN floor_plans ON floor_plans.id = tables.floor_plan_id").
		Where("floor_plans.event_id = ?", eventId).
		Preload("Seats.Guest").
		Order("tables.name ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}

	rows := make([]utils.SeatingSummaryRow, 0, len(tables))
	for _, t := range tables {
		row := utils.SeatingSummaryRow{
			TableName: t.Name,
			SeatCount: t.SeatCount,
		}
		for _, s := range t.Seats {
			if s.GuestId == nil || s.Guest == nil {
				continue
			}
			row.Occupied++
			row.Guests = append(row.Guests, strings.TrimSpace(s.Guest.FirstName+" "+s.Guest.LastName))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
