package handler

import (
	"errors"
	"fmt"

	"wedding_planner/config"
	"wedding_planner/constants"
	"wedding_planner/database"
	"wedding_planner/helper"
	"wedding_planner/model"
	"wedding_planner/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetWebsite(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var site model.WeddingWebsite
	if err := database.DB.Where("event_id = ?", eventId).First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Website not created yet", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, site)
}

// UpsertWebsite creates the event website on first save and keeps the slug
// stable on every save after that.
func UpsertWebsite(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputUpsertWebsite").(model.UpsertWebsiteInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	tx := database.DB.Begin()

	var site model.WeddingWebsite
	err := tx.Where("event_id = ?", eventId).First(&site).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		site = model.WeddingWebsite{
			EventId: eventId,
			Slug:    helper.GenerateUniqueWebsiteSlug(tx, input.Title),
		}
	case err != nil:
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	site.Title = input.Title
	site.WelcomeMessage = input.WelcomeMessage
	site.Story = input.Story
	site.Schedule = input.Schedule
	site.GalleryUrls = input.GalleryUrls
	site.RsvpDeadline = input.RsvpDeadline

	if err := tx.Save(&site).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save website", err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, site)
}

func PublishWebsite(c *fiber.Ctx) error {
	return setWebsitePublished(c, true)
}

func UnpublishWebsite(c *fiber.Ctx) error {
	return setWebsitePublished(c, false)
}

func setWebsitePublished(c *fiber.Ctx, published bool) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var site model.WeddingWebsite
	if err := database.DB.Where("event_id = ?", eventId).First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Website not created yet", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	site.Published = published
	if err := database.DB.Save(&site).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, site)
}

// WebsiteQRCode renders a PNG QR code pointing at the public website URL.
func WebsiteQRCode(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var site model.WeddingWebsite
	if err := database.DB.Where("event_id = ?", eventId).First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Website not created yet", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	baseUrl := config.Config("PUBLIC_BASE_URL")
	if baseUrl == "" {
		baseUrl = "http://localhost:3000"
	}
	url := fmt.Sprintf("%s/w/%s", baseUrl, site.Slug)

	png, err := utils.GenerateQRCode(url, 512)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate QR code", err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s-qr.png"`, site.Slug))
	return c.Send(png)
}

// PublicWebsite serves the published website payload by slug, no auth.
func PublicWebsite(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var site model.WeddingWebsite
	if err := database.DB.Where("slug = ? AND published = ?", slugParam, true).First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Website not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var event model.Event
	if err := database.DB.First(&event, site.EventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"website": site,
		"event": fiber.Map{
			"name":         event.Name,
			"weddingDate":  event.WeddingDate,
			"venueName":    event.VenueName,
			"venueAddress": event.VenueAddress,
			"partner1Name": event.Partner1Name,
			"partner2Name": event.Partner2Name,
		},
	})
}
