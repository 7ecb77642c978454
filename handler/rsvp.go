package handler

import (
	"errors"
	"fmt"
	"time"

	"wedding_planner/config"
	"wedding_planner/constants"
	"wedding_planner/database"
	"wedding_planner/model"
	"wedding_planner/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetRsvpInvite resolves an invite code to the guest and the event details a
// guest needs before submitting. Public, no auth.
func GetRsvpInvite(c *fiber.Ctx) error {
	inviteCode := c.Params("inviteCode")

	var guest model.Guest
	if err := database.DB.Where("invite_code = ?", inviteCode).First(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Invitation not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var event model.Event
	if err := database.DB.Preload("Website").First(&event, guest.EventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var menu []model.MenuItem
	if err := database.DB.
		Where("event_id = ?", guest.EventId).
		Order("course ASC, name ASC").
		Find(&menu).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"guest": guest,
		"event": fiber.Map{
			"name":         event.Name,
			"weddingDate":  event.WeddingDate,
			"venueName":    event.VenueName,
			"venueAddress": event.VenueAddress,
		},
		"menu":         menu,
		"rsvpDeadline": rsvpDeadlineFor(event.Website),
	})
}

// SubmitRsvp records the guest's answer. Closed once the website's RSVP
// deadline has passed.
func SubmitRsvp(c *fiber.Ctx) error {
	inviteCode := c.Params("inviteCode")
	input, ok := c.Locals("inputRsvp").(model.RsvpSubmitInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var guest model.Guest
	if err := database.DB.Where("invite_code = ?", inviteCode).First(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Invitation not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var event model.Event
	if err := database.DB.Preload("Website").First(&event, guest.EventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if deadline := rsvpDeadlineFor(event.Website); deadline != nil && time.Now().After(*deadline) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "The RSVP deadline has passed", errors.New("RSVP DEADLINE PASSED"), "inviteCode")
	}

	if *input.Attending {
		guest.RsvpStatus = constants.RSVP_ACCEPTED
	} else {
		guest.RsvpStatus = constants.RSVP_DECLINED
	}
	guest.PlusOne = input.PlusOne
	guest.PlusOneName = input.PlusOneName
	guest.DietaryRestrictions = input.DietaryRestrictions
	if input.MealSelections != nil {
		guest.MealSelections = *input.MealSelections
	}
	if input.Notes != "" {
		guest.Notes = input.Notes
	}

	if err := database.DB.Save(&guest).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save RSVP", err)
	}

	if guest.Email != "" {
		weddingDate := ""
		if event.WeddingDate != nil {
			weddingDate = event.WeddingDate.Format("2 January 2006")
		}
		utils.SendRsvpConfirmationEmail(guest.Email, utils.RsvpConfirmationData{
			GuestName:   guest.FirstName,
			EventName:   event.Name,
			WeddingDate: weddingDate,
			VenueName:   event.VenueName,
			Attending:   *input.Attending,
			WebsiteLink: websiteLinkFor(event.Website),
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, guest)
}

func rsvpDeadlineFor(site *model.WeddingWebsite) *time.Time {
	if site == nil {
		return nil
	}
	return site.RsvpDeadline
}

func websiteLinkFor(site *model.WeddingWebsite) string {
	if site == nil || !site.Published {
		return ""
	}
	baseUrl := config.Config("PUBLIC_BASE_URL")
	if baseUrl == "" {
		baseUrl = "http://localhost:3000"
	}
	return fmt.Sprintf("%s/w/%s", baseUrl, site.Slug)
}
