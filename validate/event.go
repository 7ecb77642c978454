package validate

import (
	"errors"
	"strconv"

	"wedding_planner/constants"
	"wedding_planner/database"
	"wedding_planner/model"
	"wedding_planner/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EventAccess confirms the :eventId param references an existing event and
// stashes the id for the handler. Every event-scoped route goes through it.
func EventAccess(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var event model.Event
		if err := database.DB.First(&event, valueKey).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Event not found", nil)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("eventId", uint(valueKey))
		return c.Next()
	}
}

func CreateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEventInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputCreateEvent", input)
		return c.Next()
	}
}

func EditEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditEventInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputEditEvent", input)
		return c.Next()
	}
}

func SetCoupleCredentials() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SetCoupleCredentialsInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		eventId, ok := c.Locals("eventId").(uint)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
		}

		// The username must be unique across couple accounts of other events.
		var existing model.CoupleAccount
		if err := database.DB.Where("username = ? AND event_id != ?", input.Username, eventId).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Username already exists", errors.New("username taken"), "username")
		}

		c.Locals("inputCoupleCredentials", input)
		return c.Next()
	}
}
