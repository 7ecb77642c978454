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

// TimelineDayInEvent confirms the :dayId param references a day of the event
// on the context.
func TimelineDayInEvent(key string) fiber.Handler {
	return eventChild(key, &model.TimelineDay{})
}

// TimelineEventInEvent walks the entry's parent day to check event
// membership, since timeline entries carry no event id of their own.
func TimelineEventInEvent(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}
		eventId, ok := c.Locals("eventId").(uint)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
		}

		var owner struct{ EventId uint }
		if err := database.DB.Model(&model.TimelineEvent{}).
			Select("timeline_days.event_id").
			Joins("JOIN timeline_days ON timeline_days.id = timeline_events.timeline_day_id").
			Where("timeline_events.id = ?", valueKey).
			Take(&owner).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Not found", nil)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if owner.EventId != eventId {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_EVENT_MEMBER, errors.New("row belongs to another event"))
		}

		c.Locals("inputId", uint(valueKey))
		return c.Next()
	}
}

func CreateTimelineDay() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTimelineDayInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputCreateTimelineDay", input)
		return c.Next()
	}
}

func EditTimelineDay() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditTimelineDayInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputEditTimelineDay", input)
		return c.Next()
	}
}

func CreateTimelineEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTimelineEventInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputCreateTimelineEvent", input)
		return c.Next()
	}
}

func EditTimelineEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditTimelineEventInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputEditTimelineEvent", input)
		return c.Next()
	}
}
