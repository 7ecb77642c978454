package validate

import (
	"wedding_planner/model"

	"github.com/gofiber/fiber/v2"
)

// GuestInEvent confirms the :guestId param references a guest of the event
// on the context.
func GuestInEvent(key string) fiber.Handler {
	return eventChild(key, &model.Guest{})
}

func CreateGuest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateGuestInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputCreateGuest", input)
		return c.Next()
	}
}

func EditGuest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditGuestInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputEditGuest", input)
		return c.Next()
	}
}

func FilterGuests() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FilterGuest
		if err := c.BodyParser(&input); err != nil {
			// Filters are optional; an empty body means no filter.
			input = model.FilterGuest{}
		}

		c.Locals("inputFilterGuest", input)
		return c.Next()
	}
}

func SubmitRsvp() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RsvpSubmitInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputRsvp", input)
		return c.Next()
	}
}
