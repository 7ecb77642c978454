package validate

import (
	"wedding_planner/model"

	"github.com/gofiber/fiber/v2"
)

// AccommodationInEvent confirms the :accommodationId param references an
// accommodation of the event on the context.
func AccommodationInEvent(key string) fiber.Handler {
	return eventChild(key, &model.Accommodation{})
}

func CreateAccommodation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAccommodationInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputCreateAccommodation", input)
		return c.Next()
	}
}

func EditAccommodation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditAccommodationInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputEditAccommodation", input)
		return c.Next()
	}
}

func CreateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		if input.Capacity == 0 {
			input.Capacity = 2
		}

		c.Locals("inputCreateRoom", input)
		return c.Next()
	}
}

func AllocateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AllocateRoomInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputAllocateRoom", input)
		return c.Next()
	}
}
