package validate

import (
	"wedding_planner/model"

	"github.com/gofiber/fiber/v2"
)

// ChecklistItemInEvent confirms the :itemId param references a checklist
// item of the event on the context.
func ChecklistItemInEvent(key string) fiber.Handler {
	return eventChild(key, &model.ChecklistItem{})
}

func CreateChecklistItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateChecklistItemInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputCreateChecklistItem", input)
		return c.Next()
	}
}

func EditChecklistItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditChecklistItemInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputEditChecklistItem", input)
		return c.Next()
	}
}
