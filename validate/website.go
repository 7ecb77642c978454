package validate

import (
	"wedding_planner/model"

	"github.com/gofiber/fiber/v2"
)

func UpsertWebsite() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpsertWebsiteInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputUpsertWebsite", input)
		return c.Next()
	}
}
