package validate

import (
	"wedding_planner/model"

	"github.com/gofiber/fiber/v2"
)

// MenuItemInEvent confirms the :itemId param references a menu item of the
// event on the context.
func MenuItemInEvent(key string) fiber.Handler {
	return eventChild(key, &model.MenuItem{})
}

// DrinkInEvent confirms the :drinkId param references a drink of the event
// on the context.
func DrinkInEvent(key string) fiber.Handler {
	return eventChild(key, &model.Drink{})
}

func CreateMenuItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMenuItemInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputCreateMenuItem", input)
		return c.Next()
	}
}

func EditMenuItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditMenuItemInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputEditMenuItem", input)
		return c.Next()
	}
}

func CreateDrink() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateDrinkInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputCreateDrink", input)
		return c.Next()
	}
}

func EditDrink() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditDrinkInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputEditDrink", input)
		return c.Next()
	}
}
