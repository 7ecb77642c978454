package validate

import (
	"wedding_planner/model"

	"github.com/gofiber/fiber/v2"
)

// VendorInEvent confirms the :vendorId param references a vendor of the
// event on the context.
func VendorInEvent(key string) fiber.Handler {
	return eventChild(key, &model.Vendor{})
}

func CreateVendor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateVendorInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputCreateVendor", input)
		return c.Next()
	}
}

func EditVendor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditVendorInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputEditVendor", input)
		return c.Next()
	}
}

// BudgetItemInEvent confirms the :itemId param references a budget item of
// the event on the context.
func BudgetItemInEvent(key string) fiber.Handler {
	return eventChild(key, &model.BudgetItem{})
}

func CreateBudgetItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBudgetItemInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputCreateBudgetItem", input)
		return c.Next()
	}
}

func EditBudgetItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditBudgetItemInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputEditBudgetItem", input)
		return c.Next()
	}
}
