package validate

import (
	"errors"

	"wedding_planner/constants"
	"wedding_planner/database"
	"wedding_planner/model"
	"wedding_planner/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateFloorPlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFloorPlanInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputCreateFloorPlan", input)
		return c.Next()
	}
}

func EditFloorPlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditFloorPlanInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputEditFloorPlan", input)
		return c.Next()
	}
}

// FloorPlanAccess resolves :floorPlanId, confirms the plan exists and stashes
// the plan plus its event id.
func FloorPlanAccess(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		planId, err := c.ParamsInt(key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var plan model.FloorPlan
		if err := database.DB.First(&plan, planId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Floor plan not found", nil)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("floorPlan", plan)
		c.Locals("floorPlanId", plan.ID)
		return c.Next()
	}
}

func CreateTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTableInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		plan, ok := c.Locals("floorPlan").(model.FloorPlan)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
		}
		if plan.Mode != model.ModeReception {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Tables can only be added to reception floor plans", nil, "mode")
		}

		c.Locals("inputCreateTable", input)
		return c.Next()
	}
}

func EditTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditTableInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputEditTable", input)
		return c.Next()
	}
}

func Move() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.MoveInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputMove", input)
		return c.Next()
	}
}

func AssignTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AssignTableInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputAssignTable", input)
		return c.Next()
	}
}

func AssignSeat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AssignSeatInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputAssignSeat", input)
		return c.Next()
	}
}

func CreateSeat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateSeatInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		plan, ok := c.Locals("floorPlan").(model.FloorPlan)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
		}
		if plan.Mode != model.ModeCeremony {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Standalone seats can only be added to ceremony floor plans", nil, "mode")
		}

		c.Locals("inputCreateSeat", input)
		return c.Next()
	}
}
