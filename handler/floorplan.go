package handler

import (
	"errors"

	"wedding_planner/constants"
	"wedding_planner/database"
	"wedding_planner/helper"
	"wedding_planner/model"
	"wedding_planner/utils"

	"github.com/gofiber/fiber/v2"
)

func GetFloorPlans(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var plans []model.FloorPlan
	if err := database.DB.Where("event_id = ?", eventId).Order("id ASC").Find(&plans).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch floor plans", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, plans)
}

func GetFloorPlanById(c *fiber.Ctx) error {
	plan, ok := c.Locals("floorPlan").(model.FloorPlan)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	if err := db.
		Preload("Tables").
		Preload("Seats").
		Preload("Seats.Guest").
		First(&plan, plan.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load floor plan", err)
	}

	if err := helper.FillOccupancy(db, plan.Tables); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute occupancy", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, plan)
}

func CreateFloorPlan(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputCreateFloorPlan").(model.CreateFloorPlanInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	newPlan := model.FloorPlan{
		EventId: eventId,
		Name:    input.Name,
		Mode:    input.Mode,
	}

	if err := database.DB.Create(&newPlan).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create floor plan", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newPlan)
}

func EditFloorPlan(c *fiber.Ctx) error {
	plan, ok := c.Locals("floorPlan").(model.FloorPlan)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputEditFloorPlan").(model.EditFloorPlanInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if input.Name != nil {
		plan.Name = *input.Name
	}

	if err := database.DB.Save(&plan).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, plan)
}

func DeleteFloorPlan(c *fiber.Ctx) error {
	plan, ok := c.Locals("floorPlan").(model.FloorPlan)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	tx := database.DB.Begin()

	if err := tx.Where("floor_plan_id = ?", plan.ID).Delete(&model.Seat{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete seats", err)
	}
	if err := tx.Where("floor_plan_id = ?", plan.ID).Delete(&model.Table{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete tables", err)
	}
	if err := tx.Delete(&model.FloorPlan{}, plan.ID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete floor plan", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":     "Floor plan deleted",
		"floorPlanId": plan.ID,
		"deleted":     true,
	})
}
