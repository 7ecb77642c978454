package handler

import (
	"errors"

	"wedding_planner/constants"
	"wedding_planner/database"
	"wedding_planner/model"
	"wedding_planner/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetBudgetItems(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var items []model.BudgetItem
	if err := database.DB.
		Where("event_id = ?", eventId).
		Order("category ASC, name ASC").
		Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

// GetBudgetTotals aggregates estimated vs actual spend and the paid split.
func GetBudgetTotals(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	totals, err := BudgetTotalsForEvent(database.DB, eventId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, totals)
}

// BudgetTotalsForEvent is shared with the couple portal summary.
func BudgetTotalsForEvent(db *gorm.DB, eventId uint) (model.BudgetTotals, error) {
	var totals model.BudgetTotals
	err := db.Model(&model.BudgetItem{}).
		Select(`COALESCE(SUM(estimated), 0) AS estimated,
			COALESCE(SUM(actual), 0) AS actual,
			COALESCE(SUM(CASE WHEN paid THEN actual ELSE 0 END), 0) AS paid,
			COALESCE(SUM(CASE WHEN paid THEN 0 ELSE actual END), 0) AS unpaid`).
		Where("event_id = ?", eventId).
		Scan(&totals).Error
	return totals, err
}

func CreateBudgetItem(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputCreateBudgetItem").(model.CreateBudgetItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var item model.BudgetItem
	if err := copier.Copy(&item, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	item.EventId = eventId

	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create budget item", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func EditBudgetItem(c *fiber.Ctx) error {
	itemId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputEditBudgetItem").(model.EditBudgetItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var item model.BudgetItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Budget item not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Estimated != nil {
		item.Estimated = *input.Estimated
	}
	if input.Actual != nil {
		item.Actual = *input.Actual
	}
	if input.Paid != nil {
		item.Paid = *input.Paid
	}

	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteBudgetItem(c *fiber.Ctx) error {
	itemId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	result := database.DB.Delete(&model.BudgetItem{}, itemId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Budget item not found", errors.New("BUDGET ITEM NOT FOUND"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"itemId":  itemId,
		"deleted": true,
	})
}
