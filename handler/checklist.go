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

func GetChecklist(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var items []model.ChecklistItem
	if err := database.DB.
		Where("event_id = ?", eventId).
		Order("due_date ASC NULLS LAST, id ASC").
		Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func CreateChecklistItem(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputCreateChecklistItem").(model.CreateChecklistItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var item model.ChecklistItem
	if err := copier.Copy(&item, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	item.EventId = eventId

	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create checklist item", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func EditChecklistItem(c *fiber.Ctx) error {
	itemId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputEditChecklistItem").(model.EditChecklistItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var item model.ChecklistItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Checklist item not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.DueDate != nil {
		item.DueDate = input.DueDate
		// A changed due date invalidates the hourly overdue sweep result.
		item.Overdue = false
	}
	if input.Done != nil {
		item.Done = *input.Done
		if item.Done {
			item.Overdue = false
		}
	}
	if input.Notes != nil {
		item.Notes = *input.Notes
	}

	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteChecklistItem(c *fiber.Ctx) error {
	itemId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	result := database.DB.Delete(&model.ChecklistItem{}, itemId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Checklist item not found", errors.New("CHECKLIST ITEM NOT FOUND"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"itemId":  itemId,
		"deleted": true,
	})
}
