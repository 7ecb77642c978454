package handler

import (
	"errors"

	"wedding_planner/constants"
	"wedding_planner/database"
	"wedding_planner/helper"
	"wedding_planner/model"
	"wedding_planner/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetAccounts(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var filter model.FilterAccount
	if err := c.BodyParser(&filter); err != nil {
		filter = model.FilterAccount{}
	}

	db := database.DB
	query := db.Model(&model.Account{})
	if filter.SearchKey != "" {
		query = query.Where("username ILIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}

	var totalCount int64
	query.Count(&totalCount)

	var accounts []model.Account
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("id ASC").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch accounts", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       accounts,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func Me(c *fiber.Ctx) error {
	accountInfo, _, _ := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", nil)
	}

	var account model.Account
	if err := database.DB.First(&account, accountInfo.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func CreateAccount(c *fiber.Ctx) error {
	accountInput, ok := c.Locals("inputCreateAccount").(model.CreateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	hash, err := helper.HashPassword(accountInput.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var newAccount model.Account
	copier.Copy(&newAccount, &accountInput)
	newAccount.Password = hash
	newAccount.Active = true

	if err := database.DB.Create(&newAccount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create account", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newAccount)
}

func AdminChangePassword(c *fiber.Ctx) error {
	input, ok := c.Locals("inputChangePassword").(model.AdminChangePassword)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var account model.Account
	if err := database.DB.First(&account, input.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&account).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"accountId": account.ID})
}

func ActiveAccount(c *fiber.Ctx) error {
	accountId, ok := c.Locals("accountId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	type activeInput struct {
		Active *bool `json:"active"`
	}
	var input activeInput
	if err := c.BodyParser(&input); err != nil || input.Active == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Field active is required", err, "active")
	}

	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
	}

	if err := database.DB.Model(&account).Update("active", *input.Active).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}
