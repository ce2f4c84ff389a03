package handler

import (
	"errors"

	"github.com/eagledigitalhouse/eventpro-sub001/constants"
	"github.com/eagledigitalhouse/eventpro-sub001/database"
	"github.com/eagledigitalhouse/eventpro-sub001/helper"
	"github.com/eagledigitalhouse/eventpro-sub001/model"
	"github.com/eagledigitalhouse/eventpro-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

func Me(c *fiber.Ctx) error {
	claim, _, ok := helper.GetInfoAccountFromToken(c)
	if !ok {
		return nil // resposta já escrita pelo helper
	}

	var account model.Account
	if err := database.DB.First(&account, claim.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func GetAccounts(c *fiber.Ctx) error {
	_, isAdmin, ok := helper.GetInfoAccountFromToken(c)
	if !ok {
		return nil
	}
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var accounts []model.Account
	if err := database.DB.Order("created_at desc").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, accounts)
}

func CreateAccount(c *fiber.Ctx) error {
	_, isAdmin, ok := helper.GetInfoAccountFromToken(c)
	if !ok {
		return nil
	}
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("input").(model.CreateAccountInput)

	existing, err := helper.GetUserByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Usuário já existe", errors.New("duplicate username"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	role := input.Role
	if role == "" {
		role = constants.ROLE_ORGANIZER
	}

	account := model.Account{
		Username: input.Username,
		Password: hash,
		Name:     input.Name,
		Email:    input.Email,
		Role:     role,
		Active:   true,
	}

	if err := database.DB.Create(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, account)
}

func ActiveAccount(c *fiber.Ctx) error {
	_, isAdmin, ok := helper.GetInfoAccountFromToken(c)
	if !ok {
		return nil
	}
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	accountId := c.Locals("inputId").(int)

	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	account.Active = !account.Active
	if err := database.DB.Save(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}
