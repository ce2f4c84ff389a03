package handler

import (
	"errors"

	"github.com/eagledigitalhouse/eventpro-sub001/constants"
	"github.com/eagledigitalhouse/eventpro-sub001/database"
	"github.com/eagledigitalhouse/eventpro-sub001/model"
	"github.com/eagledigitalhouse/eventpro-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

func GetTransactions(c *fiber.Ctx) error {
	db := database.DB

	query := db.Model(&model.FinancialTransaction{})
	if eventId := c.QueryInt("eventId", 0); eventId > 0 {
		query = query.Where("event_id = ?", eventId)
	}
	if txType := c.Query("type"); txType != "" {
		query = query.Where("type = ?", txType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var transactions model.FinancialTransactions
	if err := query.Order("date desc").Find(&transactions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, transactions)
}

// CreateTransaction lançamento manual (os automáticos nascem do checkout)
func CreateTransaction(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTransactionInput)
	db := database.DB

	var event model.Event
	if err := db.First(&event, input.EventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	transaction := model.FinancialTransaction{
		EventId:     event.ID,
		Type:        input.Type,
		Status:      input.Status,
		Description: input.Description,
		Amount:      input.Amount,
		Date:        input.Date,
		IsAutomatic: false,
	}

	if err := db.Create(&transaction).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, transaction)
}

func EditTransaction(c *fiber.Ctx) error {
	transactionId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditTransactionInput)
	db := database.DB

	var transaction model.FinancialTransaction
	if err := db.First(&transaction, transactionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	// lançamentos automáticos são imutáveis: nascem e morrem com o pedido
	if transaction.IsAutomatic {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Lançamento automático não pode ser editado", errors.New("automatic transaction"))
	}

	if input.Status != "" {
		transaction.Status = input.Status
	}
	if input.Description != "" {
		transaction.Description = input.Description
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}

	if err := db.Save(&transaction).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, transaction)
}

func DeleteTransaction(c *fiber.Ctx) error {
	transactionId := c.Locals("inputId").(int)
	db := database.DB

	var transaction model.FinancialTransaction
	if err := db.First(&transaction, transactionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	if transaction.IsAutomatic {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Lançamento automático não pode ser excluído", errors.New("automatic transaction"))
	}

	if err := db.Delete(&transaction).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}

// GetFinancialSummary resumo por evento: dobra pura sobre os lançamentos
func GetFinancialSummary(c *fiber.Ctx) error {
	eventId := c.QueryInt("eventId", 0)
	db := database.DB

	query := db.Model(&model.FinancialTransaction{})
	if eventId > 0 {
		query = query.Where("event_id = ?", eventId)
	}

	var transactions []model.FinancialTransaction
	if err := query.Find(&transactions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.Summarize(transactions))
}
