package handler

import (
	"errors"

	"github.com/eagledigitalhouse/eventpro-sub001/constants"
	"github.com/eagledigitalhouse/eventpro-sub001/database"
	"github.com/eagledigitalhouse/eventpro-sub001/model"
	"github.com/eagledigitalhouse/eventpro-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// GetTicketTypes lista os tipos do evento. Visitante anônimo vê apenas os
// tipos PUBLICA ativos; equipe autenticada vê tudo, inclusive OCULTA.
func GetTicketTypes(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)

	query := database.DB.Where("event_id = ?", eventId)
	if c.Locals("user") == nil {
		query = query.Where("visibility = ? AND is_active = ?", model.TicketTypePublic, true)
	}

	var ticketTypes model.TicketTypes
	if err := query.Order("price asc").Find(&ticketTypes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticketTypes)
}

func CreateTicketType(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.CreateTicketTypeInput)
	db := database.DB

	var event model.Event
	if err := db.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = model.TicketTypePublic
	}

	ticketType := model.TicketType{
		Name:          input.Name,
		Price:         input.Price,
		QuantityTotal: input.QuantityTotal,
		Visibility:    visibility,
		IsActive:      true,
		EventId:       event.ID,
	}

	if err := db.Create(&ticketType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, ticketType)
}

func EditTicketType(c *fiber.Ctx) error {
	ticketTypeId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditTicketTypeInput)
	db := database.DB

	var ticketType model.TicketType
	if err := db.First(&ticketType, ticketTypeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
	}

	if input.Name != "" {
		ticketType.Name = input.Name
	}
	if input.Price != nil {
		ticketType.Price = *input.Price
	}
	if input.QuantityTotal != nil {
		// nunca abaixo do já vendido: quantitySold <= quantityTotal sempre
		if *input.QuantityTotal < ticketType.QuantitySold {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.QUANTITY_BELOW_SOLD, errors.New("quantityTotal below quantitySold"))
		}
		ticketType.QuantityTotal = *input.QuantityTotal
	}
	if input.IsActive != nil {
		ticketType.IsActive = *input.IsActive
	}
	if input.Visibility != "" {
		ticketType.Visibility = input.Visibility
	}

	if err := db.Save(&ticketType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticketType)
}
