package handler

import (
	"errors"
	"log"
	"time"

	"github.com/eagledigitalhouse/eventpro-sub001/constants"
	"github.com/eagledigitalhouse/eventpro-sub001/database"
	"github.com/eagledigitalhouse/eventpro-sub001/model"
	"github.com/eagledigitalhouse/eventpro-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// JoinWaitlist entra na fila de um tipo de ingresso esgotado
func JoinWaitlist(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.CreateWaitlistInput)
	db := database.DB

	var ticketType model.TicketType
	if err := db.Where("id = ? AND event_id = ?", input.TicketTypeId, eventId).First(&ticketType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
	}

	if !ticketType.SoldOut() {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.WAITLIST_NOT_SOLD_OUT, errors.New(ticketType.Name))
	}

	var existing model.WaitlistEntry
	if err := db.Where("event_id = ? AND ticket_type_id = ? AND email = ?", eventId, input.TicketTypeId, input.Email).
		First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.WAITLIST_DUPLICATE, errors.New(input.Email))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	entry := model.WaitlistEntry{
		EventId:      uint(eventId),
		TicketTypeId: input.TicketTypeId,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
	}

	if err := db.Create(&entry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, entry)
}

func GetWaitlist(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)
	db := database.DB

	query := db.Where("event_id = ?", eventId)
	if ticketTypeId := c.QueryInt("ticketTypeId", 0); ticketTypeId > 0 {
		query = query.Where("ticket_type_id = ?", ticketTypeId)
	}

	var entries model.WaitlistEntries
	if err := query.Order("created_at asc").Find(&entries).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, entries)
}

func DeleteWaitlistEntry(c *fiber.Ctx) error {
	entryId := c.Locals("inputId").(int)

	if err := database.DB.Delete(&model.WaitlistEntry{}, entryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}

// DeleteWaitlistEntries remoção em lote (limpeza após o evento)
func DeleteWaitlistEntries(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	result := database.DB.Delete(&model.WaitlistEntry{}, input.IDs)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}

// NotifyWaitlist marca os pendentes como avisados e dispara os e-mails.
// Não revalida estoque: quem chama já repôs os ingressos.
func NotifyWaitlist(c *fiber.Ctx) error {
	input := c.Locals("input").(model.NotifyWaitlistInput)
	db := database.DB

	var event model.Event
	if err := db.First(&event, input.EventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	var ticketType model.TicketType
	if err := db.Where("id = ? AND event_id = ?", input.TicketTypeId, input.EventId).First(&ticketType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
	}

	var entries []model.WaitlistEntry
	if err := db.Where("event_id = ? AND ticket_type_id = ? AND notified = ?", input.EventId, input.TicketTypeId, false).
		Find(&entries).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// marcação atômica; o retorno reporta as linhas realmente afetadas
	now := time.Now()
	result := db.Model(&model.WaitlistEntry{}).
		Where("event_id = ? AND ticket_type_id = ? AND notified = ?", input.EventId, input.TicketTypeId, false).
		Updates(map[string]interface{}{"notified": true, "notified_at": now})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}

	// e-mails em background; falha de envio não desfaz a marcação
	go func(entries []model.WaitlistEntry, eventName, ticketName string) {
		for _, entry := range entries {
			if err := utils.SendWaitlistEmail(entry.Email, eventName, ticketName); err != nil {
				log.Printf("Erro ao enviar aviso de lista de espera para %s: %v", entry.Email, err)
			}
		}
	}(entries, event.Name, ticketType.Name)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"notified": result.RowsAffected})
}
