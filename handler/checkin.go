package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/eagledigitalhouse/eventpro-sub001/constants"
	"github.com/eagledigitalhouse/eventpro-sub001/database"
	"github.com/eagledigitalhouse/eventpro-sub001/helper"
	"github.com/eagledigitalhouse/eventpro-sub001/model"
	"github.com/eagledigitalhouse/eventpro-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CheckInByCode transição terminal pending -> checked_in. Código desconhecido
// (ou cancelado) e código já usado retornam mensagens distintas para a UI da
// portaria orientar o operador.
func CheckInByCode(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CheckInInput)
	db := database.DB

	var attendee model.Attendee
	if err := db.Where("code = ? AND event_id = ?", input.Code, input.EventId).
		First(&attendee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CHECKIN_CODE_INVALID, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	now := time.Now()
	if err := attendee.CheckIn(now); err != nil {
		if errors.Is(err, model.ErrAlreadyCheckedIn) {
			// idempotente: reporta o horário original, sem mutação
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message":     constants.CHECKIN_ALREADY_DONE,
				"checkedInAt": attendee.CheckedInAt,
			})
		}
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CHECKIN_CODE_INVALID, err)
	}

	if err := db.Save(&attendee).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	publishCheckIn(c, attendee)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":     constants.CHECKIN_DONE,
		"code":        attendee.Code,
		"name":        attendee.Name,
		"checkedInAt": attendee.CheckedInAt,
	})
}

// publishCheckIn alimenta o painel da portaria em tempo real
func publishCheckIn(c *fiber.Ctx, attendee model.Attendee) {
	payload, err := json.Marshal(fiber.Map{
		"code":        attendee.Code,
		"name":        attendee.Name,
		"checkedInAt": attendee.CheckedInAt,
	})
	if err != nil {
		return
	}
	utils.GetRedisClient().Publish(c.Context(), fmt.Sprintf("checkin:%d", attendee.EventId), payload)
}

// CreateManualAttendee walk-in adicionado na porta: sem pedido, sem pagamento e
// sem efeito no estoque; entra na mesma máquina de estados de check-in.
func CreateManualAttendee(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.CreateManualAttendeeInput)
	db := database.DB

	var event model.Event
	if err := db.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	if input.TicketTypeId != nil {
		var ticketType model.TicketType
		if err := db.Where("id = ? AND event_id = ?", *input.TicketTypeId, event.ID).First(&ticketType).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
		}
	}

	attendee := model.Attendee{
		Code:         helper.NewTicketCode(),
		Name:         input.Name,
		Email:        input.Email,
		Origin:       model.OriginManual,
		Status:       model.AttendeeActive,
		EventId:      event.ID,
		TicketTypeId: input.TicketTypeId,
	}

	if err := db.Create(&attendee).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, attendee)
}

func GetAttendees(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)
	db := database.DB

	var input model.FilterAttendeeInput
	input.Search = c.Query("search")
	if checkedIn := c.Query("checkedIn"); checkedIn != "" {
		input.CheckedIn = utils.Ptr(checkedIn == "true")
	}
	if l := c.QueryInt("limit", 0); l > 0 {
		input.Limit = utils.Ptr(l)
	}
	if p := c.QueryInt("page", 0); p > 0 {
		input.Page = utils.Ptr(p)
	}

	query := db.Model(&model.Attendee{}).Where("event_id = ?", eventId)
	if input.Search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ? OR code ILIKE ?", "%"+input.Search+"%", "%"+input.Search+"%", "%"+input.Search+"%")
	}
	if input.CheckedIn != nil {
		query = query.Where("checked_in = ?", *input.CheckedIn)
	}

	var totalCount int64
	query.Count(&totalCount)

	var attendees model.Attendees
	if err := utils.ApplyPagination(query, input.Limit, input.Page).
		Order("created_at desc").
		Find(&attendees).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       attendees,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	})
}

// GetAttendeeQR devolve o PNG do QR do código de check-in
func GetAttendeeQR(c *fiber.Ctx) error {
	code := c.Params("code")

	var attendee model.Attendee
	if err := database.DB.Where("code = ?", code).First(&attendee).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ATTENDEE_NOT_FOUND, err)
	}

	qrBytes, err := utils.GenerateQRCode(attendee.Code, 400)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(qrBytes)
}
