package handler

import (
	"errors"

	"github.com/eagledigitalhouse/eventpro-sub001/constants"
	"github.com/eagledigitalhouse/eventpro-sub001/database"
	"github.com/eagledigitalhouse/eventpro-sub001/model"
	"github.com/eagledigitalhouse/eventpro-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetEvents(c *fiber.Ctx) error {
	db := database.DB

	var input model.FilterEventInput
	input.Status = c.Query("status")
	input.Search = c.Query("search")
	if limit := c.QueryInt("limit", 0); limit > 0 {
		input.Limit = utils.Ptr(limit)
	}
	if page := c.QueryInt("page", 0); page > 0 {
		input.Page = utils.Ptr(page)
	}

	query := db.Model(&model.Event{}).Preload("TicketTypes")
	if input.Status != "" {
		query = query.Where("status = ?", input.Status)
	}
	if input.Search != "" {
		query = query.Where("name ILIKE ?", "%"+input.Search+"%")
	}

	var totalCount int64
	query.Count(&totalCount)

	var events model.Events
	if err := utils.ApplyPagination(query, input.Limit, input.Page).
		Order("start_time desc").
		Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       events,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	})
}

func GetEventById(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)

	var event model.Event
	if err := database.DB.Preload("TicketTypes").First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func CreateEvent(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateEventInput)
	db := database.DB

	eventSlug := slug.Make(input.Name)
	var existing model.Event
	if err := db.Where("slug = ?", eventSlug).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EVENT_ALREADY_EXISTS, errors.New("duplicate slug"))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	event := model.Event{
		Name:        input.Name,
		Slug:        eventSlug,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Location:    input.Location,
		BannerUrl:   input.BannerUrl,
		Status:      model.EventDraft,
	}

	if err := db.Create(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, event)
}

func EditEvent(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditEventInput)
	db := database.DB

	var event model.Event
	if err := db.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	if err := copier.CopyWithOption(&event, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.Name != "" {
		event.Slug = slug.Make(input.Name)
	}

	if err := db.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

// transições de status do evento; eventos nunca são excluídos fisicamente

func PublishEvent(c *fiber.Ctx) error {
	return changeEventStatus(c, model.EventPublished, []string{model.EventDraft})
}

func CancelEvent(c *fiber.Ctx) error {
	return changeEventStatus(c, model.EventCancelled, []string{model.EventDraft, model.EventPublished})
}

func CompleteEvent(c *fiber.Ctx) error {
	return changeEventStatus(c, model.EventCompleted, []string{model.EventPublished})
}

func changeEventStatus(c *fiber.Ctx, target string, allowedFrom []string) error {
	eventId := c.Locals("inputId").(int)
	db := database.DB

	var event model.Event
	if err := db.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	allowed := false
	for _, s := range allowedFrom {
		if event.Status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Transição de status não permitida", errors.New("from "+event.Status+" to "+target))
	}

	event.Status = target
	if err := db.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}
