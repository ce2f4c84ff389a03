package validate

import (
	"github.com/eagledigitalhouse/eventpro-sub001/model"

	"github.com/gofiber/fiber/v2"
)

func CreateTicketType() fiber.Handler {
	return body[model.CreateTicketTypeInput]()
}

func EditTicketType() fiber.Handler {
	return body[model.EditTicketTypeInput]()
}
