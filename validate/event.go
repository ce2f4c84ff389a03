package validate

import (
	"github.com/eagledigitalhouse/eventpro-sub001/model"

	"github.com/gofiber/fiber/v2"
)

func CreateEvent() fiber.Handler {
	return body[model.CreateEventInput]()
}

func EditEvent() fiber.Handler {
	return body[model.EditEventInput]()
}
