package validate

import (
	"github.com/eagledigitalhouse/eventpro-sub001/model"

	"github.com/gofiber/fiber/v2"
)

func CheckIn() fiber.Handler {
	return body[model.CheckInInput]()
}

func CreateManualAttendee() fiber.Handler {
	return body[model.CreateManualAttendeeInput]()
}
