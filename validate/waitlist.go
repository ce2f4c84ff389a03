package validate

import (
	"github.com/eagledigitalhouse/eventpro-sub001/model"

	"github.com/gofiber/fiber/v2"
)

func CreateWaitlist() fiber.Handler {
	return body[model.CreateWaitlistInput]()
}

func NotifyWaitlist() fiber.Handler {
	return body[model.NotifyWaitlistInput]()
}
