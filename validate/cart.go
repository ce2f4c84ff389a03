package validate

import (
	"github.com/eagledigitalhouse/eventpro-sub001/model"

	"github.com/gofiber/fiber/v2"
)

func CreateCart() fiber.Handler {
	return body[model.CreateCartInput]()
}
