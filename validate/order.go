package validate

import (
	"github.com/eagledigitalhouse/eventpro-sub001/model"

	"github.com/gofiber/fiber/v2"
)

func Checkout() fiber.Handler {
	return body[model.CheckoutInput]()
}
