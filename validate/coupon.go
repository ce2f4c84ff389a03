package validate

import (
	"github.com/eagledigitalhouse/eventpro-sub001/model"

	"github.com/gofiber/fiber/v2"
)

func CreateCoupon() fiber.Handler {
	return body[model.CreateCouponInput]()
}

func EditCoupon() fiber.Handler {
	return body[model.EditCouponInput]()
}

func ApplyCoupon() fiber.Handler {
	return body[model.ApplyCouponInput]()
}
