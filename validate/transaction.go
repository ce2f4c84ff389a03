package validate

import (
	"github.com/eagledigitalhouse/eventpro-sub001/model"

	"github.com/gofiber/fiber/v2"
)

func CreateTransaction() fiber.Handler {
	return body[model.CreateTransactionInput]()
}

func EditTransaction() fiber.Handler {
	return body[model.EditTransactionInput]()
}
