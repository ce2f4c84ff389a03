package handler

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/eagledigitalhouse/eventpro-sub001/constants"
	"github.com/eagledigitalhouse/eventpro-sub001/database"
	"github.com/eagledigitalhouse/eventpro-sub001/model"
	"github.com/eagledigitalhouse/eventpro-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Carrinho é efêmero e mora no Redis com TTL; expirou, sumiu.
const cartTTL = 30 * time.Minute

func cartKey(id string) string {
	return "cart:" + id
}

func loadCart(ctx context.Context, cartId string) (*model.Cart, error) {
	raw, err := utils.GetRedisClient().Get(ctx, cartKey(cartId)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var cart model.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func saveCart(ctx context.Context, cart *model.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return utils.GetRedisClient().Set(ctx, cartKey(cart.ID), raw, cartTTL).Err()
}

func dropCart(ctx context.Context, cartId string) {
	utils.GetRedisClient().Del(ctx, cartKey(cartId))
}

func CreateCart(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateCartInput)
	db := database.DB

	var event model.Event
	if err := db.First(&event, input.EventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}
	if event.Status != model.EventPublished {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EVENT_NOT_PUBLISHED, errors.New("event status "+event.Status))
	}

	cart := model.Cart{
		ID:        "CART-" + uuid.New().String()[:8],
		EventId:   event.ID,
		CreatedAt: time.Now(),
	}

	// linhas repetidas do mesmo tipo são somadas antes de validar o estoque
	items := make([]model.CartItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, model.CartItem{
			TicketTypeId: item.TicketTypeId,
			Quantity:     item.Quantity,
		})
	}
	items = model.MergeItems(items)

	// captura nome e preço do momento da montagem
	for i := range items {
		var ticketType model.TicketType
		if err := db.Where("id = ? AND event_id = ?", items[i].TicketTypeId, event.ID).First(&ticketType).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
		}
		if !ticketType.IsActive {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.TICKET_TYPE_INACTIVE, errors.New(ticketType.Name))
		}
		if items[i].Quantity > ticketType.Remaining() {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.INSUFFICIENT_INVENTORY, errors.New(ticketType.Name))
		}
		items[i].Name = ticketType.Name
		items[i].UnitPrice = ticketType.Price
	}
	cart.Items = items

	if err := saveCart(c.Context(), &cart); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"cart":     cart,
		"subtotal": cart.Subtotal(),
	})
}

func GetCart(c *fiber.Ctx) error {
	cartId := c.Params("cartId")

	cart, err := loadCart(c.Context(), cartId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if cart == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CART_NOT_FOUND, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"cart":     cart,
		"subtotal": cart.Subtotal(),
	})
}

func DeleteCart(c *fiber.Ctx) error {
	cartId := c.Params("cartId")
	dropCart(c.Context(), cartId)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
