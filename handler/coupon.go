package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/eagledigitalhouse/eventpro-sub001/constants"
	"github.com/eagledigitalhouse/eventpro-sub001/database"
	"github.com/eagledigitalhouse/eventpro-sub001/model"
	"github.com/eagledigitalhouse/eventpro-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetCoupons(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)

	var coupons model.Coupons
	if err := database.DB.Where("event_id = ?", eventId).Order("created_at desc").Find(&coupons).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, coupons)
}

func CreateCoupon(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.CreateCouponInput)
	db := database.DB

	var event model.Event
	if err := db.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	// código é normalizado para maiúsculas na criação
	code := strings.ToUpper(strings.TrimSpace(input.Code))

	var existing model.Coupon
	if err := db.Where("code = ?", code).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.COUPON_ALREADY_EXISTS, errors.New("duplicate code"))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	coupon := model.Coupon{
		Code:       code,
		Type:       input.Type,
		Value:      input.Value,
		MaxUses:    input.MaxUses,
		ValidFrom:  input.ValidFrom,
		ValidUntil: input.ValidUntil,
		IsActive:   true,
		EventId:    event.ID,
	}

	if err := db.Create(&coupon).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, coupon)
}

func EditCoupon(c *fiber.Ctx) error {
	couponId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditCouponInput)
	db := database.DB

	var coupon model.Coupon
	if err := db.First(&coupon, couponId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COUPON_NOT_FOUND, err)
	}

	if input.Value != nil {
		coupon.Value = *input.Value
	}
	if input.MaxUses != nil {
		coupon.MaxUses = *input.MaxUses
	}
	if input.ValidFrom != nil {
		coupon.ValidFrom = *input.ValidFrom
	}
	if input.ValidUntil != nil {
		coupon.ValidUntil = *input.ValidUntil
	}
	if input.IsActive != nil {
		coupon.IsActive = *input.IsActive
	}

	if err := db.Save(&coupon).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, coupon)
}

// ApplyCoupon valida o cupom contra o carrinho e devolve o desconto em modo
// preview. Leitura pura: o usedCount só é incrementado dentro da transação do
// checkout, então validar sem comprar não consome uso.
func ApplyCoupon(c *fiber.Ctx) error {
	cartId := c.Params("cartId")
	input := c.Locals("input").(model.ApplyCouponInput)
	db := database.DB

	cart, err := loadCart(c.Context(), cartId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if cart == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CART_NOT_FOUND, nil)
	}

	var coupon model.Coupon
	if err := db.Where("code = ?", input.Code).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COUPON_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := coupon.Validate(cart.EventId, time.Now()); err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, couponErrorMessage(err), err)
	}

	subtotal := cart.Subtotal()
	discount := coupon.Discount(subtotal)

	// guarda o código no carrinho; o checkout revalida e consome
	cart.CouponCode = coupon.Code
	if err := saveCart(c.Context(), cart); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"code":     coupon.Code,
		"type":     coupon.Type,
		"value":    coupon.Value,
		"subtotal": subtotal,
		"discount": discount,
		"total":    subtotal - discount,
	})
}

func RemoveCoupon(c *fiber.Ctx) error {
	cartId := c.Params("cartId")

	cart, err := loadCart(c.Context(), cartId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if cart == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CART_NOT_FOUND, nil)
	}

	cart.CouponCode = ""
	if err := saveCart(c.Context(), cart); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"removed": true})
}

func couponErrorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrCouponWrongEvent):
		return constants.COUPON_WRONG_EVENT
	case errors.Is(err, model.ErrCouponInactive):
		return constants.COUPON_INACTIVE
	case errors.Is(err, model.ErrCouponOutOfWindow):
		return constants.COUPON_OUT_OF_WINDOW
	case errors.Is(err, model.ErrCouponExhausted):
		return constants.COUPON_EXHAUSTED
	default:
		return constants.COUPON_NOT_FOUND
	}
}
