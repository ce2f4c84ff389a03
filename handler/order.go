package handler

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/eagledigitalhouse/eventpro-sub001/constants"
	"github.com/eagledigitalhouse/eventpro-sub001/database"
	"github.com/eagledigitalhouse/eventpro-sub001/helper"
	"github.com/eagledigitalhouse/eventpro-sub001/model"
	"github.com/eagledigitalhouse/eventpro-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// Checkout fecha o carrinho em um pedido. Tudo ou nada: validações e mutações
// (estoque, participantes, consumo de cupom, lançamento financeiro) acontecem
// numa única transação; qualquer falha desfaz o conjunto inteiro.
func Checkout(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CheckoutInput)

	cart, err := loadCart(c.Context(), input.CartId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if cart == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CART_NOT_FOUND, nil)
	}
	if len(cart.Items) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CART_EMPTY, nil)
	}

	// linhas repetidas do mesmo tipo contam como uma só contra o estoque
	items := model.MergeItems(cart.Items)

	db := database.DB
	tx := db.Begin()

	var event model.Event
	if err := tx.First(&event, cart.EventId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}
	if event.Status != model.EventPublished {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EVENT_NOT_PUBLISHED, errors.New("event status "+event.Status))
	}

	// trava as linhas de estoque antes de validar quantidades
	lockedTypes := make(map[uint]*model.TicketType, len(items))
	for _, item := range items {
		var ticketType model.TicketType
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND event_id = ?", item.TicketTypeId, event.ID).
			First(&ticketType).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
		}
		lockedTypes[item.TicketTypeId] = &ticketType
	}

	if err := helper.ValidateInventory(items, lockedTypes); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, inventoryErrorMessage(err), err)
	}

	// cupom: revalida sob lock e consome o uso dentro da mesma transação
	var coupon *model.Coupon
	if cart.CouponCode != "" {
		var cp model.Coupon
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("code = ?", cart.CouponCode).First(&cp).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COUPON_NOT_FOUND, err)
		}
		if err := cp.Consume(cart.EventId, time.Now()); err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusConflict, couponErrorMessage(err), err)
		}
		if err := tx.Save(&cp).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		coupon = &cp
	}

	totals := helper.ComputeTotals(items, coupon)
	now := time.Now()

	order := model.Order{
		PublicCode:    helper.NewOrderCode(),
		EventId:       event.ID,
		BuyerName:     input.BuyerName,
		BuyerEmail:    input.BuyerEmail,
		BuyerPhone:    input.BuyerPhone,
		Subtotal:      totals.Subtotal,
		Discount:      totals.Discount,
		Total:         totals.Total,
		PaymentStatus: model.OrderPaid,
		PaidAt:        &now,
	}
	if coupon != nil {
		order.CouponId = &coupon.ID
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// itens, participantes (um por unidade) e baixa de estoque
	var attendees []model.Attendee
	for _, item := range items {
		ticketType := lockedTypes[item.TicketTypeId]

		orderItem := model.OrderItem{
			OrderId:      order.ID,
			TicketTypeId: ticketType.ID,
			TicketName:   ticketType.Name,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		ticketType.QuantitySold += item.Quantity
		if err := tx.Save(ticketType).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		batch := helper.BuildAttendees(order, orderItem)
		for i := range batch {
			if err := tx.Create(&batch[i]).Error; err != nil {
				tx.Rollback()
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}
		attendees = append(attendees, batch...)
	}

	transaction := helper.BuildSaleTransaction(order, now)
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// carrinho consumido
	dropCart(c.Context(), cart.ID)

	sendOrderConfirmation(event, order, attendees)

	order.Attendees = attendees
	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

func inventoryErrorMessage(err error) string {
	switch {
	case errors.Is(err, helper.ErrTicketTypeInactive):
		return constants.TICKET_TYPE_INACTIVE
	case errors.Is(err, helper.ErrInsufficientInventory):
		return constants.INSUFFICIENT_INVENTORY
	default:
		return constants.TICKET_TYPE_NOT_FOUND
	}
}

func sendOrderConfirmation(event model.Event, order model.Order, attendees []model.Attendee) {
	qrAttachments := make(map[string][]byte, len(attendees))
	for _, attendee := range attendees {
		qrBytes, err := utils.GenerateQRCode(attendee.Code, 256)
		if err != nil {
			log.Printf("Erro ao gerar QR do ingresso %s: %v", attendee.Code, err)
			continue
		}
		qrAttachments[fmt.Sprintf("Ingresso_%s.png", attendee.Code)] = qrBytes
	}

	utils.SendOrderConfirmationEmail(order.BuyerEmail, utils.OrderEmailData{
		OrderCode:   order.PublicCode,
		EventName:   event.Name,
		EventDate:   event.StartTime.Format("02/01/2006 15:04"),
		Location:    event.Location,
		BuyerName:   order.BuyerName,
		Tickets:     fmt.Sprintf("%d ingresso(s)", len(attendees)),
		Subtotal:    order.Subtotal,
		Discount:    order.Discount,
		TotalAmount: order.Total,
	}, qrAttachments)
}

func GetOrders(c *fiber.Ctx) error {
	db := database.DB

	var input model.FilterOrderInput
	input.PaymentStatus = c.Query("paymentStatus")
	input.Search = c.Query("search")
	if eventId := c.QueryInt("eventId", 0); eventId > 0 {
		input.EventId = uint(eventId)
	}
	if l := c.QueryInt("limit", 0); l > 0 {
		input.Limit = utils.Ptr(l)
	}
	if p := c.QueryInt("page", 0); p > 0 {
		input.Page = utils.Ptr(p)
	}

	query := db.Model(&model.Order{}).Preload("Items")
	if input.EventId > 0 {
		query = query.Where("event_id = ?", input.EventId)
	}
	if input.PaymentStatus != "" {
		query = query.Where("payment_status = ?", input.PaymentStatus)
	}
	if input.Search != "" {
		query = query.Where("buyer_name ILIKE ? OR buyer_email ILIKE ? OR public_code ILIKE ?", "%"+input.Search+"%", "%"+input.Search+"%", "%"+input.Search+"%")
	}

	var totalCount int64
	query.Count(&totalCount)

	var orders model.Orders
	if err := utils.ApplyPagination(query, input.Limit, input.Page).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	})
}

func GetOrderByCode(c *fiber.Ctx) error {
	orderCode := c.Params("orderCode")

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("Attendees").
		Preload("Event").
		Where("public_code = ?", orderCode).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// CancelOrder estorna o pedido: devolve o estoque, cancela os códigos dos
// participantes e registra o lançamento de compensação. Usos de cupom já
// consumidos não voltam. Pedido com check-in feito não pode ser cancelado.
func CancelOrder(c *fiber.Ctx) error {
	orderCode := c.Params("orderCode")
	db := database.DB
	tx := db.Begin()

	var order model.Order
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items").
		Preload("Attendees").
		Preload("Event").
		Where("public_code = ?", orderCode).
		First(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if order.PaymentStatus == model.OrderCancelled {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ORDER_ALREADY_CANCELLED, nil)
	}
	for _, attendee := range order.Attendees {
		if attendee.CheckedIn {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ORDER_HAS_CHECKED_IN, errors.New(attendee.Code))
		}
	}

	now := time.Now()

	for _, item := range order.Items {
		var ticketType model.TicketType
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ticketType, item.TicketTypeId).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		ticketType.QuantitySold -= item.Quantity
		if ticketType.QuantitySold < 0 {
			ticketType.QuantitySold = 0
		}
		if err := tx.Save(&ticketType).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	if err := tx.Model(&model.Attendee{}).
		Where("order_id = ?", order.ID).
		Update("status", model.AttendeeCancelled).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	order.PaymentStatus = model.OrderCancelled
	order.CancelledAt = &now
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// compensação do lançamento automático da venda
	compensation := model.FinancialTransaction{
		EventId:     order.EventId,
		Type:        model.TransactionExpense,
		Status:      model.TransactionPaid,
		Description: "Estorno - pedido " + order.PublicCode,
		Amount:      order.Total,
		Date:        now,
		IsAutomatic: true,
		OrderId:     &order.ID,
	}
	if err := tx.Create(&compensation).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.SendOrderCancelledEmail(order.BuyerEmail, utils.OrderEmailData{
		OrderCode:   order.PublicCode,
		EventName:   order.Event.Name,
		EventDate:   order.Event.StartTime.Format("02/01/2006 15:04"),
		BuyerName:   order.BuyerName,
		TotalAmount: order.Total,
		CancelledAt: now.Format("02/01/2006 15:04"),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}
