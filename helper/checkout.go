package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eagledigitalhouse/eventpro-sub001/model"

	"github.com/google/uuid"
)

var (
	ErrTicketTypeUnknown     = errors.New("tipo de ingresso não pertence ao evento")
	ErrTicketTypeInactive    = errors.New("tipo de ingresso inativo")
	ErrInsufficientInventory = errors.New("quantidade solicitada acima do disponível")
)

func NewOrderCode() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

func NewTicketCode() string {
	return "TKT-" + strings.ToUpper(uuid.New().String()[:10])
}

// ValidateInventory confere as linhas do carrinho (já mescladas por tipo via
// model.MergeItems) contra o estoque travado. Qualquer linha inválida rejeita
// o pedido inteiro.
func ValidateInventory(items []model.CartItem, types map[uint]*model.TicketType) error {
	for _, item := range items {
		ticketType := types[item.TicketTypeId]
		if ticketType == nil {
			return fmt.Errorf("%w: %d", ErrTicketTypeUnknown, item.TicketTypeId)
		}
		if !ticketType.IsActive {
			return fmt.Errorf("%w: %s", ErrTicketTypeInactive, ticketType.Name)
		}
		if item.Quantity > ticketType.Remaining() {
			return fmt.Errorf("%w: %s (solicitado %d, disponível %d)",
				ErrInsufficientInventory, ticketType.Name, item.Quantity, ticketType.Remaining())
		}
	}
	return nil
}

// BuildAttendees gera um participante por unidade vendida do item, cada um com
// seu próprio código de check-in.
func BuildAttendees(order model.Order, item model.OrderItem) []model.Attendee {
	attendees := make([]model.Attendee, 0, item.Quantity)
	for i := 0; i < item.Quantity; i++ {
		attendees = append(attendees, model.Attendee{
			Code:         NewTicketCode(),
			Name:         order.BuyerName,
			Email:        order.BuyerEmail,
			Origin:       model.OriginOrder,
			Status:       model.AttendeeActive,
			EventId:      order.EventId,
			OrderId:      &order.ID,
			OrderItemId:  &item.ID,
			TicketTypeId: &item.TicketTypeId,
		})
	}
	return attendees
}

// BuildSaleTransaction lançamento automático de receita derivado da venda
func BuildSaleTransaction(order model.Order, now time.Time) model.FinancialTransaction {
	return model.FinancialTransaction{
		EventId:     order.EventId,
		Type:        model.TransactionIncome,
		Status:      model.TransactionPaid,
		Description: "Venda de ingressos - pedido " + order.PublicCode,
		Amount:      order.Total,
		Date:        now,
		IsAutomatic: true,
		OrderId:     &order.ID,
	}
}
