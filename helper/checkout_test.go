package helper

import (
	"strings"
	"testing"
	"time"

	"github.com/eagledigitalhouse/eventpro-sub001/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInventory(t *testing.T) {
	types := map[uint]*model.TicketType{
		1: {DTO: model.DTO{ID: 1}, Name: "Inteira", QuantityTotal: 3, IsActive: true},
		2: {DTO: model.DTO{ID: 2}, Name: "Meia", QuantityTotal: 10, QuantitySold: 10, IsActive: true},
		3: {DTO: model.DTO{ID: 3}, Name: "Cortesia", QuantityTotal: 5, IsActive: false},
	}

	t.Run("dentro do estoque", func(t *testing.T) {
		items := []model.CartItem{{TicketTypeId: 1, Quantity: 3}}
		assert.NoError(t, ValidateInventory(items, types))
	})

	t.Run("linhas duplicadas somadas estouram o estoque", func(t *testing.T) {
		items := model.MergeItems([]model.CartItem{
			{TicketTypeId: 1, Quantity: 2},
			{TicketTypeId: 1, Quantity: 2},
		})
		require.Len(t, items, 1)
		assert.ErrorIs(t, ValidateInventory(items, types), ErrInsufficientInventory)
	})

	t.Run("tipo esgotado", func(t *testing.T) {
		items := []model.CartItem{{TicketTypeId: 2, Quantity: 1}}
		assert.ErrorIs(t, ValidateInventory(items, types), ErrInsufficientInventory)
	})

	t.Run("tipo inativo", func(t *testing.T) {
		items := []model.CartItem{{TicketTypeId: 3, Quantity: 1}}
		assert.ErrorIs(t, ValidateInventory(items, types), ErrTicketTypeInactive)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		items := []model.CartItem{{TicketTypeId: 99, Quantity: 1}}
		assert.ErrorIs(t, ValidateInventory(items, types), ErrTicketTypeUnknown)
	})

	t.Run("uma linha inválida rejeita o pedido inteiro", func(t *testing.T) {
		items := []model.CartItem{
			{TicketTypeId: 1, Quantity: 1},
			{TicketTypeId: 2, Quantity: 1},
		}
		assert.ErrorIs(t, ValidateInventory(items, types), ErrInsufficientInventory)
	})
}

func TestBuildAttendees(t *testing.T) {
	order := model.Order{
		DTO:        model.DTO{ID: 7},
		EventId:    3,
		BuyerName:  "Ana Souza",
		BuyerEmail: "ana@example.com",
	}
	item := model.OrderItem{DTO: model.DTO{ID: 11}, OrderId: 7, TicketTypeId: 5, Quantity: 3}

	attendees := BuildAttendees(order, item)
	require.Len(t, attendees, 3, "um participante por unidade")

	codes := make(map[string]bool, len(attendees))
	for _, a := range attendees {
		assert.True(t, strings.HasPrefix(a.Code, "TKT-"))
		assert.Equal(t, "Ana Souza", a.Name)
		assert.Equal(t, model.OriginOrder, a.Origin)
		assert.Equal(t, model.AttendeeActive, a.Status)
		assert.Equal(t, uint(3), a.EventId)
		require.NotNil(t, a.OrderId)
		assert.Equal(t, uint(7), *a.OrderId)
		require.NotNil(t, a.TicketTypeId)
		assert.Equal(t, uint(5), *a.TicketTypeId)
		codes[a.Code] = true
	}
	assert.Len(t, codes, 3, "códigos não se repetem")
}

func TestBuildSaleTransaction(t *testing.T) {
	now := time.Now()
	order := model.Order{DTO: model.DTO{ID: 9}, EventId: 3, PublicCode: "ORD-AB12CD34", Total: 180}

	tr := BuildSaleTransaction(order, now)
	assert.Equal(t, model.TransactionIncome, tr.Type)
	assert.Equal(t, model.TransactionPaid, tr.Status)
	assert.True(t, tr.IsAutomatic)
	assert.InDelta(t, 180, tr.Amount, 0.001)
	assert.Equal(t, now, tr.Date)
	require.NotNil(t, tr.OrderId)
	assert.Equal(t, uint(9), *tr.OrderId)
	assert.Contains(t, tr.Description, "ORD-AB12CD34")
}

func TestPublicCodes(t *testing.T) {
	orderCode := NewOrderCode()
	assert.True(t, strings.HasPrefix(orderCode, "ORD-"))
	assert.Len(t, orderCode, 12)
	assert.Equal(t, strings.ToUpper(orderCode), orderCode)

	ticketCode := NewTicketCode()
	assert.True(t, strings.HasPrefix(ticketCode, "TKT-"))
	assert.Len(t, ticketCode, 14)

	assert.NotEqual(t, NewTicketCode(), NewTicketCode())
}
