package helper

import (
	"testing"

	"github.com/eagledigitalhouse/eventpro-sub001/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	items := []model.CartItem{
		{TicketTypeId: 1, UnitPrice: 100, Quantity: 2},
		{TicketTypeId: 2, UnitPrice: 50, Quantity: 1},
	}

	t.Run("sem cupom", func(t *testing.T) {
		totals := ComputeTotals(items, nil)
		assert.InDelta(t, 250, totals.Subtotal, 0.001)
		assert.InDelta(t, 0, totals.Discount, 0.001)
		assert.InDelta(t, 250, totals.Total, 0.001)
	})

	t.Run("cupom percentual", func(t *testing.T) {
		coupon := &model.Coupon{Type: model.DiscountPercentage, Value: 10}
		totals := ComputeTotals(items, coupon)
		assert.InDelta(t, 25, totals.Discount, 0.001)
		assert.InDelta(t, 225, totals.Total, 0.001)
	})

	t.Run("cupom fixo maior que subtotal zera o total", func(t *testing.T) {
		coupon := &model.Coupon{Type: model.DiscountFixed, Value: 1000}
		totals := ComputeTotals(items, coupon)
		assert.InDelta(t, 250, totals.Discount, 0.001)
		assert.InDelta(t, 0, totals.Total, 0.001)
		assert.GreaterOrEqual(t, totals.Total, 0.0)
	})

	t.Run("carrinho vazio", func(t *testing.T) {
		totals := ComputeTotals(nil, &model.Coupon{Type: model.DiscountFixed, Value: 30})
		assert.Zero(t, totals.Subtotal)
		assert.Zero(t, totals.Discount)
		assert.Zero(t, totals.Total)
	})
}
