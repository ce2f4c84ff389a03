package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCoupon() Coupon {
	return Coupon{
		Code:       "SAVE10",
		Type:       DiscountPercentage,
		Value:      10,
		MaxUses:    1,
		ValidFrom:  time.Now().Add(-24 * time.Hour),
		ValidUntil: time.Now().Add(24 * time.Hour),
		IsActive:   true,
		EventId:    1,
	}
}

func TestCouponValidate(t *testing.T) {
	now := time.Now()

	t.Run("valid coupon passes", func(t *testing.T) {
		c := validCoupon()
		assert.NoError(t, c.Validate(1, now))
	})

	t.Run("wrong event", func(t *testing.T) {
		c := validCoupon()
		assert.ErrorIs(t, c.Validate(2, now), ErrCouponWrongEvent)
	})

	t.Run("inactive", func(t *testing.T) {
		c := validCoupon()
		c.IsActive = false
		assert.ErrorIs(t, c.Validate(1, now), ErrCouponInactive)
	})

	t.Run("before window", func(t *testing.T) {
		c := validCoupon()
		c.ValidFrom = now.Add(time.Hour)
		assert.ErrorIs(t, c.Validate(1, now), ErrCouponOutOfWindow)
	})

	t.Run("after window", func(t *testing.T) {
		c := validCoupon()
		c.ValidUntil = now.Add(-time.Hour)
		assert.ErrorIs(t, c.Validate(1, now), ErrCouponOutOfWindow)
	})

	t.Run("exhausted when usedCount reaches maxUses", func(t *testing.T) {
		c := validCoupon()
		c.UsedCount = 1
		assert.ErrorIs(t, c.Validate(1, now), ErrCouponExhausted)
	})

	t.Run("maxUses zero means unlimited", func(t *testing.T) {
		c := validCoupon()
		c.MaxUses = 0
		c.UsedCount = 9999
		assert.NoError(t, c.Validate(1, now))
	})

	t.Run("validation is read-only", func(t *testing.T) {
		c := validCoupon()
		_ = c.Validate(1, now)
		assert.Equal(t, 0, c.UsedCount)
	})
}

func TestCouponDiscount(t *testing.T) {
	tests := []struct {
		name     string
		couponTy string
		value    float64
		subtotal float64
		want     float64
	}{
		{"percentage 10 of 100", DiscountPercentage, 10, 100, 10},
		{"percentage 50 of 80", DiscountPercentage, 50, 80, 40},
		{"percentage capped at 100", DiscountPercentage, 150, 200, 200},
		{"fixed below subtotal", DiscountFixed, 30, 100, 30},
		{"fixed capped at subtotal", DiscountFixed, 500, 100, 100},
		{"zero subtotal", DiscountPercentage, 10, 0, 0},
		{"negative value clamps to zero", DiscountFixed, -10, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Coupon{Type: tt.couponTy, Value: tt.value}
			got := c.Discount(tt.subtotal)
			assert.InDelta(t, tt.want, got, 0.001)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, tt.subtotal+0.001)
		})
	}
}

func TestTicketTypeInventory(t *testing.T) {
	tt := TicketType{Name: "Inteira", Price: 50, QuantityTotal: 2, IsActive: true}

	assert.Equal(t, 2, tt.Remaining())
	assert.True(t, tt.CanSell(2))
	assert.False(t, tt.CanSell(3))
	assert.False(t, tt.CanSell(0))
	assert.False(t, tt.SoldOut())

	tt.QuantitySold = 2
	assert.Equal(t, 0, tt.Remaining())
	assert.True(t, tt.SoldOut())
	assert.False(t, tt.CanSell(1))

	tt.QuantitySold = 1
	tt.IsActive = false
	assert.False(t, tt.CanSell(1), "inactive type never sells")
}

func TestAttendeeCheckIn(t *testing.T) {
	t.Run("first check-in succeeds, second fails without mutation", func(t *testing.T) {
		a := Attendee{Code: "TKT-ABC", Status: AttendeeActive}
		first := time.Now()

		require.NoError(t, a.CheckIn(first))
		assert.True(t, a.CheckedIn)
		require.NotNil(t, a.CheckedInAt)
		assert.Equal(t, first, *a.CheckedInAt)

		err := a.CheckIn(first.Add(time.Minute))
		assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
		assert.Equal(t, first, *a.CheckedInAt, "original timestamp preserved")
	})

	t.Run("cancelled attendee reads as invalid code", func(t *testing.T) {
		a := Attendee{Code: "TKT-DEF", Status: AttendeeCancelled}
		err := a.CheckIn(time.Now())
		assert.ErrorIs(t, err, ErrCodeInvalid)
		assert.False(t, a.CheckedIn)
	})
}

func TestCouponConsume(t *testing.T) {
	now := time.Now()

	t.Run("um consumo por pedido", func(t *testing.T) {
		c := validCoupon() // MaxUses: 1
		require.NoError(t, c.Consume(1, now))
		assert.Equal(t, 1, c.UsedCount)
	})

	t.Run("consumo além do limite falha sem mutação", func(t *testing.T) {
		c := validCoupon()
		require.NoError(t, c.Consume(1, now))

		err := c.Consume(1, now)
		assert.ErrorIs(t, err, ErrCouponExhausted)
		assert.Equal(t, 1, c.UsedCount)
	})
}

func TestMergeItems(t *testing.T) {
	items := []CartItem{
		{TicketTypeId: 1, Name: "Inteira", UnitPrice: 50, Quantity: 2},
		{TicketTypeId: 2, Name: "Meia", UnitPrice: 25, Quantity: 1},
		{TicketTypeId: 1, Name: "Inteira", UnitPrice: 50, Quantity: 2},
	}

	merged := MergeItems(items)
	require.Len(t, merged, 2)
	assert.Equal(t, uint(1), merged[0].TicketTypeId)
	assert.Equal(t, 4, merged[0].Quantity, "linhas repetidas somam as quantidades")
	assert.Equal(t, uint(2), merged[1].TicketTypeId)
	assert.Equal(t, 1, merged[1].Quantity)

	// entrada original intacta
	assert.Equal(t, 2, items[0].Quantity)
}

func TestMergeItemsNoDuplicates(t *testing.T) {
	items := []CartItem{
		{TicketTypeId: 1, Quantity: 2},
		{TicketTypeId: 2, Quantity: 3},
	}
	assert.Equal(t, items, MergeItems(items))
}

func TestCartSubtotal(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{TicketTypeId: 1, UnitPrice: 50, Quantity: 2},
			{TicketTypeId: 2, UnitPrice: 25.5, Quantity: 1},
		},
	}
	assert.InDelta(t, 125.5, cart.Subtotal(), 0.001)
	assert.Equal(t, 3, cart.TotalQuantity())
}

func TestSummarize(t *testing.T) {
	transactions := []FinancialTransaction{
		{Type: TransactionIncome, Status: TransactionPaid, Amount: 100},
		{Type: TransactionIncome, Status: TransactionPaid, Amount: 50},
		{Type: TransactionIncome, Status: TransactionPending, Amount: 30},
		{Type: TransactionExpense, Status: TransactionPaid, Amount: 40},
		{Type: TransactionExpense, Status: TransactionPending, Amount: 10},
	}

	s := Summarize(transactions)
	assert.InDelta(t, 150, s.TotalIncome, 0.001)
	assert.InDelta(t, 40, s.TotalExpense, 0.001)
	assert.InDelta(t, 30, s.PendingIncome, 0.001)
	assert.InDelta(t, 10, s.PendingExpense, 0.001)
	assert.InDelta(t, 110, s.Balance, 0.001, "apenas pagos entram no saldo")
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalIncome)
	assert.Zero(t, s.Balance)
}
