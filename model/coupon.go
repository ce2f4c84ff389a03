package model

import (
	"errors"
	"time"
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

var (
	ErrCouponWrongEvent  = errors.New("cupom não pertence a este evento")
	ErrCouponInactive    = errors.New("cupom inativo")
	ErrCouponOutOfWindow = errors.New("cupom fora do período de validade")
	ErrCouponExhausted   = errors.New("cupom atingiu o limite de usos")
)

type Coupon struct {
	DTO
	Code       string    `gorm:"uniqueIndex;size:40;not null" json:"code"`
	Type       string    `gorm:"not null" json:"type"` // percentage | fixed
	Value      float64   `gorm:"type:decimal(10,2);not null" json:"value"`
	MaxUses    int       `gorm:"default:0" json:"maxUses"` // 0 = ilimitado
	UsedCount  int       `gorm:"default:0;not null" json:"usedCount"`
	ValidFrom  time.Time `gorm:"not null" json:"validFrom"`
	ValidUntil time.Time `gorm:"not null" json:"validUntil"`
	IsActive   bool      `gorm:"default:true" json:"isActive"`

	EventId uint  `gorm:"not null;index" json:"eventId"`
	Event   Event `gorm:"foreignKey:EventId" json:"-"`
}
type Coupons []Coupon

// Validate checa se o cupom pode ser aplicado ao evento no instante dado.
// Leitura pura: nunca incrementa UsedCount (o consumo acontece dentro da
// transação do pedido).
func (c *Coupon) Validate(eventId uint, now time.Time) error {
	if c.EventId != eventId {
		return ErrCouponWrongEvent
	}
	if !c.IsActive {
		return ErrCouponInactive
	}
	if now.Before(c.ValidFrom) || now.After(c.ValidUntil) {
		return ErrCouponOutOfWindow
	}
	if c.MaxUses > 0 && c.UsedCount >= c.MaxUses {
		return ErrCouponExhausted
	}
	return nil
}

// Consume revalida e registra um uso. Chamado apenas dentro da transação do
// pedido, com a linha do cupom travada: um pedido consome exatamente um uso.
func (c *Coupon) Consume(eventId uint, now time.Time) error {
	if err := c.Validate(eventId, now); err != nil {
		return err
	}
	c.UsedCount++
	return nil
}

// Discount calcula o desconto sobre o subtotal, sempre dentro de [0, subtotal].
// Percentual é limitado a 100%, valor fixo ao próprio subtotal.
func (c *Coupon) Discount(subtotal float64) float64 {
	if subtotal <= 0 {
		return 0
	}
	var discount float64
	switch c.Type {
	case DiscountPercentage:
		pct := c.Value
		if pct > 100 {
			pct = 100
		}
		discount = subtotal * pct / 100
	case DiscountFixed:
		discount = c.Value
	}
	if discount < 0 {
		return 0
	}
	if discount > subtotal {
		return subtotal
	}
	return discount
}

type CreateCouponInput struct {
	Code       string    `json:"code" validate:"required,min=3,max=40"`
	Type       string    `json:"type" validate:"required,oneof=percentage fixed"`
	Value      float64   `json:"value" validate:"required,gt=0"`
	MaxUses    int       `json:"maxUses" validate:"gte=0"`
	ValidFrom  time.Time `json:"validFrom" validate:"required"`
	ValidUntil time.Time `json:"validUntil" validate:"required,gtfield=ValidFrom"`
}

type EditCouponInput struct {
	Value      *float64   `json:"value" validate:"omitempty,gt=0"`
	MaxUses    *int       `json:"maxUses" validate:"omitempty,gte=0"`
	ValidFrom  *time.Time `json:"validFrom" validate:"omitempty"`
	ValidUntil *time.Time `json:"validUntil" validate:"omitempty"`
	IsActive   *bool      `json:"isActive" validate:"omitempty"`
}

type ApplyCouponInput struct {
	Code string `json:"code" validate:"required"`
}
