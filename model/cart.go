package model

import "time"

// Cart é efêmero: vive apenas no Redis com TTL, nunca vai para o Postgres.
type Cart struct {
	ID         string     `json:"id"`
	EventId    uint       `json:"eventId"`
	Items      []CartItem `json:"items"`
	CouponCode string     `json:"couponCode,omitempty"` // aplicado em modo preview
	CreatedAt  time.Time  `json:"createdAt"`
}

type CartItem struct {
	TicketTypeId uint    `json:"ticketTypeId"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int     `json:"quantity"`
}

// Subtotal soma dos itens com o preço capturado na montagem do carrinho
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// MergeItems colapsa linhas repetidas do mesmo tipo de ingresso somando as
// quantidades. O estoque é validado pelo total por tipo, nunca por linha.
func MergeItems(items []CartItem) []CartItem {
	merged := make([]CartItem, 0, len(items))
	index := make(map[uint]int, len(items))
	for _, item := range items {
		if i, ok := index[item.TicketTypeId]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.TicketTypeId] = len(merged)
		merged = append(merged, item)
	}
	return merged
}

func (c *Cart) TotalQuantity() int {
	var qty int
	for _, item := range c.Items {
		qty += item.Quantity
	}
	return qty
}

type CreateCartInput struct {
	EventId uint                  `json:"eventId" validate:"required,gt=0"`
	Items   []CreateCartItemInput `json:"items" validate:"required,min=1,dive"`
}

type CreateCartItemInput struct {
	TicketTypeId uint `json:"ticketTypeId" validate:"required,gt=0"`
	Quantity     int  `json:"quantity" validate:"required,gt=0"`
}
