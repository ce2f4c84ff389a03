package model

import "time"

const (
	OrderPaid      = "PAGO"
	OrderPending   = "PENDENTE"
	OrderCancelled = "CANCELADO"
)

type Order struct {
	DTO
	PublicCode    string     `gorm:"unique;size:20" json:"publicCode"` // ORD-XXXXXXXX
	EventId       uint       `gorm:"not null;index" json:"eventId"`
	Event         Event      `gorm:"foreignKey:EventId" json:"-"`
	BuyerName     string     `gorm:"not null" json:"buyerName"`
	BuyerEmail    string     `gorm:"not null" json:"buyerEmail"`
	BuyerPhone    string     `json:"buyerPhone"`
	Subtotal      float64    `gorm:"type:decimal(10,2)" json:"subtotal"`
	Discount      float64    `gorm:"type:decimal(10,2)" json:"discount"`
	Total         float64    `gorm:"type:decimal(10,2)" json:"total"`
	CouponId      *uint      `json:"couponId,omitempty"`
	Coupon        *Coupon    `gorm:"foreignKey:CouponId" json:"-"`
	PaymentStatus string     `gorm:"default:'PAGO';not null" json:"paymentStatus"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`

	Items     []OrderItem `gorm:"foreignKey:OrderId" json:"items"`
	Attendees []Attendee  `gorm:"foreignKey:OrderId" json:"attendees,omitempty"`
}
type Orders []Order

type OrderItem struct {
	DTO
	OrderId      uint       `gorm:"not null;index" json:"orderId"`
	TicketTypeId uint       `gorm:"not null;index" json:"ticketTypeId"`
	TicketType   TicketType `gorm:"foreignKey:TicketTypeId" json:"-"`
	TicketName   string     `json:"ticketName"`
	UnitPrice    float64    `gorm:"type:decimal(10,2);not null" json:"unitPrice"` // preço capturado na compra
	Quantity     int        `gorm:"not null" json:"quantity"`
}

type CheckoutInput struct {
	CartId     string `json:"cartId" validate:"required"`
	BuyerName  string `json:"buyerName" validate:"required,min=2"`
	BuyerEmail string `json:"buyerEmail" validate:"required,email"`
	BuyerPhone string `json:"buyerPhone" validate:"omitempty"`
}

type FilterOrderInput struct {
	Pagination
	EventId       uint   `json:"eventId" validate:"omitempty,gt=0"`
	PaymentStatus string `json:"paymentStatus" validate:"omitempty,oneof=PAGO PENDENTE CANCELADO"`
	Search        string `json:"search" validate:"omitempty"`
}
