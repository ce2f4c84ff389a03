package model

const (
	TicketTypePublic = "PUBLICA"
	TicketTypeHidden = "OCULTA"
)

type TicketType struct {
	DTO
	Name          string  `gorm:"not null" json:"name"`
	Price         float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	QuantityTotal int     `gorm:"not null" json:"quantityTotal"`
	QuantitySold  int     `gorm:"default:0;not null" json:"quantitySold"`
	IsActive      bool    `gorm:"default:true" json:"isActive"`
	Visibility    string  `gorm:"default:'PUBLICA';not null" json:"visibility"`

	EventId uint  `gorm:"not null;index" json:"eventId"`
	Event   Event `gorm:"foreignKey:EventId" json:"-"`
}
type TicketTypes []TicketType

// Remaining quantidade ainda disponível para venda
func (t *TicketType) Remaining() int {
	return t.QuantityTotal - t.QuantitySold
}

// CanSell verifica se é possível vender qty unidades
func (t *TicketType) CanSell(qty int) bool {
	return t.IsActive && qty > 0 && qty <= t.Remaining()
}

func (t *TicketType) SoldOut() bool {
	return t.Remaining() <= 0
}

type CreateTicketTypeInput struct {
	Name          string  `json:"name" validate:"required"`
	Price         float64 `json:"price" validate:"gte=0"`
	QuantityTotal int     `json:"quantityTotal" validate:"required,gt=0"`
	Visibility    string  `json:"visibility" validate:"omitempty,oneof=PUBLICA OCULTA"`
}

type EditTicketTypeInput struct {
	Name          string   `json:"name" validate:"omitempty"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	QuantityTotal *int     `json:"quantityTotal" validate:"omitempty,gt=0"`
	IsActive      *bool    `json:"isActive" validate:"omitempty"`
	Visibility    string   `json:"visibility" validate:"omitempty,oneof=PUBLICA OCULTA"`
}
