package model

import (
	"errors"
	"time"
)

const (
	AttendeeActive    = "ATIVO"
	AttendeeCancelled = "CANCELADO"

	OriginOrder  = "PEDIDO"
	OriginManual = "MANUAL"
)

var (
	ErrCodeInvalid      = errors.New("código inválido")
	ErrAlreadyCheckedIn = errors.New("participante já realizou check-in")
)

// Attendee é um portador de ingresso: gerado um por unidade comprada, ou
// criado manualmente na porta (walk-in, sem pedido e sem pagamento). Os dois
// caminhos convergem na mesma máquina de estados de check-in.
type Attendee struct {
	DTO
	Code         string      `gorm:"uniqueIndex;size:20;not null" json:"code"` // TKT-XXXXXXXXXX
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Origin       string      `gorm:"default:'PEDIDO';not null" json:"origin"` // PEDIDO | MANUAL
	Status       string      `gorm:"default:'ATIVO';not null" json:"status"`
	CheckedIn    bool        `gorm:"default:false" json:"checkedIn"`
	CheckedInAt  *time.Time  `json:"checkedInAt,omitempty"`
	EventId      uint        `gorm:"not null;index" json:"eventId"`
	Event        Event       `gorm:"foreignKey:EventId" json:"-"`
	OrderId      *uint       `gorm:"index" json:"orderId,omitempty"` // nulo para MANUAL
	OrderItemId  *uint       `json:"orderItemId,omitempty"`
	TicketTypeId *uint       `json:"ticketTypeId,omitempty"`
	TicketType   *TicketType `gorm:"foreignKey:TicketTypeId" json:"-"`
}
type Attendees []Attendee

// CheckIn aplica a transição pending -> checked_in. Terminal: a segunda
// chamada falha sem mutação, preservando o CheckedInAt original.
func (a *Attendee) CheckIn(now time.Time) error {
	if a.Status == AttendeeCancelled {
		return ErrCodeInvalid
	}
	if a.CheckedIn {
		return ErrAlreadyCheckedIn
	}
	a.CheckedIn = true
	a.CheckedInAt = &now
	return nil
}

type CheckInInput struct {
	Code    string `json:"code" validate:"required"`
	EventId uint   `json:"eventId" validate:"required,gt=0"`
}

type CreateManualAttendeeInput struct {
	Name         string `json:"name" validate:"required,min=2"`
	Email        string `json:"email" validate:"omitempty,email"`
	TicketTypeId *uint  `json:"ticketTypeId" validate:"omitempty,gt=0"`
}

type FilterAttendeeInput struct {
	Pagination
	Search    string `json:"search" validate:"omitempty"`
	CheckedIn *bool  `json:"checkedIn" validate:"omitempty"`
}
