package model

import "time"

type WaitlistEntry struct {
	DTO
	EventId      uint       `gorm:"not null;index" json:"eventId"`
	Event        Event      `gorm:"foreignKey:EventId" json:"-"`
	TicketTypeId uint       `gorm:"not null;index" json:"ticketTypeId"`
	TicketType   TicketType `gorm:"foreignKey:TicketTypeId" json:"-"`
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"not null" json:"email"`
	Phone        string     `json:"phone"`
	Notified     bool       `gorm:"default:false" json:"notified"`
	NotifiedAt   *time.Time `json:"notifiedAt,omitempty"`
}
type WaitlistEntries []WaitlistEntry

type CreateWaitlistInput struct {
	TicketTypeId uint   `json:"ticketTypeId" validate:"required,gt=0"`
	Name         string `json:"name" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty"`
}

type NotifyWaitlistInput struct {
	EventId      uint `json:"eventId" validate:"required,gt=0"`
	TicketTypeId uint `json:"ticketTypeId" validate:"required,gt=0"`
}
