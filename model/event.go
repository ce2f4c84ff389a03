package model

import "time"

const (
	EventDraft     = "RASCUNHO"
	EventPublished = "PUBLICADO"
	EventCancelled = "CANCELADO"
	EventCompleted = "CONCLUIDO"
)

type Event struct {
	DTO
	Name        string     `gorm:"not null" json:"name"`
	Slug        string     `gorm:"uniqueIndex;size:120" json:"slug"`
	Description string     `gorm:"type:text" json:"description"`
	StartTime   time.Time  `gorm:"not null" json:"startTime"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Location    string     `json:"location"`
	BannerUrl   string     `json:"bannerUrl"`
	Status      string     `gorm:"default:'RASCUNHO';not null" json:"status"`

	TicketTypes []TicketType `gorm:"foreignKey:EventId" json:"ticketTypes,omitempty"`
}
type Events []Event

type CreateEventInput struct {
	Name        string     `json:"name" validate:"required,min=3"`
	Description string     `json:"description" validate:"omitempty"`
	StartTime   time.Time  `json:"startTime" validate:"required"`
	EndTime     *time.Time `json:"endTime" validate:"omitempty"`
	Location    string     `json:"location" validate:"omitempty"`
	BannerUrl   string     `json:"bannerUrl" validate:"omitempty,url"`
}

type EditEventInput struct {
	Name        string     `json:"name" validate:"omitempty,min=3"`
	Description string     `json:"description" validate:"omitempty"`
	StartTime   *time.Time `json:"startTime" validate:"omitempty"`
	EndTime     *time.Time `json:"endTime" validate:"omitempty"`
	Location    string     `json:"location" validate:"omitempty"`
	BannerUrl   string     `json:"bannerUrl" validate:"omitempty,url"`
}

type FilterEventInput struct {
	Pagination
	Status string `json:"status" validate:"omitempty,oneof=RASCUNHO PUBLICADO CANCELADO CONCLUIDO"`
	Search string `json:"search" validate:"omitempty"`
}
