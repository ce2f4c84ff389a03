package database

import (
	"log"
	"time"

	"github.com/eagledigitalhouse/eventpro-sub001/constants"
	"github.com/eagledigitalhouse/eventpro-sub001/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("eventpro123"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "eventpro123"
	}
	accounts := []model.Account{
		{Username: "Administration", Password: HashPassword, Name: "Administrador", Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	// Evento demo para ambiente de desenvolvimento
	var count int64
	db.Model(&model.Event{}).Count(&count)
	if count > 0 {
		return
	}

	end := parseDate("2026-11-21")
	demo := model.Event{
		Name:        "Conferência Demo",
		Slug:        "conferencia-demo",
		Description: "Evento de demonstração criado pelo seed",
		StartTime:   parseDate("2026-11-20"),
		EndTime:     &end,
		Location:    "São Paulo - SP",
		Status:      model.EventDraft,
		TicketTypes: []model.TicketType{
			{Name: "Inteira", Price: 120, QuantityTotal: 200},
			{Name: "Meia", Price: 60, QuantityTotal: 100},
			{Name: "Cortesia", Price: 0, QuantityTotal: 30, Visibility: model.TicketTypeHidden},
		},
	}
	if err := db.Create(&demo).Error; err != nil {
		log.Println("failed to seed demo event:", err)
	}
}
