package helper

import (
	"log"
	"time"

	"github.com/eagledigitalhouse/eventpro-sub001/database"
	"github.com/eagledigitalhouse/eventpro-sub001/model"

	"github.com/go-co-op/gocron/v2"
)

var eventScheduler gocron.Scheduler

// AutoUpdateEventStatus move eventos publicados cuja data já passou para CONCLUIDO
func AutoUpdateEventStatus() {
	log.Println("[CRON] AutoUpdateEventStatus triggered")

	db := database.DB
	today := time.Now().Truncate(24 * time.Hour)

	var events []model.Event
	if err := db.Where("status = ?", model.EventPublished).Find(&events).Error; err != nil {
		log.Printf("Erro ao varrer eventos: %v", err)
		return
	}

	for _, event := range events {
		endDate := event.StartTime
		if event.EndTime != nil {
			endDate = *event.EndTime
		}
		if today.After(endDate.Truncate(24 * time.Hour)) {
			event.Status = model.EventCompleted
			if err := db.Save(&event).Error; err != nil {
				log.Printf("Erro ao concluir evento '%s': %v", event.Name, err)
			} else {
				log.Printf("Evento '%s' → %s", event.Name, event.Status)
			}
		}
	}
}

func StartEventStatusScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	eventScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoUpdateEventStatus),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Event status scheduler started (00:05)")
}

func StopEventStatusScheduler() {
	if eventScheduler != nil {
		_ = eventScheduler.Shutdown()
	}
}
