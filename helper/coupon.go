package helper

import (
	"log"
	"time"

	"github.com/eagledigitalhouse/eventpro-sub001/database"
	"github.com/eagledigitalhouse/eventpro-sub001/model"

	"github.com/robfig/cron/v3"
)

var couponCron *cron.Cron

// ExpireCoupons desativa cupons cujo período de validade terminou
func ExpireCoupons() {
	db := database.DB

	result := db.Model(&model.Coupon{}).
		Where("is_active = ? AND valid_until < ?", true, time.Now()).
		Update("is_active", false)
	if result.Error != nil {
		log.Printf("Erro ao expirar cupons: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Cupons expirados: %d", result.RowsAffected)
	}
}

func StartCouponExpiryCron() {
	couponCron = cron.New()
	// varredura horária é suficiente: Validate também checa a janela de datas
	_, err := couponCron.AddFunc("@hourly", ExpireCoupons)
	if err != nil {
		log.Fatal(err)
	}
	couponCron.Start()
	log.Println("Coupon expiry cron started (@hourly)")
}

func StopCouponExpiryCron() {
	if couponCron != nil {
		couponCron.Stop()
	}
}
