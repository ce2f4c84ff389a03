package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/eagledigitalhouse/eventpro-sub001/constants"
	"github.com/eagledigitalhouse/eventpro-sub001/database"
	"github.com/eagledigitalhouse/eventpro-sub001/model"
	"github.com/eagledigitalhouse/eventpro-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// ExportBackup despejo JSON completo das entidades para backup
func ExportBackup(c *fiber.Ctx) error {
	db := database.DB

	var events model.Events
	var ticketTypes model.TicketTypes
	var coupons model.Coupons
	var orders model.Orders
	var attendees model.Attendees
	var waitlist model.WaitlistEntries
	var transactions model.FinancialTransactions

	db.Find(&events)
	db.Find(&ticketTypes)
	db.Find(&coupons)
	db.Preload("Items").Find(&orders)
	db.Find(&attendees)
	db.Find(&waitlist)
	db.Find(&transactions)

	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=eventpro_backup_%s.json", time.Now().Format("2006-01-02")))
	return c.JSON(fiber.Map{
		"exportedAt":   time.Now(),
		"events":       events,
		"ticketTypes":  ticketTypes,
		"coupons":      coupons,
		"orders":       orders,
		"attendees":    attendees,
		"waitlist":     waitlist,
		"transactions": transactions,
	})
}

// ExportOrdersCSV relatório de pedidos em CSV
func ExportOrdersCSV(c *fiber.Ctx) error {
	db := database.DB

	query := db.Model(&model.Order{}).Preload("Items").Preload("Event")
	if eventId := c.QueryInt("eventId", 0); eventId > 0 {
		query = query.Where("event_id = ?", eventId)
	}

	var orders model.Orders
	if err := query.Order("created_at asc").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"publicCode", "event", "buyerName", "buyerEmail", "subtotal", "discount", "total", "paymentStatus", "createdAt"})
	for _, order := range orders {
		w.Write([]string{
			order.PublicCode,
			order.Event.Name,
			order.BuyerName,
			order.BuyerEmail,
			fmt.Sprintf("%.2f", order.Subtotal),
			fmt.Sprintf("%.2f", order.Discount),
			fmt.Sprintf("%.2f", order.Total),
			order.PaymentStatus,
			order.CreatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", "attachment; filename=pedidos.csv")
	return c.Send(buf.Bytes())
}

// ExportAttendeesCSV relatório de participantes em CSV
func ExportAttendeesCSV(c *fiber.Ctx) error {
	db := database.DB

	query := db.Model(&model.Attendee{}).Preload("Event")
	if eventId := c.QueryInt("eventId", 0); eventId > 0 {
		query = query.Where("event_id = ?", eventId)
	}

	var attendees model.Attendees
	if err := query.Order("created_at asc").Find(&attendees).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"code", "name", "email", "event", "origin", "status", "checkedIn", "checkedInAt"})
	for _, attendee := range attendees {
		checkedInAt := ""
		if attendee.CheckedInAt != nil {
			checkedInAt = attendee.CheckedInAt.Format(time.RFC3339)
		}
		w.Write([]string{
			attendee.Code,
			attendee.Name,
			attendee.Email,
			attendee.Event.Name,
			attendee.Origin,
			attendee.Status,
			fmt.Sprintf("%t", attendee.CheckedIn),
			checkedInAt,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", "attachment; filename=participantes.csv")
	return c.Send(buf.Bytes())
}
