package handler

import (
	"errors"
	"time"

	"github.com/eagledigitalhouse/eventpro-sub001/constants"
	"github.com/eagledigitalhouse/eventpro-sub001/database"
	"github.com/eagledigitalhouse/eventpro-sub001/helper"
	"github.com/eagledigitalhouse/eventpro-sub001/model"
	"github.com/eagledigitalhouse/eventpro-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

func GetDashboardStats(c *fiber.Ctx) error {
	_, _, ok := helper.GetInfoAccountFromToken(c)
	if !ok {
		return nil
	}

	db := database.DB

	type Stats struct {
		Events          int64   `json:"events"`
		PublishedEvents int64   `json:"publishedEvents"`
		Orders          int64   `json:"orders"`
		Attendees       int64   `json:"attendees"`
		CheckedIn       int64   `json:"checkedIn"`

		TotalRevenue  float64 `json:"totalRevenue"`
		TodayRevenue  float64 `json:"todayRevenue"`
		TodayOrders   int64   `json:"todayOrders"`
		RevenueGrowth float64 `json:"revenueGrowth"` // %
		OrdersGrowth  float64 `json:"ordersGrowth"`  // %
	}

	var stats Stats
	today := time.Now().In(time.Local)
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	todayEnd := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, today.Location())

	db.Model(&model.Event{}).Count(&stats.Events)
	db.Model(&model.Event{}).Where("status = ?", model.EventPublished).Count(&stats.PublishedEvents)
	db.Model(&model.Order{}).Where("payment_status = ?", model.OrderPaid).Count(&stats.Orders)
	db.Model(&model.Attendee{}).Where("status = ?", model.AttendeeActive).Count(&stats.Attendees)
	db.Model(&model.Attendee{}).Where("status = ? AND checked_in = ?", model.AttendeeActive, true).Count(&stats.CheckedIn)

	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE payment_status = 'PAGO'
    `).Scan(&stats.TotalRevenue)

	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE payment_status = 'PAGO'
          AND created_at BETWEEN ? AND ?
    `, todayStart, todayEnd).Scan(&stats.TodayRevenue)

	db.Model(&model.Order{}).
		Where("payment_status = ? AND created_at BETWEEN ? AND ?", model.OrderPaid, todayStart, todayEnd).
		Count(&stats.TodayOrders)

	yesterdayStart := todayStart.AddDate(0, 0, -1)
	yesterdayEnd := todayEnd.AddDate(0, 0, -1)

	var yesterdayRevenue float64
	var yesterdayOrders int64

	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE payment_status = 'PAGO'
          AND created_at BETWEEN ? AND ?
    `, yesterdayStart, yesterdayEnd).Scan(&yesterdayRevenue)

	db.Model(&model.Order{}).
		Where("payment_status = ? AND created_at BETWEEN ? AND ?", model.OrderPaid, yesterdayStart, yesterdayEnd).
		Count(&yesterdayOrders)

	stats.RevenueGrowth = utils.CalculateGrowth(stats.TodayRevenue, yesterdayRevenue)
	stats.OrdersGrowth = utils.CalculateGrowth(float64(stats.TodayOrders), float64(yesterdayOrders))

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

// GetEventRanking eventos ordenados por receita
func GetEventRanking(c *fiber.Ctx) error {
	db := database.DB

	type EventRank struct {
		EventId     uint    `json:"eventId"`
		Name        string  `json:"name"`
		Orders      int64   `json:"orders"`
		TicketsSold int64   `json:"ticketsSold"`
		Revenue     float64 `json:"revenue"`
	}

	var ranking []EventRank
	if err := db.Raw(`
        SELECT
            e.id AS event_id,
            e.name,
            COALESCE(o.orders, 0) AS orders,
            COALESCE(t.tickets_sold, 0) AS tickets_sold,
            COALESCE(o.revenue, 0) AS revenue
        FROM events e
        LEFT JOIN (
            SELECT event_id, COUNT(id) AS orders, SUM(total) AS revenue
            FROM orders
            WHERE payment_status = 'PAGO'
            GROUP BY event_id
        ) o ON o.event_id = e.id
        LEFT JOIN (
            SELECT o.event_id, SUM(oi.quantity) AS tickets_sold
            FROM order_items oi
            JOIN orders o ON o.id = oi.order_id
            WHERE o.payment_status = 'PAGO'
            GROUP BY o.event_id
        ) t ON t.event_id = e.id
        ORDER BY revenue DESC
        LIMIT 10
    `).Scan(&ranking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ranking)
}

// GetSalesByDay histograma diário de vendas dos últimos N dias
func GetSalesByDay(c *fiber.Ctx) error {
	db := database.DB

	days := c.QueryInt("days", 30)
	if days <= 0 || days > 365 {
		days = 30
	}
	from := time.Now().AddDate(0, 0, -days)

	type DailySales struct {
		Date    string  `json:"date"`
		Orders  int64   `json:"orders"`
		Tickets int64   `json:"tickets"`
		Revenue float64 `json:"revenue"`
	}

	var rows []DailySales
	query := `
        SELECT
            TO_CHAR(DATE(o.created_at), 'YYYY-MM-DD') AS date,
            COUNT(DISTINCT o.id) AS orders,
            COALESCE(SUM(oi.quantity), 0) AS tickets,
            COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS revenue
        FROM orders o
        JOIN order_items oi ON oi.order_id = o.id
        WHERE o.payment_status = 'PAGO'
          AND o.created_at >= ?
    `
	args := []interface{}{from}
	if eventId := c.QueryInt("eventId", 0); eventId > 0 {
		query += " AND o.event_id = ?"
		args = append(args, eventId)
	}
	query += " GROUP BY DATE(o.created_at) ORDER BY DATE(o.created_at)"

	if err := db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

// GetCheckinStats taxa de check-in do evento
func GetCheckinStats(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)
	db := database.DB

	var event model.Event
	if err := db.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	var total, checkedIn, manual int64
	db.Model(&model.Attendee{}).Where("event_id = ? AND status = ?", eventId, model.AttendeeActive).Count(&total)
	db.Model(&model.Attendee{}).Where("event_id = ? AND status = ? AND checked_in = ?", eventId, model.AttendeeActive, true).Count(&checkedIn)
	db.Model(&model.Attendee{}).Where("event_id = ? AND origin = ?", eventId, model.OriginManual).Count(&manual)

	rate := float64(0)
	if total > 0 {
		rate = float64(checkedIn) / float64(total) * 100
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"eventId":     event.ID,
		"total":       total,
		"checkedIn":   checkedIn,
		"pending":     total - checkedIn,
		"manual":      manual,
		"checkinRate": rate,
	})
}

// RequireAdmin middleware para rotas restritas ao administrador
func RequireAdmin(c *fiber.Ctx) error {
	_, isAdmin, ok := helper.GetInfoAccountFromToken(c)
	if !ok {
		return nil // resposta já escrita pelo helper
	}
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}
	return c.Next()
}
