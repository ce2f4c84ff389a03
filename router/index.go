package router

import (
	"github.com/eagledigitalhouse/eventpro-sub001/handler"
	"github.com/eagledigitalhouse/eventpro-sub001/middleware"
	"github.com/eagledigitalhouse/eventpro-sub001/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Patch("/:accountId/active", middleware.Protected(), validate.GetById("accountId"), handler.ActiveAccount)

	event := v1.Group("/event", logger.New())
	event.Get("/", middleware.Protected(), handler.GetEvents)
	event.Post("/", middleware.Protected(), validate.CreateEvent(), handler.CreateEvent)
	event.Get("/:eventId", middleware.Protected(), validate.GetById("eventId"), handler.GetEventById)
	event.Put("/:eventId", middleware.Protected(), validate.GetById("eventId"), validate.EditEvent(), handler.EditEvent)
	event.Patch("/:eventId/publish", middleware.Protected(), validate.GetById("eventId"), handler.PublishEvent)
	event.Patch("/:eventId/cancel", middleware.Protected(), validate.GetById("eventId"), handler.CancelEvent)
	event.Patch("/:eventId/complete", middleware.Protected(), validate.GetById("eventId"), handler.CompleteEvent)
	event.Post("/:eventId/banner", middleware.Protected(), validate.GetById("eventId"), handler.UploadEventBanner)

	event.Get("/:eventId/ticket-types", middleware.OptionalJWT(), validate.GetById("eventId"), handler.GetTicketTypes)
	event.Post("/:eventId/ticket-types", middleware.Protected(), validate.GetById("eventId"), validate.CreateTicketType(), handler.CreateTicketType)

	ticketType := v1.Group("/ticket-type", logger.New())
	ticketType.Put("/:ticketTypeId", middleware.Protected(), validate.GetById("ticketTypeId"), validate.EditTicketType(), handler.EditTicketType)

	event.Get("/:eventId/coupons", middleware.Protected(), validate.GetById("eventId"), handler.GetCoupons)
	event.Post("/:eventId/coupons", middleware.Protected(), validate.GetById("eventId"), validate.CreateCoupon(), handler.CreateCoupon)

	coupon := v1.Group("/coupon", logger.New())
	coupon.Put("/:couponId", middleware.Protected(), validate.GetById("couponId"), validate.EditCoupon(), handler.EditCoupon)

	cart := v1.Group("/cart", logger.New())
	cart.Post("/", validate.CreateCart(), handler.CreateCart)
	cart.Get("/:cartId", handler.GetCart)
	cart.Delete("/:cartId", handler.DeleteCart)
	cart.Post("/:cartId/coupon", validate.ApplyCoupon(), handler.ApplyCoupon)
	cart.Delete("/:cartId/coupon", handler.RemoveCoupon)

	v1.Post("/checkout", validate.Checkout(), handler.Checkout)

	order := v1.Group("/order", logger.New())
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Get("/:orderCode", handler.GetOrderByCode)
	order.Post("/:orderCode/cancel", middleware.Protected(), handler.CancelOrder)

	v1.Post("/checkin", middleware.Protected(), validate.CheckIn(), handler.CheckInByCode)
	event.Post("/:eventId/attendee/manual", middleware.Protected(), validate.GetById("eventId"), validate.CreateManualAttendee(), handler.CreateManualAttendee)
	event.Get("/:eventId/attendees", middleware.Protected(), validate.GetById("eventId"), handler.GetAttendees)
	event.Get("/:eventId/checkin-stats", middleware.Protected(), validate.GetById("eventId"), handler.GetCheckinStats)
	v1.Get("/attendee/:code/qr", handler.GetAttendeeQR)

	event.Post("/:eventId/waitlist", validate.GetById("eventId"), validate.CreateWaitlist(), handler.JoinWaitlist)
	event.Get("/:eventId/waitlist", middleware.Protected(), validate.GetById("eventId"), handler.GetWaitlist)
	waitlist := v1.Group("/waitlist", logger.New())
	waitlist.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteWaitlistEntries)
	waitlist.Delete("/:waitlistId", middleware.Protected(), validate.GetById("waitlistId"), handler.DeleteWaitlistEntry)
	waitlist.Post("/notify", middleware.Protected(), validate.NotifyWaitlist(), handler.NotifyWaitlist)

	transaction := v1.Group("/transaction", logger.New())
	transaction.Get("/", middleware.Protected(), handler.GetTransactions)
	transaction.Get("/summary", middleware.Protected(), handler.GetFinancialSummary)
	transaction.Post("/", middleware.Protected(), validate.CreateTransaction(), handler.CreateTransaction)
	transaction.Put("/:transactionId", middleware.Protected(), validate.GetById("transactionId"), validate.EditTransaction(), handler.EditTransaction)
	transaction.Delete("/:transactionId", middleware.Protected(), validate.GetById("transactionId"), handler.DeleteTransaction)

	stats := v1.Group("/stats", logger.New())
	stats.Get("/dashboard", middleware.Protected(), handler.GetDashboardStats)
	stats.Get("/ranking", middleware.Protected(), handler.GetEventRanking)
	stats.Get("/sales-by-day", middleware.Protected(), handler.GetSalesByDay)

	export := v1.Group("/export", logger.New())
	export.Get("/backup", middleware.Protected(), handler.RequireAdmin, handler.ExportBackup)
	export.Get("/orders.csv", middleware.Protected(), handler.ExportOrdersCSV)
	export.Get("/attendees.csv", middleware.Protected(), handler.ExportAttendeesCSV)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	v1.Get("/ws/checkin/:id", websocket.New(handler.CheckinFeedConnection))
}
