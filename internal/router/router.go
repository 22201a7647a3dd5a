package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	UpdateEventStatus(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListEventBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	InitiatePayment(c *ginext.Context)
	MpesaCallback(c *ginext.Context)
	ListBookingPayments(c *ginext.Context)
	WhatsAppWebhook(c *ginext.Context)
	ListInquiries(c *ginext.Context)
	ConvertInquiry(c *ginext.Context)
	DismissInquiry(c *ginext.Context)
	CreateReview(c *ginext.Context)
	ListEventReviews(c *ginext.Context)
	ListPendingReviews(c *ginext.Context)
	ApproveReview(c *ginext.Context)
	CreateLocation(c *ginext.Context)
	ListLocations(c *ginext.Context)
	CreateCategory(c *ginext.Context)
	ListCategories(c *ginext.Context)
	ReportSummary(c *ginext.Context)
	ReportPerEvent(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:slug", h.GetEvent)
		api.POST("/events/:slug/status", h.UpdateEventStatus)

		// Bookings
		api.POST("/events/:slug/bookings", h.CreateBooking)
		api.GET("/events/:slug/bookings", h.ListEventBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Payments
		api.POST("/bookings/:id/pay", h.InitiatePayment)
		api.GET("/bookings/:id/payments", h.ListBookingPayments)
		api.POST("/payments/mpesa/callback", h.MpesaCallback)

		// WhatsApp inquiries
		api.POST("/whatsapp/webhook", h.WhatsAppWebhook)
		api.GET("/inquiries", h.ListInquiries)
		api.POST("/inquiries/:id/convert", h.ConvertInquiry)
		api.POST("/inquiries/:id/dismiss", h.DismissInquiry)

		// Reviews
		api.POST("/events/:slug/reviews", h.CreateReview)
		api.GET("/events/:slug/reviews", h.ListEventReviews)
		api.GET("/reviews/pending", h.ListPendingReviews)
		api.POST("/reviews/:id/approve", h.ApproveReview)

		// Reference data
		api.GET("/locations", h.ListLocations)
		api.POST("/locations", h.CreateLocation)
		api.GET("/categories", h.ListCategories)
		api.POST("/categories", h.CreateCategory)

		// Reports
		api.GET("/admin/reports/summary", h.ReportSummary)
		api.GET("/admin/reports/events", h.ReportPerEvent)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
