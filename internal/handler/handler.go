package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/steve-ongera/WildQuest/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, slug string) (*domain.EventDetails, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	UpdateStatus(ctx context.Context, slug string, status domain.EventStatus) error
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string) error
}

type PaymentSvc interface {
	Initiate(ctx context.Context, bookingID, payerPhone string) (*domain.Payment, error)
	HandleCallback(ctx context.Context, result domain.PaymentResult) error
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.Payment, error)
}

type InquirySvc interface {
	Ingest(ctx context.Context, msg domain.InboundMessage) (*domain.Inquiry, error)
	Convert(ctx context.Context, input domain.ConvertInquiryInput) (*domain.Booking, error)
	Dismiss(ctx context.Context, id string) error
	List(ctx context.Context, status domain.InquiryStatus) ([]*domain.Inquiry, error)
}

type ReviewSvc interface {
	Add(ctx context.Context, eventSlug string, input domain.CreateReviewInput) (*domain.Review, error)
	Approve(ctx context.Context, id string) error
	ListApproved(ctx context.Context, eventSlug string) ([]*domain.Review, error)
	ListPending(ctx context.Context) ([]*domain.Review, error)
}

type LocationSvc interface {
	Create(ctx context.Context, input domain.CreateLocationInput) (*domain.Location, error)
	List(ctx context.Context) ([]*domain.Location, error)
	CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

type ReportSvc interface {
	Summary(ctx context.Context) (*domain.SummaryReport, error)
	PerEvent(ctx context.Context) ([]*domain.EventReport, error)
}

type Handler struct {
	eventService    EventSvc
	bookingService  BookingSvc
	paymentService  PaymentSvc
	inquiryService  InquirySvc
	reviewService   ReviewSvc
	locationService LocationSvc
	reportService   ReportSvc
}

func NewHandler(
	eventService EventSvc,
	bookingService BookingSvc,
	paymentService PaymentSvc,
	inquiryService InquirySvc,
	reviewService ReviewSvc,
	locationService LocationSvc,
	reportService ReportSvc,
) *Handler {
	return &Handler{
		eventService:    eventService,
		bookingService:  bookingService,
		paymentService:  paymentService,
		inquiryService:  inquiryService,
		reviewService:   reviewService,
		locationService: locationService,
		reportService:   reportService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date format, expected RFC3339",
		})
		return
	}
	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_date format, expected RFC3339",
		})
		return
	}
	deadline, err := time.Parse(time.RFC3339, req.BookingDeadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid booking_deadline format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		EventType:        domain.EventType(req.EventType),
		CategoryID:       req.CategoryID,
		LocationID:       req.LocationID,
		StartDate:        startDate,
		EndDate:          endDate,
		MaxParticipants:  req.MaxParticipants,
		MinParticipants:  req.MinParticipants,
		BookingDeadline:  deadline,
		Featured:         req.Featured,
	}
	for _, t := range req.PricingTiers {
		input.PricingTiers = append(input.PricingTiers, domain.CreateTierInput{
			TierType:    domain.TierType(t.TierType),
			Name:        t.Name,
			Description: t.Description,
			PriceCents:  t.PriceCents,
		})
	}
	for _, img := range req.Images {
		input.Images = append(input.Images, domain.CreateImageInput{
			URL:       img.URL,
			AltText:   img.AltText,
			IsPrimary: img.IsPrimary,
		})
	}
	for _, f := range req.FAQs {
		input.FAQs = append(input.FAQs, domain.CreateFAQInput{
			Question: f.Question,
			Answer:   f.Answer,
		})
	}
	for _, day := range req.Itinerary {
		input.Itinerary = append(input.Itinerary, domain.CreateItineraryInput{
			DayNumber:     day.DayNumber,
			Title:         day.Title,
			Description:   day.Description,
			MealsIncluded: day.MealsIncluded,
			Accommodation: day.Accommodation,
		})
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	details, err := h.eventService.GetDetails(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	filter := domain.EventFilter{
		CategoryID: c.Query("category_id"),
		LocationID: c.Query("location_id"),
		EventType:  domain.EventType(c.Query("event_type")),
	}
	if v := c.Query("featured"); v != "" {
		featured := v == "true"
		filter.Featured = &featured
	}

	events, err := h.eventService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateEventStatus(c *ginext.Context) {
	var req dto.UpdateEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.eventService.UpdateStatus(c.Request.Context(), c.Param("slug"), domain.EventStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	input := domain.CreateBookingInput{
		EventID:         event.ID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		SpecialRequests: req.SpecialRequests,
		Participants:    toParticipantInputs(req.Participants),
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListEventBookings(c *ginext.Context) {
	event, err := h.eventService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	bookings, err := h.bookingService.ListByEvent(c.Request.Context(), event.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func toParticipantInputs(reqs []dto.ParticipantRequest) []domain.ParticipantInput {
	participants := make([]domain.ParticipantInput, 0, len(reqs))
	for _, p := range reqs {
		participants = append(participants, domain.ParticipantInput{
			TierID:          p.TierID,
			Name:            p.Name,
			AgeBracket:      domain.AgeBracket(p.AgeBracket),
			SpecialRequests: p.SpecialRequests,
		})
	}
	return participants
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrTierNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrInquiryNotFound),
		errors.Is(err, domain.ErrReviewNotFound),
		errors.Is(err, domain.ErrLocationNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrBookingClosed),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrPaymentInFlight),
		errors.Is(err, domain.ErrInquiryConverted),
		errors.Is(err, domain.ErrDuplicateSlug),
		errors.Is(err, domain.ErrDuplicateCategory),
		errors.Is(err, domain.ErrDuplicateReview):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentGateway):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
