package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/steve-ongera/WildQuest/internal/handler/dto"
	hmocks "github.com/steve-ongera/WildQuest/internal/handler/mocks"
	"github.com/steve-ongera/WildQuest/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type svcMocks struct {
	event    *hmocks.MockEventSvc
	booking  *hmocks.MockBookingSvc
	payment  *hmocks.MockPaymentSvc
	inquiry  *hmocks.MockInquirySvc
	review   *hmocks.MockReviewSvc
	location *hmocks.MockLocationSvc
	report   *hmocks.MockReportSvc
}

func setupRouter(t *testing.T) (*svcMocks, http.Handler) {
	t.Helper()

	m := &svcMocks{
		event:    hmocks.NewMockEventSvc(t),
		booking:  hmocks.NewMockBookingSvc(t),
		payment:  hmocks.NewMockPaymentSvc(t),
		inquiry:  hmocks.NewMockInquirySvc(t),
		review:   hmocks.NewMockReviewSvc(t),
		location: hmocks.NewMockLocationSvc(t),
		report:   hmocks.NewMockReportSvc(t),
	}

	h := NewHandler(m.event, m.booking, m.payment, m.inquiry, m.review, m.location, m.report)

	return m, router.InitRouter("test", h)
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func validCreateEventRequest() dto.CreateEventRequest {
	start := time.Now().Add(14 * 24 * time.Hour).UTC()
	return dto.CreateEventRequest{
		Title:           "Maasai Mara Weekend Safari",
		Description:     "Three days of game drives",
		EventType:       "safari",
		CategoryID:      uuid.New().String(),
		LocationID:      uuid.New().String(),
		StartDate:       start.Format(time.RFC3339),
		EndDate:         start.Add(3 * 24 * time.Hour).Format(time.RFC3339),
		BookingDeadline: start.Add(-48 * time.Hour).Format(time.RFC3339),
		MaxParticipants: 12,
		MinParticipants: 2,
		PricingTiers: []dto.TierRequest{
			{TierType: "regular", Name: "Regular", PriceCents: 25_000_00},
		},
	}
}

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := &domain.Event{
		ID:     uuid.New().String(),
		Title:  "Maasai Mara Weekend Safari",
		Slug:   "maasai-mara-weekend-safari",
		Status: domain.EventStatusPublished,
	}
	m.event.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", validCreateEventRequest())
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "maasai-mara-weekend-safari", resp.Slug)
}

func TestHandler_CreateEvent_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	req := validCreateEventRequest()
	req.StartDate = "next friday"

	w := doJSON(t, r, http.MethodPost, "/api/events", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "start_date")
}

func TestHandler_CreateEvent_MissingTiers(t *testing.T) {
	_, r := setupRouter(t)

	req := validCreateEventRequest()
	req.PricingTiers = nil

	w := doJSON(t, r, http.MethodPost, "/api/events", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.event.EXPECT().GetDetails(mock.Anything, "nope").Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	details := &domain.EventDetails{
		Event:          domain.Event{ID: "evt-1", Slug: "maasai-mara-weekend-safari", MaxParticipants: 12},
		AvailableSpots: 7,
		PricingTiers:   []domain.PricingTier{{ID: "tier-1", TierType: domain.TierTypeRegular, PriceCents: 25_000_00, IsActive: true}},
	}
	m.event.EXPECT().GetDetails(mock.Anything, "maasai-mara-weekend-safari").Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/maasai-mara-weekend-safari", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.AvailableSpots)
	require.Len(t, resp.PricingTiers, 1)
	assert.Equal(t, int64(25_000_00), resp.PricingTiers[0].PriceCents)
}

func TestHandler_ListEvents_FeaturedFilter(t *testing.T) {
	m, r := setupRouter(t)

	featured := true
	m.event.EXPECT().
		List(mock.Anything, domain.EventFilter{Featured: &featured}).
		Return([]*domain.Event{{ID: "evt-1"}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events?featured=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_UpdateEventStatus(t *testing.T) {
	m, r := setupRouter(t)

	m.event.EXPECT().
		UpdateStatus(mock.Anything, "maasai-mara-weekend-safari", domain.EventStatusSuspended).
		Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/maasai-mara-weekend-safari/status",
		dto.UpdateEventStatusRequest{Status: "suspended"})
	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := &domain.Event{ID: "evt-1", Slug: "maasai-mara-weekend-safari"}
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		EventID:    event.ID,
		TotalCents: 25_000_00,
		Status:     domain.BookingStatusPending,
	}

	m.event.EXPECT().GetBySlug(mock.Anything, event.Slug).Return(event, nil)
	m.booking.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/maasai-mara-weekend-safari/bookings",
		dto.CreateBookingRequest{
			CustomerName:  "Jane Wanjiru",
			CustomerPhone: "0712345678",
			Participants: []dto.ParticipantRequest{
				{TierID: uuid.New().String(), Name: "Jane Wanjiru"},
			},
		})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, int64(25_000_00), resp.TotalCents)
}

func TestHandler_CreateBooking_EventNotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.event.EXPECT().GetBySlug(mock.Anything, "nope").Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/events/nope/bookings",
		dto.CreateBookingRequest{
			CustomerName:  "Jane Wanjiru",
			CustomerPhone: "0712345678",
			Participants:  []dto.ParticipantRequest{{TierID: uuid.New().String(), Name: "Jane"}},
		})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateBooking_Closed(t *testing.T) {
	m, r := setupRouter(t)

	event := &domain.Event{ID: "evt-1", Slug: "past-trip"}
	m.event.EXPECT().GetBySlug(mock.Anything, "past-trip").Return(event, nil)
	m.booking.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrBookingClosed)

	w := doJSON(t, r, http.MethodPost, "/api/events/past-trip/bookings",
		dto.CreateBookingRequest{
			CustomerName:  "Jane Wanjiru",
			CustomerPhone: "0712345678",
			Participants:  []dto.ParticipantRequest{{TierID: uuid.New().String(), Name: "Jane"}},
		})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_CapacityExceeded(t *testing.T) {
	m, r := setupRouter(t)

	event := &domain.Event{ID: "evt-1", Slug: "maasai-mara-weekend-safari"}
	m.event.EXPECT().GetBySlug(mock.Anything, event.Slug).Return(event, nil)
	m.booking.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrCapacityExceeded)

	w := doJSON(t, r, http.MethodPost, "/api/events/maasai-mara-weekend-safari/bookings",
		dto.CreateBookingRequest{
			CustomerName:  "Mary Akinyi",
			CustomerPhone: "0722000000",
			Participants:  []dto.ParticipantRequest{{TierID: uuid.New().String(), Name: "Mary Akinyi"}},
		})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_NotPending(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.booking.EXPECT().Cancel(mock.Anything, id).Return(domain.ErrBookingNotPending)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Payments ---

func TestHandler_InitiatePayment_Accepted(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	payment := &domain.Payment{
		ID:                uuid.New().String(),
		BookingID:         id,
		CheckoutRequestID: "ws_CO_1",
		AmountCents:       25_000_00,
		Status:            domain.PaymentStatusPending,
	}
	m.payment.EXPECT().Initiate(mock.Anything, id, "0712345678").Return(payment, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/pay",
		dto.InitiatePaymentRequest{Phone: "0712345678"})
	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ws_CO_1", resp.CheckoutRequestID)
}

func TestHandler_InitiatePayment_InFlight(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.payment.EXPECT().Initiate(mock.Anything, id, "0712345678").Return(nil, domain.ErrPaymentInFlight)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/pay",
		dto.InitiatePaymentRequest{Phone: "0712345678"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_InitiatePayment_GatewayDown(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.payment.EXPECT().Initiate(mock.Anything, id, "0712345678").Return(nil, domain.ErrPaymentGateway)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/pay",
		dto.InitiatePaymentRequest{Phone: "0712345678"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func mpesaCallbackBody(resultCode int) map[string]any {
	return map[string]any{
		"Body": map[string]any{
			"stkCallback": map[string]any{
				"MerchantRequestID": "mr-1",
				"CheckoutRequestID": "ws_CO_1",
				"ResultCode":        resultCode,
				"ResultDesc":        "desc",
			},
		},
	}
}

func TestHandler_MpesaCallback_Ack(t *testing.T) {
	m, r := setupRouter(t)

	m.payment.EXPECT().HandleCallback(mock.Anything, mock.Anything).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments/mpesa/callback", mpesaCallbackBody(0))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 0, resp["ResultCode"])
}

func TestHandler_MpesaCallback_AcksProcessingFailure(t *testing.T) {
	m, r := setupRouter(t)

	m.payment.EXPECT().HandleCallback(mock.Anything, mock.Anything).Return(assert.AnError)

	// still 200: the provider must not redeliver a payload we already parsed
	w := doJSON(t, r, http.MethodPost, "/api/payments/mpesa/callback", mpesaCallbackBody(1032))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_MpesaCallback_MissingCheckout(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/payments/mpesa/callback",
		map[string]any{"Body": map[string]any{"stkCallback": map[string]any{}}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Inquiries ---

func TestHandler_WhatsAppWebhook(t *testing.T) {
	m, r := setupRouter(t)

	inquiry := &domain.Inquiry{
		ID:                  uuid.New().String(),
		Phone:               "254712345678",
		Message:             "space for 4 people?",
		GuessedParticipants: 4,
		Status:              domain.InquiryStatusNew,
	}
	m.inquiry.EXPECT().Ingest(mock.Anything, mock.Anything).Return(inquiry, nil)

	w := doJSON(t, r, http.MethodPost, "/api/whatsapp/webhook",
		dto.WhatsAppWebhookRequest{From: "254712345678", Text: "space for 4 people?"})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.InquiryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.GuessedParticipants)
}

func TestHandler_WhatsAppWebhook_BadReceivedAt(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/whatsapp/webhook",
		dto.WhatsAppWebhookRequest{From: "254712345678", Text: "hi", ReceivedAt: "yesterday"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ConvertInquiry(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	booking := &domain.Booking{ID: uuid.New().String(), Status: domain.BookingStatusPending}
	m.inquiry.EXPECT().Convert(mock.Anything, mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/inquiries/"+id+"/convert",
		dto.ConvertInquiryRequest{
			EventID:      uuid.New().String(),
			Participants: []dto.ParticipantRequest{{TierID: uuid.New().String(), Name: "Brian"}},
		})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_ConvertInquiry_AlreadyConverted(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.inquiry.EXPECT().Convert(mock.Anything, mock.Anything).Return(nil, domain.ErrInquiryConverted)

	w := doJSON(t, r, http.MethodPost, "/api/inquiries/"+id+"/convert",
		dto.ConvertInquiryRequest{
			EventID:      uuid.New().String(),
			Participants: []dto.ParticipantRequest{{TierID: uuid.New().String(), Name: "Brian"}},
		})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DismissInquiry(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.inquiry.EXPECT().Dismiss(mock.Anything, id).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/inquiries/"+id+"/dismiss", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Reviews ---

func TestHandler_CreateReview(t *testing.T) {
	m, r := setupRouter(t)

	review := &domain.Review{
		ID:           uuid.New().String(),
		EventID:      "evt-1",
		ReviewerName: "Jane Wanjiru",
		Rating:       5,
	}
	m.review.EXPECT().Add(mock.Anything, "maasai-mara-weekend-safari", mock.Anything).Return(review, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/maasai-mara-weekend-safari/reviews",
		dto.CreateReviewRequest{ReviewerName: "Jane Wanjiru", Rating: 5})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateReview_BadRating(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events/some-event/reviews",
		dto.CreateReviewRequest{ReviewerName: "Jane Wanjiru", Rating: 9})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ApproveReview(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.review.EXPECT().Approve(mock.Anything, id).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/reviews/"+id+"/approve", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Reference data and reports ---

func TestHandler_CreateLocation(t *testing.T) {
	m, r := setupRouter(t)

	location := &domain.Location{ID: uuid.New().String(), Name: "Maasai Mara", County: "Narok"}
	m.location.EXPECT().Create(mock.Anything, mock.Anything).Return(location, nil)

	w := doJSON(t, r, http.MethodPost, "/api/locations",
		dto.CreateLocationRequest{Name: "Maasai Mara", County: "Narok"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateCategory_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	m.location.EXPECT().CreateCategory(mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateCategory)

	w := doJSON(t, r, http.MethodPost, "/api/categories",
		dto.CreateCategoryRequest{Name: "Safaris"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ReportSummary(t *testing.T) {
	m, r := setupRouter(t)

	report := &domain.SummaryReport{
		BookingsByStatus: map[domain.BookingStatus]int{domain.BookingStatusPaid: 12},
		RevenueCents:     300_000_00,
	}
	m.report.EXPECT().Summary(mock.Anything).Return(report, nil)

	w := doJSON(t, r, http.MethodGet, "/api/admin/reports/summary", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.SummaryReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(300_000_00), resp.RevenueCents)
}
