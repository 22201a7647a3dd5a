package dto

import (
	"time"

	"github.com/steve-ongera/WildQuest/internal/domain"
)

type EventResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	EventType        string `json:"event_type"`
	CategoryID       string `json:"category_id"`
	LocationID       string `json:"location_id"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	MaxParticipants  int    `json:"max_participants"`
	MinParticipants  int    `json:"min_participants"`
	BookingDeadline  string `json:"booking_deadline"`
	Status           string `json:"status"`
	Featured         bool   `json:"featured"`
	CreatedAt        string `json:"created_at"`
}

type TierResponse struct {
	ID          string `json:"id"`
	TierType    string `json:"tier_type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	IsActive    bool   `json:"is_active"`
}

type EventDetailsResponse struct {
	Event          EventResponse       `json:"event"`
	AvailableSpots int                 `json:"available_spots"`
	PricingTiers   []TierResponse      `json:"pricing_tiers"`
	Images         []domain.EventImage `json:"images"`
	FAQs           []domain.FAQ        `json:"faqs"`
	Itinerary      []domain.ItineraryDay `json:"itinerary"`
}

type ParticipantResponse struct {
	ID         string `json:"id"`
	TierID     string `json:"tier_id"`
	Name       string `json:"name"`
	AgeBracket string `json:"age_bracket"`
}

type BookingResponse struct {
	ID            string                `json:"id"`
	EventID       string                `json:"event_id"`
	CustomerName  string                `json:"customer_name"`
	CustomerEmail string                `json:"customer_email,omitempty"`
	CustomerPhone string                `json:"customer_phone"`
	TotalCents    int64                 `json:"total_cents"`
	Status        string                `json:"status"`
	Participants  []ParticipantResponse `json:"participants"`
	BookedAt      string                `json:"booked_at"`
}

type PaymentResponse struct {
	ID                string `json:"id"`
	BookingID         string `json:"booking_id"`
	CheckoutRequestID string `json:"checkout_request_id"`
	Phone             string `json:"phone"`
	AmountCents       int64  `json:"amount_cents"`
	Status            string `json:"status"`
	ResultCode        *int   `json:"result_code,omitempty"`
	ResultDesc        string `json:"result_desc,omitempty"`
	MpesaReceipt      string `json:"mpesa_receipt,omitempty"`
	InitiatedAt       string `json:"initiated_at"`
}

type InquiryResponse struct {
	ID                  string  `json:"id"`
	Phone               string  `json:"phone"`
	Name                string  `json:"name,omitempty"`
	Message             string  `json:"message"`
	GuessedEventID      string  `json:"guessed_event_id,omitempty"`
	GuessedParticipants int     `json:"guessed_participants"`
	Status              string  `json:"status"`
	BookingID           *string `json:"booking_id,omitempty"`
	ReceivedAt          string  `json:"received_at"`
}

type ReviewResponse struct {
	ID           string `json:"id"`
	EventID      string `json:"event_id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	Title        string `json:"title,omitempty"`
	Comment      string `json:"comment,omitempty"`
	IsVerified   bool   `json:"is_verified"`
	IsApproved   bool   `json:"is_approved"`
	CreatedAt    string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:               e.ID,
		Title:            e.Title,
		Slug:             e.Slug,
		Description:      e.Description,
		ShortDescription: e.ShortDescription,
		EventType:        string(e.EventType),
		CategoryID:       e.CategoryID,
		LocationID:       e.LocationID,
		StartDate:        e.StartDate.Format(time.RFC3339),
		EndDate:          e.EndDate.Format(time.RFC3339),
		MaxParticipants:  e.MaxParticipants,
		MinParticipants:  e.MinParticipants,
		BookingDeadline:  e.BookingDeadline.Format(time.RFC3339),
		Status:           string(e.Status),
		Featured:         e.Featured,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	tiers := make([]TierResponse, 0, len(d.PricingTiers))
	for _, t := range d.PricingTiers {
		tiers = append(tiers, TierResponse{
			ID:          t.ID,
			TierType:    string(t.TierType),
			Name:        t.Name,
			Description: t.Description,
			PriceCents:  t.PriceCents,
			IsActive:    t.IsActive,
		})
	}

	return EventDetailsResponse{
		Event:          ToEventResponse(&d.Event),
		AvailableSpots: d.AvailableSpots,
		PricingTiers:   tiers,
		Images:         d.Images,
		FAQs:           d.FAQs,
		Itinerary:      d.Itinerary,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	participants := make([]ParticipantResponse, 0, len(b.Participants))
	for _, p := range b.Participants {
		participants = append(participants, ParticipantResponse{
			ID:         p.ID,
			TierID:     p.TierID,
			Name:       p.Name,
			AgeBracket: string(p.AgeBracket),
		})
	}

	return BookingResponse{
		ID:            b.ID,
		EventID:       b.EventID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		TotalCents:    b.TotalCents,
		Status:        string(b.Status),
		Participants:  participants,
		BookedAt:      b.BookedAt.Format(time.RFC3339),
	}
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		BookingID:         p.BookingID,
		CheckoutRequestID: p.CheckoutRequestID,
		Phone:             p.Phone,
		AmountCents:       p.AmountCents,
		Status:            string(p.Status),
		ResultCode:        p.ResultCode,
		ResultDesc:        p.ResultDesc,
		MpesaReceipt:      p.MpesaReceipt,
		InitiatedAt:       p.InitiatedAt.Format(time.RFC3339),
	}
}

func ToInquiryResponse(i *domain.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:                  i.ID,
		Phone:               i.Phone,
		Name:                i.Name,
		Message:             i.Message,
		GuessedEventID:      i.GuessedEventID,
		GuessedParticipants: i.GuessedParticipants,
		Status:              string(i.Status),
		BookingID:           i.BookingID,
		ReceivedAt:          i.ReceivedAt.Format(time.RFC3339),
	}
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		EventID:      r.EventID,
		ReviewerName: r.ReviewerName,
		Rating:       r.Rating,
		Title:        r.Title,
		Comment:      r.Comment,
		IsVerified:   r.IsVerified,
		IsApproved:   r.IsApproved,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}
