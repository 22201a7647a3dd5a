package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusFailed    BookingStatus = "failed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusRefunded  BookingStatus = "refunded"
)

// ActiveStatuses are the booking statuses that hold spots against an
// event's capacity.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusPaid}

type Booking struct {
	ID              string        `json:"id"`
	EventID         string        `json:"event_id"`
	CustomerName    string        `json:"customer_name"`
	CustomerEmail   string        `json:"customer_email"`
	CustomerPhone   string        `json:"customer_phone"`
	SpecialRequests string        `json:"special_requests"`
	TotalCents      int64         `json:"total_cents"`
	Status          BookingStatus `json:"status"`
	Participants    []Participant `json:"participants"`
	BookedAt        time.Time     `json:"booked_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type AgeBracket string

const (
	AgeBracketAdult  AgeBracket = "adult"
	AgeBracketChild  AgeBracket = "child"
	AgeBracketInfant AgeBracket = "infant"
)

type Participant struct {
	ID              string     `json:"id"`
	BookingID       string     `json:"booking_id"`
	TierID          string     `json:"tier_id"`
	Name            string     `json:"name"`
	AgeBracket      AgeBracket `json:"age_bracket"`
	SpecialRequests string     `json:"special_requests"`
}

type CreateBookingInput struct {
	EventID         string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	SpecialRequests string
	Participants    []ParticipantInput
}

type ParticipantInput struct {
	TierID          string
	Name            string
	AgeBracket      AgeBracket
	SpecialRequests string
}
