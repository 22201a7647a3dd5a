package domain

import "time"

type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusConverted InquiryStatus = "converted"
	InquiryStatusDismissed InquiryStatus = "dismissed"
)

// Inquiry is a freeform WhatsApp booking request. Once converted it is
// linked to exactly one booking and becomes immutable.
type Inquiry struct {
	ID                  string        `json:"id"`
	Phone               string        `json:"phone"`
	Name                string        `json:"name"`
	Message             string        `json:"message"`
	GuessedEventID      string        `json:"guessed_event_id,omitempty"`
	GuessedParticipants int           `json:"guessed_participants"`
	Status              InquiryStatus `json:"status"`
	BookingID           *string       `json:"booking_id,omitempty"`
	ReceivedAt          time.Time     `json:"received_at"`
	ProcessedAt         *time.Time    `json:"processed_at,omitempty"`
}

type InboundMessage struct {
	From       string
	Name       string
	Text       string
	ReceivedAt time.Time
}

type ConvertInquiryInput struct {
	InquiryID       string
	EventID         string
	CustomerName    string
	CustomerEmail   string
	SpecialRequests string
	Participants    []ParticipantInput
}
