package domain

import "time"

type Review struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	BookingID    *string   `json:"booking_id,omitempty"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Title        string    `json:"title"`
	Comment      string    `json:"comment"`
	IsVerified   bool      `json:"is_verified"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateReviewInput struct {
	BookingID    *string
	ReviewerName string
	Rating       int
	Title        string
	Comment      string
}
