package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment tracks one STK Push attempt for a booking. CheckoutRequestID is
// the provider-assigned reference the asynchronous callback is keyed by.
type Payment struct {
	ID                string        `json:"id"`
	BookingID         string        `json:"booking_id"`
	CheckoutRequestID string        `json:"checkout_request_id"`
	MerchantRequestID string        `json:"merchant_request_id"`
	Phone             string        `json:"phone"`
	AmountCents       int64         `json:"amount_cents"`
	Status            PaymentStatus `json:"status"`
	ResultCode        *int          `json:"result_code,omitempty"`
	ResultDesc        string        `json:"result_desc,omitempty"`
	MpesaReceipt      string        `json:"mpesa_receipt,omitempty"`
	InitiatedAt       time.Time     `json:"initiated_at"`
	CompletedAt       *time.Time    `json:"completed_at,omitempty"`
}

// PaymentResult is the relevant slice of a provider callback after parsing.
type PaymentResult struct {
	CheckoutRequestID string
	ResultCode        int
	ResultDesc        string
	AmountCents       int64
	MpesaReceipt      string
	Phone             string
}

func (r PaymentResult) Succeeded() bool {
	return r.ResultCode == 0
}
