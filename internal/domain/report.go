package domain

// SummaryReport aggregates the back-office dashboard numbers.
type SummaryReport struct {
	BookingsByStatus    map[BookingStatus]int `json:"bookings_by_status"`
	RevenueCents        int64                 `json:"revenue_cents"`
	PendingPayments     int                   `json:"pending_payments"`
	TotalInquiries      int                   `json:"total_inquiries"`
	ConvertedInquiries  int                   `json:"converted_inquiries"`
	ApprovedReviews     int                   `json:"approved_reviews"`
	AverageReviewRating float64               `json:"average_review_rating"`
}

type EventReport struct {
	EventID      string  `json:"event_id"`
	Title        string  `json:"title"`
	Bookings     int     `json:"bookings"`
	Participants int     `json:"participants"`
	Capacity     int     `json:"capacity"`
	FillRatio    float64 `json:"fill_ratio"`
	RevenueCents int64   `json:"revenue_cents"`
}
