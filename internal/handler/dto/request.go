package dto

type TierRequest struct {
	TierType    string `json:"tier_type" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
}

type ImageRequest struct {
	URL       string `json:"url" binding:"required"`
	AltText   string `json:"alt_text"`
	IsPrimary bool   `json:"is_primary"`
}

type FAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

type ItineraryDayRequest struct {
	DayNumber     int    `json:"day_number" binding:"required,gt=0"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	MealsIncluded string `json:"meals_included"`
	Accommodation string `json:"accommodation"`
}

type CreateEventRequest struct {
	Title            string                `json:"title" binding:"required"`
	Description      string                `json:"description" binding:"required"`
	ShortDescription string                `json:"short_description"`
	EventType        string                `json:"event_type" binding:"required"`
	CategoryID       string                `json:"category_id" binding:"required,uuid"`
	LocationID       string                `json:"location_id" binding:"required,uuid"`
	StartDate        string                `json:"start_date" binding:"required"`
	EndDate          string                `json:"end_date" binding:"required"`
	MaxParticipants  int                   `json:"max_participants" binding:"required,gt=0"`
	MinParticipants  int                   `json:"min_participants"`
	BookingDeadline  string                `json:"booking_deadline" binding:"required"`
	Featured         bool                  `json:"featured"`
	PricingTiers     []TierRequest         `json:"pricing_tiers" binding:"required,min=1,dive"`
	Images           []ImageRequest        `json:"images" binding:"dive"`
	FAQs             []FAQRequest          `json:"faqs" binding:"dive"`
	Itinerary        []ItineraryDayRequest `json:"itinerary" binding:"dive"`
}

type UpdateEventStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ParticipantRequest struct {
	TierID          string `json:"tier_id" binding:"required,uuid"`
	Name            string `json:"name" binding:"required"`
	AgeBracket      string `json:"age_bracket"`
	SpecialRequests string `json:"special_requests"`
}

type CreateBookingRequest struct {
	CustomerName    string               `json:"customer_name" binding:"required"`
	CustomerEmail   string               `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone   string               `json:"customer_phone" binding:"required"`
	SpecialRequests string               `json:"special_requests"`
	Participants    []ParticipantRequest `json:"participants" binding:"required,min=1,dive"`
}

type InitiatePaymentRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// WhatsAppWebhookRequest is the inbound message shape the gateway posts.
type WhatsAppWebhookRequest struct {
	From       string `json:"from" binding:"required"`
	Name       string `json:"name"`
	Text       string `json:"text" binding:"required"`
	ReceivedAt string `json:"received_at"`
}

type ConvertInquiryRequest struct {
	EventID         string               `json:"event_id" binding:"required,uuid"`
	CustomerName    string               `json:"customer_name"`
	CustomerEmail   string               `json:"customer_email" binding:"omitempty,email"`
	SpecialRequests string               `json:"special_requests"`
	Participants    []ParticipantRequest `json:"participants" binding:"required,min=1,dive"`
}

type CreateReviewRequest struct {
	BookingID    *string `json:"booking_id" binding:"omitempty,uuid"`
	ReviewerName string  `json:"reviewer_name" binding:"required"`
	Rating       int     `json:"rating" binding:"required,min=1,max=5"`
	Title        string  `json:"title"`
	Comment      string  `json:"comment"`
}

type CreateLocationRequest struct {
	Name      string   `json:"name" binding:"required"`
	County    string   `json:"county" binding:"required"`
	Region    string   `json:"region"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	IsPopular bool     `json:"is_popular"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
