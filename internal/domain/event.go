package domain

import "time"

type EventType string

const (
	EventTypeSafari     EventType = "safari"
	EventTypeBeach      EventType = "beach"
	EventTypeMountain   EventType = "mountain"
	EventTypeCultural   EventType = "cultural"
	EventTypeAdventure  EventType = "adventure"
	EventTypeRoadTrip   EventType = "road_trip"
	EventTypeSummit     EventType = "summit"
	EventTypeConference EventType = "conference"
	EventTypeRetreat    EventType = "retreat"
	EventTypeOther      EventType = "other"
)

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusSuspended EventStatus = "suspended"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Slug             string      `json:"slug"`
	Description      string      `json:"description"`
	ShortDescription string      `json:"short_description"`
	EventType        EventType   `json:"event_type"`
	CategoryID       string      `json:"category_id"`
	LocationID       string      `json:"location_id"`
	StartDate        time.Time   `json:"start_date"`
	EndDate          time.Time   `json:"end_date"`
	MaxParticipants  int         `json:"max_participants"`
	MinParticipants  int         `json:"min_participants"`
	BookingDeadline  time.Time   `json:"booking_deadline"`
	Status           EventStatus `json:"status"`
	Featured         bool        `json:"featured"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

func (e *Event) IsBookingOpen(now time.Time) bool {
	return e.Status == EventStatusPublished && now.Before(e.BookingDeadline)
}

type TierType string

const (
	TierTypeRegular TierType = "regular"
	TierTypeVIP     TierType = "vip"
	TierTypePremium TierType = "premium"
	TierTypeBudget  TierType = "budget"
)

// PricingTier is a named price point attached to an event.
// Prices are Kenyan shilling cents.
type PricingTier struct {
	ID          string   `json:"id"`
	EventID     string   `json:"event_id"`
	TierType    TierType `json:"tier_type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"price_cents"`
	IsActive    bool     `json:"is_active"`
}

type EventImage struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	URL       string `json:"url"`
	AltText   string `json:"alt_text"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

type FAQ struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	SortOrder int    `json:"sort_order"`
}

type ItineraryDay struct {
	ID            string `json:"id"`
	EventID       string `json:"event_id"`
	DayNumber     int    `json:"day_number"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	MealsIncluded string `json:"meals_included"`
	Accommodation string `json:"accommodation"`
}

type EventDetails struct {
	Event          Event          `json:"event"`
	AvailableSpots int            `json:"available_spots"`
	PricingTiers   []PricingTier  `json:"pricing_tiers"`
	Images         []EventImage   `json:"images"`
	FAQs           []FAQ          `json:"faqs"`
	Itinerary      []ItineraryDay `json:"itinerary"`
}

type CreateEventInput struct {
	Title            string
	Description      string
	ShortDescription string
	EventType        EventType
	CategoryID       string
	LocationID       string
	StartDate        time.Time
	EndDate          time.Time
	MaxParticipants  int
	MinParticipants  int
	BookingDeadline  time.Time
	Featured         bool
	PricingTiers     []CreateTierInput
	Images           []CreateImageInput
	FAQs             []CreateFAQInput
	Itinerary        []CreateItineraryInput
}

type CreateTierInput struct {
	TierType    TierType
	Name        string
	Description string
	PriceCents  int64
}

type CreateImageInput struct {
	URL       string
	AltText   string
	IsPrimary bool
}

type CreateFAQInput struct {
	Question string
	Answer   string
}

type CreateItineraryInput struct {
	DayNumber     int
	Title         string
	Description   string
	MealsIncluded string
	Accommodation string
}

type EventFilter struct {
	CategoryID string
	LocationID string
	EventType  EventType
	Featured   *bool
}
