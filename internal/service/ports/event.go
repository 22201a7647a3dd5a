package ports

import (
	"context"

	"github.com/steve-ongera/WildQuest/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event, tiers []domain.PricingTier, images []domain.EventImage, faqs []domain.FAQ, itinerary []domain.ItineraryDay) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
	GetDetails(ctx context.Context, slug string) (*domain.EventDetails, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	ListTiers(ctx context.Context, eventID string) ([]domain.PricingTier, error)
	UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error
}

// EventCache is the optional catalog cache. A miss is reported as an error
// from the underlying store; callers fall through to the repository.
type EventCache interface {
	GetList(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	SetList(ctx context.Context, filter domain.EventFilter, events []*domain.Event) error
	Invalidate(ctx context.Context) error
}
