package ports

import (
	"context"
	"time"

	"github.com/steve-ongera/WildQuest/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) (bool, error)
	CancelExpired(ctx context.Context, ttl time.Duration) ([]*domain.Booking, error)
}
