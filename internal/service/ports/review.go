package ports

import (
	"context"

	"github.com/steve-ongera/WildQuest/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, rev *domain.Review) error
	Approve(ctx context.Context, id string) error
	ListApproved(ctx context.Context, eventID string) ([]*domain.Review, error)
	ListPending(ctx context.Context) ([]*domain.Review, error)
}
