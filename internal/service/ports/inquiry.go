package ports

import (
	"context"

	"github.com/steve-ongera/WildQuest/internal/domain"
)

type InquiryRepo interface {
	Create(ctx context.Context, inq *domain.Inquiry) error
	GetByID(ctx context.Context, id string) (*domain.Inquiry, error)
	List(ctx context.Context, status domain.InquiryStatus) ([]*domain.Inquiry, error)
	MarkConverted(ctx context.Context, id, bookingID string) (bool, error)
	MarkDismissed(ctx context.Context, id string) (bool, error)
}
