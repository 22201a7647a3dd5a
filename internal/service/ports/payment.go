package ports

import (
	"context"

	"github.com/steve-ongera/WildQuest/internal/domain"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByCheckoutID(ctx context.Context, checkoutRequestID string) (*domain.Payment, error)
	HasPending(ctx context.Context, bookingID string) (bool, error)
	Finalize(ctx context.Context, result domain.PaymentResult) (bool, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.Payment, error)
}

type STKPush struct {
	MerchantRequestID string
	CheckoutRequestID string
}

// PaymentGateway issues the provider's push-payment prompt. The call is
// fire-and-forget; the outcome arrives on the callback endpoint.
type PaymentGateway interface {
	RequestPush(ctx context.Context, phone string, amountCents int64, accountRef, description string) (*STKPush, error)
}
