package ports

import (
	"context"

	"github.com/steve-ongera/WildQuest/internal/domain"
)

// OpsNotifier pushes back-office notifications to the agency's operations
// channel. Implementations must not block the request path.
type OpsNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking, e *domain.Event)
	NotifyBookingPaid(ctx context.Context, b *domain.Booking, receipt string)
	NotifyPaymentFailed(ctx context.Context, b *domain.Booking, reason string)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking)
	NotifyInquiryReceived(ctx context.Context, inq *domain.Inquiry)
}
