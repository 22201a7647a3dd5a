package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/steve-ongera/WildQuest/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	notifier    ports.OpsNotifier
	paymentTTL  time.Duration
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	notifier ports.OpsNotifier,
	paymentTTL time.Duration,
	log logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		notifier:    notifier,
		paymentTTL:  paymentTTL,
		logger:      log,
	}
}

// Create books spots on an event. The total is the sum of each
// participant's tier price as of now; tier price changes later never touch
// existing bookings. The capacity check itself happens inside the
// repository transaction.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	if input.CustomerPhone == "" {
		return nil, fmt.Errorf("%w: customer phone is required", domain.ErrValidation)
	}
	if len(input.Participants) == 0 {
		return nil, fmt.Errorf("%w: at least one participant is required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	if !event.IsBookingOpen(time.Now()) {
		return nil, domain.ErrBookingClosed
	}

	if len(input.Participants) < event.MinParticipants {
		return nil, fmt.Errorf("%w: at least %d participants required", domain.ErrValidation, event.MinParticipants)
	}
	if len(input.Participants) > event.MaxParticipants {
		return nil, fmt.Errorf("%w: at most %d participants allowed", domain.ErrValidation, event.MaxParticipants)
	}

	tiers, err := s.eventRepo.ListTiers(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list tiers: %w", err)
	}
	tierByID := make(map[string]domain.PricingTier, len(tiers))
	for _, t := range tiers {
		if t.IsActive {
			tierByID[t.ID] = t
		}
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		EventID:         event.ID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		SpecialRequests: input.SpecialRequests,
		Status:          domain.BookingStatusPending,
		BookedAt:        now,
		UpdatedAt:       now,
	}

	var total int64
	for _, p := range input.Participants {
		tier, ok := tierByID[p.TierID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrTierNotFound, p.TierID)
		}
		total += tier.PriceCents

		bracket := p.AgeBracket
		if bracket == "" {
			bracket = domain.AgeBracketAdult
		}
		booking.Participants = append(booking.Participants, domain.Participant{
			ID:              uuid.New().String(),
			BookingID:       booking.ID,
			TierID:          tier.ID,
			Name:            p.Name,
			AgeBracket:      bracket,
			SpecialRequests: p.SpecialRequests,
		})
	}
	booking.TotalCents = total

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", event.ID),
		logger.Int("participants", len(booking.Participants)),
		logger.Int64("total_cents", booking.TotalCents),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, event)

	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByEvent(ctx, eventID)
}

// Cancel is the back-office escape hatch for abandoned pending bookings.
func (s *BookingService) Cancel(ctx context.Context, id string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	applied, err := s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusPending, domain.BookingStatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	if !applied {
		return domain.ErrBookingNotPending
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", booking.EventID),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking)

	return nil
}

// CancelExpired is driven by the scheduler: pending bookings older than the
// payment TTL release their spots.
func (s *BookingService) CancelExpired(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelExpired(ctx, s.paymentTTL)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("expired bookings cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *BookingService) notifyCancelled(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		s.notifier.NotifyBookingCancelled(ctx, b)
	}
}
