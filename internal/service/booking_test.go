package service

import (
	"context"
	"testing"
	"time"

	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/steve-ongera/WildQuest/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func openEvent() *domain.Event {
	return &domain.Event{
		ID:              "evt-1",
		Title:           "Maasai Mara Weekend Safari",
		Slug:            "maasai-mara-weekend-safari",
		Status:          domain.EventStatusPublished,
		MinParticipants: 1,
		MaxParticipants: 10,
		BookingDeadline: time.Now().Add(48 * time.Hour),
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, 30*time.Minute, log)

	event := openEvent()
	tiers := []domain.PricingTier{
		{ID: "tier-reg", EventID: event.ID, TierType: domain.TierTypeRegular, PriceCents: 10_000_00, IsActive: true},
		{ID: "tier-vip", EventID: event.ID, TierType: domain.TierTypeVIP, PriceCents: 18_000_00, IsActive: true},
	}

	eventRepo.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil)
	eventRepo.EXPECT().ListTiers(mock.Anything, event.ID).Return(tiers, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, event).Return()

	input := domain.CreateBookingInput{
		EventID:       event.ID,
		CustomerName:  "Jane Wanjiru",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "0712345678",
		Participants: []domain.ParticipantInput{
			{TierID: "tier-reg", Name: "Jane Wanjiru"},
			{TierID: "tier-reg", Name: "Brian Otieno"},
			{TierID: "tier-vip", Name: "Alice Njeri", AgeBracket: domain.AgeBracketChild},
		},
	}

	booking, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, booking)

	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, int64(38_000_00), booking.TotalCents)
	assert.Len(t, booking.Participants, 3)
	// unset bracket defaults to adult
	assert.Equal(t, domain.AgeBracketAdult, booking.Participants[0].AgeBracket)
	assert.Equal(t, domain.AgeBracketChild, booking.Participants[2].AgeBracket)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_Validation(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, 30*time.Minute, log)

	cases := []struct {
		name  string
		input domain.CreateBookingInput
	}{
		{
			name: "missing customer name",
			input: domain.CreateBookingInput{
				EventID:       "evt-1",
				CustomerPhone: "0712345678",
				Participants:  []domain.ParticipantInput{{TierID: "tier-reg"}},
			},
		},
		{
			name: "missing customer phone",
			input: domain.CreateBookingInput{
				EventID:      "evt-1",
				CustomerName: "Jane Wanjiru",
				Participants: []domain.ParticipantInput{{TierID: "tier-reg"}},
			},
		},
		{
			name: "no participants",
			input: domain.CreateBookingInput{
				EventID:       "evt-1",
				CustomerName:  "Jane Wanjiru",
				CustomerPhone: "0712345678",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Create_BookingClosed(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, 30*time.Minute, log)

	event := openEvent()
	event.BookingDeadline = time.Now().Add(-time.Hour)

	eventRepo.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		EventID:       event.ID,
		CustomerName:  "Jane Wanjiru",
		CustomerPhone: "0712345678",
		Participants:  []domain.ParticipantInput{{TierID: "tier-reg"}},
	})
	assert.ErrorIs(t, err, domain.ErrBookingClosed)
}

func TestBookingService_Create_DraftEventClosed(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, 30*time.Minute, log)

	event := openEvent()
	event.Status = domain.EventStatusDraft

	eventRepo.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		EventID:       event.ID,
		CustomerName:  "Jane Wanjiru",
		CustomerPhone: "0712345678",
		Participants:  []domain.ParticipantInput{{TierID: "tier-reg"}},
	})
	assert.ErrorIs(t, err, domain.ErrBookingClosed)
}

func TestBookingService_Create_ParticipantBounds(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, 30*time.Minute, log)

	event := openEvent()
	event.MinParticipants = 2
	event.MaxParticipants = 3

	eventRepo.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		EventID:       event.ID,
		CustomerName:  "Jane Wanjiru",
		CustomerPhone: "0712345678",
		Participants:  []domain.ParticipantInput{{TierID: "tier-reg"}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	eventRepo.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil)

	_, err = svc.Create(context.Background(), domain.CreateBookingInput{
		EventID:       event.ID,
		CustomerName:  "Jane Wanjiru",
		CustomerPhone: "0712345678",
		Participants: []domain.ParticipantInput{
			{TierID: "tier-reg"}, {TierID: "tier-reg"},
			{TierID: "tier-reg"}, {TierID: "tier-reg"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_CapacityExceeded(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, 30*time.Minute, log)

	event := openEvent()
	event.MaxParticipants = 4
	tiers := []domain.PricingTier{
		{ID: "tier-reg", EventID: event.ID, TierType: domain.TierTypeRegular, PriceCents: 100_00, IsActive: true},
	}

	eventRepo.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil)
	eventRepo.EXPECT().ListTiers(mock.Anything, event.ID).Return(tiers, nil)

	// the first booking fills all 4 spots
	bookingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, event).Return()

	full, err := svc.Create(context.Background(), domain.CreateBookingInput{
		EventID:       event.ID,
		CustomerName:  "Jane Wanjiru",
		CustomerPhone: "0712345678",
		Participants: []domain.ParticipantInput{
			{TierID: "tier-reg", Name: "Jane Wanjiru"},
			{TierID: "tier-reg", Name: "Brian Otieno"},
			{TierID: "tier-reg", Name: "Alice Njeri"},
			{TierID: "tier-reg", Name: "Peter Kamau"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(400_00), full.TotalCents)

	// the 5th seat does not exist; the locked count in the repository
	// transaction rejects it
	bookingRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(domain.ErrCapacityExceeded).Once()

	_, err = svc.Create(context.Background(), domain.CreateBookingInput{
		EventID:       event.ID,
		CustomerName:  "Mary Akinyi",
		CustomerPhone: "0722000000",
		Participants:  []domain.ParticipantInput{{TierID: "tier-reg", Name: "Mary Akinyi"}},
	})
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_UnknownTier(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, 30*time.Minute, log)

	event := openEvent()
	tiers := []domain.PricingTier{
		{ID: "tier-reg", EventID: event.ID, PriceCents: 10_000_00, IsActive: true},
		{ID: "tier-old", EventID: event.ID, PriceCents: 8_000_00, IsActive: false},
	}

	eventRepo.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil)
	eventRepo.EXPECT().ListTiers(mock.Anything, event.ID).Return(tiers, nil)

	// an inactive tier is not bookable
	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		EventID:       event.ID,
		CustomerName:  "Jane Wanjiru",
		CustomerPhone: "0712345678",
		Participants:  []domain.ParticipantInput{{TierID: "tier-old"}},
	})
	assert.ErrorIs(t, err, domain.ErrTierNotFound)
}

func TestBookingService_Cancel(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, 30*time.Minute, log)

	booking := &domain.Booking{ID: "b1", EventID: "evt-1", Status: domain.BookingStatusPending}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, domain.BookingStatusCancelled).
		Return(true, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, booking).Return()

	err := svc.Cancel(context.Background(), "b1")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Cancel_NotPending(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, 30*time.Minute, log)

	booking := &domain.Booking{ID: "b1", EventID: "evt-1", Status: domain.BookingStatusPaid}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, domain.BookingStatusCancelled).
		Return(false, nil)

	err := svc.Cancel(context.Background(), "b1")
	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestBookingService_CancelExpired(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	ttl := 30 * time.Minute
	svc := NewBookingService(bookingRepo, eventRepo, notifier, ttl, log)

	expired := []*domain.Booking{
		{ID: "b1", EventID: "evt-1"},
		{ID: "b2", EventID: "evt-2"},
	}

	bookingRepo.EXPECT().CancelExpired(mock.Anything, ttl).Return(expired, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, expired[0]).Return()
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, expired[1]).Return()

	cancelled, err := svc.CancelExpired(context.Background())
	require.NoError(t, err)
	assert.Len(t, cancelled, 2)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_CancelExpired_Empty(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, 30*time.Minute, log)

	bookingRepo.EXPECT().CancelExpired(mock.Anything, 30*time.Minute).Return(nil, nil)

	cancelled, err := svc.CancelExpired(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cancelled)
}
