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
)

type stubBookingCreator struct {
	booking *domain.Booking
	err     error
	input   domain.CreateBookingInput
}

func (s *stubBookingCreator) Create(_ context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	s.input = input
	return s.booking, s.err
}

func TestInquiryService_Ingest(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewInquiryService(inquiryRepo, eventRepo, &stubBookingCreator{}, notifier, log)

	events := []*domain.Event{
		{ID: "evt-mara", Title: "Maasai Mara Weekend Safari"},
		{ID: "evt-diani", Title: "Diani Beach Getaway"},
	}

	eventRepo.EXPECT().List(mock.Anything, domain.EventFilter{}).Return(events, nil)
	inquiryRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Inquiry")).Return(nil)
	notifier.EXPECT().NotifyInquiryReceived(mock.Anything, mock.Anything).Return()

	inq, err := svc.Ingest(context.Background(), domain.InboundMessage{
		From: "254712345678",
		Name: "Brian Otieno",
		Text: "Hi, do you have space for 4 people on the Diani Beach Getaway next month?",
	})
	require.NoError(t, err)
	require.NotNil(t, inq)

	assert.Equal(t, domain.InquiryStatusNew, inq.Status)
	assert.Equal(t, 4, inq.GuessedParticipants)
	assert.Equal(t, "evt-diani", inq.GuessedEventID)
	assert.False(t, inq.ReceivedAt.IsZero())

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestInquiryService_Ingest_NoGuess(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewInquiryService(inquiryRepo, eventRepo, &stubBookingCreator{}, notifier, log)

	eventRepo.EXPECT().List(mock.Anything, domain.EventFilter{}).Return(nil, nil)
	inquiryRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Inquiry")).Return(nil)
	notifier.EXPECT().NotifyInquiryReceived(mock.Anything, mock.Anything).Return()

	inq, err := svc.Ingest(context.Background(), domain.InboundMessage{
		From: "254712345678",
		Text: "Habari, what trips do you have in December?",
	})
	require.NoError(t, err)

	assert.Zero(t, inq.GuessedParticipants)
	assert.Empty(t, inq.GuessedEventID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestInquiryService_Ingest_Validation(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewInquiryService(inquiryRepo, eventRepo, &stubBookingCreator{}, notifier, log)

	_, err := svc.Ingest(context.Background(), domain.InboundMessage{Text: "hello"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Ingest(context.Background(), domain.InboundMessage{From: "254712345678"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGuessParticipants(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"space for 4 people please", 4},
		{"2 adults and a child", 2},
		{"need 12 pax for a team building", 12},
		{"3 tickets for the summit", 3},
		{"no numbers here", 0},
		{"we are many", 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, guessParticipants(tc.text), tc.text)
	}
}

func TestInquiryService_Convert(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	booking := &domain.Booking{ID: "b1", EventID: "evt-1", Status: domain.BookingStatusPending}
	creator := &stubBookingCreator{booking: booking}

	svc := NewInquiryService(inquiryRepo, eventRepo, creator, notifier, log)

	inq := &domain.Inquiry{
		ID:     "inq-1",
		Phone:  "254712345678",
		Name:   "Brian Otieno",
		Status: domain.InquiryStatusNew,
	}

	inquiryRepo.EXPECT().GetByID(mock.Anything, "inq-1").Return(inq, nil)
	inquiryRepo.EXPECT().MarkConverted(mock.Anything, "inq-1", "b1").Return(true, nil)

	got, err := svc.Convert(context.Background(), domain.ConvertInquiryInput{
		InquiryID:    "inq-1",
		EventID:      "evt-1",
		Participants: []domain.ParticipantInput{{TierID: "tier-reg"}},
	})
	require.NoError(t, err)
	assert.Equal(t, booking, got)

	// customer falls back to the inquiry sender
	assert.Equal(t, "Brian Otieno", creator.input.CustomerName)
	assert.Equal(t, "254712345678", creator.input.CustomerPhone)
}

func TestInquiryService_Convert_AlreadyConverted(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewInquiryService(inquiryRepo, eventRepo, &stubBookingCreator{}, notifier, log)

	inq := &domain.Inquiry{ID: "inq-1", Status: domain.InquiryStatusConverted}

	inquiryRepo.EXPECT().GetByID(mock.Anything, "inq-1").Return(inq, nil)

	_, err := svc.Convert(context.Background(), domain.ConvertInquiryInput{InquiryID: "inq-1"})
	assert.ErrorIs(t, err, domain.ErrInquiryConverted)
}

func TestInquiryService_Convert_LostRace(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	booking := &domain.Booking{ID: "b1"}
	svc := NewInquiryService(inquiryRepo, eventRepo, &stubBookingCreator{booking: booking}, notifier, log)

	inq := &domain.Inquiry{ID: "inq-1", Phone: "254712345678", Status: domain.InquiryStatusNew}

	inquiryRepo.EXPECT().GetByID(mock.Anything, "inq-1").Return(inq, nil)
	inquiryRepo.EXPECT().MarkConverted(mock.Anything, "inq-1", "b1").Return(false, nil)

	_, err := svc.Convert(context.Background(), domain.ConvertInquiryInput{InquiryID: "inq-1"})
	assert.ErrorIs(t, err, domain.ErrInquiryConverted)
}

func TestInquiryService_Dismiss(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewInquiryService(inquiryRepo, eventRepo, &stubBookingCreator{}, notifier, log)

	inq := &domain.Inquiry{ID: "inq-1", Status: domain.InquiryStatusNew}

	inquiryRepo.EXPECT().GetByID(mock.Anything, "inq-1").Return(inq, nil)
	inquiryRepo.EXPECT().MarkDismissed(mock.Anything, "inq-1").Return(true, nil)

	require.NoError(t, svc.Dismiss(context.Background(), "inq-1"))
}

func TestInquiryService_List_BadStatus(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewInquiryService(inquiryRepo, eventRepo, &stubBookingCreator{}, notifier, log)

	_, err := svc.List(context.Background(), domain.InquiryStatus("archived"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
