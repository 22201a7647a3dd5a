package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/steve-ongera/WildQuest/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type bookingCreator interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
}

type InquiryService struct {
	inquiryRepo ports.InquiryRepo
	eventRepo   ports.EventRepo
	bookings    bookingCreator
	notifier    ports.OpsNotifier
	logger      logger.Logger
}

func NewInquiryService(
	inquiryRepo ports.InquiryRepo,
	eventRepo ports.EventRepo,
	bookings bookingCreator,
	notifier ports.OpsNotifier,
	log logger.Logger,
) *InquiryService {
	return &InquiryService{
		inquiryRepo: inquiryRepo,
		eventRepo:   eventRepo,
		bookings:    bookings,
		notifier:    notifier,
		logger:      log,
	}
}

var participantCountRe = regexp.MustCompile(`(?i)\b(\d{1,3})\s*(?:people|persons?|pax|participants?|adults?|tickets?|slots?)\b`)

// Ingest stores an inbound WhatsApp message as a new inquiry. The parse is
// a keyword heuristic, not a commitment: an administrator still maps the
// inquiry to an event and tier before it becomes a booking.
func (s *InquiryService) Ingest(ctx context.Context, msg domain.InboundMessage) (*domain.Inquiry, error) {
	if msg.From == "" {
		return nil, fmt.Errorf("%w: sender phone is required", domain.ErrValidation)
	}
	if msg.Text == "" {
		return nil, fmt.Errorf("%w: message text is required", domain.ErrValidation)
	}

	receivedAt := msg.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now().UTC()
	}

	inq := &domain.Inquiry{
		ID:                  uuid.New().String(),
		Phone:               msg.From,
		Name:                msg.Name,
		Message:             msg.Text,
		GuessedParticipants: guessParticipants(msg.Text),
		Status:              domain.InquiryStatusNew,
		ReceivedAt:          receivedAt,
	}
	inq.GuessedEventID = s.guessEvent(ctx, msg.Text)

	if err := s.inquiryRepo.Create(ctx, inq); err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	s.logger.Info("whatsapp inquiry received",
		logger.String("inquiry_id", inq.ID),
		logger.String("phone", inq.Phone),
	)

	go s.notifier.NotifyInquiryReceived(context.WithoutCancel(ctx), inq)

	return inq, nil
}

func guessParticipants(text string) int {
	m := participantCountRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func (s *InquiryService) guessEvent(ctx context.Context, text string) string {
	events, err := s.eventRepo.List(ctx, domain.EventFilter{})
	if err != nil {
		s.logger.Debug("event guess skipped",
			logger.String("error", err.Error()),
		)
		return ""
	}

	lower := strings.ToLower(text)
	for _, e := range events {
		if strings.Contains(lower, strings.ToLower(e.Title)) {
			return e.ID
		}
	}
	return ""
}

// Convert promotes an inquiry into a booking under the normal booking
// rules. An inquiry converts at most once; concurrent conversions lose on
// the status-guarded update.
func (s *InquiryService) Convert(ctx context.Context, input domain.ConvertInquiryInput) (*domain.Booking, error) {
	inq, err := s.inquiryRepo.GetByID(ctx, input.InquiryID)
	if err != nil {
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	if inq.Status != domain.InquiryStatusNew {
		return nil, domain.ErrInquiryConverted
	}

	name := input.CustomerName
	if name == "" {
		name = inq.Name
	}

	booking, err := s.bookings.Create(ctx, domain.CreateBookingInput{
		EventID:         input.EventID,
		CustomerName:    name,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   inq.Phone,
		SpecialRequests: input.SpecialRequests,
		Participants:    input.Participants,
	})
	if err != nil {
		return nil, fmt.Errorf("convert inquiry: %w", err)
	}

	applied, err := s.inquiryRepo.MarkConverted(ctx, inq.ID, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("mark converted: %w", err)
	}
	if !applied {
		return nil, domain.ErrInquiryConverted
	}

	s.logger.Info("inquiry converted",
		logger.String("inquiry_id", inq.ID),
		logger.String("booking_id", booking.ID),
	)

	return booking, nil
}

func (s *InquiryService) Dismiss(ctx context.Context, id string) error {
	if _, err := s.inquiryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	applied, err := s.inquiryRepo.MarkDismissed(ctx, id)
	if err != nil {
		return fmt.Errorf("dismiss inquiry: %w", err)
	}
	if !applied {
		return domain.ErrInquiryConverted
	}

	return nil
}

func (s *InquiryService) List(ctx context.Context, status domain.InquiryStatus) ([]*domain.Inquiry, error) {
	if status != "" {
		switch status {
		case domain.InquiryStatusNew, domain.InquiryStatusConverted, domain.InquiryStatusDismissed:
		default:
			return nil, fmt.Errorf("%w: unknown inquiry status %q", domain.ErrValidation, status)
		}
	}
	return s.inquiryRepo.List(ctx, status)
}
