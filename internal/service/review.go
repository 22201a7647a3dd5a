package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/steve-ongera/WildQuest/internal/service/ports"
)

type ReviewService struct {
	reviewRepo  ports.ReviewRepo
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
}

func NewReviewService(reviewRepo ports.ReviewRepo, bookingRepo ports.BookingRepo, eventRepo ports.EventRepo) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
	}
}

// Add stores a review for moderation. A review that cites a paid booking
// on the same event is marked verified; everything waits for approval
// before it shows up publicly.
func (s *ReviewService) Add(ctx context.Context, eventSlug string, input domain.CreateReviewInput) (*domain.Review, error) {
	if input.ReviewerName == "" {
		return nil, fmt.Errorf("%w: reviewer name is required", domain.ErrValidation)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetBySlug(ctx, eventSlug)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	verified := false
	if input.BookingID != nil {
		booking, err := s.bookingRepo.GetByID(ctx, *input.BookingID)
		if err != nil {
			return nil, fmt.Errorf("check booking: %w", err)
		}
		if booking.EventID != event.ID {
			return nil, fmt.Errorf("%w: booking does not belong to this event", domain.ErrValidation)
		}
		verified = booking.Status == domain.BookingStatusPaid
	}

	now := time.Now().UTC()
	review := &domain.Review{
		ID:           uuid.New().String(),
		EventID:      event.ID,
		BookingID:    input.BookingID,
		ReviewerName: input.ReviewerName,
		Rating:       input.Rating,
		Title:        input.Title,
		Comment:      input.Comment,
		IsVerified:   verified,
		IsApproved:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	return review, nil
}

func (s *ReviewService) Approve(ctx context.Context, id string) error {
	return s.reviewRepo.Approve(ctx, id)
}

func (s *ReviewService) ListApproved(ctx context.Context, eventSlug string) ([]*domain.Review, error) {
	event, err := s.eventRepo.GetBySlug(ctx, eventSlug)
	if err != nil {
		return nil, err
	}
	return s.reviewRepo.ListApproved(ctx, event.ID)
}

func (s *ReviewService) ListPending(ctx context.Context) ([]*domain.Review, error) {
	return s.reviewRepo.ListPending(ctx)
}
