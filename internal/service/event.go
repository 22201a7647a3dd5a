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

type EventService struct {
	repo         ports.EventRepo
	locationRepo ports.LocationRepo
	cache        ports.EventCache
	logger       logger.Logger
}

// NewEventService builds the catalog service. cache may be nil; listing
// then always hits the repository.
func NewEventService(repo ports.EventRepo, locationRepo ports.LocationRepo, cache ports.EventCache, log logger.Logger) *EventService {
	return &EventService{
		repo:         repo,
		locationRepo: locationRepo,
		cache:        cache,
		logger:       log,
	}
}

var validEventTypes = map[domain.EventType]bool{
	domain.EventTypeSafari:     true,
	domain.EventTypeBeach:      true,
	domain.EventTypeMountain:   true,
	domain.EventTypeCultural:   true,
	domain.EventTypeAdventure:  true,
	domain.EventTypeRoadTrip:   true,
	domain.EventTypeSummit:     true,
	domain.EventTypeRetreat:    true,
	domain.EventTypeConference: true,
	domain.EventTypeOther:      true,
}

var validTierTypes = map[domain.TierType]bool{
	domain.TierTypeRegular: true,
	domain.TierTypeVIP:     true,
	domain.TierTypePremium: true,
	domain.TierTypeBudget:  true,
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !validEventTypes[input.EventType] {
		return nil, fmt.Errorf("%w: unknown event type %q", domain.ErrValidation, input.EventType)
	}
	if input.MaxParticipants <= 0 {
		return nil, fmt.Errorf("%w: max_participants must be positive", domain.ErrValidation)
	}
	if input.MinParticipants <= 0 {
		input.MinParticipants = 1
	}
	if input.MinParticipants > input.MaxParticipants {
		return nil, fmt.Errorf("%w: min_participants exceeds max_participants", domain.ErrValidation)
	}
	if !input.StartDate.Before(input.EndDate) {
		return nil, fmt.Errorf("%w: start_date must precede end_date", domain.ErrValidation)
	}
	if input.BookingDeadline.After(input.StartDate) {
		return nil, fmt.Errorf("%w: booking_deadline must not be after start_date", domain.ErrValidation)
	}
	if len(input.PricingTiers) == 0 {
		return nil, fmt.Errorf("%w: at least one pricing tier is required", domain.ErrValidation)
	}

	if _, err := s.locationRepo.GetByID(ctx, input.LocationID); err != nil {
		return nil, fmt.Errorf("check location: %w", err)
	}

	slug := domain.Slugify(input.Title)
	if slug == "" {
		// titles without ASCII alphanumerics still need a unique slug
		slug = uuid.New().String()[:8]
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:               uuid.New().String(),
		Title:            input.Title,
		Slug:             slug,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		EventType:        input.EventType,
		CategoryID:       input.CategoryID,
		LocationID:       input.LocationID,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		MaxParticipants:  input.MaxParticipants,
		MinParticipants:  input.MinParticipants,
		BookingDeadline:  input.BookingDeadline,
		Status:           domain.EventStatusPublished,
		Featured:         input.Featured,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	tiers := make([]domain.PricingTier, 0, len(input.PricingTiers))
	seenTiers := make(map[domain.TierType]bool)
	for _, t := range input.PricingTiers {
		if !validTierTypes[t.TierType] {
			return nil, fmt.Errorf("%w: unknown tier type %q", domain.ErrValidation, t.TierType)
		}
		if seenTiers[t.TierType] {
			return nil, fmt.Errorf("%w: duplicate tier type %q", domain.ErrValidation, t.TierType)
		}
		seenTiers[t.TierType] = true
		if t.PriceCents <= 0 {
			return nil, fmt.Errorf("%w: tier price must be positive", domain.ErrValidation)
		}
		// Daraja only accepts whole shillings; a sub-shilling price would
		// charge less than the booking total records
		if t.PriceCents%100 != 0 {
			return nil, fmt.Errorf("%w: tier price must be a whole-shilling amount", domain.ErrValidation)
		}
		tiers = append(tiers, domain.PricingTier{
			ID:          uuid.New().String(),
			EventID:     event.ID,
			TierType:    t.TierType,
			Name:        t.Name,
			Description: t.Description,
			PriceCents:  t.PriceCents,
			IsActive:    true,
		})
	}

	images := make([]domain.EventImage, 0, len(input.Images))
	for i, img := range input.Images {
		images = append(images, domain.EventImage{
			ID:        uuid.New().String(),
			EventID:   event.ID,
			URL:       img.URL,
			AltText:   img.AltText,
			IsPrimary: img.IsPrimary,
			SortOrder: i,
		})
	}

	faqs := make([]domain.FAQ, 0, len(input.FAQs))
	for i, f := range input.FAQs {
		faqs = append(faqs, domain.FAQ{
			ID:        uuid.New().String(),
			EventID:   event.ID,
			Question:  f.Question,
			Answer:    f.Answer,
			SortOrder: i,
		})
	}

	itinerary := make([]domain.ItineraryDay, 0, len(input.Itinerary))
	for _, day := range input.Itinerary {
		itinerary = append(itinerary, domain.ItineraryDay{
			ID:            uuid.New().String(),
			EventID:       event.ID,
			DayNumber:     day.DayNumber,
			Title:         day.Title,
			Description:   day.Description,
			MealsIncluded: day.MealsIncluded,
			Accommodation: day.Accommodation,
		})
	}

	if err := s.repo.Create(ctx, event, tiers, images, faqs, itinerary); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.invalidateCache(ctx)

	return event, nil
}

func (s *EventService) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *EventService) GetDetails(ctx context.Context, slug string) (*domain.EventDetails, error) {
	return s.repo.GetDetails(ctx, slug)
}

func (s *EventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	if s.cache != nil {
		if events, err := s.cache.GetList(ctx, filter); err == nil {
			return events, nil
		}
	}

	events, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, filter, events); err != nil {
			s.logger.Debug("event list cache write failed",
				logger.String("error", err.Error()),
			)
		}
	}

	return events, nil
}

func (s *EventService) UpdateStatus(ctx context.Context, slug string, status domain.EventStatus) error {
	switch status {
	case domain.EventStatusPublished, domain.EventStatusSuspended, domain.EventStatusCancelled, domain.EventStatusDraft:
	default:
		return fmt.Errorf("%w: unknown event status %q", domain.ErrValidation, status)
	}

	event, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, event.ID, status); err != nil {
		return err
	}

	s.logger.Info("event status updated",
		logger.String("event_id", event.ID),
		logger.String("status", string(status)),
	)

	s.invalidateCache(ctx)

	return nil
}

func (s *EventService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Debug("event cache invalidation failed",
			logger.String("error", err.Error()),
		)
	}
}
