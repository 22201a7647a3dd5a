package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/steve-ongera/WildQuest/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validEventInput() domain.CreateEventInput {
	start := time.Now().Add(14 * 24 * time.Hour)
	return domain.CreateEventInput{
		Title:           "Mount Kenya Summit Hike",
		EventType:       domain.EventTypeMountain,
		CategoryID:      "cat-1",
		LocationID:      "loc-1",
		StartDate:       start,
		EndDate:         start.Add(3 * 24 * time.Hour),
		BookingDeadline: start.Add(-48 * time.Hour),
		MaxParticipants: 15,
		MinParticipants: 2,
		PricingTiers: []domain.CreateTierInput{
			{TierType: domain.TierTypeRegular, Name: "Regular", PriceCents: 25_000_00},
			{TierType: domain.TierTypeVIP, Name: "VIP", PriceCents: 40_000_00},
		},
	}
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	locationRepo := mocks.NewMockLocationRepo(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, locationRepo, nil, log)

	locationRepo.EXPECT().GetByID(mock.Anything, "loc-1").Return(&domain.Location{ID: "loc-1"}, nil)
	eventRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Event"), mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	event, err := svc.CreateEvent(context.Background(), validEventInput())
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, "mount-kenya-summit-hike", event.Slug)
	assert.Equal(t, domain.EventStatusPublished, event.Status)
	assert.NotEmpty(t, event.ID)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	locationRepo := mocks.NewMockLocationRepo(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, locationRepo, nil, log)

	cases := []struct {
		name string
		// tierStage cases pass the location check before failing
		tierStage bool
		mutate    func(*domain.CreateEventInput)
	}{
		{"missing title", false, func(in *domain.CreateEventInput) { in.Title = "" }},
		{"bad event type", false, func(in *domain.CreateEventInput) { in.EventType = "cruise" }},
		{"no capacity", false, func(in *domain.CreateEventInput) { in.MaxParticipants = 0 }},
		{"min above max", false, func(in *domain.CreateEventInput) { in.MinParticipants = 20 }},
		{"end before start", false, func(in *domain.CreateEventInput) { in.EndDate = in.StartDate.Add(-time.Hour) }},
		{"deadline after start", false, func(in *domain.CreateEventInput) { in.BookingDeadline = in.StartDate.Add(time.Hour) }},
		{"no tiers", false, func(in *domain.CreateEventInput) { in.PricingTiers = nil }},
		{"bad tier type", true, func(in *domain.CreateEventInput) { in.PricingTiers[0].TierType = "gold" }},
		{"zero tier price", true, func(in *domain.CreateEventInput) { in.PricingTiers[0].PriceCents = 0 }},
		{"sub-shilling tier price", true, func(in *domain.CreateEventInput) { in.PricingTiers[0].PriceCents = 100_50 }},
		{"duplicate tier type", true, func(in *domain.CreateEventInput) {
			in.PricingTiers[1].TierType = in.PricingTiers[0].TierType
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validEventInput()
			tc.mutate(&input)

			if tc.tierStage {
				locationRepo.EXPECT().GetByID(mock.Anything, "loc-1").Return(&domain.Location{ID: "loc-1"}, nil).Once()
			}

			_, err := svc.CreateEvent(context.Background(), input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_CreateEvent_NonLatinTitle(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	locationRepo := mocks.NewMockLocationRepo(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, locationRepo, nil, log)

	input := validEventInput()
	input.Title = "サファリの冒険"

	locationRepo.EXPECT().GetByID(mock.Anything, "loc-1").Return(&domain.Location{ID: "loc-1"}, nil)
	eventRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Event"), mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	event, err := svc.CreateEvent(context.Background(), input)
	require.NoError(t, err)

	// a title with no ASCII alphanumerics gets a generated slug
	assert.NotEmpty(t, event.Slug)
	assert.Len(t, event.Slug, 8)
}

func TestEventService_CreateEvent_UnknownLocation(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	locationRepo := mocks.NewMockLocationRepo(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, locationRepo, nil, log)

	locationRepo.EXPECT().GetByID(mock.Anything, "loc-1").Return(nil, domain.ErrLocationNotFound)

	_, err := svc.CreateEvent(context.Background(), validEventInput())
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestEventService_List_CacheHit(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	locationRepo := mocks.NewMockLocationRepo(t)
	cache := mocks.NewMockEventCache(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, locationRepo, cache, log)

	filter := domain.EventFilter{CategoryID: "cat-1"}
	cached := []*domain.Event{{ID: "evt-1", Title: "Maasai Mara Weekend Safari"}}

	cache.EXPECT().GetList(mock.Anything, filter).Return(cached, nil)

	events, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, cached, events)
	eventRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestEventService_List_CacheMiss(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	locationRepo := mocks.NewMockLocationRepo(t)
	cache := mocks.NewMockEventCache(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, locationRepo, cache, log)

	filter := domain.EventFilter{}
	fromRepo := []*domain.Event{{ID: "evt-1"}}

	cache.EXPECT().GetList(mock.Anything, filter).Return(nil, errors.New("cache miss"))
	eventRepo.EXPECT().List(mock.Anything, filter).Return(fromRepo, nil)
	cache.EXPECT().SetList(mock.Anything, filter, fromRepo).Return(nil)

	events, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, fromRepo, events)
}

func TestEventService_List_NilCache(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	locationRepo := mocks.NewMockLocationRepo(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, locationRepo, nil, log)

	fromRepo := []*domain.Event{{ID: "evt-1"}}
	eventRepo.EXPECT().List(mock.Anything, domain.EventFilter{}).Return(fromRepo, nil)

	events, err := svc.List(context.Background(), domain.EventFilter{})
	require.NoError(t, err)
	assert.Equal(t, fromRepo, events)
}

func TestEventService_UpdateStatus(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	locationRepo := mocks.NewMockLocationRepo(t)
	cache := mocks.NewMockEventCache(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, locationRepo, cache, log)

	event := &domain.Event{ID: "evt-1", Slug: "maasai-mara-weekend-safari"}

	eventRepo.EXPECT().GetBySlug(mock.Anything, event.Slug).Return(event, nil)
	eventRepo.EXPECT().UpdateStatus(mock.Anything, event.ID, domain.EventStatusSuspended).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return(nil)

	err := svc.UpdateStatus(context.Background(), event.Slug, domain.EventStatusSuspended)
	require.NoError(t, err)
}

func TestEventService_UpdateStatus_BadStatus(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	locationRepo := mocks.NewMockLocationRepo(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, locationRepo, nil, log)

	err := svc.UpdateStatus(context.Background(), "some-slug", domain.EventStatus("archived"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
