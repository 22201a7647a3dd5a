package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/steve-ongera/WildQuest/internal/service/ports"
)

type LocationService struct {
	repo ports.LocationRepo
}

func NewLocationService(repo ports.LocationRepo) *LocationService {
	return &LocationService{repo: repo}
}

func (s *LocationService) Create(ctx context.Context, input domain.CreateLocationInput) (*domain.Location, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.County == "" {
		return nil, fmt.Errorf("%w: county is required", domain.ErrValidation)
	}

	loc := &domain.Location{
		ID:        uuid.New().String(),
		Name:      input.Name,
		County:    input.County,
		Region:    input.Region,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		IsPopular: input.IsPopular,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, loc); err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}

	return loc, nil
}

func (s *LocationService) List(ctx context.Context) ([]*domain.Location, error) {
	return s.repo.List(ctx)
}

func (s *LocationService) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	c := &domain.Category{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Slug:        domain.Slugify(input.Name),
		Description: input.Description,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	return c, nil
}

func (s *LocationService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.ListCategories(ctx)
}
