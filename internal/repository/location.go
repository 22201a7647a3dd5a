package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type LocationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLocationRepo(db *dbpg.DB) *LocationRepository {
	return &LocationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *LocationRepository) Create(ctx context.Context, loc *domain.Location) error {
	query := `INSERT INTO locations (id, name, county, region, latitude, longitude, is_popular, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		loc.ID, loc.Name, loc.County, loc.Region, loc.Latitude, loc.Longitude, loc.IsPopular, loc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert location: %w", err)
	}

	return nil
}

func (r *LocationRepository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	query := `SELECT id, name, county, region, latitude, longitude, is_popular, created_at
			  FROM locations
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}

	var loc domain.Location
	if err = row.Scan(&loc.ID, &loc.Name, &loc.County, &loc.Region, &loc.Latitude, &loc.Longitude, &loc.IsPopular, &loc.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("scan location: %w", err)
	}

	return &loc, nil
}

func (r *LocationRepository) List(ctx context.Context) ([]*domain.Location, error) {
	query := `SELECT id, name, county, region, latitude, longitude, is_popular, created_at
			  FROM locations
			  ORDER BY county, name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Location
	for rows.Next() {
		var loc domain.Location
		if err = rows.Scan(&loc.ID, &loc.Name, &loc.County, &loc.Region, &loc.Latitude, &loc.Longitude, &loc.IsPopular, &loc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		res = append(res, &loc)
	}

	return res, rows.Err()
}

func (r *LocationRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (id, name, slug, description, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Name, c.Slug, c.Description, c.IsActive, c.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateCategory
		}
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

func (r *LocationRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	query := `SELECT id, name, slug, description, is_active, created_at
			  FROM categories
			  WHERE is_active = true
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var res []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
