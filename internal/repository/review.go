package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	query := `INSERT INTO reviews (id, event_id, booking_id, reviewer_name, rating,
				title, comment, is_verified, is_approved, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rev.ID, rev.EventID, rev.BookingID, rev.ReviewerName, rev.Rating,
		rev.Title, rev.Comment, rev.IsVerified, rev.IsApproved, rev.CreatedAt, rev.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateReview
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

const reviewColumns = `id, event_id, booking_id, reviewer_name, rating,
	title, comment, is_verified, is_approved, created_at, updated_at`

func scanReview(row interface{ Scan(...any) error }) (*domain.Review, error) {
	var rev domain.Review
	err := row.Scan(
		&rev.ID, &rev.EventID, &rev.BookingID, &rev.ReviewerName, &rev.Rating,
		&rev.Title, &rev.Comment, &rev.IsVerified, &rev.IsApproved, &rev.CreatedAt, &rev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) Approve(ctx context.Context, id string) error {
	query := `UPDATE reviews SET is_approved = true, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("approve review: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("review rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReviewNotFound
	}

	return nil
}

func (r *ReviewRepository) ListApproved(ctx context.Context, eventID string) ([]*domain.Review, error) {
	query := `SELECT ` + reviewColumns + `
			  FROM reviews
			  WHERE event_id = $1 AND is_approved = true
			  ORDER BY created_at DESC`
	return r.list(ctx, query, eventID)
}

func (r *ReviewRepository) ListPending(ctx context.Context) ([]*domain.Review, error) {
	query := `SELECT ` + reviewColumns + `
			  FROM reviews
			  WHERE is_approved = false
			  ORDER BY created_at`
	return r.list(ctx, query)
}

func (r *ReviewRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Review, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var res []*domain.Review
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res = append(res, rev)
	}

	return res, rows.Err()
}
