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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the booking and its participants. The event row is locked
// for the duration of the transaction so the capacity check and the insert
// are atomic: participants of active bookings summed across the event can
// never exceed max_participants.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	spotQuery := `SELECT max_participants FROM events WHERE id = $1 FOR UPDATE`
	var maxParticipants int
	if err = tx.QueryRowContext(ctx, spotQuery, b.EventID).Scan(&maxParticipants); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get max participants: %w", err)
	}

	activeQuery := `SELECT COUNT(p.id)
					FROM booking_participants p
					JOIN bookings b ON b.id = p.booking_id
					WHERE b.event_id = $1 AND b.status = ANY($2)`
	var taken int
	if err = tx.QueryRowContext(
		ctx, activeQuery, b.EventID,
		pq.Array(domain.ActiveStatuses),
	).Scan(&taken); err != nil {
		return fmt.Errorf("count active participants: %w", err)
	}

	if taken+len(b.Participants) > maxParticipants {
		return domain.ErrCapacityExceeded
	}

	query := `INSERT INTO bookings (id, event_id, customer_name, customer_email, customer_phone,
				special_requests, total_cents, status, booked_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.EventID, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.SpecialRequests, b.TotalCents, b.Status, b.BookedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	for _, p := range b.Participants {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO booking_participants (id, booking_id, tier_id, name, age_bracket, special_requests)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, b.ID, p.TierID, p.Name, p.AgeBracket, p.SpecialRequests,
		)
		if err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return domain.ErrTierNotFound
			}
			return fmt.Errorf("insert participant: %w", err)
		}
	}

	return tx.Commit()
}

const bookingColumns = `id, event_id, customer_name, customer_email, customer_phone,
	special_requests, total_cents, status, booked_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.EventID, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
		&b.SpecialRequests, &b.TotalCents, &b.Status, &b.BookedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	if b.Participants, err = r.listParticipants(ctx, b.ID); err != nil {
		return nil, err
	}

	return b, nil
}

func (r *BookingRepository) listParticipants(ctx context.Context, bookingID string) ([]domain.Participant, error) {
	query := `SELECT id, booking_id, tier_id, name, age_bracket, special_requests
			  FROM booking_participants
			  WHERE booking_id = $1
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var res []domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err = rows.Scan(&p.ID, &p.BookingID, &p.TierID, &p.Name, &p.AgeBracket, &p.SpecialRequests); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE event_id = $1
			  ORDER BY booked_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by event: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// UpdateStatus transitions a booking from one status to another. The WHERE
// clause guards on the current status, so a stale transition (a duplicate
// callback trying to fail an already-paid booking) affects zero rows and
// reports applied=false instead of overwriting.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) (bool, error) {
	query := `UPDATE bookings SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return false, fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("booking rows affected: %w", err)
	}

	return rows > 0, nil
}

// CancelExpired cancels pending bookings older than ttl, freeing their
// spots. Returns the cancelled bookings for notification.
func (r *BookingRepository) CancelExpired(ctx context.Context, ttl time.Duration) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1
			    AND booked_at + make_interval(secs => $3) < now()
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusCancelled, ttl.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cancelled booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
