package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type InquiryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInquiryRepo(db *dbpg.DB) *InquiryRepository {
	return &InquiryRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *InquiryRepository) Create(ctx context.Context, inq *domain.Inquiry) error {
	query := `INSERT INTO whatsapp_inquiries (id, phone, name, message, guessed_event_id,
				guessed_participants, status, received_at)
			  VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		inq.ID, inq.Phone, inq.Name, inq.Message, inq.GuessedEventID,
		inq.GuessedParticipants, inq.Status, inq.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}

	return nil
}

const inquiryColumns = `id, phone, name, message, COALESCE(guessed_event_id, ''),
	guessed_participants, status, booking_id, received_at, processed_at`

func scanInquiry(row interface{ Scan(...any) error }) (*domain.Inquiry, error) {
	var inq domain.Inquiry
	err := row.Scan(
		&inq.ID, &inq.Phone, &inq.Name, &inq.Message, &inq.GuessedEventID,
		&inq.GuessedParticipants, &inq.Status, &inq.BookingID, &inq.ReceivedAt, &inq.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inq, nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM whatsapp_inquiries WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get inquiry: %w", err)
	}

	inq, err := scanInquiry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("scan inquiry: %w", err)
	}

	return inq, nil
}

func (r *InquiryRepository) List(ctx context.Context, status domain.InquiryStatus) ([]*domain.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM whatsapp_inquiries`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY received_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var res []*domain.Inquiry
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		res = append(res, inq)
	}

	return res, rows.Err()
}

// MarkConverted links the booking and flips the inquiry to converted. The
// status guard makes conversion a once-only transition.
func (r *InquiryRepository) MarkConverted(ctx context.Context, id, bookingID string) (bool, error) {
	query := `UPDATE whatsapp_inquiries
			  SET status = $3, booking_id = $2, processed_at = now()
			  WHERE id = $1 AND status = $4`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, bookingID, domain.InquiryStatusConverted, domain.InquiryStatusNew,
	)
	if err != nil {
		return false, fmt.Errorf("mark inquiry converted: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("inquiry rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *InquiryRepository) MarkDismissed(ctx context.Context, id string) (bool, error) {
	query := `UPDATE whatsapp_inquiries
			  SET status = $2, processed_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.InquiryStatusDismissed, domain.InquiryStatusNew,
	)
	if err != nil {
		return false, fmt.Errorf("mark inquiry dismissed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("inquiry rows affected: %w", err)
	}

	return rows > 0, nil
}
