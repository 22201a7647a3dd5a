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

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (id, booking_id, checkout_request_id, merchant_request_id,
				phone, amount_cents, status, initiated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.BookingID, p.CheckoutRequestID, p.MerchantRequestID,
		p.Phone, p.AmountCents, p.Status, p.InitiatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}

const paymentColumns = `id, booking_id, checkout_request_id, merchant_request_id,
	phone, amount_cents, status, result_code, result_desc, mpesa_receipt,
	initiated_at, completed_at`

func scanPayment(row interface{ Scan(...any) error }) (*domain.Payment, error) {
	var (
		p          domain.Payment
		resultDesc sql.NullString
		receipt    sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.BookingID, &p.CheckoutRequestID, &p.MerchantRequestID,
		&p.Phone, &p.AmountCents, &p.Status, &p.ResultCode, &resultDesc, &receipt,
		&p.InitiatedAt, &p.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ResultDesc = resultDesc.String
	p.MpesaReceipt = receipt.String
	return &p, nil
}

func (r *PaymentRepository) GetByCheckoutID(ctx context.Context, checkoutRequestID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE checkout_request_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, checkoutRequestID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return p, nil
}

// HasPending reports whether a booking already has an STK push awaiting its
// callback.
func (r *PaymentRepository) HasPending(ctx context.Context, bookingID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM payments WHERE booking_id = $1 AND status = $2)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID, domain.PaymentStatusPending)
	if err != nil {
		return false, fmt.Errorf("check pending payment: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan pending payment: %w", err)
	}

	return exists, nil
}

// Finalize records the provider result on a pending payment. The WHERE
// clause guards on the pending status: a duplicate callback for the same
// checkout reference affects zero rows and reports applied=false, leaving
// the first-applied result untouched.
func (r *PaymentRepository) Finalize(ctx context.Context, result domain.PaymentResult) (bool, error) {
	status := domain.PaymentStatusFailed
	if result.Succeeded() {
		status = domain.PaymentStatusCompleted
	}

	query := `UPDATE payments
			  SET status = $2, result_code = $3, result_desc = $4,
				  mpesa_receipt = $5, completed_at = now()
			  WHERE checkout_request_id = $1 AND status = $6`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		result.CheckoutRequestID, status, result.ResultCode, result.ResultDesc,
		result.MpesaReceipt, domain.PaymentStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("finalize payment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("payment rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE booking_id = $1
			  ORDER BY initiated_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}
