package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// ReportRepository runs the read-only aggregations behind the back-office
// dashboard.
type ReportRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReportRepo(db *dbpg.DB) *ReportRepository {
	return &ReportRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReportRepository) Summary(ctx context.Context) (*domain.SummaryReport, error) {
	report := &domain.SummaryReport{
		BookingsByStatus: make(map[domain.BookingStatus]int),
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("bookings by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status domain.BookingStatus
			count  int
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan booking count: %w", err)
		}
		report.BookingsByStatus[status] = count
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT COALESCE(SUM(total_cents), 0) FROM bookings WHERE status = $1`,
		domain.BookingStatusPaid)
	if err != nil {
		return nil, fmt.Errorf("revenue: %w", err)
	}
	if err = row.Scan(&report.RevenueCents); err != nil {
		return nil, fmt.Errorf("scan revenue: %w", err)
	}

	row, err = r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT COUNT(*) FROM payments WHERE status = $1`,
		domain.PaymentStatusPending)
	if err != nil {
		return nil, fmt.Errorf("pending payments: %w", err)
	}
	if err = row.Scan(&report.PendingPayments); err != nil {
		return nil, fmt.Errorf("scan pending payments: %w", err)
	}

	row, err = r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT COUNT(*),
				COUNT(*) FILTER (WHERE status = $1)
		 FROM whatsapp_inquiries`,
		domain.InquiryStatusConverted)
	if err != nil {
		return nil, fmt.Errorf("inquiry counts: %w", err)
	}
	if err = row.Scan(&report.TotalInquiries, &report.ConvertedInquiries); err != nil {
		return nil, fmt.Errorf("scan inquiry counts: %w", err)
	}

	row, err = r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT COUNT(*), COALESCE(AVG(rating), 0)
		 FROM reviews
		 WHERE is_approved = true`)
	if err != nil {
		return nil, fmt.Errorf("review stats: %w", err)
	}
	if err = row.Scan(&report.ApprovedReviews, &report.AverageReviewRating); err != nil {
		return nil, fmt.Errorf("scan review stats: %w", err)
	}

	return report, nil
}

func (r *ReportRepository) PerEvent(ctx context.Context) ([]*domain.EventReport, error) {
	query := `
		SELECT e.id, e.title, e.max_participants,
			COUNT(DISTINCT b.id) AS bookings,
			COUNT(p.id) AS participants,
			COALESCE(SUM(b.total_cents) FILTER (WHERE b.status = $1), 0) AS revenue_cents
		FROM events e
		LEFT JOIN bookings b ON b.event_id = e.id AND b.status IN ($1, $2)
		LEFT JOIN booking_participants p ON p.booking_id = b.id
		GROUP BY e.id
		ORDER BY revenue_cents DESC, e.title`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		domain.BookingStatusPaid, domain.BookingStatusPending)
	if err != nil {
		return nil, fmt.Errorf("per-event report: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventReport
	for rows.Next() {
		var er domain.EventReport
		if err = rows.Scan(&er.EventID, &er.Title, &er.Capacity, &er.Bookings, &er.Participants, &er.RevenueCents); err != nil {
			return nil, fmt.Errorf("scan event report: %w", err)
		}
		if er.Capacity > 0 {
			er.FillRatio = float64(er.Participants) / float64(er.Capacity)
		}
		res = append(res, &er)
	}

	return res, rows.Err()
}
