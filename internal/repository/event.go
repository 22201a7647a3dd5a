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

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the event together with its pricing tiers, images, FAQs
// and itinerary in a single transaction.
func (r *EventRepository) Create(ctx context.Context, e *domain.Event, tiers []domain.PricingTier, images []domain.EventImage, faqs []domain.FAQ, itinerary []domain.ItineraryDay) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO events (id, title, slug, description, short_description, event_type,
				category_id, location_id, start_date, end_date,
				max_participants, min_participants, booking_deadline,
				status, featured, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err = tx.ExecContext(
		ctx, query,
		e.ID, e.Title, e.Slug, e.Description, e.ShortDescription, e.EventType,
		e.CategoryID, e.LocationID, e.StartDate, e.EndDate,
		e.MaxParticipants, e.MinParticipants, e.BookingDeadline,
		e.Status, e.Featured, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch {
			case pgErr.Code == "23505":
				return domain.ErrDuplicateSlug
			case pgErr.Code == "23503" && pgErr.Constraint == "events_category_id_fkey":
				return domain.ErrCategoryNotFound
			case pgErr.Code == "23503" && pgErr.Constraint == "events_location_id_fkey":
				return domain.ErrLocationNotFound
			}
		}
		return fmt.Errorf("insert event: %w", err)
	}

	for _, t := range tiers {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO pricing_tiers (id, event_id, tier_type, name, description, price_cents, is_active)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			t.ID, e.ID, t.TierType, t.Name, t.Description, t.PriceCents, t.IsActive,
		)
		if err != nil {
			return fmt.Errorf("insert pricing tier: %w", err)
		}
	}

	for _, img := range images {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO event_images (id, event_id, url, alt_text, is_primary, sort_order)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			img.ID, e.ID, img.URL, img.AltText, img.IsPrimary, img.SortOrder,
		)
		if err != nil {
			return fmt.Errorf("insert event image: %w", err)
		}
	}

	for _, f := range faqs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO event_faqs (id, event_id, question, answer, sort_order)
			 VALUES ($1, $2, $3, $4, $5)`,
			f.ID, e.ID, f.Question, f.Answer, f.SortOrder,
		)
		if err != nil {
			return fmt.Errorf("insert faq: %w", err)
		}
	}

	for _, day := range itinerary {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO event_itinerary (id, event_id, day_number, title, description, meals_included, accommodation)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			day.ID, e.ID, day.DayNumber, day.Title, day.Description, day.MealsIncluded, day.Accommodation,
		)
		if err != nil {
			return fmt.Errorf("insert itinerary day: %w", err)
		}
	}

	return tx.Commit()
}

const eventColumns = `id, title, slug, description, short_description, event_type,
	category_id, location_id, start_date, end_date,
	max_participants, min_participants, booking_deadline,
	status, featured, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.ShortDescription, &e.EventType,
		&e.CategoryID, &e.LocationID, &e.StartDate, &e.EndDate,
		&e.MaxParticipants, &e.MinParticipants, &e.BookingDeadline,
		&e.Status, &e.Featured, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`
	return r.getOne(ctx, query, slug)
}

func (r *EventRepository) getOne(ctx context.Context, query string, arg any) (*domain.Event, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	return e, nil
}

func (r *EventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE status = $1`
	args := []any{domain.EventStatusPublished}

	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if filter.LocationID != "" {
		args = append(args, filter.LocationID)
		query += fmt.Sprintf(" AND location_id = $%d", len(args))
	}
	if filter.EventType != "" {
		args = append(args, filter.EventType)
		query += fmt.Sprintf(" AND event_type = $%d", len(args))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		query += fmt.Sprintf(" AND featured = $%d", len(args))
	}
	query += " ORDER BY start_date"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// GetDetails loads the event with its child rows and the number of spots
// left after counting participants of active bookings.
func (r *EventRepository) GetDetails(ctx context.Context, slug string) (*domain.EventDetails, error) {
	query := `
		SELECT e.id, e.title, e.slug, e.description, e.short_description, e.event_type,
			e.category_id, e.location_id, e.start_date, e.end_date,
			e.max_participants, e.min_participants, e.booking_deadline,
			e.status, e.featured, e.created_at, e.updated_at,
			e.max_participants - COUNT(p.id) AS available_spots
		FROM events e
		LEFT JOIN bookings b ON b.event_id = e.id AND b.status = ANY($2)
		LEFT JOIN booking_participants p ON p.booking_id = b.id
		WHERE e.slug = $1
		GROUP BY e.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, slug, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("get details: %w", err)
	}

	var d domain.EventDetails
	err = row.Scan(
		&d.Event.ID, &d.Event.Title, &d.Event.Slug, &d.Event.Description,
		&d.Event.ShortDescription, &d.Event.EventType,
		&d.Event.CategoryID, &d.Event.LocationID, &d.Event.StartDate, &d.Event.EndDate,
		&d.Event.MaxParticipants, &d.Event.MinParticipants, &d.Event.BookingDeadline,
		&d.Event.Status, &d.Event.Featured, &d.Event.CreatedAt, &d.Event.UpdatedAt,
		&d.AvailableSpots,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event details: %w", err)
	}

	if d.PricingTiers, err = r.ListTiers(ctx, d.Event.ID); err != nil {
		return nil, err
	}
	if d.Images, err = r.listImages(ctx, d.Event.ID); err != nil {
		return nil, err
	}
	if d.FAQs, err = r.listFAQs(ctx, d.Event.ID); err != nil {
		return nil, err
	}
	if d.Itinerary, err = r.listItinerary(ctx, d.Event.ID); err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *EventRepository) ListTiers(ctx context.Context, eventID string) ([]domain.PricingTier, error) {
	query := `SELECT id, event_id, tier_type, name, description, price_cents, is_active
			  FROM pricing_tiers
			  WHERE event_id = $1
			  ORDER BY price_cents`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list tiers: %w", err)
	}
	defer rows.Close()

	var res []domain.PricingTier
	for rows.Next() {
		var t domain.PricingTier
		if err = rows.Scan(&t.ID, &t.EventID, &t.TierType, &t.Name, &t.Description, &t.PriceCents, &t.IsActive); err != nil {
			return nil, fmt.Errorf("scan tier: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func (r *EventRepository) listImages(ctx context.Context, eventID string) ([]domain.EventImage, error) {
	query := `SELECT id, event_id, url, alt_text, is_primary, sort_order
			  FROM event_images
			  WHERE event_id = $1
			  ORDER BY sort_order`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	var res []domain.EventImage
	for rows.Next() {
		var img domain.EventImage
		if err = rows.Scan(&img.ID, &img.EventID, &img.URL, &img.AltText, &img.IsPrimary, &img.SortOrder); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		res = append(res, img)
	}

	return res, rows.Err()
}

func (r *EventRepository) listFAQs(ctx context.Context, eventID string) ([]domain.FAQ, error) {
	query := `SELECT id, event_id, question, answer, sort_order
			  FROM event_faqs
			  WHERE event_id = $1
			  ORDER BY sort_order`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()

	var res []domain.FAQ
	for rows.Next() {
		var f domain.FAQ
		if err = rows.Scan(&f.ID, &f.EventID, &f.Question, &f.Answer, &f.SortOrder); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		res = append(res, f)
	}

	return res, rows.Err()
}

func (r *EventRepository) listItinerary(ctx context.Context, eventID string) ([]domain.ItineraryDay, error) {
	query := `SELECT id, event_id, day_number, title, description, meals_included, accommodation
			  FROM event_itinerary
			  WHERE event_id = $1
			  ORDER BY day_number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list itinerary: %w", err)
	}
	defer rows.Close()

	var res []domain.ItineraryDay
	for rows.Next() {
		var day domain.ItineraryDay
		if err = rows.Scan(&day.ID, &day.EventID, &day.DayNumber, &day.Title, &day.Description, &day.MealsIncluded, &day.Accommodation); err != nil {
			return nil, fmt.Errorf("scan itinerary day: %w", err)
		}
		res = append(res, day)
	}

	return res, rows.Err()
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error {
	query := `UPDATE events SET status = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}
