package repository

import (
	"context"
	"time"

	"github.com/samuel46u5/playstation-billing/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type bookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository returns the sqlx-backed booking repository. The
// bookings table carries an exclusion constraint on
// (resource_id, tstzrange(start_time, end_time)) for non-cancelled rows, so
// the race two concurrent creators can win against the in-memory conflict
// check is closed here.
func NewBookingRepository(db *sqlx.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, resource_id, customer_name, customer_phone, start_time, duration_hours, end_time, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.ResourceID,
		booking.CustomerName,
		booking.CustomerPhone,
		booking.StartTime,
		booking.DurationHours,
		booking.EndTime,
		booking.Status,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	query := `
		SELECT id, resource_id, customer_name, customer_phone, start_time, duration_hours, end_time, status, notes, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking domain.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *bookingRepository) ListByResource(ctx context.Context, resourceID string) ([]*domain.Booking, error) {
	query := `
		SELECT id, resource_id, customer_name, customer_phone, start_time, duration_hours, end_time, status, notes, created_at, updated_at
		FROM bookings
		WHERE resource_id = $1 AND status != $2
		ORDER BY start_time
	`

	var bookings []*domain.Booking
	err := r.db.SelectContext(ctx, &bookings, query, resourceID, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, status, time.Now())
	return err
}

func (r *bookingRepository) CompleteElapsed(ctx context.Context, asOf time.Time) (int64, error) {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND end_time <= $3
	`

	result, err := r.db.ExecContext(ctx, query, domain.BookingStatusCompleted, domain.BookingStatusActive, asOf)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *bookingRepository) MarkNoShows(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND start_time < $3
	`

	result, err := r.db.ExecContext(ctx, query, domain.BookingStatusNoShow, domain.BookingStatusBooked, cutoff)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
