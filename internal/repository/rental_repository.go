package repository

import (
	"context"
	"time"

	"github.com/samuel46u5/playstation-billing/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type rentalRepository struct {
	db *sqlx.DB
}

func NewRentalRepository(db *sqlx.DB) RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	query := `
		INSERT INTO rentals (id, resource_id, rate_profile_id, customer_name, start_time, duration_hours, end_time, discount, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		rental.ID,
		rental.ResourceID,
		rental.RateProfileID,
		rental.CustomerName,
		rental.StartTime,
		rental.DurationHours,
		rental.EndTime,
		rental.Discount,
		rental.TotalAmount,
		rental.Status,
		rental.CreatedAt,
		rental.UpdatedAt,
	)

	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	query := `
		SELECT id, resource_id, rate_profile_id, customer_name, start_time, duration_hours, end_time, discount, total_amount, status, created_at, updated_at
		FROM rentals
		WHERE id = $1
	`

	var rental domain.Rental
	err := r.db.GetContext(ctx, &rental, query, id)
	if err != nil {
		return nil, err
	}

	return &rental, nil
}

func (r *rentalRepository) ListActiveByResource(ctx context.Context, resourceID string) ([]*domain.Rental, error) {
	query := `
		SELECT id, resource_id, rate_profile_id, customer_name, start_time, duration_hours, end_time, discount, total_amount, status, created_at, updated_at
		FROM rentals
		WHERE resource_id = $1 AND status = $2
		ORDER BY start_time
	`

	var rentals []*domain.Rental
	err := r.db.SelectContext(ctx, &rentals, query, resourceID, domain.RentalStatusActive)
	if err != nil {
		return nil, err
	}

	return rentals, nil
}

func (r *rentalRepository) Close(ctx context.Context, rental *domain.Rental) error {
	query := `
		UPDATE rentals
		SET total_amount = $2, status = $3, updated_at = $4
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		rental.ID,
		rental.TotalAmount,
		rental.Status,
		time.Now(),
	)

	return err
}
