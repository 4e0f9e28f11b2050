package repository

import (
	"context"

	"github.com/samuel46u5/playstation-billing/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type rateProfileRepository struct {
	db *sqlx.DB
}

func NewRateProfileRepository(db *sqlx.DB) RateProfileRepository {
	return &rateProfileRepository{db: db}
}

func (r *rateProfileRepository) Create(ctx context.Context, profile *domain.RateProfile) error {
	query := `
		INSERT INTO rate_profiles (id, name, hourly_rate, peak_hour_rate, peak_hour_start, peak_hour_end, weekend_multiplier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		profile.ID,
		profile.Name,
		profile.HourlyRate,
		profile.PeakHourRate,
		profile.PeakHourStart,
		profile.PeakHourEnd,
		profile.WeekendMultiplier,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	return err
}

func (r *rateProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RateProfile, error) {
	query := `
		SELECT id, name, hourly_rate, peak_hour_rate, peak_hour_start, peak_hour_end, weekend_multiplier, created_at, updated_at
		FROM rate_profiles
		WHERE id = $1
	`

	var profile domain.RateProfile
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *rateProfileRepository) List(ctx context.Context) ([]*domain.RateProfile, error) {
	query := `
		SELECT id, name, hourly_rate, peak_hour_rate, peak_hour_start, peak_hour_end, weekend_multiplier, created_at, updated_at
		FROM rate_profiles
		ORDER BY name
	`

	var profiles []*domain.RateProfile
	err := r.db.SelectContext(ctx, &profiles, query)
	if err != nil {
		return nil, err
	}

	return profiles, nil
}
