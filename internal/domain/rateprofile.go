package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateProfile is the pricing policy for a resource category (PS console,
// billiard table). Peak fields travel together: either all three are set
// or the profile has no peak window.
type RateProfile struct {
	ID                uuid.UUID           `json:"id" db:"id"`
	Name              string              `json:"name" db:"name"`
	HourlyRate        decimal.Decimal     `json:"hourly_rate" db:"hourly_rate"`
	PeakHourRate      decimal.NullDecimal `json:"peak_hour_rate" db:"peak_hour_rate"`
	PeakHourStart     sql.NullInt32       `json:"peak_hour_start" db:"peak_hour_start"` // hour of day, 0-23
	PeakHourEnd       sql.NullInt32       `json:"peak_hour_end" db:"peak_hour_end"`     // exclusive
	WeekendMultiplier decimal.NullDecimal `json:"weekend_multiplier" db:"weekend_multiplier"`
	CreatedAt         time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at" db:"updated_at"`
}

// HasPeakWindow reports whether the profile defines a complete peak window.
func (p *RateProfile) HasPeakWindow() bool {
	return p.PeakHourRate.Valid && p.PeakHourStart.Valid && p.PeakHourEnd.Valid
}

// DTOs for requests and responses

type CreateRateProfileRequest struct {
	Name              string           `json:"name" validate:"required"`
	HourlyRate        decimal.Decimal  `json:"hourly_rate" validate:"required,decimal_gt=0"`
	PeakHourRate      *decimal.Decimal `json:"peak_hour_rate" validate:"omitempty,decimal_gt=0"`
	PeakHourStart     *int             `json:"peak_hour_start" validate:"omitempty,gte=0,lte=23"`
	PeakHourEnd       *int             `json:"peak_hour_end" validate:"omitempty,gte=1,lte=24"`
	WeekendMultiplier *decimal.Decimal `json:"weekend_multiplier" validate:"omitempty,decimal_gte=1"`
}

type RateProfileListResponse struct {
	Profiles []*RateProfile `json:"profiles"`
}
