package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RentalStatusActive    = "active"
	RentalStatusCompleted = "completed"
	RentalStatusCancelled = "cancelled"
)

// Rental is an occupied billable interval on a resource, priced against a
// rate profile. TotalAmount is only set at checkout, when the pricing
// engine has run against the final duration.
type Rental struct {
	ID            uuid.UUID           `json:"id" db:"id"`
	ResourceID    string              `json:"resource_id" db:"resource_id"`
	RateProfileID uuid.UUID           `json:"rate_profile_id" db:"rate_profile_id"`
	CustomerName  string              `json:"customer_name" db:"customer_name"`
	StartTime     time.Time           `json:"start_time" db:"start_time"`
	DurationHours decimal.Decimal     `json:"duration_hours" db:"duration_hours"`
	EndTime       time.Time           `json:"end_time" db:"end_time"`
	Discount      decimal.Decimal     `json:"discount" db:"discount"`
	TotalAmount   decimal.NullDecimal `json:"total_amount" db:"total_amount"`
	Status        string              `json:"status" db:"status"`
	CreatedAt     time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at" db:"updated_at"`
}

// DTOs for requests and responses

type StartRentalRequest struct {
	ResourceID    string           `json:"resource_id" validate:"required"`
	RateProfileID uuid.UUID        `json:"rate_profile_id" validate:"required"`
	CustomerName  string           `json:"customer_name" validate:"required"`
	StartTime     time.Time        `json:"start_time" validate:"required"`
	DurationHours decimal.Decimal  `json:"duration_hours" validate:"required,decimal_gt=0"`
	Discount      *decimal.Decimal `json:"discount" validate:"omitempty,decimal_gte=0"`
}

type CheckoutRentalRequest struct {
	Method         string          `json:"method" validate:"required,oneof=cash card transfer"`
	TenderedAmount decimal.Decimal `json:"tendered_amount" validate:"decimal_gte=0"`
	Reference      string          `json:"reference"`
	Notes          string          `json:"notes"`
}

type CheckoutRentalResponse struct {
	Rental  *Rental  `json:"rental"`
	Payment *Payment `json:"payment"`
}
