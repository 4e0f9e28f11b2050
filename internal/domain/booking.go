package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	BookingStatusBooked    = "booked"
	BookingStatusActive    = "active"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
	BookingStatusNoShow    = "no_show"
)

// Booking reserves a resource for the half-open interval
// [StartTime, EndTime). Bookings become immutable once completed or
// cancelled; only the status column moves after creation.
type Booking struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	ResourceID    string          `json:"resource_id" db:"resource_id"`
	CustomerName  string          `json:"customer_name" db:"customer_name"`
	CustomerPhone string          `json:"customer_phone" db:"customer_phone"`
	StartTime     time.Time       `json:"start_time" db:"start_time"`
	DurationHours decimal.Decimal `json:"duration_hours" db:"duration_hours"`
	EndTime       time.Time       `json:"end_time" db:"end_time"`
	Status        string          `json:"status" db:"status"`
	Notes         string          `json:"notes" db:"notes"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// DTOs for requests and responses

type CreateBookingRequest struct {
	ResourceID    string          `json:"resource_id" validate:"required"`
	CustomerName  string          `json:"customer_name" validate:"required"`
	CustomerPhone string          `json:"customer_phone"`
	StartTime     time.Time       `json:"start_time" validate:"required"`
	DurationHours decimal.Decimal `json:"duration_hours" validate:"required,decimal_gt=0"`
	Notes         string          `json:"notes"`
}

type BookingListResponse struct {
	ResourceID string     `json:"resource_id"`
	Bookings   []*Booking `json:"bookings"`
}
