package repository

import (
	"context"
	"time"

	"github.com/samuel46u5/playstation-billing/internal/domain"

	"github.com/google/uuid"
)

// RateProfileRepository defines the interface for rate profile data operations
type RateProfileRepository interface {
	// Create creates a new rate profile
	Create(ctx context.Context, profile *domain.RateProfile) error

	// GetByID retrieves a rate profile by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RateProfile, error)

	// List retrieves all rate profiles
	List(ctx context.Context) ([]*domain.RateProfile, error)
}

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	// Create creates a new booking
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)

	// ListByResource retrieves all non-cancelled bookings for a resource
	ListByResource(ctx context.Context, resourceID string) ([]*domain.Booking, error)

	// UpdateStatus updates the status of a booking
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// CompleteElapsed marks active bookings whose interval has passed as completed
	CompleteElapsed(ctx context.Context, asOf time.Time) (int64, error)

	// MarkNoShows flags unclaimed bookings whose start passed the grace cutoff
	MarkNoShows(ctx context.Context, cutoff time.Time) (int64, error)
}

// RentalRepository defines the interface for rental data operations
type RentalRepository interface {
	// Create creates a new rental
	Create(ctx context.Context, rental *domain.Rental) error

	// GetByID retrieves a rental by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error)

	// ListActiveByResource retrieves the open rentals occupying a resource
	ListActiveByResource(ctx context.Context, resourceID string) ([]*domain.Rental, error)

	// Close finalizes a rental with its computed total and terminal status
	Close(ctx context.Context, rental *domain.Rental) error
}

// PaymentRepository defines the interface for the append-only payment ledger
type PaymentRepository interface {
	// Create appends a payment record; records are never updated afterwards
	Create(ctx context.Context, payment *domain.Payment) error

	// ListByRentalID retrieves all payments recorded for a rental
	ListByRentalID(ctx context.Context, rentalID uuid.UUID) ([]*domain.Payment, error)
}
