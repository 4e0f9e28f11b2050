package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/samuel46u5/playstation-billing/internal/config"
	"github.com/samuel46u5/playstation-billing/internal/domain"
	"github.com/samuel46u5/playstation-billing/internal/pricing"
	"github.com/samuel46u5/playstation-billing/internal/repository"
	customError "github.com/samuel46u5/playstation-billing/pkg/errors"
	"github.com/samuel46u5/playstation-billing/pkg/utils"

	"github.com/google/uuid"
)

type BookingService struct {
	BookingRepo repository.BookingRepository
	RentalRepo  repository.RentalRepository
	config      *config.Config
}

func NewBookingService(bookingRepo repository.BookingRepository, rentalRepo repository.RentalRepository, config *config.Config) *BookingService {
	return &BookingService{
		BookingRepo: bookingRepo,
		RentalRepo:  rentalRepo,
		config:      config,
	}
}

// occupiedIntervals merges the non-cancelled bookings and open rentals on a
// resource. Both hold their slot against any new interval, so a walk-in
// rental blocks a booking exactly like another booking would.
func occupiedIntervals(ctx context.Context, bookingRepo repository.BookingRepository, rentalRepo repository.RentalRepository, resourceID string) ([]pricing.Interval, error) {
	bookings, err := bookingRepo.ListByResource(ctx, resourceID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, customError.WrapDatabaseError(err)
	}

	rentals, err := rentalRepo.ListActiveByResource(ctx, resourceID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, customError.WrapDatabaseError(err)
	}

	return append(pricing.BookingIntervals(bookings), pricing.RentalIntervals(rentals)...), nil
}

// CreateBooking runs the conflict check against the current snapshot of the
// resource's occupied intervals and persists the booking when the interval
// is free.
func (s *BookingService) CreateBooking(ctx context.Context, request *domain.CreateBookingRequest) (*domain.Booking, error) {
	occupied, err := occupiedIntervals(ctx, s.BookingRepo, s.RentalRepo, request.ResourceID)
	if err != nil {
		return nil, err
	}

	if pricing.HasSchedulingConflict(request.ResourceID, request.StartTime, request.DurationHours, occupied) {
		return nil, customError.WrapSchedulingConflict(request.ResourceID)
	}

	now := time.Now()
	booking := &domain.Booking{
		ID:            uuid.New(),
		ResourceID:    request.ResourceID,
		CustomerName:  request.CustomerName,
		CustomerPhone: request.CustomerPhone,
		StartTime:     request.StartTime,
		DurationHours: request.DurationHours,
		EndTime:       utils.AddHours(request.StartTime, request.DurationHours),
		Status:        domain.BookingStatusBooked,
		Notes:         request.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.BookingRepo.Create(ctx, booking); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return booking, nil
}

// CancelBooking marks a booking cancelled. Cancelling an already cancelled
// booking is a no-op.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapBookingNotFound(bookingID.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}

	if booking.Status == domain.BookingStatusCancelled {
		return booking, nil
	}

	if err = s.BookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusCancelled); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	booking.Status = domain.BookingStatusCancelled
	return booking, nil
}

// ClaimBooking marks a booked interval active once the customer arrives.
// Claiming an already active booking is a no-op; a terminal booking cannot
// be claimed.
func (s *BookingService) ClaimBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapBookingNotFound(bookingID.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}

	switch booking.Status {
	case domain.BookingStatusActive:
		return booking, nil
	case domain.BookingStatusBooked:
		// claimable
	default:
		return nil, customError.WrapBookingNotClaimable(bookingID.String(), booking.Status)
	}

	if err = s.BookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusActive); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	booking.Status = domain.BookingStatusActive
	return booking, nil
}

// ListResourceBookings returns all non-cancelled bookings for a resource.
func (s *BookingService) ListResourceBookings(ctx context.Context, resourceID string) ([]*domain.Booking, error) {
	bookings, err := s.BookingRepo.ListByResource(ctx, resourceID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return bookings, nil
}
