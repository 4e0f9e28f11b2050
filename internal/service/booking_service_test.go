package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/samuel46u5/playstation-billing/internal/domain"
	customError "github.com/samuel46u5/playstation-billing/pkg/errors"
	"github.com/samuel46u5/playstation-billing/tests/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateBooking(t *testing.T) {
	start := time.Date(2025, 1, 7, 12, 0, 0, 0, time.UTC)

	noRentals := func(rentalRepo *mocks.MockRentalRepository) {
		rentalRepo.On("ListActiveByResource", mock.Anything, "console-3").Return([]*domain.Rental{}, nil)
	}

	tests := []struct {
		name           string
		request        *domain.CreateBookingRequest
		setupMocks     func(*mocks.MockBookingRepository, *mocks.MockRentalRepository)
		expectedError  error
		validateResult func(*testing.T, *domain.Booking)
	}{
		{
			name: "Success - empty schedule",
			request: &domain.CreateBookingRequest{
				ResourceID:    "console-3",
				CustomerName:  "Budi",
				StartTime:     start,
				DurationHours: decimal.NewFromInt(2),
			},
			setupMocks: func(repo *mocks.MockBookingRepository, rentalRepo *mocks.MockRentalRepository) {
				repo.On("ListByResource", mock.Anything, "console-3").Return([]*domain.Booking{}, nil)
				noRentals(rentalRepo)
				repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
					return b.ResourceID == "console-3" && b.Status == domain.BookingStatusBooked
				})).Return(nil)
			},
			validateResult: func(t *testing.T, booking *domain.Booking) {
				assert.Equal(t, "console-3", booking.ResourceID)
				assert.True(t, booking.EndTime.Equal(start.Add(2*time.Hour)))
			},
		},
		{
			name: "Success - back-to-back with existing booking",
			request: &domain.CreateBookingRequest{
				ResourceID:    "console-3",
				CustomerName:  "Sari",
				StartTime:     start.Add(2 * time.Hour), // existing ends exactly here
				DurationHours: decimal.NewFromInt(1),
			},
			setupMocks: func(repo *mocks.MockBookingRepository, rentalRepo *mocks.MockRentalRepository) {
				existing := []*domain.Booking{{
					ID:            uuid.New(),
					ResourceID:    "console-3",
					StartTime:     start,
					DurationHours: decimal.NewFromInt(2),
					EndTime:       start.Add(2 * time.Hour),
					Status:        domain.BookingStatusBooked,
				}}
				repo.On("ListByResource", mock.Anything, "console-3").Return(existing, nil)
				noRentals(rentalRepo)
				repo.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			validateResult: func(t *testing.T, booking *domain.Booking) {
				assert.Equal(t, domain.BookingStatusBooked, booking.Status)
			},
		},
		{
			name: "Failure - overlapping booking on same console",
			request: &domain.CreateBookingRequest{
				ResourceID:    "console-3",
				CustomerName:  "Sari",
				StartTime:     start.Add(time.Hour), // 13:00, existing runs 12:00-14:00
				DurationHours: decimal.NewFromInt(1),
			},
			setupMocks: func(repo *mocks.MockBookingRepository, rentalRepo *mocks.MockRentalRepository) {
				existing := []*domain.Booking{{
					ID:            uuid.New(),
					ResourceID:    "console-3",
					StartTime:     start,
					DurationHours: decimal.NewFromInt(2),
					EndTime:       start.Add(2 * time.Hour),
					Status:        domain.BookingStatusBooked,
				}}
				repo.On("ListByResource", mock.Anything, "console-3").Return(existing, nil)
				noRentals(rentalRepo)
			},
			expectedError: customError.ErrSchedulingConflict,
		},
		{
			name: "Failure - booking over an active rental",
			request: &domain.CreateBookingRequest{
				ResourceID:    "console-3",
				CustomerName:  "Sari",
				StartTime:     start.Add(time.Hour), // 13:00, walk-in runs 12:00-15:00
				DurationHours: decimal.NewFromInt(1),
			},
			setupMocks: func(repo *mocks.MockBookingRepository, rentalRepo *mocks.MockRentalRepository) {
				repo.On("ListByResource", mock.Anything, "console-3").Return([]*domain.Booking{}, nil)
				rentalRepo.On("ListActiveByResource", mock.Anything, "console-3").Return([]*domain.Rental{{
					ID:            uuid.New(),
					ResourceID:    "console-3",
					StartTime:     start,
					DurationHours: decimal.NewFromInt(3),
					EndTime:       start.Add(3 * time.Hour),
					Status:        domain.RentalStatusActive,
				}}, nil)
			},
			expectedError: customError.ErrSchedulingConflict,
		},
		{
			name: "Failure - database error on ListByResource",
			request: &domain.CreateBookingRequest{
				ResourceID:    "console-3",
				CustomerName:  "Budi",
				StartTime:     start,
				DurationHours: decimal.NewFromInt(2),
			},
			setupMocks: func(repo *mocks.MockBookingRepository, rentalRepo *mocks.MockRentalRepository) {
				repo.On("ListByResource", mock.Anything, "console-3").Return(nil, errors.New("database connection error"))
			},
			expectedError: nil, // wrapped database error, checked below by presence
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockBookingRepository{}
			mockRentalRepo := &mocks.MockRentalRepository{}
			tt.setupMocks(mockRepo, mockRentalRepo)

			svc := NewBookingService(mockRepo, mockRentalRepo, nil)

			booking, err := svc.CreateBooking(context.Background(), tt.request)

			if tt.validateResult != nil {
				assert.NoError(t, err)
				assert.NotNil(t, booking)
				tt.validateResult(t, booking)
			} else {
				assert.Error(t, err)
				assert.Nil(t, booking)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
			}

			mockRepo.AssertExpectations(t)
			mockRentalRepo.AssertExpectations(t)
		})
	}
}

func TestClaimBooking(t *testing.T) {
	bookingID := uuid.New()

	t.Run("claims a booked booking", func(t *testing.T) {
		mockRepo := &mocks.MockBookingRepository{}
		mockRepo.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
			ID:     bookingID,
			Status: domain.BookingStatusBooked,
		}, nil)
		mockRepo.On("UpdateStatus", mock.Anything, bookingID, domain.BookingStatusActive).Return(nil)

		svc := NewBookingService(mockRepo, nil, nil)
		booking, err := svc.ClaimBooking(context.Background(), bookingID)

		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusActive, booking.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("claiming twice is a no-op", func(t *testing.T) {
		mockRepo := &mocks.MockBookingRepository{}
		mockRepo.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
			ID:     bookingID,
			Status: domain.BookingStatusActive,
		}, nil)

		svc := NewBookingService(mockRepo, nil, nil)
		booking, err := svc.ClaimBooking(context.Background(), bookingID)

		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusActive, booking.Status)
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cancelled booking cannot be claimed", func(t *testing.T) {
		mockRepo := &mocks.MockBookingRepository{}
		mockRepo.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
			ID:     bookingID,
			Status: domain.BookingStatusCancelled,
		}, nil)

		svc := NewBookingService(mockRepo, nil, nil)
		booking, err := svc.ClaimBooking(context.Background(), bookingID)

		assert.Error(t, err)
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, customError.ErrBookingNotClaimable)
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCancelBooking(t *testing.T) {
	bookingID := uuid.New()

	t.Run("cancels a booked booking", func(t *testing.T) {
		mockRepo := &mocks.MockBookingRepository{}
		mockRepo.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
			ID:     bookingID,
			Status: domain.BookingStatusBooked,
		}, nil)
		mockRepo.On("UpdateStatus", mock.Anything, bookingID, domain.BookingStatusCancelled).Return(nil)

		svc := NewBookingService(mockRepo, nil, nil)
		booking, err := svc.CancelBooking(context.Background(), bookingID)

		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		mockRepo := &mocks.MockBookingRepository{}
		mockRepo.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
			ID:     bookingID,
			Status: domain.BookingStatusCancelled,
		}, nil)

		svc := NewBookingService(mockRepo, nil, nil)
		booking, err := svc.CancelBooking(context.Background(), bookingID)

		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown booking", func(t *testing.T) {
		mockRepo := &mocks.MockBookingRepository{}
		mockRepo.On("GetByID", mock.Anything, bookingID).Return(nil, sql.ErrNoRows)

		svc := NewBookingService(mockRepo, nil, nil)
		booking, err := svc.CancelBooking(context.Background(), bookingID)

		assert.Error(t, err)
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, customError.ErrBookingNotFound)
	})
}
