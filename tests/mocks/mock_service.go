package mocks

import (
	"context"

	"github.com/samuel46u5/playstation-billing/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBookingService struct {
	mock.Mock
}

// NewMockBookingService creates a new mock booking service instance
func NewMockBookingService() *MockBookingService {
	return &MockBookingService{}
}

func (m *MockBookingService) CreateBooking(ctx context.Context, request *domain.CreateBookingRequest) (*domain.Booking, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) ClaimBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) ListResourceBookings(ctx context.Context, resourceID string) ([]*domain.Booking, error) {
	args := m.Called(ctx, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockRentalService struct {
	mock.Mock
}

// NewMockRentalService creates a new mock rental service instance
func NewMockRentalService() *MockRentalService {
	return &MockRentalService{}
}

func (m *MockRentalService) StartRental(ctx context.Context, request *domain.StartRentalRequest) (*domain.Rental, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) CheckoutRental(ctx context.Context, rentalID uuid.UUID, request *domain.CheckoutRentalRequest) (*domain.Rental, *domain.Payment, error) {
	args := m.Called(ctx, rentalID, request)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Rental), args.Get(1).(*domain.Payment), args.Error(2)
}

func (m *MockRentalService) GetRental(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, []*domain.Payment, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Rental), args.Get(1).([]*domain.Payment), args.Error(2)
}

type MockVerificationService struct {
	mock.Mock
}

// NewMockVerificationService creates a new mock verification service instance
func NewMockVerificationService() *MockVerificationService {
	return &MockVerificationService{}
}

func (m *MockVerificationService) SendCode(ctx context.Context, phone string) (*domain.SendCodeResponse, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SendCodeResponse), args.Error(1)
}

func (m *MockVerificationService) VerifyCode(ctx context.Context, phone, code string) (*domain.VerifyCodeResponse, error) {
	args := m.Called(ctx, phone, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerifyCodeResponse), args.Error(1)
}

func (m *MockVerificationService) Reset(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

func (m *MockVerificationService) IsVerified(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}
