package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/samuel46u5/playstation-billing/internal/config"
	"github.com/samuel46u5/playstation-billing/internal/domain"
	"github.com/samuel46u5/playstation-billing/internal/pricing"
	"github.com/samuel46u5/playstation-billing/internal/repository"
	customError "github.com/samuel46u5/playstation-billing/pkg/errors"
	"github.com/samuel46u5/playstation-billing/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type RentalService struct {
	RentalRepo      repository.RentalRepository
	PaymentRepo     repository.PaymentRepository
	RateProfileRepo repository.RateProfileRepository
	BookingRepo     repository.BookingRepository
	redis           *redis.Client
	config          *config.Config
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	paymentRepo repository.PaymentRepository,
	rateProfileRepo repository.RateProfileRepository,
	bookingRepo repository.BookingRepository,
	redis *redis.Client,
	config *config.Config,
) *RentalService {
	return &RentalService{
		RentalRepo:      rentalRepo,
		PaymentRepo:     paymentRepo,
		RateProfileRepo: rateProfileRepo,
		BookingRepo:     bookingRepo,
		redis:           redis,
		config:          config,
	}
}

// StartRental opens a billable interval on a resource. The interval is
// conflict-checked against bookings and other open rentals, so a walk-in
// rental can neither squat on a reserved slot nor double-occupy a console
// that another walk-in is already using.
func (s *RentalService) StartRental(ctx context.Context, request *domain.StartRentalRequest) (*domain.Rental, error) {
	if _, err := s.getRateProfile(ctx, request.RateProfileID); err != nil {
		return nil, err
	}

	occupied, err := occupiedIntervals(ctx, s.BookingRepo, s.RentalRepo, request.ResourceID)
	if err != nil {
		return nil, err
	}

	if pricing.HasSchedulingConflict(request.ResourceID, request.StartTime, request.DurationHours, occupied) {
		return nil, customError.WrapSchedulingConflict(request.ResourceID)
	}

	discount := decimal.Zero
	if request.Discount != nil {
		discount = *request.Discount
	}

	now := time.Now()
	rental := &domain.Rental{
		ID:            uuid.New(),
		ResourceID:    request.ResourceID,
		RateProfileID: request.RateProfileID,
		CustomerName:  request.CustomerName,
		StartTime:     request.StartTime,
		DurationHours: request.DurationHours,
		EndTime:       utils.AddHours(request.StartTime, request.DurationHours),
		Discount:      discount,
		Status:        domain.RentalStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.RentalRepo.Create(ctx, rental); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return rental, nil
}

// CheckoutRental prices the rental, validates the tendered payment and, only
// when the payment is sufficient, appends exactly one ledger record and
// closes the rental. A rejected payment leaves everything untouched so the
// cashier can re-tender.
func (s *RentalService) CheckoutRental(ctx context.Context, rentalID uuid.UUID, request *domain.CheckoutRentalRequest) (*domain.Rental, *domain.Payment, error) {
	rental, err := s.RentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, customError.WrapRentalNotFound(rentalID.String())
		}
		return nil, nil, customError.WrapDatabaseError(err)
	}

	if rental.Status != domain.RentalStatusActive {
		return nil, nil, customError.WrapRentalAlreadyClosed(rentalID.String())
	}

	profile, err := s.getRateProfile(ctx, rental.RateProfileID)
	if err != nil {
		return nil, nil, err
	}

	// Profiles without their own weekend multiplier fall back to the
	// configured default.
	if !profile.WeekendMultiplier.Valid && s.config != nil {
		profile.WeekendMultiplier = decimal.NewNullDecimal(s.config.GetDefaultWeekendMultiplier())
	}

	total, err := pricing.ComputeRentalAmount(profile, rental.DurationHours, rental.StartTime, rental.Discount)
	if err != nil {
		return nil, nil, err
	}

	evaluation := pricing.EvaluatePayment(total, request.Method, request.TenderedAmount)
	if !evaluation.Valid {
		return nil, nil, evaluation.Err
	}

	now := time.Now()
	payment := &domain.Payment{
		ID:           uuid.New(),
		RentalID:     rental.ID,
		Method:       request.Method,
		Amount:       request.TenderedAmount,
		ChangeAmount: evaluation.ChangeAmount,
		Reference:    request.Reference,
		Notes:        request.Notes,
		PaidAt:       now,
		CreatedAt:    now,
	}

	if err = s.PaymentRepo.Create(ctx, payment); err != nil {
		return nil, nil, customError.WrapDatabaseError(err)
	}

	rental.TotalAmount = decimal.NewNullDecimal(total)
	rental.Status = domain.RentalStatusCompleted
	if err = s.RentalRepo.Close(ctx, rental); err != nil {
		return nil, nil, customError.WrapDatabaseError(err)
	}

	return rental, payment, nil
}

// GetRental returns a rental with its recorded payments.
func (s *RentalService) GetRental(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, []*domain.Payment, error) {
	rental, err := s.RentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, customError.WrapRentalNotFound(rentalID.String())
		}
		return nil, nil, customError.WrapDatabaseError(err)
	}

	payments, err := s.PaymentRepo.ListByRentalID(ctx, rentalID)
	if err != nil {
		return nil, nil, customError.WrapDatabaseError(err)
	}

	return rental, payments, nil
}

// getRateProfile reads a profile through the Redis cache. Profiles change
// rarely, so a stale read within the TTL is acceptable; the cache is skipped
// entirely when no Redis client is wired (unit tests).
func (s *RentalService) getRateProfile(ctx context.Context, profileID uuid.UUID) (*domain.RateProfile, error) {
	cacheKey := fmt.Sprintf("rateprofile:%s", profileID)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var profile domain.RateProfile
			if err = json.Unmarshal([]byte(cached), &profile); err == nil {
				return &profile, nil
			}
		}
	}

	profile, err := s.RateProfileRepo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapRateProfileNotFound(profileID.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}

	if s.redis != nil {
		if encoded, err := json.Marshal(profile); err == nil {
			s.redis.Set(ctx, cacheKey, encoded, s.config.GetRateProfileCacheTTL())
		}
	}

	return profile, nil
}
