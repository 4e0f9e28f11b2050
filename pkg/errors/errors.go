package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrInvalidDuration         = errors.New("duration must be greater than zero")
	ErrInsufficientPayment     = errors.New("tendered amount is less than the amount due")
	ErrSchedulingConflict      = errors.New("requested interval overlaps an existing booking")
	ErrRateProfileNotFound     = errors.New("rate profile not found")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingNotClaimable     = errors.New("booking is not in a claimable state")
	ErrRentalNotFound          = errors.New("rental not found")
	ErrRentalAlreadyClosed     = errors.New("rental is already closed")
	ErrVerificationExpired     = errors.New("verification code expired or never sent")
	ErrVerificationMismatch    = errors.New("verification code does not match")
	ErrVerificationResendEarly = errors.New("verification code was sent recently")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeInvalidDuration         = "INVALID_DURATION"
	ErrCodeInsufficientPayment     = "INSUFFICIENT_PAYMENT"
	ErrCodeSchedulingConflict      = "SCHEDULING_CONFLICT"
	ErrCodeRateProfileNotFound     = "RATE_PROFILE_NOT_FOUND"
	ErrCodeBookingNotFound         = "BOOKING_NOT_FOUND"
	ErrCodeBookingNotClaimable     = "BOOKING_NOT_CLAIMABLE"
	ErrCodeRentalNotFound          = "RENTAL_NOT_FOUND"
	ErrCodeRentalAlreadyClosed     = "RENTAL_ALREADY_CLOSED"
	ErrCodeVerificationExpired     = "VERIFICATION_CODE_EXPIRED"
	ErrCodeVerificationMismatch    = "VERIFICATION_CODE_MISMATCH"
	ErrCodeVerificationResendEarly = "VERIFICATION_RESEND_BLOCKED"
	ErrCodeDatabaseError           = "DATABASE_ERROR"
	ErrCodeCacheError              = "CACHE_ERROR"
)

// Wrap common errors with business context

func WrapInvalidDuration(duration string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidDuration,
		fmt.Sprintf("Duration %s hours is not billable", duration),
		ErrInvalidDuration,
	)
}

func WrapInsufficientPayment(due, tendered string) *BusinessError {
	return NewBusinessError(
		ErrCodeInsufficientPayment,
		fmt.Sprintf("Tendered %s does not cover amount due %s", tendered, due),
		ErrInsufficientPayment,
	)
}

func WrapSchedulingConflict(resourceID string) *BusinessError {
	return NewBusinessError(
		ErrCodeSchedulingConflict,
		fmt.Sprintf("Resource %s is already booked for the requested interval", resourceID),
		ErrSchedulingConflict,
	)
}

func WrapRateProfileNotFound(profileID string) *BusinessError {
	return NewBusinessError(
		ErrCodeRateProfileNotFound,
		fmt.Sprintf("Rate profile %s not found", profileID),
		ErrRateProfileNotFound,
	)
}

func WrapBookingNotFound(bookingID string) *BusinessError {
	return NewBusinessError(
		ErrCodeBookingNotFound,
		fmt.Sprintf("Booking %s not found", bookingID),
		ErrBookingNotFound,
	)
}

func WrapBookingNotClaimable(bookingID, status string) *BusinessError {
	return NewBusinessError(
		ErrCodeBookingNotClaimable,
		fmt.Sprintf("Booking %s is %s and cannot be claimed", bookingID, status),
		ErrBookingNotClaimable,
	)
}

func WrapRentalNotFound(rentalID string) *BusinessError {
	return NewBusinessError(
		ErrCodeRentalNotFound,
		fmt.Sprintf("Rental %s not found", rentalID),
		ErrRentalNotFound,
	)
}

func WrapRentalAlreadyClosed(rentalID string) *BusinessError {
	return NewBusinessError(
		ErrCodeRentalAlreadyClosed,
		fmt.Sprintf("Rental %s is already closed", rentalID),
		ErrRentalAlreadyClosed,
	)
}

func WrapVerificationExpired(phone string) *BusinessError {
	return NewBusinessError(
		ErrCodeVerificationExpired,
		fmt.Sprintf("No active verification code for %s", phone),
		ErrVerificationExpired,
	)
}

func WrapVerificationMismatch(phone string) *BusinessError {
	return NewBusinessError(
		ErrCodeVerificationMismatch,
		fmt.Sprintf("Verification code for %s does not match", phone),
		ErrVerificationMismatch,
	)
}

func WrapVerificationResendEarly(phone string, retryInSeconds int) *BusinessError {
	return NewBusinessError(
		ErrCodeVerificationResendEarly,
		fmt.Sprintf("Code for %s was sent recently, retry in %ds", phone, retryInSeconds),
		ErrVerificationResendEarly,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"Database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}
