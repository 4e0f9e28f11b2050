package handler

import (
	"errors"
	"net/http"

	customError "github.com/samuel46u5/playstation-billing/pkg/errors"
	"github.com/samuel46u5/playstation-billing/pkg/response"
)

// writeBusinessError maps a service error onto an HTTP status. Anything
// that is not a BusinessError is treated as an internal failure.
func writeBusinessError(w http.ResponseWriter, fallbackMessage string, err error) {
	var businessErr *customError.BusinessError
	if !errors.As(err, &businessErr) {
		response.InternalServerError(w, fallbackMessage, err)
		return
	}

	switch businessErr.Code {
	case customError.ErrCodeSchedulingConflict:
		response.Conflict(w, businessErr.Message, businessErr.Err)
	case customError.ErrCodeInvalidDuration,
		customError.ErrCodeInsufficientPayment,
		customError.ErrCodeBookingNotClaimable,
		customError.ErrCodeRentalAlreadyClosed,
		customError.ErrCodeVerificationMismatch,
		customError.ErrCodeVerificationExpired:
		response.UnprocessableEntity(w, businessErr.Message, businessErr.Err)
	case customError.ErrCodeVerificationResendEarly:
		response.TooManyRequests(w, businessErr.Message, businessErr.Err)
	case customError.ErrCodeRateProfileNotFound,
		customError.ErrCodeBookingNotFound,
		customError.ErrCodeRentalNotFound:
		response.NotFound(w, businessErr.Message)
	default:
		response.InternalServerError(w, fallbackMessage, businessErr.Err)
	}
}
