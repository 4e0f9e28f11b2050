package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/samuel46u5/playstation-billing/internal/domain"
	"github.com/samuel46u5/playstation-billing/internal/handler"
	customError "github.com/samuel46u5/playstation-billing/pkg/errors"
	"github.com/samuel46u5/playstation-billing/tests/mocks"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRentalHandler_CheckoutRental(t *testing.T) {
	rentalID := uuid.New()
	start := time.Date(2025, 1, 7, 12, 0, 0, 0, time.UTC)

	newRequest := func(body interface{}) *http.Request {
		var buf bytes.Buffer
		if str, ok := body.(string); ok {
			buf.WriteString(str)
		} else {
			json.NewEncoder(&buf).Encode(body)
		}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals/"+rentalID.String()+"/checkout", &buf)
		req.Header.Set("Content-Type", "application/json")
		return mux.SetURLVars(req, map[string]string{"rentalId": rentalID.String()})
	}

	t.Run("cash checkout returns change", func(t *testing.T) {
		mockService := mocks.NewMockRentalService()

		completedRental := &domain.Rental{
			ID:          rentalID,
			ResourceID:  "console-1",
			StartTime:   start,
			TotalAmount: decimal.NewNullDecimal(decimal.NewFromInt(45000)),
			Status:      domain.RentalStatusCompleted,
		}
		payment := &domain.Payment{
			ID:           uuid.New(),
			RentalID:     rentalID,
			Method:       domain.PaymentMethodCash,
			Amount:       decimal.NewFromInt(50000),
			ChangeAmount: decimal.NewFromInt(5000),
		}
		mockService.On("CheckoutRental", mock.Anything, rentalID, mock.MatchedBy(func(req *domain.CheckoutRentalRequest) bool {
			return req.Method == domain.PaymentMethodCash && req.TenderedAmount.Equal(decimal.NewFromInt(50000))
		})).Return(completedRental, payment, nil).Once()

		rentalHandler := handler.NewRentalHandler(mockService)
		w := httptest.NewRecorder()

		rentalHandler.CheckoutRental(w, newRequest(domain.CheckoutRentalRequest{
			Method:         domain.PaymentMethodCash,
			TenderedAmount: decimal.NewFromInt(50000),
		}))

		assert.Equal(t, http.StatusOK, w.Code)

		var wrapper struct {
			Success bool                          `json:"success"`
			Data    domain.CheckoutRentalResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &wrapper))
		assert.True(t, wrapper.Success)
		assert.True(t, wrapper.Data.Payment.ChangeAmount.Equal(decimal.NewFromInt(5000)))
		assert.Equal(t, domain.RentalStatusCompleted, wrapper.Data.Rental.Status)

		mockService.AssertExpectations(t)
	})

	t.Run("insufficient payment maps to 422", func(t *testing.T) {
		mockService := mocks.NewMockRentalService()
		mockService.On("CheckoutRental", mock.Anything, rentalID, mock.Anything).
			Return(nil, nil, customError.WrapInsufficientPayment("45000", "40000")).Once()

		rentalHandler := handler.NewRentalHandler(mockService)
		w := httptest.NewRecorder()

		rentalHandler.CheckoutRental(w, newRequest(domain.CheckoutRentalRequest{
			Method:         domain.PaymentMethodCash,
			TenderedAmount: decimal.NewFromInt(40000),
		}))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "does not cover")
	})

	t.Run("unknown payment method maps to 400", func(t *testing.T) {
		mockService := mocks.NewMockRentalService()
		rentalHandler := handler.NewRentalHandler(mockService)
		w := httptest.NewRecorder()

		rentalHandler.CheckoutRental(w, newRequest(map[string]interface{}{
			"method":          "crypto",
			"tendered_amount": "50000",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CheckoutRental", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid JSON payload", func(t *testing.T) {
		mockService := mocks.NewMockRentalService()
		rentalHandler := handler.NewRentalHandler(mockService)
		w := httptest.NewRecorder()

		rentalHandler.CheckoutRental(w, newRequest("invalid json"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid JSON payload")
	})
}

func TestRentalHandler_StartRental(t *testing.T) {
	profileID := uuid.New()
	start := time.Date(2025, 1, 7, 12, 0, 0, 0, time.UTC)

	t.Run("starts a rental", func(t *testing.T) {
		mockService := mocks.NewMockRentalService()
		mockService.On("StartRental", mock.Anything, mock.MatchedBy(func(req *domain.StartRentalRequest) bool {
			return req.ResourceID == "console-1" && req.RateProfileID == profileID
		})).Return(&domain.Rental{
			ID:            uuid.New(),
			ResourceID:    "console-1",
			RateProfileID: profileID,
			Status:        domain.RentalStatusActive,
		}, nil).Once()

		rentalHandler := handler.NewRentalHandler(mockService)

		var body bytes.Buffer
		json.NewEncoder(&body).Encode(domain.StartRentalRequest{
			ResourceID:    "console-1",
			RateProfileID: profileID,
			CustomerName:  "Budi",
			StartTime:     start,
			DurationHours: decimal.NewFromInt(3),
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", &body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		rentalHandler.StartRental(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "console-1")
		mockService.AssertExpectations(t)
	})
}
