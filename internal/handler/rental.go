package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/samuel46u5/playstation-billing/internal/domain"
	"github.com/samuel46u5/playstation-billing/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// RentalService is what the rental endpoints need from the service layer.
type RentalService interface {
	StartRental(ctx context.Context, request *domain.StartRentalRequest) (*domain.Rental, error)
	CheckoutRental(ctx context.Context, rentalID uuid.UUID, request *domain.CheckoutRentalRequest) (*domain.Rental, *domain.Payment, error)
	GetRental(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, []*domain.Payment, error)
}

type RentalHandler struct {
	service   RentalService
	validator *validator.Validate
}

func NewRentalHandler(service RentalService) *RentalHandler {
	return &RentalHandler{
		service:   service,
		validator: newValidator(),
	}
}

func (h *RentalHandler) StartRental(w http.ResponseWriter, r *http.Request) {
	var request domain.StartRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid JSON payload", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	rental, err := h.service.StartRental(r.Context(), &request)
	if err != nil {
		writeBusinessError(w, "Failed to start rental", err)
		return
	}

	response.Created(w, rental)
}

func (h *RentalHandler) CheckoutRental(w http.ResponseWriter, r *http.Request) {
	rentalID, err := uuid.Parse(mux.Vars(r)["rentalId"])
	if err != nil {
		response.BadRequest(w, "Invalid rental id", err)
		return
	}

	var request domain.CheckoutRentalRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid JSON payload", err)
		return
	}

	if err = h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	rental, payment, err := h.service.CheckoutRental(r.Context(), rentalID, &request)
	if err != nil {
		writeBusinessError(w, "Failed to checkout rental", err)
		return
	}

	response.Success(w, &domain.CheckoutRentalResponse{
		Rental:  rental,
		Payment: payment,
	})
}

func (h *RentalHandler) GetRental(w http.ResponseWriter, r *http.Request) {
	rentalID, err := uuid.Parse(mux.Vars(r)["rentalId"])
	if err != nil {
		response.BadRequest(w, "Invalid rental id", err)
		return
	}

	rental, payments, err := h.service.GetRental(r.Context(), rentalID)
	if err != nil {
		writeBusinessError(w, "Failed to get rental", err)
		return
	}

	response.Success(w, map[string]interface{}{
		"rental":   rental,
		"payments": payments,
	})
}
