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

// BookingService is what the booking endpoints need from the service layer.
type BookingService interface {
	CreateBooking(ctx context.Context, request *domain.CreateBookingRequest) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	ClaimBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	ListResourceBookings(ctx context.Context, resourceID string) ([]*domain.Booking, error)
}

type BookingHandler struct {
	service   BookingService
	validator *validator.Validate
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{
		service:   service,
		validator: newValidator(),
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid JSON payload", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &request)
	if err != nil {
		writeBusinessError(w, "Failed to create booking", err)
		return
	}

	response.Created(w, booking)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		response.BadRequest(w, "Invalid booking id", err)
		return
	}

	booking, err := h.service.CancelBooking(r.Context(), bookingID)
	if err != nil {
		writeBusinessError(w, "Failed to cancel booking", err)
		return
	}

	response.Success(w, booking)
}

func (h *BookingHandler) ClaimBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		response.BadRequest(w, "Invalid booking id", err)
		return
	}

	booking, err := h.service.ClaimBooking(r.Context(), bookingID)
	if err != nil {
		writeBusinessError(w, "Failed to claim booking", err)
		return
	}

	response.Success(w, booking)
}

func (h *BookingHandler) ListResourceBookings(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	bookings, err := h.service.ListResourceBookings(r.Context(), resourceID)
	if err != nil {
		writeBusinessError(w, "Failed to list bookings", err)
		return
	}

	response.Success(w, &domain.BookingListResponse{
		ResourceID: resourceID,
		Bookings:   bookings,
	})
}
