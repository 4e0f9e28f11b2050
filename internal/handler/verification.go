package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/samuel46u5/playstation-billing/internal/domain"
	"github.com/samuel46u5/playstation-billing/pkg/response"

	"github.com/go-playground/validator/v10"
)

// VerificationService is what the phone verification endpoints need.
type VerificationService interface {
	SendCode(ctx context.Context, phone string) (*domain.SendCodeResponse, error)
	VerifyCode(ctx context.Context, phone, code string) (*domain.VerifyCodeResponse, error)
	Reset(ctx context.Context, phone string) error
	IsVerified(ctx context.Context, phone string) (bool, error)
}

type VerificationHandler struct {
	service   VerificationService
	validator *validator.Validate
}

func NewVerificationHandler(service VerificationService) *VerificationHandler {
	return &VerificationHandler{
		service:   service,
		validator: newValidator(),
	}
}

func (h *VerificationHandler) SendCode(w http.ResponseWriter, r *http.Request) {
	var request domain.SendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid JSON payload", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	result, err := h.service.SendCode(r.Context(), request.Phone)
	if err != nil {
		writeBusinessError(w, "Failed to send verification code", err)
		return
	}

	response.Success(w, result)
}

func (h *VerificationHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var request domain.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid JSON payload", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	result, err := h.service.VerifyCode(r.Context(), request.Phone, request.Code)
	if err != nil {
		writeBusinessError(w, "Failed to verify code", err)
		return
	}

	response.Success(w, result)
}

// ResetCode drops any pending code and verified flag for the phone, sending
// the customer back to the start of the flow.
func (h *VerificationHandler) ResetCode(w http.ResponseWriter, r *http.Request) {
	var request domain.SendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid JSON payload", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	if err := h.service.Reset(r.Context(), request.Phone); err != nil {
		writeBusinessError(w, "Failed to reset verification", err)
		return
	}

	response.Success(w, &domain.VerifyCodeResponse{Phone: request.Phone, Verified: false})
}

func (h *VerificationHandler) Status(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		response.BadRequest(w, "Missing phone parameter", nil)
		return
	}

	verified, err := h.service.IsVerified(r.Context(), phone)
	if err != nil {
		writeBusinessError(w, "Failed to read verification status", err)
		return
	}

	response.Success(w, &domain.VerifyCodeResponse{Phone: phone, Verified: verified})
}
