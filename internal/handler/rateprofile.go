package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/samuel46u5/playstation-billing/internal/domain"
	"github.com/samuel46u5/playstation-billing/internal/repository"
	"github.com/samuel46u5/playstation-billing/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// RateProfileHandler serves the admin rate profile screens. Profiles are
// simple enough that the handler talks to the repository directly.
type RateProfileHandler struct {
	repo      repository.RateProfileRepository
	validator *validator.Validate
}

func NewRateProfileHandler(repo repository.RateProfileRepository) *RateProfileHandler {
	return &RateProfileHandler{
		repo:      repo,
		validator: newValidator(),
	}
}

func (h *RateProfileHandler) CreateRateProfile(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateRateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid JSON payload", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	// Peak fields are all-or-nothing and the window must be forward.
	peakFields := 0
	for _, set := range []bool{request.PeakHourRate != nil, request.PeakHourStart != nil, request.PeakHourEnd != nil} {
		if set {
			peakFields++
		}
	}
	if peakFields != 0 && peakFields != 3 {
		response.BadRequest(w, "peak_hour_rate, peak_hour_start and peak_hour_end must be provided together", nil)
		return
	}
	if peakFields == 3 && *request.PeakHourStart >= *request.PeakHourEnd {
		response.BadRequest(w, "peak_hour_start must be before peak_hour_end", nil)
		return
	}

	now := time.Now()
	profile := &domain.RateProfile{
		ID:         uuid.New(),
		Name:       request.Name,
		HourlyRate: request.HourlyRate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if peakFields == 3 {
		profile.PeakHourRate = decimal.NewNullDecimal(*request.PeakHourRate)
		profile.PeakHourStart = sql.NullInt32{Int32: int32(*request.PeakHourStart), Valid: true}
		profile.PeakHourEnd = sql.NullInt32{Int32: int32(*request.PeakHourEnd), Valid: true}
	}
	if request.WeekendMultiplier != nil {
		profile.WeekendMultiplier = decimal.NewNullDecimal(*request.WeekendMultiplier)
	}

	if err := h.repo.Create(r.Context(), profile); err != nil {
		response.InternalServerError(w, "Failed to create rate profile", err)
		return
	}

	response.Created(w, profile)
}

func (h *RateProfileHandler) ListRateProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.repo.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list rate profiles", err)
		return
	}

	response.Success(w, &domain.RateProfileListResponse{Profiles: profiles})
}

func (h *RateProfileHandler) GetRateProfile(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(mux.Vars(r)["profileId"])
	if err != nil {
		response.BadRequest(w, "Invalid profile id", err)
		return
	}

	profile, err := h.repo.GetByID(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			response.NotFound(w, "Rate profile not found")
			return
		}
		response.InternalServerError(w, "Failed to get rate profile", err)
		return
	}

	response.Success(w, profile)
}
