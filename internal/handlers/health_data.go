package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/middlewares"
	"github.com/vibeguard/vibeguard/internal/models"
	"github.com/vibeguard/vibeguard/internal/services"
)

// HealthDataProvider appends and lists health measurements.
type HealthDataProvider interface {
	AddHealthData(ctx context.Context, userID uuid.UUID, at time.Time, weight float64, bp string, heartRate *int, bmi *float64) error
	ListHealthData(ctx context.Context, userID uuid.UUID) ([]models.HealthDataDB, error)
}

// HealthDataRequest carries one health measurement
// swagger:model HealthDataRequest
type HealthDataRequest struct {
	Time      time.Time `json:"time"`
	Weight    float64   `json:"weight"`
	BP        string    `json:"bp"`
	HeartRate *int      `json:"heart_rate,omitempty"`
	BMI       *float64  `json:"bmi,omitempty"`
}

// HealthDataSavedResponse confirms a stored measurement
// swagger:model HealthDataSavedResponse
type HealthDataSavedResponse struct {
	Message string `json:"message"`
}

// NewAddHealthDataHandler stores one measurement for the caller.
// @Summary Add health data
// @Tags tracking
// @Accept json
// @Produce json
// @Param request body handlers.HealthDataRequest true "Measurement"
// @Success 201 {object} handlers.HealthDataSavedResponse "Measurement stored"
// @Failure 400 {object} handlers.TrackingErrorResponse "Missing fields"
// @Failure 500 {object} handlers.TrackingErrorResponse "Internal server error"
// @Router /tracking/health-data [post]
func NewAddHealthDataHandler(svc HealthDataProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req HealthDataRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TrackingErrorResponse{Error: "Invalid request body"})
			return
		}

		err := svc.AddHealthData(r.Context(), claims.UserID, req.Time, req.Weight, req.BP, req.HeartRate, req.BMI)
		if err != nil {
			if errors.Is(err, services.ErrAllFieldsRequired) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TrackingErrorResponse{Error: "Time, weight and blood pressure are required."})
				return
			}
			logger.Log.Errorw("error saving health data", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TrackingErrorResponse{Error: "Error saving health data"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(HealthDataSavedResponse{Message: "Health data saved successfully"})
	}
}

// NewListHealthDataHandler returns the caller's measurements, newest
// first.
// @Summary List health data
// @Tags tracking
// @Produce json
// @Success 200 {array} models.HealthDataDB "Measurements"
// @Failure 404 {object} handlers.TrackingErrorResponse "None recorded"
// @Failure 500 {object} handlers.TrackingErrorResponse "Internal server error"
// @Router /tracking/health-data [get]
func NewListHealthDataHandler(svc HealthDataProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		data, err := svc.ListHealthData(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TrackingErrorResponse{Error: "No health data found."})
				return
			}
			logger.Log.Errorw("error fetching health data", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TrackingErrorResponse{Error: "Error fetching health data"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(data)
	}
}
