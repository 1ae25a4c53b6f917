package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/middlewares"
	"github.com/vibeguard/vibeguard/internal/services"
)

// SelectionRecorder records a symptom selection for a user.
type SelectionRecorder interface {
	RecordSelection(ctx context.Context, userID, symptomID, bodyPartID uuid.UUID) (bool, error)
}

// SelectSymptomRequest represents the JSON body for a selection
// swagger:model SelectSymptomRequest
type SelectSymptomRequest struct {
	// Symptom ID
	// required: true
	SymptomID string `json:"symptom_id"`

	// Body part ID
	// required: true
	BodyPartID string `json:"body_part_id"`
}

// SelectSymptomResponse represents the result of a selection
// swagger:model SelectSymptomResponse
type SelectSymptomResponse struct {
	// Result message
	// default: Symptom recorded successfully
	Message string `json:"message"`
}

// NewSelectSymptomHandler records a (user, symptom, body part)
// selection. The write is idempotent: a repeat for the same pair answers
// 200 "already recorded" instead of erroring or duplicating.
// @Summary Record a symptom selection
// @Tags checker
// @Accept json
// @Produce json
// @Param selectSymptomRequest body handlers.SelectSymptomRequest true "Selection"
// @Success 201 {object} handlers.SelectSymptomResponse "Selection recorded"
// @Success 200 {object} handlers.SelectSymptomResponse "Already recorded"
// @Failure 400 {object} handlers.CheckerErrorResponse "Missing or malformed fields"
// @Failure 404 {object} handlers.CheckerErrorResponse "Unknown symptom"
// @Router /check/symptom/select [post]
func NewSelectSymptomHandler(svc SelectionRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req SelectSymptomRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "Missing required fields"})
			return
		}

		symptomID, err1 := uuid.Parse(req.SymptomID)
		bodyPartID, err2 := uuid.Parse(req.BodyPartID)
		if err1 != nil || err2 != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "Missing required fields"})
			return
		}

		created, err := svc.RecordSelection(r.Context(), claims.UserID, symptomID, bodyPartID)
		if err != nil {
			if errors.Is(err, services.ErrMissingFields) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "Missing required fields"})
				return
			}
			if errors.Is(err, services.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "Symptom not found"})
				return
			}
			logger.Log.Errorw("failed to record selection", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "Internal Server Error"})
			return
		}

		if !created {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(SelectSymptomResponse{Message: "Symptom already recorded"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SelectSymptomResponse{Message: "Symptom recorded successfully"})
	}
}
