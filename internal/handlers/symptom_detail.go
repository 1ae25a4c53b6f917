package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/models"
	"github.com/vibeguard/vibeguard/internal/services"
)

// SymptomDetailGetter serves the long-form symptom description.
type SymptomDetailGetter interface {
	GetSymptomDetail(ctx context.Context, symptomID uuid.UUID) (*models.SymptomDetailDB, error)
}

// NewGetSymptomDetailHandler returns the detail page data for a symptom.
// @Summary Get symptom details
// @Tags checker
// @Produce json
// @Param symptomId path string true "Symptom ID"
// @Success 200 {object} models.SymptomDetailDB "Symptom details"
// @Failure 400 {object} handlers.CheckerErrorResponse "Malformed symptom ID"
// @Failure 404 {object} handlers.CheckerErrorResponse "No details recorded"
// @Router /check/symptom/{symptomId}/details [get]
func NewGetSymptomDetailHandler(svc SymptomDetailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symptomID, err := uuid.Parse(chi.URLParam(r, "symptomId"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "Invalid symptom ID"})
			return
		}

		detail, err := svc.GetSymptomDetail(r.Context(), symptomID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "Symptom details not found"})
				return
			}
			logger.Log.Errorw("error fetching symptom details", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "Error fetching symptom details"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(detail)
	}
}
