package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/models"
)

// SymptomLister serves symptoms of a body part.
type SymptomLister interface {
	ListSymptoms(ctx context.Context, bodyPartID uuid.UUID) ([]models.SymptomDB, error)
}

// NewListSymptomsHandler returns the symptoms of one body part.
// An empty catalogue answers with an empty array, not 404.
// @Summary List symptoms for a body part
// @Tags checker
// @Produce json
// @Param bodyPartId path string true "Body part ID"
// @Success 200 {array} models.SymptomDB "Symptoms (possibly empty)"
// @Failure 400 {object} handlers.CheckerErrorResponse "Malformed body part ID"
// @Router /check/read/{bodyPartId} [get]
func NewListSymptomsHandler(svc SymptomLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyPartID, err := uuid.Parse(chi.URLParam(r, "bodyPartId"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "Invalid body part ID"})
			return
		}

		symptoms, err := svc.ListSymptoms(r.Context(), bodyPartID)
		if err != nil {
			logger.Log.Errorw("error fetching symptoms", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "Error fetching symptoms"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(symptoms)
	}
}
