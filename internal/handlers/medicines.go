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

// MedicineLister serves medicines suggested for a symptom.
type MedicineLister interface {
	ListMedicines(ctx context.Context, symptomID uuid.UUID) ([]models.MedicineDB, error)
}

// NewListMedicinesHandler returns medicines for a symptom; no medicines
// is 404.
// @Summary List medicines for a symptom
// @Tags checker
// @Produce json
// @Param symptomId path string true "Symptom ID"
// @Success 200 {array} models.MedicineDB "Medicines"
// @Failure 400 {object} handlers.CheckerErrorResponse "Malformed symptom ID"
// @Failure 404 {object} handlers.CheckerErrorResponse "No medicines found"
// @Router /check/medicine/read/{symptomId} [get]
func NewListMedicinesHandler(svc MedicineLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symptomID, err := uuid.Parse(chi.URLParam(r, "symptomId"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "Invalid symptom ID"})
			return
		}

		medicines, err := svc.ListMedicines(r.Context(), symptomID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "No medicines found for this symptom"})
				return
			}
			logger.Log.Errorw("error fetching medicines", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "Error fetching medicines"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(medicines)
	}
}
