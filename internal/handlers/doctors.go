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

// DoctorLister serves the doctor directory.
type DoctorLister interface {
	ListDoctors(ctx context.Context, bodyPartID uuid.UUID, city string) ([]models.DoctorDB, error)
}

// NewListDoctorsHandler returns doctors treating a body part, optionally
// filtered by a city query parameter; no doctors is 404.
// @Summary List doctors for a body part
// @Tags checker
// @Produce json
// @Param bodyPartId path string true "Body part ID"
// @Param city query string false "City filter"
// @Success 200 {array} models.DoctorDB "Doctors"
// @Failure 400 {object} handlers.CheckerErrorResponse "Malformed body part ID"
// @Failure 404 {object} handlers.CheckerErrorResponse "No doctors found"
// @Router /check/doctor/read/{bodyPartId} [get]
func NewListDoctorsHandler(svc DoctorLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyPartID, err := uuid.Parse(chi.URLParam(r, "bodyPartId"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "Invalid body part ID"})
			return
		}

		doctors, err := svc.ListDoctors(r.Context(), bodyPartID, r.URL.Query().Get("city"))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "No doctors found for this body part"})
				return
			}
			logger.Log.Errorw("error fetching doctors", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "Error fetching doctors"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(doctors)
	}
}
