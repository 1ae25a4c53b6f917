package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/models"
)

// BodyPartLister serves the body-part catalogue.
type BodyPartLister interface {
	ListBodyParts(ctx context.Context) ([]models.BodyPartDB, error)
}

// CheckerErrorResponse is the error payload for checker endpoints
// swagger:model CheckerErrorResponse
type CheckerErrorResponse struct {
	// Error message
	// default: Invalid body part ID
	Error string `json:"error"`
}

// NewListBodyPartsHandler returns the body-part catalogue for the
// symptom-checker entry page.
// @Summary List body parts
// @Tags checker
// @Produce json
// @Success 200 {array} models.BodyPartDB "Body parts"
// @Failure 500 {object} handlers.CheckerErrorResponse "Internal server error"
// @Router /check/read [get]
func NewListBodyPartsHandler(svc BodyPartLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts, err := svc.ListBodyParts(r.Context())
		if err != nil {
			logger.Log.Errorw("error fetching body parts", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CheckerErrorResponse{Error: "Error fetching data."})
			return
		}

		if parts == nil {
			parts = []models.BodyPartDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(parts)
	}
}
