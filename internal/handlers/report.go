package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/middlewares"
	"github.com/vibeguard/vibeguard/internal/models"
)

// ReportBuilder aggregates a user's selections into grouped report data.
type ReportBuilder interface {
	BuildReport(ctx context.Context, userID uuid.UUID) ([]models.ReportGroup, error)
}

// ReportErrorResponse is the error payload for report endpoints
// swagger:model ReportErrorResponse
type ReportErrorResponse struct {
	Error string `json:"error"`
}

// NewGetReportHandler returns the logged-in user's grouped symptom
// report as JSON.
// @Summary Get symptom report
// @Tags report
// @Produce json
// @Success 200 {array} models.ReportGroup "Grouped report"
// @Failure 500 {object} handlers.ReportErrorResponse "Internal server error"
// @Router /report/symptom/report [get]
func NewGetReportHandler(svc ReportBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		report, err := svc.BuildReport(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to build report", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReportErrorResponse{Error: "Server Error"})
			return
		}

		if report == nil {
			report = []models.ReportGroup{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(report)
	}
}
