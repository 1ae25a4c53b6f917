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

// UserReportExporter renders a user's symptom report as PDF.
type UserReportExporter interface {
	UserReportPDF(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

// NewDownloadReportHandler streams the logged-in user's symptom report
// as an attached PDF.
// @Summary Download symptom report PDF
// @Tags report
// @Produce application/pdf
// @Success 200 {file} byte "symptom_report.pdf"
// @Failure 404 {object} handlers.ReportErrorResponse "User info not found"
// @Router /report/download/pdf [get]
func NewDownloadReportHandler(svc UserReportExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		data, err := svc.UserReportPDF(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ReportErrorResponse{Error: "User info not found"})
				return
			}
			logger.Log.Errorw("pdf generation error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReportErrorResponse{Error: "Failed to generate PDF"})
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=symptom_report.pdf")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
