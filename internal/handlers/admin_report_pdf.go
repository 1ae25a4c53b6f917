package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vibeguard/vibeguard/internal/logger"
)

// SummaryReportExporter renders the admin-wide summary report as PDF.
type SummaryReportExporter interface {
	SummaryReportPDF(ctx context.Context) ([]byte, error)
}

// NewDownloadSummaryReportHandler streams the catalogue-and-user summary
// report as an attached PDF. Admin only at the route level.
// @Summary Download admin summary PDF
// @Tags admin
// @Produce application/pdf
// @Success 200 {file} byte "summary_report.pdf"
// @Failure 500 {object} handlers.ReportErrorResponse "Internal server error"
// @Router /admin/report/download [get]
func NewDownloadSummaryReportHandler(svc SummaryReportExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := svc.SummaryReportPDF(r.Context())
		if err != nil {
			logger.Log.Errorw("error generating summary pdf", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReportErrorResponse{Error: "Error generating PDF."})
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=summary_report.pdf")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
