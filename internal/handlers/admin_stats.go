package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/models"
)

// StatsProvider aggregates the platform-wide counters.
type StatsProvider interface {
	GetSummaryStats(ctx context.Context) (*models.SummaryStats, error)
}

// NewSummaryStatsHandler returns the counters shown on the admin home.
// @Summary Platform summary statistics
// @Tags admin
// @Produce json
// @Success 200 {object} models.SummaryStats "Counters"
// @Failure 500 {object} handlers.AdminErrorResponse "Internal server error"
// @Router /admin/stats [get]
func NewSummaryStatsHandler(svc StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.GetSummaryStats(r.Context())
		if err != nil {
			logger.Log.Errorw("error fetching summary stats", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Error fetching statistics"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(stats)
	}
}
