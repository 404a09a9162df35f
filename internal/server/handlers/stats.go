package handlers

import (
	"log/slog"
	"net/http"

	"github.com/thaedal/thaedal-admin/internal/server/storage"
)

// StatsHandler serves the dashboard summary.
type StatsHandler struct {
	logger *slog.Logger
	stats  storage.StatsStorage
}

func NewStatsHandler(logger *slog.Logger, stats storage.StatsStorage) *StatsHandler {
	return &StatsHandler{logger: logger, stats: stats}
}

// Get handles GET /stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.GetStats(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to compute stats", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}
	sendJSON(w, stats, http.StatusOK)
}
