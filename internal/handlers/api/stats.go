package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"phishguard/internal/features"
	"phishguard/internal/history"
	"phishguard/internal/metrics"
	"phishguard/internal/models"
	"phishguard/internal/scanner"
)

// StatsHandler reports operational statistics.
type StatsHandler struct {
	scanner *scanner.Scanner
	hist    *history.DB // nil when history is disabled
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(s *scanner.Scanner, hist *history.DB) *StatsHandler {
	return &StatsHandler{scanner: s, hist: hist}
}

// Stats returns classifier mode, cache configuration, and scan totals.
// Totals come from the history store when enabled, otherwise from the
// in-process counters (which reset on restart).
//
// GET /api/v1/stats
func (h *StatsHandler) Stats(c fiber.Ctx) error {
	totals := metrics.Snapshot()
	if h.hist != nil {
		dbTotals, err := h.hist.Totals(c.Context())
		if err != nil {
			slog.Error("failed to read history totals, serving in-process counters", "error", err)
		} else {
			totals = dbTotals
		}
	}

	return c.JSON(models.StatsResponse{
		Status:          "operational",
		ClassifierMode:  h.scanner.ClassifierMode(),
		CacheTTLSeconds: h.scanner.TTLSeconds(),
		FeatureSchema:   features.SchemaVersion,
		Totals:          totals,
	})
}
