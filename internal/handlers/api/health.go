package api

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"phishguard/internal/cache"
	"phishguard/internal/history"
	"phishguard/internal/models"
	"phishguard/internal/scanner"
)

// healthProbeKey is read on every health check to verify the cache store
// answers. The key never exists; only the error matters.
const healthProbeKey = "phishing:health:probe"

// HealthHandler reports service health.
type HealthHandler struct {
	scanner *scanner.Scanner
	store   cache.Store
	hist    *history.DB // nil when history is disabled
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(s *scanner.Scanner, store cache.Store, hist *history.DB) *HealthHandler {
	return &HealthHandler{scanner: s, store: store, hist: hist}
}

// Health reports overall status plus per-collaborator reachability. The
// service stays "UP" with a degraded cache because scans fall back to
// direct classification.
//
// GET /api/v1/health
func (h *HealthHandler) Health(c fiber.Ctx) error {
	_, cacheErr := h.store.Get(healthProbeKey)

	historyOK := true
	if h.hist != nil {
		historyOK = h.hist.Pool.Ping(c.Context()) == nil
	}

	return c.JSON(models.HealthResponse{
		Status:         "UP",
		Service:        "PhishGuard URL Scanner",
		ClassifierMode: h.scanner.ClassifierMode(),
		CacheOK:        cacheErr == nil,
		HistoryOK:      historyOK,
		CheckedAt:      time.Now().UTC(),
	})
}
