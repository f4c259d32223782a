package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"phishguard/internal/cache"
	"phishguard/internal/handlers/api"
	"phishguard/internal/history"
	"phishguard/internal/scanner"
)

// RegisterRoutes registers all application routes. hist may be nil when
// the history store is disabled.
func (s *Server) RegisterRoutes(sc *scanner.Scanner, store cache.Store, hist *history.DB) {
	scanHandler := api.NewScanHandler(sc)
	cacheHandler := api.NewCacheHandler(sc)
	statsHandler := api.NewStatsHandler(sc, hist)
	healthHandler := api.NewHealthHandler(sc, store, hist)

	v1 := s.App.Group("/api/v1")
	v1.Get("/scan-url", scanHandler.ScanGet)
	v1.Post("/scan-url", scanHandler.ScanPost)
	v1.Post("/scan-urls", scanHandler.ScanBatch)
	v1.Delete("/cache", cacheHandler.Clear)
	v1.Get("/stats", statsHandler.Stats)
	v1.Get("/health", healthHandler.Health)

	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
