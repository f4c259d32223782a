package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"phishguard/internal/cache"
	"phishguard/internal/classifier"
	"phishguard/internal/config"
	"phishguard/internal/history"
	"phishguard/internal/jobs"
	"phishguard/internal/metrics"
	"phishguard/internal/scanner"
	"phishguard/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Classifier: model-backed when MODEL_PATH is set, heuristic otherwise.
	// An incompatible artifact is a configuration error, fatal at startup.
	clf, err := classifier.New(cfg.ModelPath)
	if err != nil {
		log.Fatalf("Failed to initialize classifier: %v", err)
	}

	// Cache store
	var store cache.Store
	if cfg.RedisURL != "" {
		store = cache.NewRedis(cfg.RedisURL)
		log.Println("Using Redis cache store")
	} else {
		store = cache.NewMemory()
		log.Println("REDIS_URL not set, using in-memory cache store")
	}
	defer store.Close()

	// Optional scan history store
	var hist *history.DB
	if cfg.DatabaseURL != "" {
		hist, err = history.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer hist.Close()

		if err := hist.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations completed successfully")
	} else {
		log.Println("DATABASE_URL not set, scan history disabled")
	}

	metrics.Init(hist)

	sc := scanner.New(store, clf, hist, cfg.CacheTTLSeconds)

	srv := server.New(cfg)
	srv.RegisterRoutes(sc, store, hist)

	// Background cache warmer
	jobsCtx, cancelJobs := context.WithCancel(ctx)
	defer cancelJobs()

	if cfg.WarmupURLs != "" {
		var urls []string
		for _, u := range strings.Split(cfg.WarmupURLs, ",") {
			if trimmed := strings.TrimSpace(u); trimmed != "" {
				urls = append(urls, trimmed)
			}
		}
		warmer := jobs.NewWarmer(sc, urls, time.Duration(cfg.WarmupIntervalMinutes)*time.Minute)
		go warmer.Start(jobsCtx)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancelJobs()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
