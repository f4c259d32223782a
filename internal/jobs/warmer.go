package jobs

import (
	"context"
	"log"
	"time"

	"phishguard/internal/scanner"
	"phishguard/internal/validation"
)

// Warmer keeps a watchlist of URLs cached by re-scanning them on an
// interval. With the interval below the cache TTL, hot URLs never fall out
// of the cache and never hit the classifier on the request path.
type Warmer struct {
	scanner  *scanner.Scanner
	urls     []string
	interval time.Duration
}

// NewWarmer creates a cache warmer for the given watchlist.
func NewWarmer(s *scanner.Scanner, urls []string, interval time.Duration) *Warmer {
	return &Warmer{scanner: s, urls: urls, interval: interval}
}

// Start begins the background warmup loop.
func (w *Warmer) Start(ctx context.Context) {
	log.Printf("Cache warmer started (interval: %v, urls: %d)", w.interval, len(w.urls))

	// Run immediately on start
	w.warmAll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Cache warmer stopped")
			return
		case <-ticker.C:
			w.warmAll(ctx)
		}
	}
}

// warmAll scans every watchlist URL once. Invalid entries are skipped.
func (w *Warmer) warmAll(ctx context.Context) {
	for _, u := range w.urls {
		if ctx.Err() != nil {
			return
		}
		if ok, reason := validation.ValidateScanURL(u); !ok {
			log.Printf("Cache warmer: skipping %q: %s", u, reason)
			continue
		}
		w.scanner.Scan(ctx, u)
	}
}
