package jobs

import (
	"context"
	"testing"
	"time"

	"phishguard/internal/cache"
	"phishguard/internal/classifier"
	"phishguard/internal/scanner"
	"phishguard/internal/testutil"
)

func TestWarmAll(t *testing.T) {
	clf := &testutil.CountingClassifier{Inner: &classifier.Heuristic{}}
	store := cache.NewMemory()
	sc := scanner.New(store, clf, nil, 60)

	w := NewWarmer(sc, []string{
		"https://example.com",
		"not-a-url",
		"https://github.com",
	}, time.Minute)

	w.warmAll(context.Background())

	// Both valid URLs classified, the invalid entry skipped.
	if clf.Calls != 2 {
		t.Errorf("classifier calls = %d, want 2", clf.Calls)
	}

	res := sc.Scan(context.Background(), "https://example.com")
	if !res.FromCache {
		t.Error("warmed URL missed the cache")
	}
	if clf.Calls != 2 {
		t.Errorf("classifier calls after warmed scan = %d, want 2", clf.Calls)
	}
}

func TestWarmAllStopsOnCancel(t *testing.T) {
	clf := &testutil.CountingClassifier{Inner: &classifier.Heuristic{}}
	sc := scanner.New(cache.NewMemory(), clf, nil, 60)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewWarmer(sc, []string{"https://example.com"}, time.Minute)
	w.warmAll(ctx)

	if clf.Calls != 0 {
		t.Errorf("classifier calls = %d, want 0 after cancellation", clf.Calls)
	}
}
