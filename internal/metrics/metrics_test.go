package metrics

import (
	"testing"
	"time"

	"phishguard/internal/models"
)

func TestSnapshotDeltas(t *testing.T) {
	before := Snapshot()

	RecordScan(OutcomeMiss, models.PredictionPhishing, 5*time.Millisecond)
	RecordScan(OutcomeHit, models.PredictionPhishing, time.Millisecond)
	RecordScan(OutcomeMiss, models.PredictionBenign, 3*time.Millisecond)

	after := Snapshot()

	if got := after.Scans - before.Scans; got != 3 {
		t.Errorf("scans delta = %d, want 3", got)
	}
	if got := after.CacheHits - before.CacheHits; got != 1 {
		t.Errorf("cacheHits delta = %d, want 1", got)
	}
	if got := after.CacheMiss - before.CacheMiss; got != 2 {
		t.Errorf("cacheMisses delta = %d, want 2", got)
	}
	if got := after.Phishing - before.Phishing; got != 2 {
		t.Errorf("phishing delta = %d, want 2", got)
	}
	if got := after.Benign - before.Benign; got != 1 {
		t.Errorf("benign delta = %d, want 1", got)
	}
}
