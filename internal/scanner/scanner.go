// Package scanner composes the feature extractor, classifier, and cache
// store into the cache-aside scan pipeline: cache lookup, classification on
// miss, best-effort cache population, response assembly.
package scanner

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"phishguard/internal/cache"
	"phishguard/internal/classifier"
	"phishguard/internal/features"
	"phishguard/internal/history"
	"phishguard/internal/metrics"
	"phishguard/internal/models"
)

// Risk-tier messages attached to scan results.
const (
	msgHighRisk   = "HIGH RISK: This URL is highly likely to be a phishing attempt. Do not proceed."
	msgMediumRisk = "MEDIUM RISK: This URL shows signs of phishing. Proceed with caution."
	msgLowRisk    = "LOW RISK: This URL may be suspicious. Verify before proceeding."
	msgBenign     = "This URL appears to be legitimate."
)

// Scanner orchestrates URL scans. It holds no mutable cross-request state:
// the classifier is read-only after startup and the store synchronizes
// itself, so one Scanner serves concurrent requests without locking.
type Scanner struct {
	store      cache.Store
	clf        classifier.Classifier
	hist       *history.DB // nil when history is disabled
	ttlSeconds int
}

// New creates a scanner. hist may be nil to disable history recording.
func New(store cache.Store, clf classifier.Classifier, hist *history.DB, ttlSeconds int) *Scanner {
	if ttlSeconds <= 0 {
		ttlSeconds = cache.DefaultTTLSeconds
	}
	return &Scanner{store: store, clf: clf, hist: hist, ttlSeconds: ttlSeconds}
}

// Scan classifies a URL, serving from cache when possible. It is total for
// well-formed URLs: cache failures degrade to direct classification and
// malformed URL components degrade inside the extractor, so the caller
// always receives a result.
//
// Concurrent misses for the same URL may each classify and write the cache
// independently; the last write wins and all writes carry identical labels.
func (s *Scanner) Scan(ctx context.Context, rawURL string) *models.ScanResult {
	start := time.Now()
	requestID := uuid.NewString()[:8]
	normalized := strings.TrimSpace(rawURL)
	key := cache.Key(normalized)

	cached, err := s.store.Get(key)
	if err != nil {
		// Degrade to a miss; the pipeline must not fail on cache errors.
		slog.Warn("cache lookup failed, falling back to classification",
			"requestId", requestID, "error", err)
		cached = nil
	}

	if cached != nil {
		cached.FromCache = true
		cached.RequestID = requestID
		cached.ResponseTimeMs = time.Since(start).Milliseconds()
		metrics.RecordScan(metrics.OutcomeHit, cached.Prediction, time.Since(start))
		s.record(cached)
		return cached
	}

	f := features.Extract(normalized)
	pred := s.clf.Predict(f)
	metrics.RecordClassifierCall()

	confidence := round(pred.Confidence, 4)
	riskScore := round(confidence*100, 2)

	result := &models.ScanResult{
		URL:        normalized,
		Prediction: pred.Label,
		Confidence: confidence,
		RiskScore:  riskScore,
		Message:    message(pred.Label, riskScore),
		FromCache:  false,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.store.Set(key, result, s.ttlSeconds); err != nil {
		// Population is best-effort; never surface a write failure.
		slog.Warn("cache write failed", "requestId", requestID, "error", err)
	}

	result.RequestID = requestID
	result.ResponseTimeMs = time.Since(start).Milliseconds()
	metrics.RecordScan(metrics.OutcomeMiss, result.Prediction, time.Since(start))
	s.record(result)
	return result
}

// Invalidate removes the cached entry for a URL.
func (s *Scanner) Invalidate(rawURL string) error {
	return s.store.Delete(cache.Key(strings.TrimSpace(rawURL)))
}

// ClassifierMode reports which classifier variant is active.
func (s *Scanner) ClassifierMode() string {
	return s.clf.Mode()
}

// TTLSeconds returns the configured cache entry lifetime.
func (s *Scanner) TTLSeconds() int {
	return s.ttlSeconds
}

// record asynchronously appends a scan to the history store, if enabled.
func (s *Scanner) record(res *models.ScanResult) {
	if s.hist == nil {
		return
	}
	rec := models.ScanRecord{
		URL:        res.URL,
		Prediction: res.Prediction,
		Confidence: res.Confidence,
		RiskScore:  res.RiskScore,
		FromCache:  res.FromCache,
		RequestID:  res.RequestID,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.hist.RecordScan(ctx, rec); err != nil {
			slog.Error("failed to record scan history", "requestId", rec.RequestID, "error", err)
		}
	}()
}

// message maps a prediction and risk score to the user-facing advisory.
func message(prediction string, riskScore float64) string {
	if prediction != models.PredictionPhishing {
		return msgBenign
	}
	switch {
	case riskScore >= 90:
		return msgHighRisk
	case riskScore >= 70:
		return msgMediumRisk
	default:
		return msgLowRisk
	}
}

// round rounds x to the given number of decimal places.
func round(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}
