package metrics

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"phishguard/internal/history"
	"phishguard/internal/models"
)

// Cache outcomes recorded per scan.
const (
	OutcomeHit  = "cache_hit"
	OutcomeMiss = "cache_miss"
)

var (
	scansTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "phishguard_scans_total",
		Help: "Total scan count by cache outcome",
	}, []string{"outcome"})

	predictionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "phishguard_predictions_total",
		Help: "Total predictions by label",
	}, []string{"prediction"})

	classifierCalls = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "phishguard_classifier_invocations_total",
		Help: "Total classifier invocations (cache misses only)",
	})

	scanDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "phishguard_scan_duration_seconds",
		Help:    "End-to-end scan latency",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})

	scanHistoryDesc = prometheus.NewDesc(
		"phishguard_scan_history_total",
		"Recorded scan history counts by prediction and cache outcome",
		[]string{"prediction", "from_cache"},
		nil,
	)
)

// HistoryCollector is a custom Prometheus collector that reads aggregate
// scan counts from the history database on each scrape.
type HistoryCollector struct {
	db *history.DB
}

// Describe sends the metric descriptor to the channel.
func (c *HistoryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- scanHistoryDesc
}

// Collect queries the database for scan outcome counts and emits them as counters.
func (c *HistoryCollector) Collect(ch chan<- prometheus.Metric) {
	counts, err := c.db.OutcomeCounts(context.Background())
	if err != nil {
		slog.Error("failed to collect scan history metrics", "error", err)
		return
	}
	for _, oc := range counts {
		fromCache := "false"
		if oc.FromCache {
			fromCache = "true"
		}
		ch <- prometheus.MustNewConstMetric(
			scanHistoryDesc,
			prometheus.CounterValue,
			float64(oc.Count),
			oc.Prediction,
			fromCache,
		)
	}
}

// totals holds the in-process counters behind the stats endpoint, kept
// separately from Prometheus so stats work without a registry scrape.
type totals struct {
	scans     atomic.Int64
	cacheHits atomic.Int64
	cacheMiss atomic.Int64
	phishing  atomic.Int64
	benign    atomic.Int64
}

var (
	counters totals
	initOnce sync.Once
)

// Init registers the Prometheus metrics. With a history database it also
// registers the DB-backed collector. Must be called once at startup.
func Init(db *history.DB) {
	initOnce.Do(func() {
		prometheus.MustRegister(scansTotal, predictionsTotal, classifierCalls, scanDuration)
		if db != nil {
			prometheus.MustRegister(&HistoryCollector{db: db})
		}
	})
}

// RecordScan records one completed scan.
func RecordScan(outcome, prediction string, elapsed time.Duration) {
	scansTotal.WithLabelValues(outcome).Inc()
	predictionsTotal.WithLabelValues(prediction).Inc()
	scanDuration.Observe(elapsed.Seconds())

	counters.scans.Add(1)
	if outcome == OutcomeHit {
		counters.cacheHits.Add(1)
	} else {
		counters.cacheMiss.Add(1)
	}
	if prediction == models.PredictionPhishing {
		counters.phishing.Add(1)
	} else {
		counters.benign.Add(1)
	}
}

// RecordClassifierCall counts one classifier invocation.
func RecordClassifierCall() {
	classifierCalls.Inc()
}

// Snapshot returns the in-process totals since startup.
func Snapshot() models.ScanTotals {
	return models.ScanTotals{
		Scans:     counters.scans.Load(),
		CacheHits: counters.cacheHits.Load(),
		CacheMiss: counters.cacheMiss.Load(),
		Phishing:  counters.phishing.Load(),
		Benign:    counters.benign.Load(),
	}
}
