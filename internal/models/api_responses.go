package models

import "time"

// CacheClearedResponse confirms a cache invalidation.
type CacheClearedResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// StatsResponse reports operational counters and configuration.
type StatsResponse struct {
	Status          string     `json:"status"`
	ClassifierMode  string     `json:"classifierMode"`
	CacheTTLSeconds int        `json:"cacheTtlSeconds"`
	FeatureSchema   int        `json:"featureSchema"`
	Totals          ScanTotals `json:"totals"`
}

// ScanTotals aggregates scan outcomes since startup (or, when the history
// store is enabled, across the full recorded history).
type ScanTotals struct {
	Scans     int64 `json:"scans"`
	CacheHits int64 `json:"cacheHits"`
	CacheMiss int64 `json:"cacheMisses"`
	Phishing  int64 `json:"phishing"`
	Benign    int64 `json:"benign"`
}

// HealthResponse is the health endpoint payload.
type HealthResponse struct {
	Status         string    `json:"status"`
	Service        string    `json:"service"`
	ClassifierMode string    `json:"classifierMode"`
	CacheOK        bool      `json:"cacheOk"`
	HistoryOK      bool      `json:"historyOk"`
	CheckedAt      time.Time `json:"checkedAt"`
}

// ScanRecord is a persisted row of scan history.
type ScanRecord struct {
	URL        string    `json:"url"`
	Prediction string    `json:"prediction"`
	Confidence float64   `json:"confidence"`
	RiskScore  float64   `json:"riskScore"`
	FromCache  bool      `json:"fromCache"`
	RequestID  string    `json:"requestId"`
	CreatedAt  time.Time `json:"createdAt"`
}
