package models

import "time"

// Prediction labels returned by the classifier.
const (
	PredictionBenign   = "Benign"
	PredictionPhishing = "Phishing"
)

// ScanResult is the outcome of scanning a single URL.
type ScanResult struct {
	URL            string    `json:"url"`
	Prediction     string    `json:"prediction"`
	Confidence     float64   `json:"confidence"`
	RiskScore      float64   `json:"riskScore"`
	Message        string    `json:"message"`
	FromCache      bool      `json:"fromCache"`
	ResponseTimeMs int64     `json:"responseTimeMs"`
	Timestamp      time.Time `json:"timestamp"`
	RequestID      string    `json:"requestId"`
}

// ScanRequest is the POST body for a single-URL scan.
type ScanRequest struct {
	URL string `json:"url"`
}

// BatchScanRequest is the POST body for a batch scan.
type BatchScanRequest struct {
	URLs []string `json:"urls"`
}

// BatchScanItem is one entry of a batch scan response. Exactly one of
// Result and Error is set.
type BatchScanItem struct {
	URL    string      `json:"url"`
	Result *ScanResult `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// BatchScanResponse wraps the per-URL results of a batch scan.
type BatchScanResponse struct {
	Results []BatchScanItem `json:"results"`
	Total   int             `json:"total"`
}
