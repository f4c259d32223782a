// Package classifier provides the predict(features) contract with two
// implementations: a logistic-regression model loaded from a JSON artifact,
// and a heuristic fallback used when no artifact is configured. The variant
// is chosen once at startup; per-request Predict calls never fail.
package classifier

import (
	"log"

	"phishguard/internal/features"
	"phishguard/internal/models"
)

// Threshold is the decision boundary on the phishing probability.
// A URL is labelled phishing iff its confidence is strictly above it.
const Threshold = 0.5

// Classifier modes reported by stats and health endpoints.
const (
	ModeModel     = "model"
	ModeHeuristic = "heuristic"
)

// Prediction is the outcome of classifying one feature vector.
// Confidence is the estimated probability that the URL is phishing.
type Prediction struct {
	Label      string
	Confidence float64
}

// Classifier classifies a feature vector. Implementations are read-only
// after construction and safe for unsynchronized concurrent use.
type Classifier interface {
	Predict(f features.Features) Prediction
	Mode() string
}

// New selects the classifier variant for this process. With a model path it
// loads the artifact and fails hard on any incompatibility; with an empty
// path it falls back to the heuristic.
func New(modelPath string) (Classifier, error) {
	if modelPath == "" {
		log.Println("No model artifact configured, using heuristic classifier")
		return &Heuristic{}, nil
	}
	m, err := LoadModel(modelPath)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded model artifact from %s (schema v%d)", modelPath, features.SchemaVersion)
	return m, nil
}

// label applies the shared decision threshold.
func label(confidence float64) string {
	if confidence > Threshold {
		return models.PredictionPhishing
	}
	return models.PredictionBenign
}
