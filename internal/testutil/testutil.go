// Package testutil provides test utilities and helpers.
package testutil

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"phishguard/internal/classifier"
	"phishguard/internal/features"
	"phishguard/internal/models"
)

// ErrStoreDown is returned by FailStore for every operation.
var ErrStoreDown = errors.New("cache store unavailable")

// FailStore is a cache.Store whose every operation fails. Used to verify
// the pipeline degrades to direct classification instead of erroring.
type FailStore struct{}

func (FailStore) Get(key string) (*models.ScanResult, error) { return nil, ErrStoreDown }
func (FailStore) Set(key string, result *models.ScanResult, ttlSeconds int) error {
	return ErrStoreDown
}
func (FailStore) Delete(key string) error { return ErrStoreDown }
func (FailStore) Close() error            { return nil }

// CountingClassifier wraps a classifier and counts Predict invocations, so
// tests can assert that cache hits perform zero classifications.
type CountingClassifier struct {
	Inner classifier.Classifier
	Calls int
}

// Predict delegates to the wrapped classifier and increments Calls.
func (c *CountingClassifier) Predict(f features.Features) classifier.Prediction {
	c.Calls++
	return c.Inner.Predict(f)
}

// Mode reports the wrapped classifier's mode.
func (c *CountingClassifier) Mode() string {
	return c.Inner.Mode()
}

// WriteModelArtifact writes a valid model artifact to a temp file and
// returns its path. Weights are given by feature name; unnamed features
// get weight zero.
func WriteModelArtifact(t *testing.T, weights map[string]float64, bias float64) string {
	t.Helper()

	names := features.Names()
	w := make([]float64, len(names))
	for i, name := range names {
		w[i] = weights[name]
	}

	artifact := map[string]any{
		"schema_version": features.SchemaVersion,
		"feature_names":  names,
		"weights":        w,
		"bias":           bias,
	}

	data, err := json.Marshal(artifact)
	if err != nil {
		t.Fatalf("failed to marshal model artifact: %v", err)
	}

	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write model artifact: %v", err)
	}
	return path
}
