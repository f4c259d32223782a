package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"phishguard/internal/features"
)

// artifact is the on-disk model format. The feature schema is pinned: both
// the version and the exact name list must match the extractor, otherwise
// the artifact was trained against a different vector shape.
type artifact struct {
	SchemaVersion int       `json:"schema_version"`
	FeatureNames  []string  `json:"feature_names"`
	Weights       []float64 `json:"weights"`
	Bias          float64   `json:"bias"`
}

// Model is a logistic-regression classifier over the URL feature vector.
// Weights are immutable after LoadModel.
type Model struct {
	weights []float64
	bias    float64
}

// LoadModel reads and validates a model artifact. Any mismatch with the
// extractor's feature schema is a fatal configuration error, surfaced here
// at startup rather than on the request path.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact %s: %w", path, err)
	}

	if a.SchemaVersion != features.SchemaVersion {
		return nil, fmt.Errorf("model artifact %s has feature schema v%d, extractor is v%d",
			path, a.SchemaVersion, features.SchemaVersion)
	}

	names := features.Names()
	if len(a.FeatureNames) != len(names) {
		return nil, fmt.Errorf("model artifact %s declares %d features, extractor produces %d",
			path, len(a.FeatureNames), len(names))
	}
	for i, name := range names {
		if a.FeatureNames[i] != name {
			return nil, fmt.Errorf("model artifact %s feature %d is %q, extractor expects %q",
				path, i, a.FeatureNames[i], name)
		}
	}
	if len(a.Weights) != len(names) {
		return nil, fmt.Errorf("model artifact %s has %d weights for %d features",
			path, len(a.Weights), len(names))
	}

	return &Model{weights: a.Weights, bias: a.Bias}, nil
}

// Predict returns the model's phishing probability for the feature vector.
// The artifact arity was verified at load, so this cannot fail per-request.
func (m *Model) Predict(f features.Features) Prediction {
	vec := f.Vector()
	z := m.bias
	for i, w := range m.weights {
		z += w * vec[i]
	}
	confidence := sigmoid(z)
	return Prediction{Label: label(confidence), Confidence: confidence}
}

// Mode identifies this variant in stats and health output.
func (m *Model) Mode() string {
	return ModeModel
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
