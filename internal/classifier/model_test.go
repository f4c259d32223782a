package classifier

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"phishguard/internal/features"
	"phishguard/internal/models"
)

// writeArtifact writes a model artifact to a temp file. Weights are given
// by feature name; unnamed features get weight zero.
func writeArtifact(t *testing.T, schemaVersion int, names []string, weights map[string]float64, bias float64) string {
	t.Helper()

	w := make([]float64, len(names))
	for i, name := range names {
		w[i] = weights[name]
	}

	data, err := json.Marshal(map[string]any{
		"schema_version": schemaVersion,
		"feature_names":  names,
		"weights":        w,
		"bias":           bias,
	})
	if err != nil {
		t.Fatalf("failed to marshal artifact: %v", err)
	}

	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}
	return path
}

// testWeights marks abused TLDs and at-symbol obfuscation as strong
// phishing signals against a benign prior.
func testWeights() (map[string]float64, float64) {
	return map[string]float64{
		"has_abused_tld": 3.0,
		"has_at_symbol":  3.0,
		"num_hyphens":    0.5,
	}, -2.0
}

func TestLoadModelValid(t *testing.T) {
	weights, bias := testWeights()
	path := writeArtifact(t, features.SchemaVersion, features.Names(), weights, bias)

	m, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel() error = %v", err)
	}
	if m.Mode() != ModeModel {
		t.Errorf("Mode() = %q, want %q", m.Mode(), ModeModel)
	}
}

func TestLoadModelFailures(t *testing.T) {
	names := features.Names()
	weights, bias := testWeights()

	wrongNames := append([]string{}, names...)
	wrongNames[0], wrongNames[1] = wrongNames[1], wrongNames[0]

	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string {
			return filepath.Join(t.TempDir(), "does-not-exist.json")
		}},
		{"corrupt json", func(t *testing.T) string {
			path := filepath.Join(t.TempDir(), "model.json")
			os.WriteFile(path, []byte("{not json"), 0o644)
			return path
		}},
		{"schema version mismatch", func(t *testing.T) string {
			return writeArtifact(t, features.SchemaVersion+1, names, weights, bias)
		}},
		{"wrong feature count", func(t *testing.T) string {
			return writeArtifact(t, features.SchemaVersion, names[:len(names)-1], weights, bias)
		}},
		{"wrong feature order", func(t *testing.T) string {
			return writeArtifact(t, features.SchemaVersion, wrongNames, weights, bias)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadModel(tt.path(t)); err == nil {
				t.Error("LoadModel() error = nil, want load failure")
			}
		})
	}
}

func TestModelPredict(t *testing.T) {
	weights, bias := testWeights()
	path := writeArtifact(t, features.SchemaVersion, features.Names(), weights, bias)

	m, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel() error = %v", err)
	}

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"benign domain", "https://github.com", models.PredictionBenign},
		{"abused tld hyphenated", "http://paypal-secure-login.tk", models.PredictionPhishing},
		{"at-symbol obfuscation", "http://a.com@evil.example", models.PredictionPhishing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred := m.Predict(features.Extract(tt.url))
			if pred.Label != tt.want {
				t.Errorf("Predict(%q) = %q (confidence %f), want %q", tt.url, pred.Label, pred.Confidence, tt.want)
			}
			if pred.Confidence < 0 || pred.Confidence > 1 {
				t.Errorf("Predict(%q): confidence %f outside [0,1]", tt.url, pred.Confidence)
			}

			wantLabel := models.PredictionBenign
			if pred.Confidence > Threshold {
				wantLabel = models.PredictionPhishing
			}
			if pred.Label != wantLabel {
				t.Errorf("Predict(%q): label %q inconsistent with confidence %f", tt.url, pred.Label, pred.Confidence)
			}
		})
	}
}

func TestModelPredictMonotonicInHyphens(t *testing.T) {
	weights, bias := testWeights()
	path := writeArtifact(t, features.SchemaVersion, features.Names(), weights, bias)

	m, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel() error = %v", err)
	}

	few := m.Predict(features.Extract("http://a-b.com"))
	many := m.Predict(features.Extract("http://a-b-c-d-e-f.com"))
	if many.Confidence <= few.Confidence {
		t.Errorf("confidence not monotonic in hyphen weight: %f <= %f", many.Confidence, few.Confidence)
	}
}

func TestNewSelectsVariant(t *testing.T) {
	clf, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") error = %v", err)
	}
	if clf.Mode() != ModeHeuristic {
		t.Errorf("New(\"\").Mode() = %q, want %q", clf.Mode(), ModeHeuristic)
	}

	weights, bias := testWeights()
	path := writeArtifact(t, features.SchemaVersion, features.Names(), weights, bias)
	clf, err = New(path)
	if err != nil {
		t.Fatalf("New(model) error = %v", err)
	}
	if clf.Mode() != ModeModel {
		t.Errorf("New(model).Mode() = %q, want %q", clf.Mode(), ModeModel)
	}

	if _, err := New(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("New(missing artifact) error = nil, want failure")
	}
}
