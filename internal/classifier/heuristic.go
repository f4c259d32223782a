package classifier

import (
	"phishguard/internal/features"
)

// Pseudo-confidences returned by the heuristic. These are fixed constants
// per branch, not calibrated probabilities; callers must not treat them as
// model output.
const (
	heuristicPhishingConfidence = 0.85
	heuristicBenignConfidence   = 0.08
)

// Heuristic is the fallback classifier used when no model artifact is
// available. It flags a URL as phishing when any hard-coded red flag holds.
type Heuristic struct{}

// Predict applies the red-flag disjunction to the extracted features.
func (h *Heuristic) Predict(f features.Features) Prediction {
	if h.suspicious(f) {
		return Prediction{Label: label(heuristicPhishingConfidence), Confidence: heuristicPhishingConfidence}
	}
	return Prediction{Label: label(heuristicBenignConfidence), Confidence: heuristicBenignConfidence}
}

// suspicious is the red-flag disjunction. Each condition alone is enough
// to classify the URL as phishing.
func (h *Heuristic) suspicious(f features.Features) bool {
	switch {
	case f.HasAtSymbol:
		return true
	case f.IsIPAddress:
		return true
	case f.HasAbusedTLD && f.NumHyphens >= 2:
		return true
	case f.NumHyphens >= 4:
		return true
	case f.HasPhishingKeyword && f.URLLength > 50:
		return true
	case f.NumDots > 4:
		return true
	}
	return false
}

// Mode identifies this variant in stats and health output.
func (h *Heuristic) Mode() string {
	return ModeHeuristic
}
