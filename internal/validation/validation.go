package validation

import (
	"regexp"
	"strings"
)

// ScanURLPattern is the shape check applied at the API boundary. The core
// pipeline relies on it and does not re-validate the scheme.
var ScanURLPattern = regexp.MustCompile(`^https?://.+`)

// MaxURLLength bounds accepted URLs; anything longer is rejected upstream
// rather than fed to the extractor.
const MaxURLLength = 2048

// ValidateScanURL checks that a URL is non-empty, within bounds, and has an
// http or https scheme. Returns a human-readable reason on failure.
func ValidateScanURL(rawURL string) (bool, string) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return false, "URL is required"
	}
	if len(trimmed) > MaxURLLength {
		return false, "URL exceeds maximum length"
	}
	if !ScanURLPattern.MatchString(trimmed) {
		return false, "URL must start with http:// or https://"
	}
	return true, ""
}

// NormalizeURL trims surrounding whitespace. Scheme and case are preserved
// as given: normalization is deliberately minimal so cache keys stay
// faithful to the submitted URL.
func NormalizeURL(rawURL string) string {
	return strings.TrimSpace(rawURL)
}
