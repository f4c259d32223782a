package validation

import (
	"strings"
	"testing"
)

func TestValidateScanURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"valid https", "https://example.com", true, ""},
		{"valid http", "http://example.com", true, ""},
		{"valid with path and query", "https://example.com/a/b?c=1", true, ""},
		{"valid with surrounding space", "  https://example.com  ", true, ""},
		{"valid ip host", "http://192.168.1.1/login", true, ""},
		{"empty string", "", false, "URL is required"},
		{"whitespace only", "   ", false, "URL is required"},
		{"no scheme", "example.com", false, "URL must start with http:// or https://"},
		{"ftp scheme", "ftp://example.com", false, "URL must start with http:// or https://"},
		{"javascript scheme", "javascript:alert(1)", false, "URL must start with http:// or https://"},
		{"uppercase scheme", "HTTPS://example.com", false, "URL must start with http:// or https://"},
		{"scheme only", "https://", false, "URL must start with http:// or https://"},
		{"too long", "https://example.com/" + strings.Repeat("a", MaxURLLength), false, "URL exceeds maximum length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateScanURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateScanURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if !valid && msg != tt.wantMsg {
				t.Errorf("ValidateScanURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"trims whitespace", " https://example.com \t", "https://example.com"},
		{"preserves case", "http://EXAMPLE.com/Path", "http://EXAMPLE.com/Path"},
		{"preserves scheme", "http://example.com", "http://example.com"},
		{"no change needed", "https://example.com", "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.url); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
