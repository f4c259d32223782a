// Package features turns a raw URL string into the fixed-order numeric
// vector consumed by the classifier. Extraction is pure: no network, no
// clock, no DNS. The same URL string always produces the same vector.
package features

import (
	"math"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// SchemaVersion identifies the shape of the feature vector. Bumping it
// invalidates every cached scan result (the version is part of the cache
// key) and every trained model artifact (checked at load time).
const SchemaVersion = 1

// AbusedTLDs is the set of free/abused top-level domains, matched
// case-insensitively against the rightmost label of the host.
var AbusedTLDs = map[string]bool{
	"tk":  true,
	"ml":  true,
	"ga":  true,
	"cf":  true,
	"gq":  true,
	"xyz": true,
	"top": true,
}

// PhishingKeywords are terms commonly found in phishing URLs.
var PhishingKeywords = []string{
	"login", "signin", "account", "update", "confirm", "verify",
	"secure", "ebay", "paypal", "amazon", "bank", "apple",
}

var dottedQuadPattern = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)

// Features is the extracted feature set for a single URL.
// Field order mirrors Names(); Vector() flattens in the same order.
type Features struct {
	URLLength              int
	DomainLength           int
	HasHTTPS               bool
	HasHTTP                bool
	NumDots                int
	NumHyphens             int
	NumUnderscores         int
	NumSlashes             int
	NumQuestionMarks       int
	NumEqualSigns          int
	NumAtSymbols           int
	NumAmpersands          int
	NumPercentSigns        int
	HasAtSymbol            bool
	HasDoubleSlashRedirect bool
	NumDigits              int
	DigitRatio             float64
	SubdomainLength        int
	HasSubdomain           bool
	NumSubdomains          int
	PathLength             int
	NumPathTokens          int
	HasQueryParams         bool
	NumQueryParams         int
	IsIPAddress            bool
	HasPort                bool
	TLDLength              int
	HasAbusedTLD           bool
	HasPhishingKeyword     bool
	Entropy                float64
}

// Names returns the feature names in vector order. A model artifact must
// declare exactly this list (and SchemaVersion) to be loadable.
func Names() []string {
	return []string{
		"url_length", "domain_length", "has_https", "has_http",
		"num_dots", "num_hyphens", "num_underscores", "num_slashes",
		"num_question_marks", "num_equal_signs", "num_at_symbols",
		"num_ampersands", "num_percent_signs", "has_at_symbol",
		"has_double_slash_redirect", "num_digits", "digit_ratio",
		"subdomain_length", "has_subdomain", "num_subdomains",
		"path_length", "num_path_tokens", "has_query_params",
		"num_query_params", "is_ip_address", "has_port",
		"tld_length", "has_abused_tld", "has_phishing_keyword",
		"url_entropy",
	}
}

// Vector flattens the features into a []float64 in Names() order.
func (f Features) Vector() []float64 {
	return []float64{
		float64(f.URLLength), float64(f.DomainLength), b2f(f.HasHTTPS), b2f(f.HasHTTP),
		float64(f.NumDots), float64(f.NumHyphens), float64(f.NumUnderscores), float64(f.NumSlashes),
		float64(f.NumQuestionMarks), float64(f.NumEqualSigns), float64(f.NumAtSymbols),
		float64(f.NumAmpersands), float64(f.NumPercentSigns), b2f(f.HasAtSymbol),
		b2f(f.HasDoubleSlashRedirect), float64(f.NumDigits), f.DigitRatio,
		float64(f.SubdomainLength), b2f(f.HasSubdomain), float64(f.NumSubdomains),
		float64(f.PathLength), float64(f.NumPathTokens), b2f(f.HasQueryParams),
		float64(f.NumQueryParams), b2f(f.IsIPAddress), b2f(f.HasPort),
		float64(f.TLDLength), b2f(f.HasAbusedTLD), b2f(f.HasPhishingKeyword),
		f.Entropy,
	}
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Extract computes the feature set for a raw URL string. It is a total
// function: malformed or unparsable components degrade to neutral defaults
// (zero counts, false flags) instead of returning an error.
func Extract(rawURL string) Features {
	f := Features{
		URLLength:              len(rawURL),
		HasHTTPS:               strings.HasPrefix(rawURL, "https://"),
		HasHTTP:                strings.HasPrefix(rawURL, "http://"),
		NumDots:                strings.Count(rawURL, "."),
		NumHyphens:             strings.Count(rawURL, "-"),
		NumUnderscores:         strings.Count(rawURL, "_"),
		NumSlashes:             strings.Count(rawURL, "/"),
		NumQuestionMarks:       strings.Count(rawURL, "?"),
		NumEqualSigns:          strings.Count(rawURL, "="),
		NumAtSymbols:           strings.Count(rawURL, "@"),
		NumAmpersands:          strings.Count(rawURL, "&"),
		NumPercentSigns:        strings.Count(rawURL, "%"),
		HasAtSymbol:            strings.Contains(rawURL, "@"),
		HasDoubleSlashRedirect: strings.Count(rawURL, "//") > 1,
		Entropy:                entropy(rawURL),
	}

	for _, c := range rawURL {
		if c >= '0' && c <= '9' {
			f.NumDigits++
		}
	}
	if len(rawURL) > 0 {
		f.DigitRatio = float64(f.NumDigits) / float64(len(rawURL))
	}

	lower := strings.ToLower(rawURL)
	for _, kw := range PhishingKeywords {
		if strings.Contains(lower, kw) {
			f.HasPhishingKeyword = true
			break
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		// Host and path features stay at their zero defaults.
		return f
	}

	f.DomainLength = len(u.Host)

	host := strings.ToLower(u.Hostname())
	f.IsIPAddress = isIPLiteral(host)
	f.HasPort = strings.Contains(u.Host, ":") && !f.IsIPAddress

	if host != "" && !f.IsIPAddress {
		sub, suffix := splitHost(host)
		f.SubdomainLength = len(sub)
		f.HasSubdomain = sub != ""
		if sub != "" {
			f.NumSubdomains = strings.Count(sub, ".") + 1
		}
		f.TLDLength = len(suffix)
		labels := strings.Split(host, ".")
		f.HasAbusedTLD = AbusedTLDs[labels[len(labels)-1]]
	}

	f.PathLength = len(u.Path)
	if u.Path != "" || u.Host != "" {
		f.NumPathTokens = strings.Count(u.Path, "/") + 1
	}

	if u.RawQuery != "" {
		f.HasQueryParams = true
		f.NumQueryParams = strings.Count(u.RawQuery, "&") + 1
	}

	return f
}

// isIPLiteral reports whether host looks like a dotted-quad IPv4 or an
// IPv6 literal. Pattern match only, no resolution.
func isIPLiteral(host string) bool {
	if host == "" {
		return false
	}
	return dottedQuadPattern.MatchString(host) || strings.Contains(host, ":")
}

// splitHost separates the subdomain part from the host and returns it
// together with the public suffix. Falls back to treating the last label
// as the suffix when the host is not under a known public suffix.
func splitHost(host string) (subdomain, suffix string) {
	suffix, _ = publicsuffix.PublicSuffix(host)

	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// Host equals a bare suffix or is otherwise irregular; no subdomain.
		return "", suffix
	}
	if host != registrable {
		subdomain = strings.TrimSuffix(host, "."+registrable)
	}
	return subdomain, suffix
}

// entropy computes the Shannon entropy (bits per character) over the
// character distribution of s.
func entropy(s string) float64 {
	if s == "" {
		return 0
	}
	freq := make(map[rune]int)
	var total float64
	for _, c := range s {
		freq[c]++
		total++
	}
	var e float64
	for _, count := range freq {
		p := float64(count) / total
		e -= p * math.Log2(p)
	}
	return e
}
