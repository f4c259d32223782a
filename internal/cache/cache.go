// Package cache adapts key/value stores with TTL semantics for scan
// results. The orchestrator treats every adapter error as a cache miss, so
// no Store implementation can fail a scan.
package cache

import (
	"encoding/json"
	"fmt"
	"strings"

	"phishguard/internal/features"
	"phishguard/internal/models"
)

// DefaultTTLSeconds is the default entry lifetime.
const DefaultTTLSeconds = 3600

const keyPrefix = "phishing:url:"

// Store is the cache contract used by the scanner. Get returns (nil, nil)
// on a miss. Implementations own entry lifetime; entries are never
// partially updated.
type Store interface {
	Get(key string) (*models.ScanResult, error)
	Set(key string, result *models.ScanResult, ttlSeconds int) error
	Delete(key string) error
	Close() error
}

// Key derives the cache key for a URL. The URL is whitespace-trimmed but
// otherwise preserved as given: scheme and case are significant, so
// http://X and http://x are distinct entries. The feature schema version
// is part of the key, which invalidates all entries when the vector shape
// changes.
func Key(rawURL string) string {
	return fmt.Sprintf("%sv%d:%s", keyPrefix, features.SchemaVersion, strings.TrimSpace(rawURL))
}

// encode serializes a result for storage. FromCache is forced false at
// write time so a later hit can stamp it true without rewriting the entry.
func encode(result *models.ScanResult) ([]byte, error) {
	stored := *result
	stored.FromCache = false
	return json.Marshal(&stored)
}

// decode deserializes a stored entry.
func decode(data []byte) (*models.ScanResult, error) {
	var result models.ScanResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("corrupt cache entry: %w", err)
	}
	return &result, nil
}
