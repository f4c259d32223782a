package cache

import (
	"sync"
	"time"

	"phishguard/internal/models"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is an in-process Store with per-entry expiry. Used when no
// Redis URL is configured and throughout the tests. Expired entries are
// evicted lazily on read.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	// now is swappable so tests can drive TTL expiry without sleeping.
	now func() time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns the entry for key, or (nil, nil) if absent or expired.
func (s *MemoryStore) Get(key string) (*models.ScanResult, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock; another goroutine may have
		// replaced the entry in the meantime.
		if current, ok := s.entries[key]; ok && s.now().After(current.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, nil
	}
	return decode(entry.data)
}

// Set stores a result for ttlSeconds.
func (s *MemoryStore) Set(key string, result *models.ScanResult, ttlSeconds int) error {
	data, err := encode(result)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.entries[key] = memoryEntry{
		data:      data,
		expiresAt: s.now().Add(time.Duration(ttlSeconds) * time.Second),
	}
	s.mu.Unlock()
	return nil
}

// Delete removes an entry. Deleting a missing key is not an error.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// SetClock overrides the store's time source. Test hook.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}
