package cache

import (
	"time"

	"github.com/gofiber/storage/redis/v3"

	"phishguard/internal/models"
)

// RedisStore backs the cache with Redis via the Fiber storage driver.
type RedisStore struct {
	storage *redis.Storage
}

// NewRedis connects to Redis using a redis:// URL. The driver pings the
// server during construction, so a misconfigured address fails at startup.
func NewRedis(url string) *RedisStore {
	return &RedisStore{
		storage: redis.New(redis.Config{
			URL: url,
		}),
	}
}

// Get fetches and deserializes a cached result. A missing key is (nil, nil).
func (s *RedisStore) Get(key string) (*models.ScanResult, error) {
	data, err := s.storage.Get(key)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return decode(data)
}

// Set stores a result with the given TTL. Redis owns expiry from here on.
func (s *RedisStore) Set(key string, result *models.ScanResult, ttlSeconds int) error {
	data, err := encode(result)
	if err != nil {
		return err
	}
	return s.storage.Set(key, data, time.Duration(ttlSeconds)*time.Second)
}

// Delete removes an entry. Deleting a missing key is not an error.
func (s *RedisStore) Delete(key string) error {
	return s.storage.Delete(key)
}

// Close releases the underlying connection.
func (s *RedisStore) Close() error {
	return s.storage.Close()
}
