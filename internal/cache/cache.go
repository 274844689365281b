// Package cache provides a byte-oriented TTL cache for API lookups.
// With a Redis URL configured it rides on the Fiber redis storage driver,
// which also backs the HTTP rate limiter; otherwise an in-process map
// stands in.
package cache

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/redis/v3"
)

// Store is the subset of fiber.Storage the cache needs.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
}

// Cache wraps a Store with a default TTL.
type Cache struct {
	store   Store
	ttl     time.Duration
	storage fiber.Storage // non-nil only when backed by redis
}

// New builds a cache. An empty redisURL selects the in-process store.
func New(redisURL string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if redisURL == "" {
		return &Cache{store: newMemoryStore(), ttl: ttl}
	}
	rs := redis.New(redis.Config{URL: redisURL})
	return &Cache{store: rs, ttl: ttl, storage: rs}
}

// Storage exposes the shared redis storage for middleware that accepts a
// fiber.Storage. Returns nil when the cache is in-process.
func (c *Cache) Storage() fiber.Storage { return c.storage }

// Get returns the cached value, or nil on miss or store error.
func (c *Cache) Get(key string) []byte {
	val, err := c.store.Get(key)
	if err != nil {
		return nil
	}
	return val
}

// Set stores a value under the default TTL. Errors are swallowed; a failed
// cache write only costs a future lookup.
func (c *Cache) Set(key string, val []byte) {
	_ = c.store.Set(key, val, c.ttl)
}

// memoryStore is a minimal TTL map with lazy expiry.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	val []byte
	exp time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[string]memoryEntry)}
}

func (m *memoryStore) Get(key string) ([]byte, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, nil
	}
	return e.val, nil
}

func (m *memoryStore) Set(key string, val []byte, exp time.Duration) error {
	e := memoryEntry{val: val}
	if exp > 0 {
		e.exp = time.Now().Add(exp)
	}
	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) Delete(key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}
