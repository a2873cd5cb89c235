package cache

import (
	"context"
	"sync"
	"time"

	"carelink/internal/eligibility/models"
)

// InMemoryCache is a process-local result cache for tests and single-node
// development runs.
type InMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	payload   models.ResponsePayload
	expiresAt time.Time
}

// NewInMemory constructs an empty in-memory cache.
func NewInMemory() *InMemoryCache {
	return &InMemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *InMemoryCache) Get(_ context.Context, key string) (*models.ResponsePayload, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.expiresAt) {
		return nil, nil
	}
	payload := entry.payload
	return &payload, nil
}

func (c *InMemoryCache) Set(_ context.Context, key string, payload *models.ResponsePayload, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{
		payload:   *payload,
		expiresAt: c.now().Add(ttl),
	}
	return nil
}

// SetClock overrides the expiry clock. Test hook.
func (c *InMemoryCache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
