package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"carelink/internal/eligibility/models"
)

// RedisCache is the Redis-backed result cache. This is the production
// implementation; all instances sharing one Redis see each other's entries.
type RedisCache struct {
	client *redis.Client
}

// NewRedis constructs a Redis-backed result cache. The client lifecycle is
// managed externally.
func NewRedis(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get fetches a cached payload, returning nil on a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (*models.ResponsePayload, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var payload models.ResponsePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode cached payload: %w", err)
	}
	return &payload, nil
}

// Set stores a payload under the TTL using Redis' atomic set-with-expiry.
func (c *RedisCache) Set(ctx context.Context, key string, payload *models.ResponsePayload, ttl time.Duration) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
