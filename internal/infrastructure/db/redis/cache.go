package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const lookupTTL = 10 * time.Minute

// LookupCache stores upstream geocoding/weather responses keyed by the
// normalized lookup parameters. Entries expire after lookupTTL so stale
// weather is bounded.
type LookupCache struct {
	client *redis.Client
}

// NewLookupCache creates a LookupCache wrapping the given Redis client.
func NewLookupCache(client *redis.Client) *LookupCache {
	return &LookupCache{client: client}
}

// Get returns the cached payload for key, reporting whether it was present.
func (c *LookupCache) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return payload, true, nil
}

// Set stores payload under key for lookupTTL.
func (c *LookupCache) Set(ctx context.Context, key string, payload json.RawMessage) error {
	if err := c.client.Set(ctx, key, []byte(payload), lookupTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
