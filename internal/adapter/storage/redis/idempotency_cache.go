package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache implements ports.IdempotencyCache using Redis.
// Refund responses are kept per terminal under the caller's Idempotency-Key,
// and the first stored response wins so concurrent retries cannot replace it.
type IdempotencyCache struct {
	client *goredis.Client
	prefix string
}

// NewIdempotencyCache creates a Redis-backed idempotency cache scoped to tmnCode.
func NewIdempotencyCache(client *goredis.Client, tmnCode string) *IdempotencyCache {
	return &IdempotencyCache{
		client: client,
		prefix: idempotencyKeyPrefix + tmnCode + ":",
	}
}

// Get retrieves a cached response by idempotency key.
// Returns nil, nil if the key does not exist.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis idempotency get %s: %w", key, err)
	}
	return val, nil
}

// Set stores a response with ttl unless one is already stored for key.
func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.SetArgs(ctx, c.prefix+key, value, goredis.SetArgs{Mode: "NX", TTL: ttl}).Err(); err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil
		}
		return fmt.Errorf("redis idempotency set %s: %w", key, err)
	}
	return nil
}
