package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Key prefixes for everything the connector stores in Redis.
const (
	replayKeyPrefix      = "vnpay:ipn:"
	idempotencyKeyPrefix = "vnpay:idempotency:"
	rateLimitKeyPrefix   = "vnpay:ratelimit:"
)

// ReplayGuard implements ports.ReplayGuard using Redis SET NX.
// It remembers confirmed IPNs so a gateway retry is acknowledged as already updated.
type ReplayGuard struct {
	client *goredis.Client
	prefix string
}

// NewReplayGuard creates a new Redis-backed IPN replay guard.
func NewReplayGuard(client *goredis.Client) *ReplayGuard {
	return &ReplayGuard{
		client: client,
		prefix: replayKeyPrefix,
	}
}

// CheckAndSet atomically records scope:key with ttl.
// Returns true if the key is new, false if it was already recorded.
func (g *ReplayGuard) CheckAndSet(ctx context.Context, scope string, key string, ttl time.Duration) (bool, error) {
	redisKey := g.prefix + scope + ":" + key
	result, err := g.client.SetArgs(ctx, redisKey, time.Now().Unix(), goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis ipn replay check: %w", err)
	}
	return result == "OK", nil
}
