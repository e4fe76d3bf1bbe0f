package ports

import (
	"context"
	"time"
)

// ReplayGuard records callback keys so a repeated IPN is recognised.
type ReplayGuard interface {
	// CheckAndSet atomically records key under scope.
	// Returns true if the key is new, false if it was already recorded.
	CheckAndSet(ctx context.Context, scope string, key string, ttl time.Duration) (bool, error)
}

// IdempotencyCache stores responses keyed by a client Idempotency-Key.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
