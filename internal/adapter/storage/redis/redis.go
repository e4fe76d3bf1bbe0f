package redis

import (
	"context"
	"fmt"
	"time"

	"vnpay-connector/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Redis sits on the IPN path, so calls give up quickly and the connector
// falls back to acknowledging without a replay check.
const (
	dialTimeout = 2 * time.Second
	ioTimeout   = time.Second
	pingTimeout = 2 * time.Second
)

// NewClient creates a Redis client for the replay guard, idempotency cache and
// rate limiter and verifies connectivity. The client is closed on failure.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Strs("key_prefixes", []string{replayKeyPrefix, idempotencyKeyPrefix, rateLimitKeyPrefix}).
		Msg("Redis connection established")

	return client, nil
}
