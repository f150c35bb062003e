package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a WindowStore backed by Redis, sharing window counters
// across server instances. It relies on INCR plus a TTL set atomically on
// the first increment of each window.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore constructs a Redis-backed window store.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client, prefix: "ratelimit:"}
}

// Incr implements WindowStore. The key expires with the window, so Redis
// itself performs the window reset.
func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	rkey := s.prefix + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, rkey)
	// NX keeps an established window's deadline; only the increment that
	// opens the window sets the TTL.
	pipe.ExpireNX(ctx, rkey, window)
	ttl := pipe.PTTL(ctx, rkey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, fmt.Errorf("redis window incr: %w", err)
	}

	remaining := ttl.Val()
	if remaining < 0 {
		// PTTL returns a negative duration when no expiry is set; treat the
		// window as just opened.
		remaining = window
	}
	return int(incr.Val()), time.Now().Add(remaining), nil
}
