package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore externalizes the window counters so multiple instances share one
// budget per client. The key TTL is only set when a window opens, never
// refreshed, keeping fixed-window semantics.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "ratelimit:"}
}

func (s *RedisStore) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	k := s.prefix + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	ttl := pipe.TTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	remaining := ttl.Val()
	if remaining < 0 {
		// Window just opened (or the key predates its expiry); stamp it.
		if err := s.client.Expire(ctx, k, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
		remaining = window
	}

	return incr.Val(), time.Now().Add(remaining), nil
}
