// Package ratelimit guards the session-code verify endpoint against
// brute-force guessing from walk-up kiosks.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Limiter answers whether a given key may perform another attempt.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

var _ Limiter = (*RedisLimiter)(nil)

// RedisLimiter is a fixed-window counter in Redis. The first attempt in a
// window creates the key with a TTL; the window resets when the key expires.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, prefix: prefix, limit: limit, window: window}
}

// Allow increments the window counter for key and reports whether the
// attempt is within the limit. On Redis failure it fails open: losing the
// brute-force guard is preferable to taking the kiosk down.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("%s:%s", l.prefix, key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		log.Warn().Err(err).Str("key", redisKey).Msg("Rate limiter unavailable, allowing request")
		return true, nil
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			log.Warn().Err(err).Str("key", redisKey).Msg("Failed to set rate limit window expiry")
		}
	}
	return count <= int64(l.limit), nil
}
