package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisLimiter counts requests in Redis so the budget is shared across
// replicas. Each key gets an INCR with a window-length expiry set on the
// first hit.
type redisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedis creates a Redis-backed limiter allowing limit requests per minute.
func NewRedis(client *redis.Client, limit int) Limiter {
	return &redisLimiter{
		client: client,
		limit:  limit,
		window: time.Minute,
	}
}

func (r *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := r.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := r.client.Expire(ctx, redisKey, r.window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(r.limit), nil
}

func (r *redisLimiter) Limit() int {
	return r.limit
}
