package ratelimit

import (
	"context"
	"time"

	"inkwell/internal/domain/service"
	"inkwell/internal/errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "inkwell:ratelimit:"

// redisAllowScript increments the window counter and sets its expiry on the
// first hit, atomically.
var redisAllowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {current, ttl}
`)

type redisLimiter struct {
	client redis.Scripter
	now    func() time.Time
}

// NewRedisLimiter shares counters across every instance pointed at the same redis.
func NewRedisLimiter(client redis.Scripter, now func() time.Time) service.RateLimiter {
	if now == nil {
		now = time.Now
	}

	return &redisLimiter{client: client, now: now}
}

func (r *redisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (service.RateLimitDecision, error) {
	if limit <= 0 {
		return service.RateLimitDecision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}
	windowMillis := window.Milliseconds()
	if windowMillis <= 0 {
		windowMillis = 1000
	}

	result, err := redisAllowScript.Run(ctx, r.client, []string{redisKeyPrefix + key}, windowMillis).Result()
	if err != nil {
		return service.RateLimitDecision{}, errors.Wrap(err, "run rate limit script")
	}

	values, ok := result.([]any)
	if !ok || len(values) < 2 {
		return service.RateLimitDecision{}, errors.New("unexpected redis rate limit response")
	}
	current, ok := values[0].(int64)
	if !ok {
		return service.RateLimitDecision{}, errors.New("invalid redis counter response")
	}
	ttlMillis, _ := values[1].(int64)

	resetAt := r.now()
	if ttlMillis > 0 {
		resetAt = resetAt.Add(time.Duration(ttlMillis) * time.Millisecond)
	}

	return service.RateLimitDecision{
		Allowed:   current <= int64(limit),
		Limit:     limit,
		Remaining: max(limit-int(current), 0),
		ResetAt:   resetAt,
	}, nil
}
