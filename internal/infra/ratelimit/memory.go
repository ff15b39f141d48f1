// Package ratelimit provides fixed-window request limiters backed by process
// memory or redis.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"inkwell/internal/domain/service"
	"inkwell/internal/errors"
)

const defaultMaxKeys = 10000

// ErrCapacityExceeded is returned when the memory limiter tracks too many live keys.
var ErrCapacityExceeded = errors.New("rate limiter capacity exceeded")

type memoryLimiter struct {
	mu      sync.Mutex
	now     func() time.Time
	buckets map[string]*memoryBucket
	maxKeys int
}

type memoryBucket struct {
	count     int
	windowEnd time.Time
}

// MemoryLimiterConfig configures NewMemoryLimiter. Zero values pick defaults.
type MemoryLimiterConfig struct {
	Now     func() time.Time
	MaxKeys int
}

func NewMemoryLimiter(cfg MemoryLimiterConfig) service.RateLimiter {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.MaxKeys <= 0 {
		cfg.MaxKeys = defaultMaxKeys
	}

	return &memoryLimiter{
		now:     cfg.Now,
		buckets: make(map[string]*memoryBucket),
		maxKeys: cfg.MaxKeys,
	}
}

func (m *memoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (service.RateLimitDecision, error) {
	if limit <= 0 {
		return service.RateLimitDecision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	bucket, ok := m.buckets[key]
	if ok && !now.Before(bucket.windowEnd) {
		delete(m.buckets, key)
		ok = false
	}
	if !ok {
		if len(m.buckets) >= m.maxKeys {
			m.evictExpired(now)
		}
		if len(m.buckets) >= m.maxKeys {
			return service.RateLimitDecision{}, ErrCapacityExceeded
		}
		bucket = &memoryBucket{windowEnd: now.Add(window)}
		m.buckets[key] = bucket
	}

	if bucket.count >= limit {
		return service.RateLimitDecision{
			Allowed:   false,
			Limit:     limit,
			Remaining: 0,
			ResetAt:   bucket.windowEnd,
		}, nil
	}

	bucket.count++

	return service.RateLimitDecision{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - bucket.count,
		ResetAt:   bucket.windowEnd,
	}, nil
}

func (m *memoryLimiter) evictExpired(now time.Time) {
	for key, bucket := range m.buckets {
		if !now.Before(bucket.windowEnd) {
			delete(m.buckets, key)
		}
	}
}
