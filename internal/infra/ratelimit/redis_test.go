package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScripter emulates the INCR/PEXPIRE script for a single key.
type fakeScripter struct {
	counts map[string]int64
	ttl    int64
	err    error
	keys   []string
}

func newFakeScripter(ttl time.Duration) *fakeScripter {
	return &fakeScripter{counts: make(map[string]int64), ttl: ttl.Milliseconds()}
}

func (f *fakeScripter) run(keys []string) *redis.Cmd {
	if f.err != nil {
		return redis.NewCmdResult(nil, f.err)
	}
	f.keys = append(f.keys, keys...)
	f.counts[keys[0]]++

	return redis.NewCmdResult([]any{f.counts[keys[0]], f.ttl}, nil)
}

func (f *fakeScripter) Eval(_ context.Context, _ string, keys []string, _ ...any) *redis.Cmd {
	return f.run(keys)
}

func (f *fakeScripter) EvalSha(_ context.Context, _ string, keys []string, _ ...any) *redis.Cmd {
	return f.run(keys)
}

func (f *fakeScripter) EvalRO(_ context.Context, _ string, keys []string, _ ...any) *redis.Cmd {
	return f.run(keys)
}

func (f *fakeScripter) EvalShaRO(_ context.Context, _ string, keys []string, _ ...any) *redis.Cmd {
	return f.run(keys)
}

func (f *fakeScripter) ScriptExists(_ context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult(make([]bool, len(hashes)), nil)
}

func (f *fakeScripter) ScriptLoad(_ context.Context, _ string) *redis.StringCmd {
	return redis.NewStringResult("", nil)
}

func TestRedisLimiter_Allow(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	scripter := newFakeScripter(30 * time.Second)
	limiter := NewRedisLimiter(scripter, func() time.Time { return now })
	ctx := context.Background()

	first, err := limiter.Allow(ctx, "10.0.0.1", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, first.Allowed)
	assert.Equal(t, 1, first.Remaining)
	assert.Equal(t, now.Add(30*time.Second), first.ResetAt)

	second, err := limiter.Allow(ctx, "10.0.0.1", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, second.Allowed)
	assert.Equal(t, 0, second.Remaining)

	third, err := limiter.Allow(ctx, "10.0.0.1", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, third.Allowed)
	assert.Equal(t, 0, third.Remaining)

	assert.Equal(t, redisKeyPrefix+"10.0.0.1", scripter.keys[0])
}

func TestRedisLimiter_ScriptError(t *testing.T) {
	scripter := newFakeScripter(time.Second)
	scripter.err = errors.New("connection refused")
	limiter := NewRedisLimiter(scripter, nil)

	_, err := limiter.Allow(context.Background(), "k", 1, time.Minute)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
