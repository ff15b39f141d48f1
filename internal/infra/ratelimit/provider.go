package ratelimit

import (
	"context"
	"log/slog"

	"inkwell/config"
	"inkwell/internal/domain/lifecycle"
	"inkwell/internal/domain/service"
	"inkwell/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// LimiterParams holds dependencies for the rate limiter, injected by Fx.
type LimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRateLimiter builds the limiter named by rateLimit.provider. It returns
// nil when rate limiting is disabled.
func NewRateLimiter(params LimiterParams) (service.RateLimiter, error) {
	cfg := params.Config.RateLimit
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("Rate limiting disabled")

		return nil, nil
	}

	switch cfg.Provider {
	case config.RateLimitProviderMemory, "":
		logger.Info("Using in-memory rate limiter",
			slog.Int("limit", cfg.Limit),
			slog.Duration("window", cfg.Window),
		)

		return NewMemoryLimiter(MemoryLimiterConfig{MaxKeys: cfg.MaxKeys}), nil

	case config.RateLimitProviderRedis:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("redis addr is required for the redis rate limiter")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(_ context.Context) error {
				logger.Info("Closing redis rate limiter client")

				return errors.WithStack(client.Close())
			},
		})

		logger.Info("Using redis rate limiter", slog.String("addr", params.Config.Redis.Addr))

		return NewRedisLimiter(client, nil), nil

	default:
		return nil, errors.Errorf("unknown rate limit provider: %s", cfg.Provider)
	}
}
