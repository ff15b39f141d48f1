package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"inkwell/config"
	deliverycontext "inkwell/internal/delivery/context"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/service"
	"inkwell/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
)

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Limiter service.RateLimiter `optional:"true"`
	Config  *config.Config
	Logger  *slog.Logger
}

// RateLimitMiddleware throttles requests per client IP.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	limit   int
	window  time.Duration
	logger  *slog.Logger
}

func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		limiter: params.Limiter,
		logger:  params.Logger,
	}
	if cfg := params.Config.RateLimit; cfg != nil {
		m.limit = cfg.Limit
		m.window = cfg.Window
	}

	return m
}

// Handle rejects with ErrTooManyRequests once the window budget is spent. A
// failing limiter backend lets the request through.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if m.limiter == nil {
		return next
	}

	return func(c echo.Context) error {
		if skipRateLimit(c) {
			return next(c)
		}
		ctx := c.Request().Context()

		decision, err := m.limiter.Allow(ctx, c.RealIP(), m.limit, m.window)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable", slog.Any("error", err))

			return next(c)
		}

		header := c.Response().Header()
		header.Set(headerRateLimitLimit, strconv.Itoa(decision.Limit))
		header.Set(headerRateLimitRemaining, strconv.Itoa(decision.Remaining))
		if !decision.ResetAt.IsZero() {
			header.Set(headerRateLimitReset, strconv.FormatInt(decision.ResetAt.Unix(), 10))
		}

		if !decision.Allowed {
			metrics.RecordRateLimited()
			if !decision.ResetAt.IsZero() {
				retryAfter := max(int(time.Until(decision.ResetAt).Seconds()), 1)
				header.Set(echo.HeaderRetryAfter, strconv.Itoa(retryAfter))
			}

			return errors.WithStack(domainerrors.ErrTooManyRequests)
		}

		return next(c)
	}
}

// skipRateLimit excludes the operational endpoints from throttling.
func skipRateLimit(c echo.Context) bool {
	path := c.Path()

	return c.Request().Method == http.MethodGet && (path == "/health" || path == "/metrics")
}
