package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/service"
	"inkwell/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies the bearer session token on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate resolves the caller identity or rejects the request with a
// single generic ErrUnauthenticated. The concrete reason only reaches the debug log.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, reason := extractBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if reason != "" {
			return m.reject(c, metrics.OutcomeMissing, reason)
		}

		accountID, err := m.tokenSvc.Verify(token)
		if err != nil {
			outcome := metrics.OutcomeInvalid
			if errors.Is(err, service.ErrTokenExpired) {
				outcome = metrics.OutcomeExpired
			}

			return m.reject(c, outcome, err.Error())
		}

		metrics.RecordAuthEvent(metrics.EventVerify, metrics.OutcomeSuccess)
		deliverycontext.SetIdentity(c, entity.Identity{AccountID: accountID})

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context, outcome, reason string) error {
	metrics.RecordAuthEvent(metrics.EventVerify, outcome)
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Authentication rejected",
		slog.String("outcome", outcome),
		slog.String("reason", reason),
		slog.String("path", c.Request().URL.Path),
	)

	return errors.WithStack(domainerrors.ErrUnauthenticated)
}

// extractBearerToken returns the token or a non-empty reason it could not be read.
func extractBearerToken(header string) (token, reason string) {
	if header == "" {
		return "", "authorization header is missing"
	}
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", "authorization scheme is not Bearer"
	}

	token = strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", "bearer token is empty"
	}

	return token, ""
}
