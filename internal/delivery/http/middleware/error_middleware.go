package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/delivery/http/response"
	domainerrors "inkwell/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(c, err)
		}
		m.render(c, response.AppError(c, appErr))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.render(c, m.renderHTTPError(c, httpErr))

		return
	}

	// Unknown errors are logged in full and rendered without any detail.
	m.logError(c, err)
	m.render(c, response.InternalServerError(c))
}

func (m *ErrorMiddleware) renderHTTPError(c echo.Context, httpErr *echo.HTTPError) error {
	switch httpErr.Code {
	case http.StatusNotFound:
		return response.Error(c, httpErr.Code, "ROUTE_NOT_FOUND", "Route not found", "")
	case http.StatusMethodNotAllowed:
		return response.Error(c, httpErr.Code, "METHOD_NOT_ALLOWED", "Method not allowed", "")
	case http.StatusRequestEntityTooLarge:
		return response.Error(c, httpErr.Code, "PAYLOAD_TOO_LARGE", "Request body too large", "")
	case http.StatusUnsupportedMediaType, http.StatusBadRequest:
		return response.AppError(c, domainerrors.ErrInvalidInput)
	}

	if httpErr.Code >= http.StatusInternalServerError {
		m.logError(c, httpErr)

		return response.InternalServerError(c)
	}

	message := http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		message = msg
	}

	return response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")
}

func (m *ErrorMiddleware) logError(c echo.Context, err error) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Request failed",
		slog.Any("error", err),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)
}

func (m *ErrorMiddleware) render(c echo.Context, err error) {
	if err != nil {
		m.logger.Warn("Failed to write error response", slog.Any("error", err))
	}
}
