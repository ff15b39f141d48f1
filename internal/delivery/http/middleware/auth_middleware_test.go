package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/service"
	mockservice "inkwell/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newProtectedEcho mounts a single protected route behind Authenticate.
func newProtectedEcho(m *AuthMiddleware) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	e.GET("/content", func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}

		return c.String(http.StatusOK, identity.AccountID.String())
	}, m.Authenticate)

	return e
}

func doGet(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/content", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Success(t *testing.T) {
	accountID := uuid.New()
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("good-token").Return(accountID, nil).Once()

	e := newProtectedEcho(NewAuthMiddleware(tokenSvc, newDiscardLogger()))
	rec := doGet(e, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, accountID.String(), rec.Body.String())
}

func TestAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	accountID := uuid.New()
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("good-token").Return(accountID, nil).Once()

	e := newProtectedEcho(NewAuthMiddleware(tokenSvc, newDiscardLogger()))
	rec := doGet(e, "bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		verifyErr     error
	}{
		{name: "missing header"},
		{name: "wrong scheme", authorization: "Basic dXNlcjpwYXNz"},
		{name: "empty token", authorization: "Bearer   "},
		{name: "invalid token", authorization: "Bearer forged", verifyErr: service.ErrTokenInvalid},
		{name: "expired token", authorization: "Bearer stale", verifyErr: service.ErrTokenExpired},
	}

	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockservice.NewMockTokenService(t)
			if tt.verifyErr != nil {
				tokenSvc.EXPECT().Verify(tt.authorization[len(bearerPrefix):]).Return(uuid.Nil, tt.verifyErr).Once()
			}

			e := newProtectedEcho(NewAuthMiddleware(tokenSvc, newDiscardLogger()))
			rec := doGet(e, tt.authorization)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.NotContains(t, rec.Body.String(), "expired")
			bodies = append(bodies, rec.Body.String())
		})
	}

	require.Len(t, bodies, len(tests))
	for _, body := range bodies[1:] {
		assert.JSONEq(t, bodies[0], body, "every rejection must look the same to the caller")
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, reason := extractBearerToken("Bearer abc.def.ghi")
	assert.Equal(t, "abc.def.ghi", token)
	assert.Empty(t, reason)

	_, reason = extractBearerToken("Bear")
	assert.NotEmpty(t, reason)
}
