package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"inkwell/config"
	httpmiddleware "inkwell/internal/delivery/http/middleware"
	"inkwell/internal/delivery/http/router"
	"inkwell/internal/delivery/http/router/handler"
	"inkwell/internal/domain/policy"
	"inkwell/internal/domain/service"
	"inkwell/internal/infra/auth"
	"inkwell/internal/infra/persistence/memory"
	"inkwell/internal/infra/ratelimit"
	"inkwell/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

type testClient struct {
	t *testing.T
	e *echo.Echo
}

// newTestServer wires the real stack over the memory store. Options adjust the
// config after defaults are applied.
func newTestServer(t *testing.T, options ...func(*config.Config)) *testClient {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.ServiceName = "inkwell-test"
	cfg.Storage.Driver = config.StorageDriverMemory
	cfg.SecretKey.Access = "integration-test-signing-secret"
	cfg.ApplyDefaults()
	cfg.Auth.BcryptCost = 4
	for _, option := range options {
		option(cfg)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	accountRepo := memory.NewAccountRepository()
	contentRepo := memory.NewContentRepository()

	accountUC := impl.NewAccountService(impl.AccountServiceParams{
		AccountRepo:  accountRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenSvc,
		Config:       cfg,
		Logger:       logger,
	})
	contentUC := impl.NewContentService(impl.ContentServiceParams{
		ContentRepo: contentRepo,
		AccountRepo: accountRepo,
		Policy:      policy.NewAccessPolicy(),
		Logger:      logger,
	})

	var limiter service.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.NewMemoryLimiter(ratelimit.MemoryLimiterConfig{MaxKeys: cfg.RateLimit.MaxKeys})
	}

	e, err := NewEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: httpmiddleware.NewErrorMiddleware(logger),
		RateLimitMiddleware: httpmiddleware.NewRateLimitMiddleware(httpmiddleware.RateLimitMiddlewareParams{
			Limiter: limiter,
			Config:  cfg,
			Logger:  logger,
		}),
		RouterParams: router.RouterParams{
			AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: accountUC, Logger: logger}),
			ContentHandler: handler.NewContentHandler(handler.ContentHandlerParams{ContentUC: contentUC, Logger: logger}),
			AuthMiddleware: httpmiddleware.NewAuthMiddleware(tokenSvc, logger),
		},
	})
	require.NoError(t, err)

	return &testClient{t: t, e: e}
}

func (tc *testClient) do(method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	tc.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	tc.e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(tc.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func (tc *testClient) registerAndLogin(username, password string) string {
	tc.t.Helper()

	creds := `{"username":"` + username + `","password":"` + password + `"}`
	rec, _ := tc.do(http.MethodPost, "/register", "", creds)
	require.Equal(tc.t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env := tc.do(http.MethodPost, "/login", "", creds)
	require.Equal(tc.t, http.StatusOK, rec.Code, rec.Body.String())

	var login handler.LoginResponse
	require.NoError(tc.t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(tc.t, login.Token)

	return login.Token
}

func TestServer_OwnershipFlow(t *testing.T) {
	tc := newTestServer(t)
	aliceToken := tc.registerAndLogin("alice", "pw1")
	bobToken := tc.registerAndLogin("bob", "pw2")

	rec, env := tc.do(http.MethodPost, "/content", aliceToken, `{"title":"Hello","body":"World"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created handler.ContentResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	itemPath := "/content/" + created.ID.String()

	rec, env = tc.do(http.MethodPut, itemPath, bobToken, `{"title":"Hacked","body":"x"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "CONTENT_FORBIDDEN", env.Error.Code)

	rec, _ = tc.do(http.MethodDelete, itemPath, bobToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Bob can still read it, and nothing changed.
	rec, env = tc.do(http.MethodGet, itemPath, bobToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched handler.ContentResponse
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, "Hello", fetched.Title)
	assert.Equal(t, "World", fetched.Body)
	assert.Equal(t, "alice", fetched.OwnerUsername)

	rec, env = tc.do(http.MethodGet, "/content", bobToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []handler.ContentResponse
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "alice", listed[0].OwnerUsername)
	assert.Equal(t, created.OwnerID, listed[0].OwnerID)

	rec, env = tc.do(http.MethodPut, itemPath, aliceToken, `{"title":"Hello v2","body":"World v2"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated handler.ContentResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Hello v2", updated.Title)
	assert.Equal(t, created.OwnerID, updated.OwnerID)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	rec, _ = tc.do(http.MethodDelete, itemPath, aliceToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = tc.do(http.MethodGet, itemPath, aliceToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CONTENT_NOT_FOUND", env.Error.Code)
}

func TestServer_RegistrationAndLoginErrors(t *testing.T) {
	tc := newTestServer(t)
	tc.registerAndLogin("alice", "pw1")

	rec, env := tc.do(http.MethodPost, "/register", "", `{"username":"alice","password":"other"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USERNAME_TAKEN", env.Error.Code)

	wrongPassword, _ := tc.do(http.MethodPost, "/login", "", `{"username":"alice","password":"nope"}`)
	unknownUser, _ := tc.do(http.MethodPost, "/login", "", `{"username":"mallory","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())

	rec, env = tc.do(http.MethodPost, "/register", "", `{"username":"","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestServer_ProtectedRoutes(t *testing.T) {
	tc := newTestServer(t)
	token := tc.registerAndLogin("alice", "pw1")

	noToken, _ := tc.do(http.MethodGet, "/content", "", "")
	forged, _ := tc.do(http.MethodGet, "/content", "not.a.token", "")
	assert.Equal(t, http.StatusUnauthorized, noToken.Code)
	assert.Equal(t, http.StatusUnauthorized, forged.Code)
	assert.JSONEq(t, noToken.Body.String(), forged.Body.String())

	rec, _ := tc.do(http.MethodPost, "/content", "", `{"title":"t","body":"b"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env := tc.do(http.MethodGet, "/content/not-a-uuid", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = tc.do(http.MethodGet, "/content/0195f0c4-8f3a-7c2e-9a51-4b7d2e1f6a90", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CONTENT_NOT_FOUND", env.Error.Code)

	rec, env = tc.do(http.MethodPost, "/content", token, `{"title":"","body":"b"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = tc.do(http.MethodGet, "/content", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestServer_OperationalEndpoints(t *testing.T) {
	tc := newTestServer(t)

	rec, env := tc.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec, env = tc.do(http.MethodGet, "/missing", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ROUTE_NOT_FOUND", env.Error.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsRec := httptest.NewRecorder()
	tc.e.ServeHTTP(metricsRec, req)
	assert.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), "go_goroutines")
}

func TestServer_NonOwnerUpdateWithEmptyFieldIsForbidden(t *testing.T) {
	tc := newTestServer(t)
	aliceToken := tc.registerAndLogin("alice", "pw1")
	bobToken := tc.registerAndLogin("bob", "pw2")

	rec, env := tc.do(http.MethodPost, "/content", aliceToken, `{"title":"Hello","body":"World"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created handler.ContentResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	itemPath := "/content/" + created.ID.String()

	rec, env = tc.do(http.MethodPut, itemPath, bobToken, `{"title":"","body":"x"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "CONTENT_FORBIDDEN", env.Error.Code)

	rec, env = tc.do(http.MethodPut, "/content/0195f0c4-8f3a-7c2e-9a51-4b7d2e1f6a90", bobToken, `{"title":"","body":""}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CONTENT_NOT_FOUND", env.Error.Code)

	rec, env = tc.do(http.MethodPut, itemPath, aliceToken, `{"title":"","body":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "title: must not be empty", env.Error.Details)

	rec, env = tc.do(http.MethodGet, itemPath, aliceToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched handler.ContentResponse
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, "Hello", fetched.Title)
}

// serveFrom sends an unauthenticated GET /content from remoteAddr with the given
// X-Forwarded-For value.
func (tc *testClient) serveFrom(remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodGet, "/content", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set(echo.HeaderXForwardedFor, forwardedFor)
	}
	rec := httptest.NewRecorder()
	tc.e.ServeHTTP(rec, req)

	return rec.Code
}

func TestServer_RateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	tc := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.Limit = 2
	})

	codes := make([]int, 0, 4)
	for i := range 4 {
		codes = append(codes, tc.serveFrom("203.0.113.7:40000", "10.0.0."+strconv.Itoa(i)))
	}

	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestServer_RateLimitUsesForwardedForBehindTrustedProxy(t *testing.T) {
	tc := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.Limit = 1
		cfg.HTTP.TrustedProxies = []string{"10.1.0.0/16"}
	})

	assert.Equal(t, http.StatusUnauthorized, tc.serveFrom("10.1.0.5:40000", "198.51.100.1"))
	assert.Equal(t, http.StatusUnauthorized, tc.serveFrom("10.1.0.5:40000", "198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, tc.serveFrom("10.1.0.5:40000", "198.51.100.1"))
}
