package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"inkwell/config"
	"inkwell/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time { return c.current }

func (c *fakeClock) Advance(d time.Duration) { c.current = c.current.Add(d) }

func newTestJWTService(t *testing.T, clock *fakeClock) *jwtService {
	t.Helper()

	svc, err := newJWTService(testSecret, time.Hour, "inkwell", clock.Now)
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{current: time.Unix(1_700_000_000, 0)}
	svc := newTestJWTService(t, clock)
	accountID := uuid.New()

	token, expiresAt, err := svc.Issue(accountID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, clock.current.Add(time.Hour), expiresAt)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestJWTService_NewFromConfig(t *testing.T) {
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: testSecret},
		Auth:      &config.AuthConfig{TokenTTL: 10 * time.Minute},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	accountID := uuid.New()
	token, expiresAt, err := svc.Issue(accountID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), expiresAt, 2*time.Second)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_IssueRejectsNilAccount(t *testing.T) {
	svc := newTestJWTService(t, &fakeClock{current: time.Now()})

	_, _, err := svc.Issue(uuid.Nil)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	clock := &fakeClock{current: time.Unix(1_700_000_000, 0)}
	svc := newTestJWTService(t, clock)

	token, _, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	clock.Advance(59 * time.Minute)
	_, err = svc.Verify(token)
	require.NoError(t, err)

	// expiresAt <= now is expired.
	clock.Advance(time.Minute)
	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenExpired), "got %v", err)
	assert.False(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_TamperedSubject(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	svc := newTestJWTService(t, clock)

	token, _, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	forged := replaceClaim(t, token, "sub", uuid.NewString())
	_, err = svc.Verify(forged)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid), "got %v", err)
}

func TestJWTService_ExtendedExpiry(t *testing.T) {
	clock := &fakeClock{current: time.Unix(1_700_000_000, 0)}
	svc := newTestJWTService(t, clock)

	token, _, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	forged := replaceClaim(t, token, "exp", clock.current.Add(48*time.Hour).Unix())
	clock.Advance(2 * time.Hour)

	_, err = svc.Verify(forged)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid), "got %v", err)
	assert.False(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_WrongSecret(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	svc := newTestJWTService(t, clock)
	other, err := newJWTService("another-secret", time.Hour, "inkwell", clock.Now)
	require.NoError(t, err)

	token, _, err := other.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid), "got %v", err)
}

func TestJWTService_ExpiredWithWrongSecretIsInvalid(t *testing.T) {
	clock := &fakeClock{current: time.Unix(1_700_000_000, 0)}
	svc := newTestJWTService(t, clock)
	other, err := newJWTService("another-secret", time.Hour, "inkwell", clock.Now)
	require.NoError(t, err)

	token, _, err := other.Issue(uuid.New())
	require.NoError(t, err)
	clock.Advance(2 * time.Hour)

	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid), "got %v", err)
}

func TestJWTService_WrongIssuer(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	svc := newTestJWTService(t, clock)
	other, err := newJWTService(testSecret, time.Hour, "someone-else", clock.Now)
	require.NoError(t, err)

	token, _, err := other.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid), "got %v", err)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestJWTService(t, &fakeClock{current: time.Now()})

	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		Issuer:    "inkwell",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	for _, token := range []string{unsigned, hs512} {
		_, err = svc.Verify(token)
		assert.True(t, errors.Is(err, service.ErrTokenInvalid), "got %v", err)
	}
}

func TestJWTService_RejectsNonAccountSubject(t *testing.T) {
	svc := newTestJWTService(t, &fakeClock{current: time.Now()})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		Issuer:    "inkwell",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid), "got %v", err)
}

func TestJWTService_RequiresExpiry(t *testing.T) {
	svc := newTestJWTService(t, &fakeClock{current: time.Now()})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: uuid.NewString(),
		Issuer:  "inkwell",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid), "got %v", err)
}

func TestJWTService_Malformed(t *testing.T) {
	svc := newTestJWTService(t, &fakeClock{current: time.Now()})

	for _, token := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.True(t, errors.Is(err, service.ErrTokenInvalid), "token %q: got %v", token, err)
	}
}

// replaceClaim rewrites one payload claim while keeping the original signature.
func replaceClaim(t *testing.T, token, claim string, value any) string {
	t.Helper()

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	claims := map[string]any{}
	require.NoError(t, json.Unmarshal(payload, &claims))
	claims[claim] = value

	payload, err = json.Marshal(claims)
	require.NoError(t, err)
	parts[1] = base64.RawURLEncoding.EncodeToString(payload)

	return strings.Join(parts, ".")
}
