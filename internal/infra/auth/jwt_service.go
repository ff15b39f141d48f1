package auth

import (
	"time"

	"inkwell/config"
	"inkwell/internal/domain/service"
	"inkwell/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultTokenTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte           // Server-held signing key, injected from configuration.
	ttl    time.Duration    // Lifetime of an issued token.
	issuer string           // iss claim; checked on verify when set.
	now    func() time.Time // Clock, replaceable in tests.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	ttl := defaultTokenTTL
	issuer := ""
	if cfg.Auth != nil {
		if cfg.Auth.TokenTTL > 0 {
			ttl = cfg.Auth.TokenTTL
		}
		issuer = cfg.Auth.Issuer
	}

	return newJWTService(cfg.SecretKey.Access, ttl, issuer, time.Now)
}

func newJWTService(secret string, ttl time.Duration, issuer string, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}
	if now == nil {
		now = time.Now
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    now,
	}, nil
}

// Issue creates a signed token for accountID valid for the configured TTL.
func (s *jwtService) Issue(accountID uuid.UUID) (string, time.Time, error) {
	if accountID == uuid.Nil {
		return "", time.Time{}, errors.New("cannot issue a token for an empty account id")
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   accountID.String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return token, claims.ExpiresAt.Time, nil
}

// Verify checks signature, algorithm and expiry, and returns the token subject.
// The signature is checked before the claims, so ErrTokenExpired is only
// reported for tokens this service actually signed.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, errors.Wrap(service.ErrTokenExpired, err.Error())
		}

		return uuid.Nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}
	if !token.Valid {
		return uuid.Nil, service.ErrTokenInvalid
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil || accountID == uuid.Nil {
		return uuid.Nil, errors.Wrap(service.ErrTokenInvalid, "subject is not an account id")
	}

	return accountID, nil
}
