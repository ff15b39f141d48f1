package service

import (
	"time"

	"inkwell/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrTokenInvalid covers malformed tokens, bad signatures and unusable claims.
	ErrTokenInvalid = errors.New("session token invalid")
	// ErrTokenExpired is returned for a correctly signed token whose expiry is not after now.
	ErrTokenExpired = errors.New("session token expired")
)

// TokenService issues and verifies self-contained session tokens.
// Verification is stateless: it never consults the account store.
type TokenService interface {
	// Issue signs a token whose subject is accountID.
	Issue(accountID uuid.UUID) (token string, expiresAt time.Time, err error)

	// Verify returns the subject of a valid token, or ErrTokenInvalid / ErrTokenExpired.
	Verify(token string) (uuid.UUID, error)
}
