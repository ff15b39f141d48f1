// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"inkwell/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the credentials of a new account.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account. PasswordHash must not be serialized.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the session token issued at login.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
}

// AccountUsecase covers registration and login.
type AccountUsecase interface {
	// Register fails with ErrValidationFailed for empty fields or an out-of-range
	// password, and with ErrUsernameTaken when the username is registered.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login fails with ErrInvalidCredentials for an unknown username or a wrong
	// password. Both cases are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
