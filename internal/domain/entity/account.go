// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered set of password credentials. It is immutable once created.
type Account struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Username     string    // Globally unique login name.
	PasswordHash string    // bcrypt hash of the password. Never leaves the server.
	CreatedAt    time.Time // Timestamp of registration.
}

// Identity is the authenticated caller resolved from a verified session token.
type Identity struct {
	AccountID uuid.UUID
}

// IsZero reports whether the identity carries no account.
func (i Identity) IsZero() bool {
	return i.AccountID == uuid.Nil
}
