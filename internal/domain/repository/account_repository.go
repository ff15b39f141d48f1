// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"inkwell/internal/domain/entity"
	"inkwell/internal/errors"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository persists accounts. It is the credential store.
type AccountRepository interface {
	// Create inserts an account. The username uniqueness check and the insert are a
	// single atomic store operation; a taken username yields domainerrors.ErrUsernameTaken.
	Create(ctx context.Context, account *entity.Account) error

	// FindByUsername returns ErrAccountNotFound when the username is unknown.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByIDs returns the accounts that still exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Account, error)
}
