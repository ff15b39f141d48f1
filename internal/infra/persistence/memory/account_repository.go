// Package memory keeps accounts and content in process memory. It backs the
// "memory" storage driver used for local runs and tests.
package memory

import (
	"context"
	"sync"

	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"

	"github.com/google/uuid"
)

type accountRepository struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*entity.Account
	byUsername map[string]uuid.UUID
}

// NewAccountRepository returns an empty account store.
func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{
		byID:       make(map[uuid.UUID]*entity.Account),
		byUsername: make(map[string]uuid.UUID),
	}
}

// Create checks and inserts under one write lock.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewStoreError(err, "failed to create account")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, taken := repo.byUsername[account.Username]; taken {
		return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
	}

	stored := *account
	repo.byID[stored.ID] = &stored
	repo.byUsername[stored.Username] = stored.ID

	return nil
}

func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to find account by username")
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	id, ok := repo.byUsername[username]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	account := *repo.byID[id]

	return &account, nil
}

func (repo *accountRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to find accounts by ids")
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	accounts := make([]*entity.Account, 0, len(ids))
	for _, id := range ids {
		if stored, ok := repo.byID[id]; ok {
			account := *stored
			accounts = append(accounts, &account)
		}
	}

	return accounts, nil
}
