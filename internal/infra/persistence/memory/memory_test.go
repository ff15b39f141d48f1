package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_CreateAndFind(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Username: "alice", PasswordHash: "hash", CreatedAt: time.Now()}

	require.NoError(t, repo.Create(ctx, account))

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = repo.FindByUsername(ctx, "Alice")
	require.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_DuplicateUsername(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Account{ID: uuid.New(), Username: "alice", PasswordHash: "first"}))

	err := repo.Create(ctx, &entity.Account{ID: uuid.New(), Username: "alice", PasswordHash: "second"})
	require.ErrorIs(t, err, domainerrors.ErrUsernameTaken)

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "first", found.PasswordHash, "existing account must not be overwritten")
}

func TestAccountRepository_ConcurrentDuplicateRegistration(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	const workers = 32
	var (
		wg         sync.WaitGroup
		successes  atomic.Int32
		conflicts  atomic.Int32
		unexpected atomic.Int32
	)

	start := make(chan struct{})
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			err := repo.Create(ctx, &entity.Account{ID: uuid.New(), Username: "race", PasswordHash: "h"})
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, domainerrors.ErrUsernameTaken):
				conflicts.Add(1)
			default:
				unexpected.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(workers-1), conflicts.Load())
	assert.Zero(t, unexpected.Load())
}

func TestAccountRepository_FindByIDsSkipsMissing(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()
	alice := &entity.Account{ID: uuid.New(), Username: "alice"}
	require.NoError(t, repo.Create(ctx, alice))

	accounts, err := repo.FindByIDs(ctx, []uuid.UUID{uuid.New(), alice.ID})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "alice", accounts[0].Username)

	accounts, err = repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccountRepository_CanceledContext(t *testing.T) {
	repo := NewAccountRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Create(ctx, &entity.Account{ID: uuid.New(), Username: "alice"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORE_FAILURE", appErr.ErrorCode())
}

func TestContentRepository_Lifecycle(t *testing.T) {
	repo := NewContentRepository()
	ctx := context.Background()
	owner := uuid.New()

	first := &entity.ContentItem{ID: uuid.New(), Title: "one", Body: "1", OwnerID: owner}
	second := &entity.ContentItem{ID: uuid.New(), Title: "two", Body: "2", OwnerID: owner}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)

	updated := *first
	updated.Title = "uno"
	require.NoError(t, repo.Update(ctx, &updated))

	found, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "uno", found.Title)
	assert.Equal(t, owner, found.OwnerID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.FindByID(ctx, first.ID)
	require.ErrorIs(t, err, repository.ErrContentNotFound)

	items, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)
}

func TestContentRepository_MissingItem(t *testing.T) {
	repo := NewContentRepository()
	ctx := context.Background()
	missing := &entity.ContentItem{ID: uuid.New(), Title: "t", Body: "b"}

	require.ErrorIs(t, repo.Update(ctx, missing), repository.ErrContentNotFound)
	require.ErrorIs(t, repo.Delete(ctx, missing.ID), repository.ErrContentNotFound)
}

func TestContentRepository_ReturnsCopies(t *testing.T) {
	repo := NewContentRepository()
	ctx := context.Background()
	item := &entity.ContentItem{ID: uuid.New(), Title: "original", Body: "b", OwnerID: uuid.New()}
	require.NoError(t, repo.Create(ctx, item))

	item.Title = "mutated by caller"
	found, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", found.Title)

	found.Title = "mutated again"
	again, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Title)
}
