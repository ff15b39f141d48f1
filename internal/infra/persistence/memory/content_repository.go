package memory

import (
	"context"
	"sync"

	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"

	"github.com/google/uuid"
)

// contentRepository keeps items in a map plus an insertion-ordered id slice.
// Items are copied on the way in and out so callers never share state.
type contentRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*entity.ContentItem
	order []uuid.UUID
}

// NewContentRepository returns an empty content store.
func NewContentRepository() repository.ContentRepository {
	return &contentRepository{
		items: make(map[uuid.UUID]*entity.ContentItem),
	}
}

func (repo *contentRepository) Create(ctx context.Context, item *entity.ContentItem) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewStoreError(err, "failed to create content")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored := *item
	repo.items[stored.ID] = &stored
	repo.order = append(repo.order, stored.ID)

	return nil
}

func (repo *contentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContentItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to find content by id")
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	stored, ok := repo.items[id]
	if !ok {
		return nil, repository.ErrContentNotFound
	}
	item := *stored

	return &item, nil
}

func (repo *contentRepository) List(ctx context.Context) ([]*entity.ContentItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list contents")
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	items := make([]*entity.ContentItem, 0, len(repo.order))
	for _, id := range repo.order {
		item := *repo.items[id]
		items = append(items, &item)
	}

	return items, nil
}

func (repo *contentRepository) Update(ctx context.Context, item *entity.ContentItem) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewStoreError(err, "failed to update content")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.items[item.ID]
	if !ok {
		return repository.ErrContentNotFound
	}
	stored.Title = item.Title
	stored.Body = item.Body
	stored.UpdatedAt = item.UpdatedAt

	return nil
}

func (repo *contentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewStoreError(err, "failed to delete content")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.items[id]; !ok {
		return repository.ErrContentNotFound
	}
	delete(repo.items, id)

	for i, orderedID := range repo.order {
		if orderedID == id {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)

			break
		}
	}

	return nil
}
