package repository

import (
	"context"

	"inkwell/internal/domain/entity"
	"inkwell/internal/errors"

	"github.com/google/uuid"
)

// ErrContentNotFound is returned when a content item does not exist.
var ErrContentNotFound = errors.New("content not found")

// ContentRepository persists content items. Every call writes or reads a single
// item atomically; concurrent writers follow last-writer-wins.
type ContentRepository interface {
	// Create inserts a new content item.
	Create(ctx context.Context, item *entity.ContentItem) error

	// FindByID returns ErrContentNotFound when the item is absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContentItem, error)

	// List returns every item in insertion order.
	List(ctx context.Context) ([]*entity.ContentItem, error)

	// Update overwrites title, body and updatedAt. Returns ErrContentNotFound
	// when no row was affected.
	Update(ctx context.Context, item *entity.ContentItem) error

	// Delete removes the item permanently. Returns ErrContentNotFound when no row was affected.
	Delete(ctx context.Context, id uuid.UUID) error
}
