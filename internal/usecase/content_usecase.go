package usecase

import (
	"context"

	"inkwell/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateContentInput defines a new content item. The owner is always the caller.
type CreateContentInput struct {
	Title string
	Body  string
}

// UpdateContentInput replaces title and body of an existing item.
type UpdateContentInput struct {
	ID    uuid.UUID
	Title string
	Body  string
}

// ContentUsecase defines content operations. Every method requires a verified
// identity; a zero identity fails with ErrUnauthenticated.
type ContentUsecase interface {
	Create(ctx context.Context, identity entity.Identity, input *CreateContentInput) (*entity.ContentItem, error)
	List(ctx context.Context, identity entity.Identity) ([]*entity.ContentView, error)
	Get(ctx context.Context, identity entity.Identity, id uuid.UUID) (*entity.ContentView, error)

	// Update and Delete fail with ErrContentForbidden when the caller does not own the item.
	Update(ctx context.Context, identity entity.Identity, input *UpdateContentInput) (*entity.ContentItem, error)
	Delete(ctx context.Context, identity entity.Identity, id uuid.UUID) error
}
