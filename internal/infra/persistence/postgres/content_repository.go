package postgres

import (
	"context"

	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contentRepository implements repository.ContentRepository using GORM.
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(db *gorm.DB) repository.ContentRepository {
	return &contentRepository{db: db}
}

func (repo *contentRepository) Create(ctx context.Context, item *entity.ContentItem) error {
	contentM := fromContentDomain(item)

	if err := repo.db.WithContext(ctx).Create(contentM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required content information")
		}

		return domainerrors.NewStoreError(err, "failed to create content")
	}

	item.CreatedAt = contentM.CreatedAt
	item.UpdatedAt = contentM.UpdatedAt

	return nil
}

func (repo *contentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContentItem, error) {
	var contentM model.ContentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&contentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find content by id")
	}

	return toContentDomain(&contentM), nil
}

func (repo *contentRepository) List(ctx context.Context) ([]*entity.ContentItem, error) {
	var contentMs []*model.ContentModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&contentMs).Error; err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list contents")
	}

	items := make([]*entity.ContentItem, 0, len(contentMs))
	for _, contentM := range contentMs {
		items = append(items, toContentDomain(contentM))
	}

	return items, nil
}

// Update is a single UPDATE statement, so racing writers resolve last-writer-wins.
func (repo *contentRepository) Update(ctx context.Context, item *entity.ContentItem) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ContentModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"title":      item.Title,
			"body":       item.Body,
			"updated_at": item.UpdatedAt,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required content information")
		}

		return domainerrors.NewStoreError(result.Error, "failed to update content")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

// Delete removes the row; there is no soft delete.
func (repo *contentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ContentModel{})
	if result.Error != nil {
		return domainerrors.NewStoreError(result.Error, "failed to delete content")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

func toContentDomain(data *model.ContentModel) *entity.ContentItem {
	if data == nil {
		return nil
	}

	return &entity.ContentItem{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromContentDomain(data *entity.ContentItem) *model.ContentModel {
	if data == nil {
		return nil
	}

	return &model.ContentModel{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
