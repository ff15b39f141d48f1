package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/policy"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/metrics"
	"inkwell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contentService implements the ContentUsecase interface. Every operation
// consults the access policy before touching the store.
type contentService struct {
	contentRepo repository.ContentRepository
	accountRepo repository.AccountRepository
	policy      *policy.AccessPolicy
	logger      *slog.Logger
	now         func() time.Time
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	ContentRepo repository.ContentRepository
	AccountRepo repository.AccountRepository
	Policy      *policy.AccessPolicy
	Logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		contentRepo: params.ContentRepo,
		accountRepo: params.AccountRepo,
		policy:      params.Policy,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new item owned by the caller.
func (srv *contentService) Create(ctx context.Context, identity entity.Identity, input *usecase.CreateContentInput) (*entity.ContentItem, error) {
	allowed := srv.policy.CanCreate(identity)
	metrics.RecordPolicyDecision(string(policy.ActionCreate), allowed)
	if !allowed {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "create content")
	}

	if err := validateContentFields(input.Title, input.Body); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate content id")
	}

	now := srv.now().UTC()
	item := &entity.ContentItem{
		ID:        id,
		Title:     input.Title,
		Body:      input.Body,
		OwnerID:   identity.AccountID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.contentRepo.Create(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to create content", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create content")
	}

	srv.log(ctx).Info("Content created",
		slog.String("contentID", item.ID.String()),
		slog.String("ownerID", item.OwnerID.String()),
	)

	return item, nil
}

// List returns every item in insertion order with owner usernames attached.
func (srv *contentService) List(ctx context.Context, identity entity.Identity) ([]*entity.ContentView, error) {
	if identity.IsZero() {
		metrics.RecordPolicyDecision(string(policy.ActionRead), false)

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "list content")
	}

	items, err := srv.contentRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list content", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list content")
	}

	readable := make([]*entity.ContentItem, 0, len(items))
	for _, item := range items {
		if srv.policy.CanRead(identity, item) {
			readable = append(readable, item)
		}
	}
	metrics.RecordPolicyDecision(string(policy.ActionRead), true)

	usernames, err := srv.ownerUsernames(ctx, readable)
	if err != nil {
		return nil, err
	}

	views := make([]*entity.ContentView, 0, len(readable))
	for _, item := range readable {
		views = append(views, &entity.ContentView{
			ContentItem:   item,
			OwnerUsername: usernames[item.OwnerID],
		})
	}

	return views, nil
}

// Get returns one item with its owner's username.
func (srv *contentService) Get(ctx context.Context, identity entity.Identity, id uuid.UUID) (*entity.ContentView, error) {
	if identity.IsZero() {
		metrics.RecordPolicyDecision(string(policy.ActionRead), false)

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "get content")
	}

	item, err := srv.findItem(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := srv.policy.CanRead(identity, item)
	metrics.RecordPolicyDecision(string(policy.ActionRead), allowed)
	if !allowed {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "get content")
	}

	usernames, err := srv.ownerUsernames(ctx, []*entity.ContentItem{item})
	if err != nil {
		return nil, err
	}

	return &entity.ContentView{ContentItem: item, OwnerUsername: usernames[item.OwnerID]}, nil
}

// Update replaces title and body. Only the owner may update; the item is left
// untouched on any failure.
func (srv *contentService) Update(ctx context.Context, identity entity.Identity, input *usecase.UpdateContentInput) (*entity.ContentItem, error) {
	if identity.IsZero() {
		metrics.RecordPolicyDecision(string(policy.ActionUpdate), false)

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "update content")
	}

	item, err := srv.findItem(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := srv.authorizeMutation(ctx, identity, policy.ActionUpdate, item); err != nil {
		return nil, err
	}

	if err := validateContentFields(input.Title, input.Body); err != nil {
		return nil, err
	}

	updated := *item
	updated.Title = input.Title
	updated.Body = input.Body
	updated.UpdatedAt = srv.now().UTC()

	if err := srv.contentRepo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrContentNotFound.WrapMessage("content removed during update")
		}
		srv.log(ctx).Error("Failed to update content", slog.String("contentID", item.ID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update content")
	}

	srv.log(ctx).Info("Content updated", slog.String("contentID", item.ID.String()))

	return &updated, nil
}

// Delete removes the item permanently. Only the owner may delete.
func (srv *contentService) Delete(ctx context.Context, identity entity.Identity, id uuid.UUID) error {
	if identity.IsZero() {
		metrics.RecordPolicyDecision(string(policy.ActionDelete), false)

		return errors.Wrap(domainerrors.ErrUnauthenticated, "delete content")
	}

	item, err := srv.findItem(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.authorizeMutation(ctx, identity, policy.ActionDelete, item); err != nil {
		return err
	}

	if err := srv.contentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return domainerrors.ErrContentNotFound.WrapMessage("content removed during delete")
		}
		srv.log(ctx).Error("Failed to delete content", slog.String("contentID", id.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete content")
	}

	srv.log(ctx).Info("Content deleted", slog.String("contentID", id.String()))

	return nil
}

func (srv *contentService) findItem(ctx context.Context, id uuid.UUID) (*entity.ContentItem, error) {
	item, err := srv.contentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrContentNotFound.WrapMessage("content lookup")
		}
		srv.log(ctx).Error("Failed to load content", slog.String("contentID", id.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find content")
	}

	return item, nil
}

func (srv *contentService) authorizeMutation(ctx context.Context, identity entity.Identity, action policy.Action, item *entity.ContentItem) error {
	allowed := srv.policy.Allows(identity, action, item)
	// A caller identity attached to the request by the auth gate must agree
	// with the one the handler passed in.
	if gateIdentity, ok := deliverycontext.IdentityFromContext(ctx); ok && gateIdentity != identity {
		allowed = false
	}
	metrics.RecordPolicyDecision(string(action), allowed)
	if allowed {
		return nil
	}

	srv.log(ctx).Info("Content mutation denied",
		slog.String("action", string(action)),
		slog.String("contentID", item.ID.String()),
		slog.String("accountID", identity.AccountID.String()),
	)

	return errors.Wrapf(domainerrors.ErrContentForbidden, "%s content", action)
}

// ownerUsernames resolves owner ids to usernames. Owners that no longer exist
// are simply absent from the map.
func (srv *contentService) ownerUsernames(ctx context.Context, items []*entity.ContentItem) (map[uuid.UUID]string, error) {
	usernames := make(map[uuid.UUID]string)
	if len(items) == 0 {
		return usernames, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.OwnerID]; ok {
			continue
		}
		seen[item.OwnerID] = struct{}{}
		ids = append(ids, item.OwnerID)
	}

	accounts, err := srv.accountRepo.FindByIDs(ctx, ids)
	if err != nil {
		srv.log(ctx).Error("Failed to resolve content owners", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve content owners")
	}

	for _, account := range accounts {
		usernames[account.ID] = account.Username
	}

	return usernames, nil
}

func validateContentFields(title, body string) error {
	if strings.TrimSpace(title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title: must not be empty")
	}
	if strings.TrimSpace(body) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("body: must not be empty")
	}

	return nil
}
