package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/delivery/http/response"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	ContentUC usecase.ContentUsecase
	Logger    *slog.Logger
}

// ContentHandler serves the /content routes. Every route runs behind the auth gate.
type ContentHandler struct {
	contentUC usecase.ContentUsecase
	logger    *slog.Logger
}

func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		contentUC: params.ContentUC,
		logger:    params.Logger,
	}
}

// ContentRequest is the body of POST /content and PUT /content/:id. Any owner
// field sent by the client is ignored. PUT skips the validator tags; the use
// case checks the fields once the caller is known to own the item.
type ContentRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// ContentResponse is the public view of a content item.
type ContentResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	OwnerID       uuid.UUID `json:"owner_id"`
	OwnerUsername string    `json:"owner_username,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DeleteContentResponse confirms a deletion.
type DeleteContentResponse struct {
	ID uuid.UUID `json:"id"`
}

// ListContent handles GET /content.
func (h *ContentHandler) ListContent(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.contentUC.List(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]ContentResponse, 0, len(views))
	for _, view := range views {
		items = append(items, toContentResponse(view.ContentItem, view.OwnerUsername))
	}

	return response.Success(c, http.StatusOK, items, "Content retrieved successfully")
}

// CreateContent handles POST /content.
func (h *ContentHandler) CreateContent(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req ContentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.contentUC.Create(c.Request().Context(), identity, &usecase.CreateContentInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toContentResponse(item, ""), "Content created successfully")
}

// GetContent handles GET /content/:id.
func (h *ContentHandler) GetContent(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	id, err := parseContentID(c)
	if err != nil {
		return err
	}

	view, err := h.contentUC.Get(c.Request().Context(), identity, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContentResponse(view.ContentItem, view.OwnerUsername), "Content retrieved successfully")
}

// UpdateContent handles PUT /content/:id. Title and body are both replaced.
func (h *ContentHandler) UpdateContent(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	id, err := parseContentID(c)
	if err != nil {
		return err
	}

	// Field checks run in the use case, after the item lookup and the ownership check.
	var req ContentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	item, err := h.contentUC.Update(c.Request().Context(), identity, &usecase.UpdateContentInput{
		ID:    id,
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContentResponse(item, ""), "Content updated successfully")
}

// DeleteContent handles DELETE /content/:id.
func (h *ContentHandler) DeleteContent(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	id, err := parseContentID(c)
	if err != nil {
		return err
	}

	if err := h.contentUC.Delete(c.Request().Context(), identity, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, DeleteContentResponse{ID: id}, "Content deleted successfully")
}

func requireIdentity(c echo.Context) (entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return entity.Identity{}, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return identity, nil
}

func parseContentID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("id: must be a valid UUID"))
	}

	return id, nil
}

func toContentResponse(item *entity.ContentItem, ownerUsername string) ContentResponse {
	return ContentResponse{
		ID:            item.ID,
		Title:         item.Title,
		Body:          item.Body,
		OwnerID:       item.OwnerID,
		OwnerUsername: ownerUsername,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}
