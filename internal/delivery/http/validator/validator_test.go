package validator

import (
	"testing"

	domainerrors "inkwell/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title string `json:"title" validate:"required,max=5"`
	Body  string `json:"body" validate:"required"`
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	err := New().Validate(&sampleRequest{Title: "too long title"})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "title: must be at most 5 characters")
	assert.Contains(t, appErr.Details(), "body: must not be empty")
}

func TestValidate_Passes(t *testing.T) {
	assert.NoError(t, New().Validate(&sampleRequest{Title: "ok", Body: "fine"}))
}
