package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("title: must not be empty")

	assert.True(t, stderrors.Is(err, ErrValidationFailed))
	assert.False(t, stderrors.Is(err, ErrContentNotFound))
	assert.Equal(t, "title: must not be empty", err.Details())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Empty(t, ErrValidationFailed.Details(), "predefined value must stay untouched")
}

func TestBaseError_WrapMessageIsMatchable(t *testing.T) {
	err := ErrUsernameTaken.WrapMessage("username already exists")

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.True(t, stderrors.Is(err, ErrUsernameTaken))
	assert.Contains(t, err.Error(), "username already exists")
}

func TestStoreError_HidesCause(t *testing.T) {
	cause := stderrors.New("dial tcp 10.0.0.1:5432: connection refused")
	err := NewStoreError(cause, "create account")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "STORE_FAILURE", err.ErrorCode())
	assert.NotContains(t, err.Message(), "10.0.0.1")
	assert.Empty(t, err.Details())
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, stderrors.Is(err, cause))
}
