package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetails(t *testing.T) {
	err := ErrCatalogInvalid.WithDetails("product 3: negative price")

	assert.ErrorIs(t, err, ErrCatalogInvalid)
	assert.NotErrorIs(t, err, ErrOrderInvalidItem)
	assert.Equal(t, "Catalog document is invalid: product 3: negative price", err.Error())
	assert.Empty(t, ErrCatalogInvalid.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrOrderInvalidItem.WrapMessage("price must not be negative")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "ORDER_INVALID_ITEM", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "price must not be negative")
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to load cart")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "Database operation failed", err.Message())
	assert.Equal(t, "failed to load cart: connection reset", err.Error())
}
