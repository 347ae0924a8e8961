package errors_test

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	appErrors "github.com/pasale/product-catalog/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductFetchError(t *testing.T) {
	t.Run("Generic cause", func(t *testing.T) {
		// Arrange
		cause := errors.New("connection reset by peer")

		// Act
		err := appErrors.ProductFetchError(cause)

		// Assert
		assert.Equal(t, appErrors.ErrCodeFetchError, err.Code)
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, "Error fetching product: connection reset by peer", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.False(t, appErrors.IsNotFound(err))
	})

	t.Run("Not found cause keeps its code", func(t *testing.T) {
		// Arrange
		cause := appErrors.NotFoundError("Product matching query does not exist.").WithError(sql.ErrNoRows)

		// Act
		err := appErrors.ProductFetchError(cause)

		// Assert
		assert.Equal(t, appErrors.ErrCodeNotFound, err.Code)
		assert.Equal(t, http.StatusNotFound, err.StatusCode)
		assert.Contains(t, err.Error(), appErrors.ProductFetchErrorPrefix)
		assert.Contains(t, err.Error(), "Product matching query does not exist.")
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.True(t, appErrors.IsNotFound(err))
	})
}

func TestIsAppError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", appErrors.UnauthorizedError("Invalid token"))

	appErr, ok := appErrors.IsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)

	_, ok = appErrors.IsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestAddValidationError(t *testing.T) {
	err := appErrors.AddValidationError("page", "must be at least 1")

	assert.Equal(t, appErrors.ErrCodeValidation, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "Invalid field 'page': must be at least 1", err.Message)
}
