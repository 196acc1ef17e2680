package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrCoffeeNotFound.WrapMessage("coffee 7")

	assert.ErrorIs(t, err, ErrCoffeeNotFound)
	assert.Equal(t, "coffee 7: Coffee not found", err.Error())

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "COFFEE_NOT_FOUND", appErr.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrFlavorConflict.WithDetails("caramel")

	assert.Equal(t, "caramel", detailed.Details())
	assert.Empty(t, ErrFlavorConflict.Details())
	assert.Equal(t, ErrFlavorConflict.ErrorCode(), detailed.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert coffee")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "database execution failed: connection reset", err.Error())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert coffee", err.Details())
}
