package util

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewUnauthorized("No Token Provided!")

	mapped := ToDomainError(original)
	assert.Equal(t, http.StatusUnauthorized, mapped.HTTPStatus)
	assert.Equal(t, "No Token Provided!", mapped.Message)
}

func TestToDomainErrorWrapped(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"), NewNotFound("User is not found"))

	mapped := ToDomainError(wrapped)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorTimeout(t *testing.T) {
	mapped := ToDomainError(context.DeadlineExceeded)
	assert.Equal(t, http.StatusGatewayTimeout, mapped.HTTPStatus)
	assert.Equal(t, "request timed out", mapped.Message)
}

func TestToDomainErrorGenericNeverLeaks(t *testing.T) {
	mapped := ToDomainError(errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.Equal(t, "internal server error", mapped.Message)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("title is required\nprice is required")

	mapped := ToDomainError(err)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
	assert.Equal(t, "title is required\nprice is required", mapped.Message)
}
