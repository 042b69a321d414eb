package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainErrorWrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewProviderError("openai", cause)

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsCode(err, "PROVIDER_ERROR"))

	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, http.StatusBadGateway, domainErr.HTTPStatus)
}

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewNotFound("transcript", map[string]any{"document_id": "doc-1"})
	wrapped := fmt.Errorf("pipeline: %w", original)

	domainErr := ToDomainError(wrapped)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, "doc-1", domainErr.Details["document_id"])
}

func TestToDomainErrorDefaultsToInternal(t *testing.T) {
	domainErr := ToDomainError(errors.New("boom"))
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
}

func TestIsCode(t *testing.T) {
	assert.True(t, IsCode(NewValidationError("bad", nil), "VALIDATION_FAILED"))
	assert.False(t, IsCode(NewValidationError("bad", nil), "NOT_FOUND"))
	assert.False(t, IsCode(errors.New("plain"), "VALIDATION_FAILED"))
	assert.False(t, IsCode(nil, "VALIDATION_FAILED"))
}
