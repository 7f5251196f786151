package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Authentication("no session"), http.StatusUnauthorized},
		{Authorization("not yours"), http.StatusForbidden},
		{NotFound("missing"), http.StatusNotFound},
		{Conflict("duplicate"), http.StatusConflict},
		{Upstream("api down", errors.New("boom")), http.StatusInternalServerError},
		{Persistence("db down", errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err))
	}
}

func TestHTTPStatusUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", NotFound("missing"))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream("failed to resolve source", cause)

	assert.Contains(t, err.Error(), "failed to resolve source")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestAs(t *testing.T) {
	appErr, ok := As(fmt.Errorf("wrap: %w", Conflict("duplicate")))
	require.True(t, ok)
	assert.Equal(t, KindConflict, appErr.Kind)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
