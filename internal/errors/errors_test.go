package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorMessage(t *testing.T) {
	err := NotFound("blog")
	assert.Equal(t, "NOT_FOUND: blog not found", err.Error())

	withField := ValidationError("read_percentage", "must be between 0 and 100")
	assert.Equal(t, "VALIDATION_ERROR: must be between 0 and 100 (field: read_percentage)", withField.Error())
}

func TestConstructorsCarryStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *APIError
		code   ErrorCode
		status int
	}{
		{"not found", NotFound("blog"), ErrNotFound, http.StatusNotFound},
		{"unauthorized", Unauthorized("no token"), ErrUnauthorized, http.StatusUnauthorized},
		{"validation", ValidationError("f", "bad"), ErrValidation, http.StatusUnprocessableEntity},
		{"bad request", BadRequest("bad body"), ErrBadRequest, http.StatusBadRequest},
		{"internal", InternalError("boom"), ErrInternalError, http.StatusInternalServerError},
		{"unavailable", ServiceUnavailable("activity store"), ErrServiceUnavail, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.status, tt.err.Code.StatusCode())
		})
	}
}

func TestWithDetails(t *testing.T) {
	err := InternalError("query failed").WithDetails("connection reset")
	assert.Equal(t, "connection reset", err.Details)
}

func TestAsAPIError(t *testing.T) {
	apiErr := NotFound("blog")

	unwrapped, ok := AsAPIError(apiErr)
	require.True(t, ok)
	assert.Equal(t, ErrNotFound, unwrapped.Code)

	wrapped := fmt.Errorf("tracking failed: %w", apiErr)
	unwrapped, ok = AsAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrNotFound, unwrapped.Code)

	_, ok = AsAPIError(fmt.Errorf("plain error"))
	assert.False(t, ok)
}
