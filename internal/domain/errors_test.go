package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		sentinel   error
	}{
		{
			name:       "validation",
			err:        NewValidationError("name: cannot be blank"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "validation failed: name: cannot be blank",
			sentinel:   ErrValidation,
		},
		{
			name:       "unauthorized",
			err:        NewUnauthorizedError("token is invalid"),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "unauthorized: token is invalid",
			sentinel:   ErrUnauthorized,
		},
		{
			name:       "request too large",
			err:        &RequestTooLargeError{Limit: 1024},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantMsg:    "request body exceeds 1024 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("handler: %w", tt.err)

			var httpErr HTTPError
			require.True(t, errors.As(wrapped, &httpErr))
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode())
			assert.Equal(t, tt.wantMsg, tt.err.Error())

			if tt.sentinel != nil {
				assert.ErrorIs(t, wrapped, tt.sentinel)
			}
			assert.NotErrorIs(t, wrapped, ErrConfiguration)
		})
	}
}
