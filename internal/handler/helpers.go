package handler

import (
	"context"
	"errors"
	"net/http"

	"safha/internal/domain"
	"safha/internal/httputil"
)

// handleError converts domain errors to HTTP responses.
// Typed errors carry their own status code; bare sentinels are mapped here.
func handleError(w http.ResponseWriter, err error) {
	var httpErr domain.HTTPError
	switch {
	case errors.As(err, &httpErr):
		httputil.RespondError(w, httpErr.StatusCode(), err.Error())
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConfiguration):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Client went away; the status is mostly for logs
		httputil.RespondError(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// parseBody decodes the JSON body, answering 400 on failure.
// Returns false when a response has already been written.
func parseBody(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := httputil.ParseJSON(w, r, dest); err != nil {
		status := http.StatusBadRequest
		var httpErr domain.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.StatusCode()
		}
		httputil.RespondError(w, status, err.Error())
		return false
	}
	return true
}
