package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"safha/internal/domain"
)

// MaxRequestBodyBytes limits JSON request bodies (10MB)
const MaxRequestBodyBytes = 10 << 20

// ParseJSON decodes a single JSON value from the request body into dest.
// Unknown fields are rejected so misspelled options (e.g. "pagesize") fail loudly.
// A body over MaxRequestBodyBytes returns *domain.RequestTooLargeError.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &domain.RequestTooLargeError{Limit: maxErr.Limit}
		}
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if decoder.More() {
		return errors.New("invalid JSON: unexpected data after top-level value")
	}

	return nil
}
