package rest

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated maps a 401 from any endpoint. Callers treat it as
	// "prompt sign-in", never as a hard failure.
	ErrUnauthenticated = errors.New("not authenticated")
)

// APIError carries a business-rule rejection from the backend, with the
// backend's own message when its error payload provided one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// UserMessage returns the backend's message verbatim when the error is an
// APIError with one, otherwise the given fallback. Used by flows that must
// show server rejections (bid too low, trade target gone) as-is.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
