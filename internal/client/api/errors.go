package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures: the server could not
	// be reached, the connection dropped, or the response was not JSON.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized matches domain errors carrying HTTP 401/403.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a domain-level failure reported by the backend. Message holds the
// backend's own text verbatim so the UI can show it unchanged.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// Is lets errors.Is(err, ErrUnauthorized) match rejected-credential and
// rejected-token responses without string comparison.
func (e *Error) Is(target error) bool {
	if target == ErrUnauthorized {
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}
