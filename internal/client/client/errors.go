package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/llmpid-console/internal/common"
)

var (
	// ErrUnavailable means no response was received (network, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the API answered 401.
	ErrUnauthorized = common.ErrUnauthorized

	// ErrRemote covers every other non-2xx answer.
	ErrRemote = errors.New("remote error")
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: %d: %s", e.StatusCode, e.Message)
}

// Unwrap lets callers match ErrUnauthorized or ErrRemote with errors.Is.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return ErrRemote
}
