package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a mutation addresses a nonexistent id.
	ErrNotFound = errors.New("record not found")

	// ErrValidation is returned for malformed payloads rejected by the store.
	ErrValidation = errors.New("invalid record")
)

// NetworkError wraps a transport failure (request failed or timed out).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError reports a non-2xx response from the store or backend.
type ServerError struct {
	Op         string
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s: server returned status %d", e.Op, e.StatusCode)
}
