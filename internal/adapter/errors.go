package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrUnavailable         = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")

	ErrEmptyJobID = errors.New("job id is empty")
)

// APIError is a failed call as reported by the server.
type APIError struct {
	StatusCode int

	// Code and Kind are copied from the error envelope when the server sent
	// one. Kind is set only for validation failures.
	Code    string
	Kind    string
	Message string

	sentinel error
}

func (e *APIError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%v (%s): %s", e.sentinel, e.Kind, e.Message)
	}
	return fmt.Sprintf("%v: %s", e.sentinel, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}
