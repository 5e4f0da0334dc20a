package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the transport, mappers and accessors.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrUpstream          = errors.New("upstream error")
	ErrMalformedResponse = errors.New("malformed response")
)

// ArgumentError describes an input rejected before any request is sent.
type ArgumentError struct {
	Field   string
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s %s", e.Field, e.Message)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// NewArgumentError creates an ArgumentError for a single field.
func NewArgumentError(field, message string) *ArgumentError {
	return &ArgumentError{Field: field, Message: message}
}
