package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
)

// Ingest errors. Model and translation adapters wrap transport failures
// into one of these kinds so callers can tell "retry later" from "fix the key".
var (
	// ErrDecodeFailure means a model response could not be decoded into the
	// expected shape (for example a vocabulary reply that is not a JSON array).
	ErrDecodeFailure = errors.New("decode failure")

	// ErrConfigurationMissing is returned before any network attempt when no
	// credential is configured for the upstream service.
	ErrConfigurationMissing = errors.New("configuration missing")

	ErrUnauthorized      = errors.New("unauthorized")
	ErrTimeout           = errors.New("upstream timeout")
	ErrMalformedResponse = errors.New("malformed upstream response")
	ErrNetwork           = errors.New("upstream network error")
)

// UpstreamError describes a failed call to an external model or translation
// service. Kind is one of ErrUnauthorized, ErrTimeout, ErrMalformedResponse,
// ErrNetwork.
type UpstreamError struct {
	Provider string
	Kind     error
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Provider, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Provider, e.Kind, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewUpstreamError creates an UpstreamError.
func NewUpstreamError(provider string, kind, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Kind: kind, Err: err}
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
