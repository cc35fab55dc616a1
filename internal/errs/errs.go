// Package errs defines the error taxonomy shared by the marketplace client,
// the catalog service, and the store. Handlers map these onto HTTP statuses.
package errs

import (
	"errors"
	"fmt"
)

// Store-level sentinels.
var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidReference indicates a foreign key points at a missing row.
	ErrInvalidReference = errors.New("invalid reference")
)

// ConfigurationError reports a required credential or setting that is absent.
// It is never retried.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s is not configured", e.Setting)
}

// UpstreamAuthError reports that the marketplace rejected our credentials,
// either on the token endpoint or on a request retried after a refresh.
// Body is the upstream payload verbatim.
type UpstreamAuthError struct {
	Status  int
	Message string
	Body    string
}

func (e *UpstreamAuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("marketplace rejected credentials (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("marketplace rejected credentials (status %d)", e.Status)
}

// UpstreamError reports a non-auth marketplace failure. Status is zero for
// transport failures, in which case Err holds the cause.
type UpstreamError struct {
	Status int
	Body   string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("marketplace unreachable: %v", e.Err)
	}
	return fmt.Sprintf("marketplace API error: %d - %s", e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// DuplicateError reports that a product already exists locally.
type DuplicateError struct {
	ExistingID string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("product %s is already registered", e.ExistingID)
}

// ValidationError reports malformed input. It is raised before any network
// or store call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Invalid is shorthand for building a ValidationError.
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
