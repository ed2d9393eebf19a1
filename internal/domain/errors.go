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
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrBucketMissing = errors.New("storage bucket missing")
	ErrStorage       = errors.New("storage error")
	ErrRepository    = errors.New("repository error")
	ErrNoAuthScope   = errors.New("auth handle used outside its scope")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
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

// CredentialError is returned when the session store rejects a sign-in.
type CredentialError struct {
	Message string
}

func (e *CredentialError) Error() string {
	if e.Message == "" {
		return "invalid credentials"
	}
	return "invalid credentials: " + e.Message
}

func (e *CredentialError) Unwrap() error { return ErrUnauthorized }

// RepositoryError is a failed query or write against the data API.
// Status is the HTTP status returned by the API; Code is the database
// error code when the API forwarded one.
type RepositoryError struct {
	Op      string
	Status  int
	Code    string
	Message string
}

func (e *RepositoryError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("repository %s: %s (%d/%s)", e.Op, e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("repository %s: %s (%d)", e.Op, e.Message, e.Status)
}

// Unwrap maps the failure onto a sentinel so callers can use errors.Is.
func (e *RepositoryError) Unwrap() error {
	switch e.Code {
	case "23505":
		return ErrAlreadyExists
	case "23503", "23514", "22P02":
		return ErrValidation
	case "42501":
		return ErrForbidden
	case "PGRST116":
		return ErrNotFound
	}
	switch e.Status {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404, 406:
		return ErrNotFound
	case 409:
		return ErrConflict
	}
	return ErrRepository
}

// StorageErrorKind classifies object storage failures.
type StorageErrorKind string

const (
	StorageBucketMissing StorageErrorKind = "bucket_missing"
	StorageObjectMissing StorageErrorKind = "object_missing"
	StorageUpload        StorageErrorKind = "upload"
	StorageSign          StorageErrorKind = "sign"
	StorageRemove        StorageErrorKind = "remove"
)

// StorageError is an object storage failure scoped to a bucket and path.
type StorageError struct {
	Kind    StorageErrorKind
	Bucket  string
	Path    string
	Message string
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s/%s: %s", e.Kind, e.Bucket, e.Path, e.Message)
}

func (e *StorageError) Unwrap() error {
	switch e.Kind {
	case StorageBucketMissing:
		return ErrBucketMissing
	case StorageObjectMissing:
		return ErrNotFound
	}
	return ErrStorage
}
