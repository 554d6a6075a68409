package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Account errors
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidSpecialCode = errors.New("invalid special code for role")
	ErrProfileNotFound    = errors.New("profile not found")
)

// Admin panel errors
var (
	ErrConfirmationRequired = errors.New("deletion requires explicit confirmation")
	ErrUnknownTab           = errors.New("unknown admin tab")
	ErrUploadRequired       = errors.New("a file upload is required to create this record")
	ErrEmptyUpload          = errors.New("uploaded file is empty")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a new custom error for a failed form constraint
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Op names the write operation that failed.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// FetchError reports a failed read of an entity list or record.
// The caller keeps whatever it displayed before.
type FetchError struct {
	Entity string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Entity, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// WriteError reports a failed create, update or delete.
type WriteError struct {
	Entity string
	Op     Op
	ID     string
	Err    error
}

func (e *WriteError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// UploadPhase identifies which step of a two-phase upload failed.
type UploadPhase string

const (
	PhaseStore  UploadPhase = "store"
	PhaseInsert UploadPhase = "insert"
)

// UploadError reports a failed blob upload or metadata insert.
// Orphaned is set when a stored blob could not be removed after the insert failed.
type UploadError struct {
	Entity   string
	Bucket   string
	Key      string
	Phase    UploadPhase
	Orphaned bool
	Err      error
}

func (e *UploadError) Error() string {
	msg := fmt.Sprintf("upload %s (%s/%s) failed at %s: %v", e.Entity, e.Bucket, e.Key, e.Phase, e.Err)
	if e.Orphaned {
		msg += " (blob left orphaned)"
	}
	return msg
}

func (e *UploadError) Unwrap() error { return e.Err }

// NewFetchError wraps err unless it is already a FetchError.
func NewFetchError(entity string, err error) error {
	var fe *FetchError
	if errors.As(err, &fe) {
		return err
	}
	return &FetchError{Entity: entity, Err: err}
}

// NewWriteError wraps err unless it is already a WriteError.
func NewWriteError(entity string, op Op, id string, err error) error {
	var we *WriteError
	if errors.As(err, &we) {
		return err
	}
	return &WriteError{Entity: entity, Op: op, ID: id, Err: err}
}

// Is returns whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
