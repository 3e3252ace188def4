package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// Upload pipeline error kinds. Fatal kinds terminate the job; recoverable
// kinds are absorbed at the row or batch level.
var (
	ErrUnsupportedFormat   = errors.New("unsupported format")    // fatal, no rows processed
	ErrSchemaMismatch      = errors.New("schema mismatch")       // fatal, no rows processed
	ErrRowRejected         = errors.New("row rejected")          // recoverable, row skipped
	ErrDuplicateKey        = errors.New("duplicate key")         // recoverable, row dropped from count
	ErrStorageFailure      = errors.New("storage failure")       // fatal, partial progress preserved
	ErrNotificationFailure = errors.New("notification failure")  // logged only
)

// Stable failure codes persisted alongside the human-readable reason, so
// downstream consumers can branch without string matching.
const (
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeSchemaMismatch    = "SCHEMA_MISMATCH"
	CodeStorageFailure    = "STORAGE_FAILURE"
	CodeInternal          = "INTERNAL"
)

// FailureCode maps a fatal pipeline error to its stable code.
func FailureCode(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return CodeUnsupportedFormat
	case errors.Is(err, ErrSchemaMismatch):
		return CodeSchemaMismatch
	case errors.Is(err, ErrStorageFailure):
		return CodeStorageFailure
	default:
		return CodeInternal
	}
}

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
