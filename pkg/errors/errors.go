// Package errors provides the unified error type and factory functions for
// the negoprep service. Every layer (domain, planning, storage, interfaces)
// uses AppError as the single carrier for structured error information so
// that HTTP responses and log entries stay consistent.
package errors

import (
	"errors"
	"fmt"
)

// AppError is the canonical structured error type. It satisfies the standard
// error interface and supports Go 1.13+ wrapping, so errors.Is / errors.As /
// errors.Unwrap work transparently across layers.
//
// Usage:
//
//	return errors.New(errors.ErrCodeStorageCorrupt, "snapshot payload is not valid JSON")
//	return errors.Wrap(err, errors.ErrCodeExportFailed, "pdf capture failed")
type AppError struct {
	// Code is the typed error code identifying the failure category.
	Code ErrorCode

	// Message is the primary human-readable description, suitable for API
	// responses returned to callers.
	Message string

	// Detail carries supplementary context (ids, paths, parameters) that
	// aids debugging without bloating Message.
	Detail string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
// Format: "[<code>] <message>: <detail>", detail omitted when empty.
func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As
// traversal of the full chain.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail returns a shallow copy of the receiver with Detail set.
// Safe to call on a nil pointer (returns nil).
func (e *AppError) WithDetail(detail string) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Detail = detail
	return &clone
}

// New constructs a fresh AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf constructs an AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an AppError that wraps err. If err is nil, Wrap returns
// nil so it can be used inline on the return path. When err is already an
// *AppError and code is CodeUnknown the original code is preserved, so
// cross-layer propagation does not lose the domain classification.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	if code == CodeUnknown {
		var ae *AppError
		if errors.As(err, &ae) {
			code = ae.Code
		}
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// IsCode reports whether any error in err's chain is an *AppError carrying
// the given code.
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) && ae.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsNotFound reports whether any error in err's chain is an *AppError with a
// not-found code (generic or entity-specific).
func IsNotFound(err error) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) {
			switch ae.Code {
			case ErrCodeNotFound, ErrCodePlanIssueNotFound, ErrCodePlanBatnaNotFound, ErrCodePlanStakeholderNotFound:
				return true
			}
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode extracts the ErrorCode from the first *AppError in err's chain.
// Returns CodeOK for nil and CodeUnknown when no AppError is present.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

// NotFound constructs a generic ErrCodeNotFound AppError. Prefer the
// PLAN_xxx codes for entity-specific variants.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// InvalidParam constructs an ErrCodeBadRequest AppError.
func InvalidParam(message string) *AppError {
	return &AppError{Code: ErrCodeBadRequest, Message: message}
}

// Internal constructs an ErrCodeInternal AppError. Use for unexpected
// failures where no more specific code applies.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}
