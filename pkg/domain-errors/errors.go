// Package domainerrors provides coded errors for expected failure modes.
//
// Services return these for outcomes the caller is expected to handle
// (validation failures, not-found, forbidden). Infrastructure facts coming out
// of stores use pkg/platform/sentinel and are translated into coded errors at
// the service layer. Truly unexpected faults (store unavailable) carry
// CodeInternal and surface to callers without detail.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies an expected failure for transport mapping and tests.
type Code string

const (
	// CodeBadRequest: malformed request body or parameters.
	CodeBadRequest Code = "bad_request"
	// CodeInvalidInput: a single input value failed parsing or an allowlist.
	CodeInvalidInput Code = "invalid_input"
	// CodeValidation: semantically invalid input (out-of-range fee, missing
	// required relation).
	CodeValidation Code = "validation_failed"
	// CodeInvariantViolation: an aggregate constructor or transition rejected
	// a state that would break its invariants.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeNotFound: entity absent within the caller's tenant scope.
	CodeNotFound Code = "not_found"
	// CodeCrossTenant: a referenced entity belongs to a different company.
	// Treated internally as a security violation; surfaced to callers as
	// not_found so foreign-tenant existence is never leaked.
	CodeCrossTenant Code = "cross_tenant"
	// CodeUnauthorized: no authenticated caller.
	CodeUnauthorized Code = "unauthorized"
	// CodeForbidden: caller's role is insufficient for a role-gated operation.
	CodeForbidden Code = "forbidden"
	// CodeConflict: concurrent mutation the operation cannot reconcile, or a
	// uniqueness violation.
	CodeConflict Code = "conflict"
	// CodeInternal: unexpected fault; details are logged, never returned.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a coded error with a message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error so the cause stays
// inspectable via errors.Is / errors.As.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is an alias for HasCode kept for call-site readability in handlers.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the code carried by err, or CodeInternal when err is not a
// coded error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf returns the message carried by err, or an empty string.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}
