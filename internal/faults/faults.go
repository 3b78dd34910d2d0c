// Package faults defines the typed domain errors surfaced by wallet
// operations. Handlers map codes to HTTP statuses; everything else is
// treated as an infrastructure failure.
package faults

import "fmt"

// Code classifies a domain failure.
type Code string

const (
	// CodeInvalidArgument marks a malformed or out-of-range input value.
	CodeInvalidArgument Code = "invalid_argument"
	// CodeNotFound marks a reference that does not resolve to a record.
	CodeNotFound Code = "not_found"
	// CodeForbidden marks a record that exists but is not owned by the caller.
	CodeForbidden Code = "forbidden"
	// CodeInsufficientFunds marks an expense that would drive a balance negative.
	CodeInsufficientFunds Code = "insufficient_funds"
	// CodeConflictRetryable marks lock contention; the whole operation can be retried.
	CodeConflictRetryable Code = "conflict_retryable"
)

// Fault is a domain error with enough structure to identify the
// offending field. All validation failures are raised before any
// mutation is applied.
type Fault struct {
	Code    Code
	Field   string
	Message string
}

func (f *Fault) Error() string {
	if f.Field == "" {
		return string(f.Code) + ": " + f.Message
	}
	return fmt.Sprintf("%s: %s (field %s)", f.Code, f.Message, f.Field)
}

// Is lets errors.Is match two faults by code.
func (f *Fault) Is(target error) bool {
	other, ok := target.(*Fault)
	if !ok {
		return false
	}
	return f.Code == other.Code
}

func InvalidArgument(field, message string) *Fault {
	return &Fault{Code: CodeInvalidArgument, Field: field, Message: message}
}

func NotFound(field, message string) *Fault {
	return &Fault{Code: CodeNotFound, Field: field, Message: message}
}

func Forbidden(field, message string) *Fault {
	return &Fault{Code: CodeForbidden, Field: field, Message: message}
}

func InsufficientFunds(field, message string) *Fault {
	return &Fault{Code: CodeInsufficientFunds, Field: field, Message: message}
}

func ConflictRetryable(message string) *Fault {
	return &Fault{Code: CodeConflictRetryable, Message: message}
}
