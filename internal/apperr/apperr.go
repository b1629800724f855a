// Package apperr defines the error taxonomy surfaced by the API. Every
// class maps to a distinct HTTP status and user-readable message so a
// client can tell bad input, policy rejections, missing records, and
// storage outages apart.
package apperr

import "fmt"

// ValidationError reports input with a bad shape or range.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// DuplicateKeyError reports a collision on a unique field (product SKU,
// category name).
type DuplicateKeyError struct {
	Field string
	Value string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("a record with %s %q already exists", e.Field, e.Value)
}

// PolicyViolationError reports a business-rule rejection, distinct from
// malformed input. The canonical case is the inactive-supplier block.
type PolicyViolationError struct {
	Msg     string
	Details string
}

func (e *PolicyViolationError) Error() string { return e.Msg }

// NotFoundError reports that an id did not resolve to a record.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// StorageUnavailableError wraps a connectivity failure of the persistence
// layer so callers can distinguish "your input was wrong" from "the
// system is down". Transient storage errors are never retried here; they
// propagate to the caller.
type StorageUnavailableError struct {
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return "storage unavailable: " + e.Err.Error()
}

func (e *StorageUnavailableError) Unwrap() error { return e.Err }
