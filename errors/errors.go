// Package errors provides error handling for rustgen.
//
// This package re-exports github.com/cockroachdb/errors, providing stack
// traces, error wrapping, and user-facing hints, and defines the sentinel
// errors for the builder's contract violations.
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrInvalidShape) {
//	    // the caller mixed tuple and named fields
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions and panics
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the builder's contract violations. These are all
// programmer errors: the tree was constructed in a way the emission rules
// cannot render. None of them are transient and none are retried — the
// caller must fix the construction.
//
// Use these with errors.Is() for type-safe checking, and Wrap() to add
// context while preserving the type.
var (
	// ErrInvalidShape indicates a field-list mutation mismatched against a
	// shape already committed to a different kind (tuple vs. named).
	ErrInvalidShape = New("invalid field shape")

	// ErrMissingBody indicates a bodyless function was rendered in a
	// context that requires a body (anywhere outside a trait).
	ErrMissingBody = New("missing function body")

	// ErrInvalidVisibility indicates a visibility modifier on an item whose
	// context forbids one (trait functions).
	ErrInvalidVisibility = New("invalid visibility")

	// ErrInvalidIdentity indicates a path qualification applied to a type
	// name that is already qualified.
	ErrInvalidIdentity = New("invalid type identity")
)

// IsInvalidShape checks if an error is or wraps ErrInvalidShape.
func IsInvalidShape(err error) bool {
	return err != nil && Is(err, ErrInvalidShape)
}

// IsMissingBody checks if an error is or wraps ErrMissingBody.
func IsMissingBody(err error) bool {
	return err != nil && Is(err, ErrMissingBody)
}

// IsInvalidVisibility checks if an error is or wraps ErrInvalidVisibility.
func IsInvalidVisibility(err error) bool {
	return err != nil && Is(err, ErrInvalidVisibility)
}

// IsInvalidIdentity checks if an error is or wraps ErrInvalidIdentity.
func IsInvalidIdentity(err error) bool {
	return err != nil && Is(err, ErrInvalidIdentity)
}
