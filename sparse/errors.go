// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sparse implements the raw four-format sparse matrix
// representation that backs package grb, in the same relationship that
// blas64 bears to mat: a low-level, allocation-aware value type that the
// friendly, generic API builds on top of.
package sparse

import "fmt"

// ErrorKind is one of the closed set of error kinds the core can return.
// Success is never returned by any function in this module; a nil error
// plays that role, following Go convention.
type ErrorKind int

const (
	// Success is the zero value and is never returned as an error;
	// it exists only so ErrorKind has a documented identity element.
	Success ErrorKind = iota

	// BadInput reports a caller-visible mistake: an unknown format
	// string, wrong arity, a non-scalar where a scalar was expected, or
	// a type mismatch.
	BadInput

	// DimensionMismatch reports that operand shapes are incompatible
	// with the requested operation.
	DimensionMismatch

	// OutOfMemory reports that an allocation failed during conversion,
	// scratch growth, or output construction.
	OutOfMemory

	// InvariantViolation reports that an internal assertion failed and
	// is treated as fatal by callers. No function in this module returns
	// it: the module carries no runtime invariant checks, debug-only or
	// otherwise.
	InvariantViolation
)

//go:generate stringer -type=ErrorKind

// Error is the error type returned across the sparse/grb boundary. It
// carries a closed ErrorKind plus a human-readable message, mirroring
// mat64.Error's string-constant error values while allowing dynamic
// messages (dimension numbers, format names) to be interpolated.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("grb: %v", e.Kind)
	}
	return fmt.Sprintf("grb: %s: %s", e.Kind, e.Msg)
}

// Is reports whether err's kind matches target's kind, so that callers
// can use errors.Is(err, &sparse.Error{Kind: sparse.BadInput}) style
// comparisons.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// newError builds an *Error of the given kind with a formatted message.
func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// BadInputError, DimensionMismatchError and OutOfMemoryError construct
// Errors of the corresponding kind. They exist as constructors, not
// package-level values, because nearly every call site needs to embed
// dynamic detail (which format string was unrecognized, which dimensions
// disagreed).
func BadInputError(format string, args ...any) *Error {
	return newError(BadInput, format, args...)
}

func DimensionMismatchError(format string, args ...any) *Error {
	return newError(DimensionMismatch, format, args...)
}

func OutOfMemoryError(format string, args ...any) *Error {
	return newError(OutOfMemory, format, args...)
}

func invariantViolation(format string, args ...any) *Error {
	return newError(InvariantViolation, format, args...)
}
