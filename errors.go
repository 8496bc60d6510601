// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grb implements a GraphBLAS-style sparse linear algebra engine:
// semiring-parameterized matrix operations (matrix-matrix multiply,
// element-wise add/multiply, masked assignment) over matrices whose
// storage format adapts between four representations as they fill and
// drain. Package grb plays the role mat plays for gonum.org/v1/gonum:
// the friendly, generic, user-facing layer built on the raw
// representation in package graphblas.dev/v1/grb/sparse, just as
// mat.Dense is built on blas64.General.
package grb

import "graphblas.dev/v1/grb/sparse"

// Error is the error type every public operation in this package
// returns, aliased from package sparse so callers never need to import
// it directly.
type Error = sparse.Error

// ErrorKind is the closed set of error kinds the core can return (§7).
type ErrorKind = sparse.ErrorKind

// The ErrorKind values, re-exported from package sparse.
const (
	Success            = sparse.Success
	BadInput           = sparse.BadInput
	DimensionMismatch  = sparse.DimensionMismatch
	OutOfMemory        = sparse.OutOfMemory
	InvariantViolation = sparse.InvariantViolation
)

// ExitCode maps an error returned by this package to the process exit
// code a CLI embedding it should use: 0 success, 1 bad input or
// dimension mismatch, 2 out of memory, 3 an internal invariant failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	gerr, ok := err.(*Error)
	if !ok {
		return 1
	}
	switch gerr.Kind {
	case OutOfMemory:
		return 2
	case InvariantViolation:
		return 3
	default:
		return 1
	}
}
