// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grb

import "graphblas.dev/v1/grb/sparse"

// Matrix is the user-facing, generic sparse matrix type: a thin wrapper
// around sparse.Matrix[T] that never hands out the raw arrays, exactly
// as mat.Dense wraps blas64.General. Matrix carries its own format,
// pending work, and sparsity-control policy; it is never attached to a
// Context (§5's "never attached to a matrix").
type Matrix[T any] struct {
	raw *sparse.Matrix[T]
}

// New returns a new, empty, valid Matrix of the given shape and
// orientation, in Sparse format under Auto sparsity control.
func New[T any](nrows, ncols int, orient Orientation) *Matrix[T] {
	return &Matrix[T]{raw: sparse.Empty[T](nrows, ncols, orient)}
}

// NRows and NCols report the matrix's logical shape.
func (m *Matrix[T]) NRows() int { return m.raw.NRows }
func (m *Matrix[T]) NCols() int { return m.raw.NCols }

// Orient reports whether m's vectors are its columns or rows.
func (m *Matrix[T]) Orient() Orientation { return m.raw.Orient }

// Format reports which of the four storage representations m currently
// holds.
func (m *Matrix[T]) Format() sparse.Format { return m.raw.Format }

// NNZ returns the number of live (non-zombie) entries.
func (m *Matrix[T]) NNZ() int { return m.raw.NNZ() }

// Free drops m's backing arrays so the garbage collector can reclaim
// them immediately, matching mat.Reset-style explicit release methods
// in the teacher.
func (m *Matrix[T]) Free() { m.raw.Free() }

// Clear resets m to the empty-but-valid value of the same shape,
// orientation, and policy settings.
func (m *Matrix[T]) Clear() { m.raw.Clear() }

// SetElement appends a pending write of v at (i, j); it is merged into
// m's stored entries when pending work is finished (by GetElement, a
// format converter, Conform, or the next operator dispatch that touches
// m). A Bitmap or Full matrix has no pending work and takes the write
// immediately.
func (m *Matrix[T]) SetElement(i, j int, v T) error {
	return m.raw.SetElement(i, j, v)
}

// GetElement returns the value stored at (i, j), finishing m's pending
// work first (§6.2). ok is false if no entry is present at (i, j).
func (m *Matrix[T]) GetElement(i, j int) (v T, ok bool, err error) {
	return m.raw.GetElement(i, j, nil)
}

// SetSparsityControl sets the bitmask of formats Conform is permitted to
// choose among.
func (m *Matrix[T]) SetSparsityControl(c Control) { m.raw.Control = c }

// SparsityControl reports m's current sparsity-control bitmask.
func (m *Matrix[T]) SparsityControl() Control { return m.raw.Control }

// SetBitmapSwitch sets the bitmap density threshold Conform consults
// (§4.2); v must lie in (0, 1].
func (m *Matrix[T]) SetBitmapSwitch(v float64) { m.raw.BitmapSwitch = v }

// SetHyperSwitch sets the hyper/sparse density threshold Conform
// consults (§4.2); v must lie in (0, 1].
func (m *Matrix[T]) SetHyperSwitch(v float64) { m.raw.HyperSwitch = v }

// Conform brings m into a format permitted by its sparsity-control
// policy, finishing pending work and applying the density heuristics of
// §4.2/§4.3.
func (m *Matrix[T]) Conform() error {
	if Burble() {
		before := m.raw.Format
		err := m.raw.Conform(nil)
		burblef("conform %v -> %v (control=%v)", before, m.raw.Format, m.raw.Control)
		return err
	}
	return m.raw.Conform(nil)
}
