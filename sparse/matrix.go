// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

// Matrix is the raw representation of a two-dimensional value over
// scalar type T: a chosen Format, the arrays that format needs, an
// optional pending-work record, and the per-matrix conform policy. It
// plays the role blas64.General plays for mat.Dense: the arrays are
// exported fields here, and package grb's Matrix[T] wraps one of these
// and never hands the arrays out.
//
// Exactly one of Format's four values is active, and only the arrays
// that format requires are non-nil (invariant 1; Design Notes' "sum
// type... each variant carrying only the arrays it needs").
type Matrix[T any] struct {
	Format Format

	NRows, NCols int
	Orient       Orientation
	vdim, vlen   int // derived from Orient, NRows, NCols

	// H, P, I, X back Hyper (all four) and Sparse (P, I, X only; H is
	// nil and nvec is implicitly vdim).
	H []int // hyper only: ascending vector indices, len == nvec
	P []int // hyper: len == nvec+1; sparse: len == vdim+1
	I []int // row indices within each vector; len == P[last]
	X []T   // values; parallel to I for hyper/sparse

	// B, X back Bitmap (both); Full uses X alone, with B nil (every
	// cell implicitly occupied).
	B []byte // bitmap only: vlen*vdim occupancy, 1 == present

	// pend is the pending-work record for hyper/sparse matrices. It is
	// always nil for bitmap/full (invariant 2).
	pend *pending[T]

	// Control is the sparsity_control policy mask consulted by Conform.
	Control Control

	// BitmapSwitch and HyperSwitch parameterize the density tests of
	// §4.2; both lie in (0, 1].
	BitmapSwitch float64
	HyperSwitch  float64
}

// Defaults for the two density-test ratios. Scenario S4's bitmap_switch
// of 0.04 would be too aggressive as a library default. GraphBLAS itself
// defaults bitmap_switch by type size; this module uses a fixed 0.125
// for every type. hyper_switch takes GraphBLAS's default of 1/16.
const (
	DefaultBitmapSwitch = 0.125
	DefaultHyperSwitch  = 1.0 / 16.0
)

// Empty returns a new, valid, zero-entry Matrix of the given shape and
// orientation, in Sparse format with Auto sparsity control and default
// switches. This is the value converters reset a matrix to on failure
// (§4.2, §7): empty but valid.
func Empty[T any](nrows, ncols int, orient Orientation) *Matrix[T] {
	vdim, vlen := vdimVlen(orient, nrows, ncols)
	return &Matrix[T]{
		Format:       Sparse,
		NRows:        nrows,
		NCols:        ncols,
		Orient:       orient,
		vdim:         vdim,
		vlen:         vlen,
		P:            make([]int, vdim+1),
		I:            []int{},
		X:            []T{},
		pend:         &pending[T]{},
		Control:      Auto,
		BitmapSwitch: DefaultBitmapSwitch,
		HyperSwitch:  DefaultHyperSwitch,
	}
}

// VDim and VLen expose the vector dimension and vector length derived
// from the matrix's orientation and shape (§3).
func (m *Matrix[T]) VDim() int { return m.vdim }
func (m *Matrix[T]) VLen() int { return m.vlen }

// NVec returns the number of explicit vector slots: len(H) for Hyper,
// vdim for Sparse, and vdim for Bitmap/Full (every vector is implicitly
// present in those two formats).
func (m *Matrix[T]) NVec() int {
	if m.Format == Hyper {
		return len(m.H)
	}
	return m.vdim
}

// NZombies, Jumbled and NPending report the matrix's current pending
// work. They are always zero/false for Bitmap/Full.
func (m *Matrix[T]) NZombies() int {
	if m.pend == nil {
		return 0
	}
	return m.pend.nzombies
}

func (m *Matrix[T]) Jumbled() bool {
	return m.pend != nil && m.pend.jumbled
}

func (m *Matrix[T]) NPending() int {
	if m.pend == nil {
		return 0
	}
	return len(m.pend.tuples)
}

// HasPendingWork reports whether the matrix carries any zombies, a
// jumbled vector, or unmerged pending tuples.
func (m *Matrix[T]) HasPendingWork() bool {
	return m.pend.hasWork()
}

// NNZ returns the number of live (non-zombie) entries.
func (m *Matrix[T]) NNZ() int {
	switch m.Format {
	case Bitmap:
		n := 0
		for _, occ := range m.B {
			if occ != 0 {
				n++
			}
		}
		return n
	case Full:
		return m.vlen * m.vdim
	default:
		return len(m.I) - m.NZombies()
	}
}

// MarkZombie negates the row index stored at position p in I in place,
// tombstoning the entry without shifting any other array (§3 Zombies).
// Valid only for Hyper/Sparse.
func (m *Matrix[T]) MarkZombie(p int) {
	if isZombie(m.I[p]) {
		return
	}
	m.I[p] = zombie(m.I[p])
	m.pend.nzombies++
}

// SetElement appends a pending (i, j, v) tuple. It is valid on any
// format; Bitmap and Full matrices handle it by writing the cell
// directly, since they carry no pending-work concept (invariant 2) and
// have no side buffer to append to.
func (m *Matrix[T]) SetElement(i, j int, v T) error {
	if i < 0 || i >= m.NRows || j < 0 || j >= m.NCols {
		return DimensionMismatchError("index (%d,%d) out of bounds for %dx%d matrix", i, j, m.NRows, m.NCols)
	}
	switch m.Format {
	case Bitmap:
		vi, vj := m.vecIndex(i, j)
		off := vj*m.vlen + vi
		m.B[off] = 1
		m.X[off] = v
		return nil
	case Full:
		vi, vj := m.vecIndex(i, j)
		m.X[vj*m.vlen+vi] = v
		return nil
	default:
		vi, vj := m.vecIndex(i, j)
		m.pend.tuples = append(m.pend.tuples, tuple[T]{i: vi, j: vj, v: v})
		return nil
	}
}

// vecIndex maps a (row, col) pair to the (vector-local index, vector
// index) pair used internally, accounting for orientation.
func (m *Matrix[T]) vecIndex(i, j int) (vi, vj int) {
	if m.Orient == ByRow {
		return j, i
	}
	return i, j
}

// unvecIndex is the inverse of vecIndex.
func (m *Matrix[T]) unvecIndex(vi, vj int) (i, j int) {
	if m.Orient == ByRow {
		return vj, vi
	}
	return vi, vj
}

// Clear resets the matrix to the empty-but-valid value of the same
// shape, orientation, and policy settings.
func (m *Matrix[T]) Clear() {
	control, bs, hs, orient := m.Control, m.BitmapSwitch, m.HyperSwitch, m.Orient
	*m = *Empty[T](m.NRows, m.NCols, orient)
	m.Control, m.BitmapSwitch, m.HyperSwitch = control, bs, hs
}

// Free drops the matrix's backing arrays so the garbage collector can
// reclaim them immediately, without waiting for the Matrix value itself
// to become unreachable. Mirrors the explicit-free lifecycle of §6.1;
// ownership of the arrays was always exclusive to this Matrix (§3
// Lifecycle), so there is nothing else holding a reference.
func (m *Matrix[T]) Free() {
	m.H, m.P, m.I, m.X, m.B = nil, nil, nil, nil, nil
	m.pend = nil
}
