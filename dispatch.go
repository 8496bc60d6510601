// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grb

import (
	"golang.org/x/sync/errgroup"

	"graphblas.dev/v1/grb/internal/kernel"
	"graphblas.dev/v1/grb/internal/work"
	"graphblas.dev/v1/grb/semiring"
	"graphblas.dev/v1/grb/sparse"
)

// The six dispatch steps of §4.5 apply to every operator below: (1)
// finish pending work on sparse/hyper operands, (2) conform operands to
// a format the chosen algorithm accepts, (3) pick an algorithm family,
// (4) slice work across Context's worker pool, (5) invoke the generated
// kernel, (6) conform the output under its own sparsity control.
//
// Step (2) is resolved uniformly here: every operand is first conformed
// to Sparse, regardless of which algorithm family step (3) eventually
// picks. Hyper's only advantage over Sparse is skipping empty vector
// slots; once an operand is Sparse every vector slot is directly
// addressable by its vdim index with no H lookup, which keeps the
// column-access helpers below free of a Hyper/Sparse split. A matrix
// already Sparse only finishes its pending work; a Hyper, Bitmap or Full
// operand is converted to Sparse in place.

// colResult holds one output vector's worth of (row, value) pairs,
// produced by one dispatch task and assembled into the final matrix
// sequentially once every task has finished — the disjoint-output-range
// discipline of §5.
type colResult[T any] struct {
	I []int
	X []T
}

// unvec maps a (vector index, within-vector index) pair back to logical
// (row, col) coordinates for the given orientation, the inverse of the
// mapping sparse.Matrix.vecIndex applies internally.
func unvec(orient Orientation, vecIdx, within int) (i, j int) {
	if orient == ByRow {
		return vecIdx, within
	}
	return within, vecIdx
}

// buildFromColumns assembles a new Sparse matrix of the given shape and
// orientation from per-vector (row, value) results, via SetElement +
// FinishPending rather than touching sparse.Matrix's unexported fields
// directly — package grb builds matrices the same way any other caller
// does, through the public element-I/O surface.
func buildFromColumns[T any](nrows, ncols int, orient Orientation, cols []colResult[T]) (*sparse.Matrix[T], error) {
	m := sparse.Empty[T](nrows, ncols, orient)
	for vj, r := range cols {
		for k, vi := range r.I {
			i, j := unvec(orient, vj, vi)
			if err := m.SetElement(i, j, r.X[k]); err != nil {
				return nil, err
			}
		}
	}
	if err := m.FinishPending(nil); err != nil {
		return nil, err
	}
	return m, nil
}

func colSlice[T any](m *sparse.Matrix[T], j int) ([]int, []T) {
	return m.I[m.P[j]:m.P[j+1]], m.X[m.P[j]:m.P[j+1]]
}

// transposeMatrix materializes m' (shape swapped, every entry's (i, j)
// swapped to (j, i)) in the same orientation as m, for an operand a
// Descriptor marks InpTranspose. Built through the public element I/O
// surface like buildFromColumns, rather than reinterpreting m's arrays
// in place, since the latter would alias m's backing slices and a later
// FinishPending on the transposed view (compactZombies in particular)
// mutates those arrays in place.
func transposeMatrix[T any](m *Matrix[T]) (*Matrix[T], error) {
	out := New[T](m.NCols(), m.NRows(), m.Orient())
	for i := 0; i < m.NRows(); i++ {
		for j := 0; j < m.NCols(); j++ {
			v, ok, err := m.GetElement(i, j)
			if err != nil {
				return nil, err
			}
			if ok {
				if err := out.SetElement(j, i, v); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := out.Conform(); err != nil {
		return nil, err
	}
	return out, nil
}

func (ctx *Context) chunkSize() int {
	if ctx == nil || ctx.chunk <= 0 {
		return DefaultChunk
	}
	return ctx.chunk
}

//------------------------------------------------------------------------------
// MxM
//------------------------------------------------------------------------------

// MxM computes C = A (+.*) B over the given semiring (§4.5): C's shape
// is a.NRows() x b.NCols(), requiring a.NCols() == b.NRows(). desc.Inp0/
// desc.Inp1 == InpTranspose substitute A'/B' for A/B before that shape
// check runs. Both operands are conformed to Sparse and must be ByCol
// oriented for the Gustavson and Heap algorithm families; the Dot family
// instead requires a to be ByRow oriented (so a's stored vectors already
// align with b's row index, the role A' plays in the source's
// dot-product method) and b ByCol. desc.AxBMethod forces the algorithm
// family; AxBDefault picks Gustavson.
func MxM[A, B, C any](ctx *Context, semi semiring.Semiring[A, B, C], a *Matrix[A], b *Matrix[B], desc Descriptor) (*Matrix[C], error) {
	if desc.Inp0 == InpTranspose {
		t, err := transposeMatrix(a)
		if err != nil {
			return nil, err
		}
		a = t
	}
	if desc.Inp1 == InpTranspose {
		t, err := transposeMatrix(b)
		if err != nil {
			return nil, err
		}
		b = t
	}
	if a.NCols() != b.NRows() {
		return nil, sparse.DimensionMismatchError("MxM: A is %dx%d, B is %dx%d", a.NRows(), a.NCols(), b.NRows(), b.NCols())
	}
	if err := a.raw.FinishPending(nil); err != nil {
		return nil, err
	}
	if err := b.raw.FinishPending(nil); err != nil {
		return nil, err
	}
	if err := a.raw.ToSparse(nil); err != nil {
		return nil, err
	}
	if err := b.raw.ToSparse(nil); err != nil {
		return nil, err
	}

	method := desc.AxBMethod
	if method == AxBDefault {
		method = AxBGustavson
	}

	k := semi.ToKernel()
	vdimB := b.raw.VDim()
	vlenA := a.raw.VLen()
	cols := make([]colResult[C], vdimB)

	switch method {
	case AxBDot:
		if a.Orient() != ByRow || b.Orient() != ByCol {
			return nil, sparse.BadInputError("MxM: dot method requires A by row and B by col")
		}
		err := ctx.Go(vdimB, func(j int) error {
			bi, bx := colSlice(b.raw, j)
			outI := make([]int, 0, len(bi))
			outX := make([]C, 0, len(bi))
			for _, i := range allRows(a.raw.VDim()) {
				ai, ax := colSlice(a.raw, i)
				z, ok := kernel.DotEntry(k, ai, ax, bi, bx)
				if ok {
					outI = append(outI, i)
					outX = append(outX, z)
				}
			}
			cols[j] = colResult[C]{I: outI, X: outX}
			return nil
		})
		if err != nil {
			return nil, err
		}

	case AxBHeap:
		if a.Orient() != ByCol || b.Orient() != ByCol {
			return nil, sparse.BadInputError("MxM: heap/gustavson methods require A and B by col")
		}
		err := ctx.Go(vdimB, func(j int) error {
			bi, bx := colSlice(b.raw, j)
			starts := make([]int, len(bi))
			ends := make([]int, len(bi))
			for s, bk := range bi {
				starts[s] = a.raw.P[bk]
				ends[s] = a.raw.P[bk+1]
			}
			scratch := kernel.NewHeapScratch(len(bi))
			outI := make([]int, countRange(starts, ends))
			outX := make([]C, len(outI))
			n := kernel.HeapColumn(k, scratch, a.raw.I, a.raw.X, starts, ends, bx, outI, outX)
			cols[j] = colResult[C]{I: outI[:n], X: outX[:n]}
			return nil
		})
		if err != nil {
			return nil, err
		}

	default: // AxBGustavson
		if a.Orient() != ByCol || b.Orient() != ByCol {
			return nil, sparse.BadInputError("MxM: heap/gustavson methods require A and B by col")
		}
		aSlotOf := func(row int) (int, bool) {
			if row < 0 || row >= a.raw.VDim() {
				return 0, false
			}
			return row, true
		}
		err := ctx.Go(vdimB, func(j int) error {
			bi, bx := colSlice(b.raw, j)
			scratch := kernel.NewScratch[C](vlenA)
			outI := make([]int, vlenA)
			outX := make([]C, vlenA)
			n := kernel.GustavsonColumn(k, scratch, a.raw.P, a.raw.I, a.raw.X, aSlotOf, bi, bx, outI, outX)
			cols[j] = colResult[C]{I: outI[:n], X: outX[:n]}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	raw, err := buildFromColumns(a.NRows(), b.NCols(), ByCol, cols)
	if err != nil {
		return nil, err
	}
	c := &Matrix[C]{raw: raw}
	if Burble() {
		burblef("MxM: method=%v nnz(C)=%d", method, c.NNZ())
	}
	return c, c.Conform()
}

func allRows(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

func countRange(starts, ends []int) int {
	n := 0
	for i := range starts {
		n += ends[i] - starts[i]
	}
	return n
}

//------------------------------------------------------------------------------
// EWiseAdd / EWiseMult
//------------------------------------------------------------------------------

// EWiseAdd computes C = A (+) B under the given monoid: a set union of
// A and B, overlapping cells combined by add.Add. A and B must share a
// shape and orientation once desc.Inp0/desc.Inp1 == InpTranspose has
// substituted A'/B' for A/B.
func EWiseAdd[T any](ctx *Context, add semiring.Monoid[T], a, b *Matrix[T], desc Descriptor) (*Matrix[T], error) {
	if desc.Inp0 == InpTranspose {
		t, err := transposeMatrix(a)
		if err != nil {
			return nil, err
		}
		a = t
	}
	if desc.Inp1 == InpTranspose {
		t, err := transposeMatrix(b)
		if err != nil {
			return nil, err
		}
		b = t
	}
	if err := checkEwiseShape(a.raw, b.raw); err != nil {
		return nil, err
	}
	if err := a.raw.FinishPending(nil); err != nil {
		return nil, err
	}
	if err := b.raw.FinishPending(nil); err != nil {
		return nil, err
	}
	if err := a.raw.ToSparse(nil); err != nil {
		return nil, err
	}
	if err := b.raw.ToSparse(nil); err != nil {
		return nil, err
	}

	vdim := a.raw.VDim()
	vlen := a.raw.VLen()
	k := add.ToKernel()
	cols := make([]colResult[T], vdim)
	err := ctx.Go(vdim, func(j int) error {
		ai, ax := colSlice(a.raw, j)
		bi, bx := colSlice(b.raw, j)
		outI, outX := mergeAddColumn(ctx, k, ai, ax, bi, bx, vlen)
		cols[j] = colResult[T]{I: outI, X: outX}
		return nil
	})
	if err != nil {
		return nil, err
	}

	raw, err := buildFromColumns(a.NRows(), a.NCols(), a.Orient(), cols)
	if err != nil {
		return nil, err
	}
	c := &Matrix[T]{raw: raw}
	return c, c.Conform()
}

// mergeAddColumn merges one column pair, splitting the row range once
// via work.SliceVector and running both halves concurrently when the
// combined nonzero count crosses ctx's chunk size — the natural fit for
// SliceVector's two-aligned-index-list shape, since A(:,j) and B(:,j)
// share the same row domain [0, vlen).
func mergeAddColumn[T any](ctx *Context, add kernel.Monoid[T], aI []int, aX []T, bI []int, bX []T, vlen int) ([]int, []T) {
	n := len(aI) + len(bI)
	if ctx.NWorkers() <= 1 || n < ctx.chunkSize() || vlen == 0 {
		outI := make([]int, n)
		outX := make([]T, n)
		got := kernel.EWiseAddColumn(add, aI, aX, bI, bX, outI, outX)
		return outI[:got], outX[:got]
	}

	target := float64(n) / 2
	sl := work.SliceVector(0, 0, nil, 0, len(aI), aI, 0, len(bI), bI, vlen, target)
	pa := splitAt(sl.PA)
	pb := splitAt(sl.PB)

	leftI := make([]int, pa+pb)
	leftX := make([]T, pa+pb)
	rightI := make([]int, n-pa-pb)
	rightX := make([]T, n-pa-pb)

	var g errgroup.Group
	var n1, n2 int
	g.Go(func() error {
		n1 = kernel.EWiseAddColumn(add, aI[:pa], aX[:pa], bI[:pb], bX[:pb], leftI, leftX)
		return nil
	})
	g.Go(func() error {
		n2 = kernel.EWiseAddColumn(add, aI[pa:], aX[pa:], bI[pb:], bX[pb:], rightI, rightX)
		return nil
	})
	g.Wait()

	outI := make([]int, n1+n2)
	outX := make([]T, n1+n2)
	copy(outI, leftI[:n1])
	copy(outX, leftX[:n1])
	copy(outI[n1:], rightI[:n2])
	copy(outX[n1:], rightX[:n2])
	return outI, outX
}

func splitAt(p int) int {
	if p == work.Sentinel {
		return 0
	}
	return p
}

// EWiseMult computes C = A (.*) B under the given binary operator: a
// set intersection of A and B. A and B must share a shape and
// orientation once desc.Inp0/desc.Inp1 == InpTranspose has substituted
// A'/B' for A/B; the result carries A's (post-transpose) orientation.
func EWiseMult[A, B, C any](ctx *Context, mult semiring.BinaryOp[A, B, C], a *Matrix[A], b *Matrix[B], desc Descriptor) (*Matrix[C], error) {
	if desc.Inp0 == InpTranspose {
		t, err := transposeMatrix(a)
		if err != nil {
			return nil, err
		}
		a = t
	}
	if desc.Inp1 == InpTranspose {
		t, err := transposeMatrix(b)
		if err != nil {
			return nil, err
		}
		b = t
	}
	if a.NRows() != b.NRows() || a.NCols() != b.NCols() || a.Orient() != b.Orient() {
		return nil, sparse.DimensionMismatchError("EWiseMult: shape/orientation mismatch")
	}
	if err := a.raw.FinishPending(nil); err != nil {
		return nil, err
	}
	if err := b.raw.FinishPending(nil); err != nil {
		return nil, err
	}
	if err := a.raw.ToSparse(nil); err != nil {
		return nil, err
	}
	if err := b.raw.ToSparse(nil); err != nil {
		return nil, err
	}

	vdim := a.raw.VDim()
	cols := make([]colResult[C], vdim)
	kmult := kernel.BinaryOp[A, B, C](mult)
	err := ctx.Go(vdim, func(j int) error {
		ai, ax := colSlice(a.raw, j)
		bi, bx := colSlice(b.raw, j)
		outI := make([]int, minInt(len(ai), len(bi)))
		outX := make([]C, len(outI))
		n := kernel.EWiseMultColumn(kmult, ai, ax, bi, bx, outI, outX)
		cols[j] = colResult[C]{I: outI[:n], X: outX[:n]}
		return nil
	})
	if err != nil {
		return nil, err
	}

	raw, err := buildFromColumns(a.NRows(), a.NCols(), a.Orient(), cols)
	if err != nil {
		return nil, err
	}
	c := &Matrix[C]{raw: raw}
	return c, c.Conform()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func checkEwiseShape[A, B any](a *sparse.Matrix[A], b *sparse.Matrix[B]) error {
	if a.NRows != b.NRows || a.NCols != b.NCols || a.Orient != b.Orient {
		return sparse.DimensionMismatchError("ewise: shape/orientation mismatch")
	}
	return nil
}

//------------------------------------------------------------------------------
// Apply
//------------------------------------------------------------------------------

// Apply computes C = op(A), a structure-preserving unary map over every
// stored entry of A (or of A', when desc.Inp0 == InpTranspose).
func Apply[A, C any](ctx *Context, op func(A) C, a *Matrix[A], desc Descriptor) (*Matrix[C], error) {
	if desc.Inp0 == InpTranspose {
		t, err := transposeMatrix(a)
		if err != nil {
			return nil, err
		}
		a = t
	}
	if err := a.raw.FinishPending(nil); err != nil {
		return nil, err
	}
	if err := a.raw.ToSparse(nil); err != nil {
		return nil, err
	}

	vdim := a.raw.VDim()
	cols := make([]colResult[C], vdim)
	err := ctx.Go(vdim, func(j int) error {
		ai, ax := colSlice(a.raw, j)
		outI := make([]int, len(ai))
		outX := make([]C, len(ai))
		n := kernel.ApplyColumn(op, ai, ax, outI, outX)
		cols[j] = colResult[C]{I: outI[:n], X: outX[:n]}
		return nil
	})
	if err != nil {
		return nil, err
	}

	raw, err := buildFromColumns(a.NRows(), a.NCols(), a.Orient(), cols)
	if err != nil {
		return nil, err
	}
	c := &Matrix[C]{raw: raw}
	return c, c.Conform()
}

//------------------------------------------------------------------------------
// Assign
//------------------------------------------------------------------------------

// Assign computes the core whole-matrix masked assignment C<M> = src
// in place on c (§1's scope note: the arbitrary-index-list forms of
// GrB_assign/GrB_extract are out of scope). There is no accumulator: a
// selected cell takes src's value, or is deleted if src has no entry
// there. EWiseAdd and EWiseMult do not call Assign. mask may be nil,
// meaning every cell is selected (equivalent to MaskDefault with an
// all-true mask); with a Complement mask kind a nil mask selects none.
func Assign[T any](ctx *Context, c *Matrix[T], mask *Matrix[bool], src *Matrix[T], desc Descriptor) error {
	if c.NRows() != src.NRows() || c.NCols() != src.NCols() || c.Orient() != src.Orient() {
		return sparse.DimensionMismatchError("Assign: C/src shape or orientation mismatch")
	}
	if mask != nil && (mask.NRows() != c.NRows() || mask.NCols() != c.NCols() || mask.Orient() != c.Orient()) {
		return sparse.DimensionMismatchError("Assign: mask shape or orientation mismatch")
	}
	if err := c.raw.FinishPending(nil); err != nil {
		return err
	}
	if err := src.raw.FinishPending(nil); err != nil {
		return err
	}
	if err := c.raw.ToSparse(nil); err != nil {
		return err
	}
	if err := src.raw.ToSparse(nil); err != nil {
		return err
	}
	if mask != nil {
		if err := mask.raw.FinishPending(nil); err != nil {
			return err
		}
		if err := mask.raw.ToSparse(nil); err != nil {
			return err
		}
	}

	kind := kernel.MaskKind(desc.Mask)
	replace := desc.Outp == OutpReplace
	vdim := c.raw.VDim()
	cols := make([]colResult[T], vdim)
	err := ctx.Go(vdim, func(j int) error {
		curI, curX := colSlice(c.raw, j)
		srcI, srcX := colSlice(src.raw, j)
		var mi []int
		var mv []bool
		if mask != nil {
			mi, mv = colSlice(mask.raw, j)
			if kind == kernel.MaskStructure || kind == kernel.MaskStructureComplement {
				mv = nil
			}
		} else {
			mi = allRows(c.raw.VLen())
		}
		outI := make([]int, len(curI)+len(srcI))
		outX := make([]T, len(outI))
		n := kernel.AssignColumn(kind, mi, mv, replace, curI, curX, srcI, srcX, outI, outX)
		cols[j] = colResult[T]{I: outI[:n], X: outX[:n]}
		return nil
	})
	if err != nil {
		return err
	}

	raw, err := buildFromColumns(c.NRows(), c.NCols(), c.Orient(), cols)
	if err != nil {
		return err
	}
	*c.raw = *raw
	return c.Conform()
}
