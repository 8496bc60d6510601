// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "sort"

// Scratch is the accumulator the Gustavson (saxpy) family writes into,
// supplied by the caller: one value slot and one "last touched" mark
// per row, sized to the vector length of A. (Context holds no scratch;
// MxM allocates a fresh Scratch for each output column.) Mark lets a
// caller reuse the same backing arrays across many output columns without
// zeroing them fully between columns — only rows actually touched this
// column are read, identified by Mark[row] == the column's unique stamp
// — mirroring GraphBLAS's own Sauna_Mark/Sauna_Hiwater bookkeeping for
// its Gustavson scratch ("Sauna_Work").
type Scratch[C any] struct {
	Work    []C
	Mark    []int64
	touched []int // reused row-touched-this-column buffer, cap == len(Work)
	stamp   int64
}

// NewScratch allocates a Scratch sized for vectors of length n.
func NewScratch[C any](n int) *Scratch[C] {
	return &Scratch[C]{Work: make([]C, n), Mark: make([]int64, n), touched: make([]int, 0, n)}
}

// Reserve grows Work/Mark/touched to at least n, preserving existing
// marks (a grow never needs to invalidate outstanding stamps since
// stamps only ever increase and old rows above the old length were
// never marked).
func (s *Scratch[C]) Reserve(n int) {
	if len(s.Work) >= n {
		return
	}
	work := make([]C, n)
	mark := make([]int64, n)
	copy(work, s.Work)
	copy(mark, s.Mark)
	s.Work, s.Mark = work, mark
	s.touched = make([]int, 0, n)
}

// nextStamp returns a fresh column stamp, never equal to any previous
// one returned by this Scratch.
func (s *Scratch[C]) nextStamp() int64 {
	s.stamp++
	return s.stamp
}

// GustavsonColumn computes one output column of C = A (+.*) B using the
// saxpy/Gustavson method: for every nonzero B(k,j), accumulate
// op(A(:,k), B(k,j)) into a row-indexed scratch accumulator, then gather
// the touched rows back out in ascending order.
//
// Ap/Ai/Ax is A in Sparse or Hyper form (Ap indexed by A's vector slot,
// Ai/Ax holding the rows/values for that slot); aVecOfSlot maps a
// B-row-index k to A's vector slot (identity for Sparse, a lookup for
// Hyper, supplied by the caller so this function stays format-agnostic).
// bi/bx is B's column j. Results are appended to outI/outX, which the
// caller pre-sizes; it returns the number of entries written.
func GustavsonColumn[A, B, C any](
	k Kernel[A, B, C],
	scratch *Scratch[C],
	Ap []int, Ai []int, Ax []A,
	aSlotOf func(row int) (slot int, ok bool),
	bi []int, bx []B,
	outI []int, outX []C,
) int {
	stamp := scratch.nextStamp()
	touched := scratch.touched[:0]
	for bp, bk := range bi {
		slot, ok := aSlotOf(bk)
		if !ok {
			continue
		}
		y := bx[bp]
		for ap := Ap[slot]; ap < Ap[slot+1]; ap++ {
			row := Ai[ap]
			x := Ax[ap]
			if scratch.Mark[row] != stamp {
				scratch.Mark[row] = stamp
				scratch.Work[row] = k.Mult(x, y)
				touched = append(touched, row)
			} else {
				scratch.Work[row] = k.MultAdd(scratch.Work[row], x, y)
			}
		}
	}
	sort.Ints(touched)
	n := 0
	for _, row := range touched {
		outI[n] = row
		outX[n] = scratch.Work[row]
		n++
	}
	scratch.touched = touched
	return n
}
