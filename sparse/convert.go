// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import "sort"

// Dup combines two values written to the same (i, j) cell, in the order
// they were inserted. It is consulted only when FinishPending merges
// pending tuples or a Build-style bulk load finds duplicate coordinates.
type Dup[T any] func(old, new T) T

// overwrite is the default Dup: the later write wins, matching
// GrB_Matrix_setElement's semantics when no accumulator is given.
func overwrite[T any](_, new T) T { return new }

// FinishPending finishes all pending work on a Hyper or Sparse matrix:
// zombies are deleted by compaction, jumbled vectors are sorted, and
// pending tuples are merged in index order, in that order (matching the
// source's comment in GB_conform.c that pending work is "zombies,
// jumbled, and/or pending tuples"). Bitmap and Full matrices are always
// clean and FinishPending is a no-op for them.
func (m *Matrix[T]) FinishPending(dup Dup[T]) error {
	if m.Format == Bitmap || m.Format == Full {
		return nil
	}
	if dup == nil {
		dup = overwrite[T]
	}
	if m.pend == nil {
		m.pend = &pending[T]{}
	}
	if m.NZombies() > 0 {
		m.compactZombies()
	}
	if m.Jumbled() {
		m.sortJumbled()
	}
	if len(m.pend.tuples) > 0 {
		// mergePending walks vectors by index, so a Hyper matrix is
		// merged in its expanded Sparse form and then re-compressed.
		wasHyper := m.Format == Hyper
		if wasHyper {
			m.expandHyperToSparse()
		}
		if err := m.mergePending(dup); err != nil {
			return err
		}
		if wasHyper {
			m.sparseToHyper()
		}
	}
	return nil
}

// compactZombies removes every zombie-marked entry from I/X in place,
// shrinking P to match. O(nnz) single pass per vector range.
func (m *Matrix[T]) compactZombies() {
	nvec := m.NVec()
	write := 0
	newP := make([]int, len(m.P))
	for k := 0; k < nvec; k++ {
		newP[k] = write
		for p := m.P[k]; p < m.P[k+1]; p++ {
			if isZombie(m.I[p]) {
				continue
			}
			m.I[write] = m.I[p]
			m.X[write] = m.X[p]
			write++
		}
	}
	newP[nvec] = write
	m.P = newP
	m.I = m.I[:write]
	m.X = m.X[:write]
	m.pend.nzombies = 0
}

// sortJumbled sorts each vector's (I, X) slice pair into ascending row
// order via a small sort.Interface adapter, the way the teacher's
// floats/stat packages sort parallel slices rather than reaching for an
// external sort library.
func (m *Matrix[T]) sortJumbled() {
	nvec := m.NVec()
	for k := 0; k < nvec; k++ {
		lo, hi := m.P[k], m.P[k+1]
		if hi-lo < 2 {
			continue
		}
		sort.Sort(vectorSlice[T]{i: m.I[lo:hi], x: m.X[lo:hi]})
	}
	m.pend.jumbled = false
}

// vectorSlice adapts a parallel (index, value) pair for sort.Sort.
type vectorSlice[T any] struct {
	i []int
	x []T
}

func (s vectorSlice[T]) Len() int           { return len(s.i) }
func (s vectorSlice[T]) Less(a, b int) bool { return s.i[a] < s.i[b] }
func (s vectorSlice[T]) Swap(a, b int) {
	s.i[a], s.i[b] = s.i[b], s.i[a]
	s.x[a], s.x[b] = s.x[b], s.x[a]
}

// mergePending merges the pending-tuple buffer into the sorted I/X
// representation, combining duplicate coordinates (within the buffer,
// and against an existing live entry) with dup, and clears the buffer.
func (m *Matrix[T]) mergePending(dup Dup[T]) error {
	tuples := m.pend.tuples
	// Stable: duplicate (i,j) tuples must stay in insertion order so the
	// merge loop below folds them as dup(older, newer), per Dup's contract.
	sort.SliceStable(tuples, func(a, b int) bool {
		if tuples[a].j != tuples[b].j {
			return tuples[a].j < tuples[b].j
		}
		return tuples[a].i < tuples[b].i
	})

	nvec := m.NVec()
	// Bucket existing + incoming entries per vector, then rebuild P/I/X.
	newI := make([]int, 0, len(m.I)+len(tuples))
	newX := make([]T, 0, len(m.X)+len(tuples))
	newP := make([]int, nvec+1)

	ti := 0
	for k := 0; k < nvec; k++ {
		// existing live entries for vector k
		type entry struct {
			i int
			x T
		}
		var merged []entry
		for p := m.P[k]; p < m.P[k+1]; p++ {
			merged = append(merged, entry{i: m.I[p], x: m.X[p]})
		}
		for ti < len(tuples) && tuples[ti].j == k {
			t := tuples[ti]
			placed := false
			for idx := range merged {
				if merged[idx].i == t.i {
					merged[idx].x = dup(merged[idx].x, t.v)
					placed = true
					break
				}
			}
			if !placed {
				merged = append(merged, entry{i: t.i, x: t.v})
			}
			ti++
		}
		sort.Slice(merged, func(a, b int) bool { return merged[a].i < merged[b].i })
		newP[k] = len(newI)
		for _, e := range merged {
			newI = append(newI, e.i)
			newX = append(newX, e.x)
		}
	}
	newP[nvec] = len(newI)

	m.P, m.I, m.X = newP, newI, newX
	m.pend.tuples = nil
	return nil
}

// GetElement returns the value stored at (i, j), finishing pending work
// first (§6.2: get "first finishes pending work"). The zero value and
// ok == false are returned if no entry is present.
func (m *Matrix[T]) GetElement(i, j int, dup Dup[T]) (v T, ok bool, err error) {
	if i < 0 || i >= m.NRows || j < 0 || j >= m.NCols {
		err = DimensionMismatchError("index (%d,%d) out of bounds for %dx%d matrix", i, j, m.NRows, m.NCols)
		return
	}
	if err = m.FinishPending(dup); err != nil {
		return
	}
	vi, vj := m.vecIndex(i, j)
	switch m.Format {
	case Full:
		return m.X[vj*m.vlen+vi], true, nil
	case Bitmap:
		off := vj*m.vlen + vi
		if m.B[off] == 0 {
			return v, false, nil
		}
		return m.X[off], true, nil
	case Sparse:
		lo, hi := m.P[vj], m.P[vj+1]
		p, found := binarySearch(m.I, lo, hi, vi)
		if !found {
			return v, false, nil
		}
		return m.X[p], true, nil
	case Hyper:
		k, found := binarySearch(m.H, 0, len(m.H), vj)
		if !found {
			return v, false, nil
		}
		lo, hi := m.P[k], m.P[k+1]
		p, found := binarySearch(m.I, lo, hi, vi)
		if !found {
			return v, false, nil
		}
		return m.X[p], true, nil
	}
	return v, false, nil
}

// binarySearch finds target in sorted [lo, hi) and reports whether it
// was found, returning the position where it is (or would be inserted).
func binarySearch(a []int, lo, hi, target int) (pos int, found bool) {
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case a[mid] < target:
			lo = mid + 1
		case a[mid] > target:
			hi = mid
		default:
			return mid, true
		}
	}
	return lo, false
}

//------------------------------------------------------------------------------
// density tests (§4.2)
//------------------------------------------------------------------------------

func sparseToBitmapTest(bitmapSwitch float64, nnz, vlen, vdim int) bool {
	return float64(nnz) >= bitmapSwitch*float64(vlen)*float64(vdim)
}

func bitmapToSparseTest(bitmapSwitch float64, nnz, vlen, vdim int) bool {
	return float64(nnz) < bitmapSwitch*float64(vlen)*float64(vdim)
}

func hyperToSparseTest(hyperSwitch float64, nvec, vdim int) bool {
	return float64(nvec) >= hyperSwitch*float64(vdim)
}

func sparseToHyperTest(hyperSwitch float64, nvec, vdim int) bool {
	return float64(nvec) < hyperSwitch*float64(vdim)
}

//------------------------------------------------------------------------------
// six directed converters (§4.2)
//------------------------------------------------------------------------------

// ToSparse converts any input format to Sparse, first finishing pending
// work. On failure the matrix is reset to empty-but-valid.
func (m *Matrix[T]) ToSparse(dup Dup[T]) error {
	if m.Format == Sparse {
		return m.FinishPending(dup)
	}
	if err := m.finishIfPending(dup); err != nil {
		return m.fail(err)
	}
	switch m.Format {
	case Hyper:
		m.expandHyperToSparse()
	case Bitmap:
		return m.BitmapToSparse()
	case Full:
		m.fullToSparse()
	}
	return nil
}

// expandHyperToSparse fills in the implicit empty vectors that Hyper
// elides, producing a full-length P array of size vdim+1.
func (m *Matrix[T]) expandHyperToSparse() {
	newP := make([]int, m.vdim+1)
	hk := 0
	for k := 0; k < m.vdim; k++ {
		// A vector absent from H is empty: it starts (and ends) where the
		// next present vector starts, which is m.P[hk] (len(m.I) past the
		// last one).
		newP[k] = m.P[hk]
		if hk < len(m.H) && m.H[hk] == k {
			hk++
		}
	}
	newP[m.vdim] = len(m.I)
	m.P = newP
	m.H = nil
	m.Format = Sparse
}

func (m *Matrix[T]) fullToSparse() {
	newP := make([]int, m.vdim+1)
	newI := make([]int, 0, m.vlen*m.vdim)
	newX := make([]T, 0, m.vlen*m.vdim)
	for k := 0; k < m.vdim; k++ {
		newP[k] = len(newI)
		base := k * m.vlen
		for i := 0; i < m.vlen; i++ {
			newI = append(newI, i)
			newX = append(newX, m.X[base+i])
		}
	}
	newP[m.vdim] = len(newI)
	m.P, m.I, m.X = newP, newI, newX
	m.Format = Sparse
	m.pend = &pending[T]{}
}

// BitmapToSparse converts a Bitmap matrix to Sparse by scanning the
// occupancy array. Bitmap never has pending work, so no finishing step
// is required.
func (m *Matrix[T]) BitmapToSparse() error {
	newP := make([]int, m.vdim+1)
	nnz := m.NNZ()
	newI := make([]int, 0, nnz)
	newX := make([]T, 0, nnz)
	for k := 0; k < m.vdim; k++ {
		newP[k] = len(newI)
		base := k * m.vlen
		for i := 0; i < m.vlen; i++ {
			if m.B[base+i] != 0 {
				newI = append(newI, i)
				newX = append(newX, m.X[base+i])
			}
		}
	}
	newP[m.vdim] = len(newI)
	m.P, m.I, m.X, m.B = newP, newI, newX, nil
	m.Format = Sparse
	m.pend = &pending[T]{}
	return nil
}

// ToHyper converts any input format to Hyper, first finishing pending
// work.
func (m *Matrix[T]) ToHyper(dup Dup[T]) error {
	if m.Format == Hyper {
		return m.FinishPending(dup)
	}
	if err := m.ToSparse(dup); err != nil {
		return err
	}
	m.sparseToHyper()
	return nil
}

// sparseToHyper drops every implicit empty vector, building H from the
// vectors that actually have entries.
func (m *Matrix[T]) sparseToHyper() {
	var h []int
	var newP []int
	for k := 0; k < m.vdim; k++ {
		if m.P[k+1] > m.P[k] {
			h = append(h, k)
			newP = append(newP, m.P[k])
		}
	}
	newP = append(newP, len(m.I))
	m.H = h
	m.P = newP
	m.Format = Hyper
}

// ToBitmap converts any input format to Bitmap, first finishing pending
// work.
func (m *Matrix[T]) ToBitmap(dup Dup[T]) error {
	if m.Format == Bitmap {
		return nil
	}
	if err := m.finishIfPending(dup); err != nil {
		return m.fail(err)
	}
	b := make([]byte, m.vlen*m.vdim)
	x := make([]T, m.vlen*m.vdim)
	switch m.Format {
	case Full:
		copy(x, m.X)
		for i := range b {
			b[i] = 1
		}
	default: // Hyper or Sparse
		nvec := m.NVec()
		for k := 0; k < nvec; k++ {
			vj := m.vecAt(k)
			base := vj * m.vlen
			for p := m.P[k]; p < m.P[k+1]; p++ {
				b[base+m.I[p]] = 1
				x[base+m.I[p]] = m.X[p]
			}
		}
	}
	m.H, m.P, m.I, m.X = nil, nil, nil, x
	m.B = b
	m.Format = Bitmap
	m.pend = nil
	return nil
}

// ToFull converts any input format to Full, first finishing pending
// work. ToFull does not check density; callers (Conform) are expected to
// have already decided the matrix should be dense.
func (m *Matrix[T]) ToFull(dup Dup[T]) error {
	if m.Format == Full {
		return nil
	}
	if err := m.finishIfPending(dup); err != nil {
		return m.fail(err)
	}
	x := make([]T, m.vlen*m.vdim)
	switch m.Format {
	case Bitmap:
		copy(x, m.X)
	default: // Hyper or Sparse
		nvec := m.NVec()
		for k := 0; k < nvec; k++ {
			vj := m.vecAt(k)
			base := vj * m.vlen
			for p := m.P[k]; p < m.P[k+1]; p++ {
				x[base+m.I[p]] = m.X[p]
			}
		}
	}
	m.H, m.P, m.I, m.B = nil, nil, nil, nil
	m.X = x
	m.Format = Full
	m.pend = nil
	return nil
}

// vecAt returns the vector index of vector slot k, whether the matrix is
// Hyper (looked up via H) or Sparse (implicitly k).
func (m *Matrix[T]) vecAt(k int) int {
	if m.Format == Hyper {
		return m.H[k]
	}
	return k
}

func (m *Matrix[T]) finishIfPending(dup Dup[T]) error {
	if m.Format == Hyper || m.Format == Sparse {
		return m.FinishPending(dup)
	}
	return nil
}

// fail resets the matrix to empty-but-valid and returns the failure,
// per §4.2/§7: converters either succeed or clear to empty.
func (m *Matrix[T]) fail(err error) error {
	m.Clear()
	return err
}

// ConformHyper applies only the hyper<->sparse density tests of §4.2; it
// never converts to or from Bitmap/Full.
func (m *Matrix[T]) ConformHyper(dup Dup[T]) error {
	switch m.Format {
	case Hyper:
		if hyperToSparseTest(m.HyperSwitch, m.NVec(), m.vdim) {
			return m.ToSparse(dup)
		}
		return nil
	case Sparse:
		// A Sparse matrix's NVec() is always vdim; the test needs the
		// number of vectors that actually hold entries.
		if err := m.FinishPending(dup); err != nil {
			return err
		}
		nonEmpty := 0
		for k := 0; k < m.vdim; k++ {
			if m.P[k+1] > m.P[k] {
				nonEmpty++
			}
		}
		if sparseToHyperTest(m.HyperSwitch, nonEmpty, m.vdim) {
			return m.ToHyper(dup)
		}
		return nil
	default:
		return nil
	}
}
