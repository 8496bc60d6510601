// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package work implements the work-balanced vector slicer (§4.4): the
// primitive that partitions two (or three, with a mask) aligned sparse
// column slices into roughly equal-cost subtasks for parallel dispatch.
// It is factored out of package sparse, the way internal/asm/f64 factors
// numeric kernels out of blas64, so the binary-search core can be
// property-tested in isolation against adversarial index patterns.
package work

// Sentinel is returned for pA, pB, or pM when the corresponding slice is
// empty.
const Sentinel = -1

// Slice is the result of SliceVector: the row index i at which the
// subtask begins, and the positions in each of A, B, and (optionally) M
// at which that subtask's data begins.
type Slice struct {
	I      int
	PA, PB int
	PM     int
}

// SliceVector partitions A(:,kA) and B(:,kB) — represented as the index
// slices Ai[pAStart:pAEnd] and Bi[pBStart:pBEnd] — so that the work to
// process rows [i, vlen) is roughly targetWork: the binary search halves
// [0, vlen-1] until work(i) = (pAEnd-pA(i)) + (pBEnd-pB(i)) falls in
// [0.9999*targetWork, 1.0001*targetWork] or the interval collapses. Mi,
// if non-nil, is sliced once at the chosen i without entering the
// balance (mask cost does not enter the balance, per §4.4).
//
// TODO: allow the search interval [ileft, iright] to be specified on
// input, to limit the search when the caller already knows a bound.
func SliceVector(pMStart, pMEnd int, Mi []int, pAStart, pAEnd int, Ai []int, pBStart, pBEnd int, Bi []int, vlen int, targetWork float64) Slice {
	aknz := pAEnd - pAStart
	bknz := pBEnd - pBStart
	mknz := pMEnd - pMStart

	aEmpty := aknz == 0
	bEmpty := bknz == 0
	mEmpty := mknz == 0

	pA := sentinelOr(aEmpty, pAStart)
	pB := sentinelOr(bEmpty, pBStart)

	ileft, iright := 0, vlen-1
	i := 0

	for ileft < iright {
		i = (ileft + iright) / 2

		pA = locate(aEmpty, aknz, vlen, pAStart, pAEnd, Ai, i)
		pB = locate(bEmpty, bknz, vlen, pBStart, pBEnd, Bi, i)

		var work float64
		if !aEmpty {
			work += float64(pAEnd - pA)
		}
		if !bEmpty {
			work += float64(pBEnd - pB)
		}

		switch {
		case work < 0.9999*targetWork:
			// work too low => i too high; search the left half.
			iright = i
		case work > 1.0001*targetWork:
			// work too high => i too low; search the right half.
			ileft = i + 1
		default:
			return Slice{I: i, PA: pA, PB: pB, PM: locate(mEmpty, mknz, vlen, pMStart, pMEnd, Mi, i)}
		}
	}

	return Slice{I: i, PA: pA, PB: pB, PM: locate(mEmpty, mknz, vlen, pMStart, pMEnd, Mi, i)}
}

// locate finds the position within [pStart, pEnd) at which row i's
// subtask begins, using the dense fast path when the slice is known to
// be a full dense column (nnz == vlen) and a split binary search
// otherwise.
func locate(empty bool, knz, vlen, pStart, pEnd int, idx []int, i int) int {
	if empty {
		return Sentinel
	}
	if knz == vlen {
		// Dense column: position i appears at offset i, no search
		// needed.
		return pStart + i
	}
	p, _ := splitSearch(idx, pStart, pEnd-1, i)
	return p
}

func sentinelOr(empty bool, start int) int {
	if empty {
		return Sentinel
	}
	return start
}

// splitSearch finds the first position in idx[left:right+1] whose value
// is >= target, returning that position and whether the value at it
// equals target exactly. idx must be sorted ascending. On exit,
// idx[left0:pos] < target <= idx[pos:right0+1] (using the original left
// bound); if found, idx[pos] == target.
func splitSearch(idx []int, left, right, target int) (pos int, found bool) {
	for left <= right {
		mid := (left + right) / 2
		switch {
		case idx[mid] < target:
			left = mid + 1
		case idx[mid] > target:
			right = mid - 1
		default:
			return mid, true
		}
	}
	return left, false
}
