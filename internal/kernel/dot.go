// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

// DotEntry computes a single output cell c_ij = sum_k A(k,i)*B(k,j) by
// merging two sorted index lists — the column of A' (i.e. A's row i,
// visited here as a sorted (row=k, value) list ai/ax) against B's column
// j (bi/bx) — exactly as the dot-product algorithm family visits one
// (i,j) pair of the output and reduces along k without any scratch.
//
// It reports ok == false if the two lists share no index (the dot
// product is structurally empty and contributes no entry to C).
func DotEntry[A, B, C any](k Kernel[A, B, C], ai []int, ax []A, bi []int, bx []B) (z C, ok bool) {
	pa, pb := 0, 0
	for pa < len(ai) && pb < len(bi) {
		switch {
		case ai[pa] < bi[pb]:
			pa++
		case ai[pa] > bi[pb]:
			pb++
		default:
			if !ok {
				z = k.Mult(ax[pa], bx[pb])
				ok = true
			} else {
				z = k.MultAdd(z, ax[pa], bx[pb])
			}
			if k.isTerminal(z) {
				return z, true
			}
			pa++
			pb++
		}
	}
	return z, ok
}
