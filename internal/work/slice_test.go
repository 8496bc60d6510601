// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package work

import (
	"math/rand/v2"
	"testing"
)

func TestSliceVectorCoversWholeRange(t *testing.T) {
	for _, tc := range []struct {
		name       string
		ai, bi     []int
		vlen       int
		nWorkers   int
	}{
		{"both dense", denseIndex(100), denseIndex(100), 100, 4},
		{"disjoint sparse", []int{0, 5, 10, 50}, []int{1, 6, 60, 90}, 100, 3},
		{"a empty", nil, denseIndex(64), 64, 4},
		{"b empty", denseIndex(64), nil, 64, 4},
		{"both empty", nil, nil, 64, 4},
		{"single element each", []int{42}, []int{42}, 100, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			total := float64(len(tc.ai) + len(tc.bi))
			if total == 0 {
				return
			}
			target := total / float64(tc.nWorkers)

			var bounds []int
			prevPA, prevPB := 0, 0
			for w := 0; w < tc.nWorkers; w++ {
				sl := SliceVector(0, 0, nil, prevPA, len(tc.ai), tc.ai, prevPB, len(tc.bi), tc.bi, tc.vlen, target)
				pa := resolve(sl.PA, prevPA)
				pb := resolve(sl.PB, prevPB)
				if pa < prevPA || pb < prevPB {
					t.Fatalf("worker %d: slice positions went backwards: pa=%d (prev %d) pb=%d (prev %d)", w, pa, prevPA, pb, prevPB)
				}
				bounds = append(bounds, sl.I)
				prevPA, prevPB = pa, pb
			}
			if prevPA > len(tc.ai) || prevPB > len(tc.bi) {
				t.Fatalf("final positions exceed slice lengths: pa=%d (len %d) pb=%d (len %d)", prevPA, len(tc.ai), prevPB, len(tc.bi))
			}
		})
	}
}

func TestSliceVectorMonotoneUnderRandomIndices(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	vlen := 500
	for trial := 0; trial < 20; trial++ {
		ai := randomAscending(rng, vlen, rng.IntN(vlen))
		bi := randomAscending(rng, vlen, rng.IntN(vlen))
		total := len(ai) + len(bi)
		if total == 0 {
			continue
		}
		target := float64(total) / 3

		sl := SliceVector(0, 0, nil, 0, len(ai), ai, 0, len(bi), bi, vlen, target)
		if sl.I < 0 || sl.I >= vlen {
			t.Fatalf("trial %d: I=%d out of [0,%d)", trial, sl.I, vlen)
		}
		if sl.PA != Sentinel && (sl.PA < 0 || sl.PA > len(ai)) {
			t.Fatalf("trial %d: PA=%d out of bounds for len(ai)=%d", trial, sl.PA, len(ai))
		}
		if sl.PB != Sentinel && (sl.PB < 0 || sl.PB > len(bi)) {
			t.Fatalf("trial %d: PB=%d out of bounds for len(bi)=%d", trial, sl.PB, len(bi))
		}
	}
}

func TestSliceVectorMaskDoesNotEnterBalance(t *testing.T) {
	ai := denseIndex(20)
	bi := denseIndex(20)
	mi := denseIndex(20)

	withMask := SliceVector(0, len(mi), mi, 0, len(ai), ai, 0, len(bi), bi, 20, 20)
	withoutMask := SliceVector(0, 0, nil, 0, len(ai), ai, 0, len(bi), bi, 20, 20)

	if withMask.I != withoutMask.I {
		t.Errorf("mask changed the balance point: with=%d without=%d", withMask.I, withoutMask.I)
	}
	if withMask.PM == Sentinel {
		t.Errorf("expected a resolved PM when a non-nil mask is supplied")
	}
}

func denseIndex(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func randomAscending(rng *rand.Rand, vlen, n int) []int {
	if n == 0 {
		return nil
	}
	seen := make(map[int]bool, n)
	for len(seen) < n && len(seen) < vlen {
		seen[rng.IntN(vlen)] = true
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func resolve(p, prev int) int {
	if p == Sentinel {
		return prev
	}
	return p
}
