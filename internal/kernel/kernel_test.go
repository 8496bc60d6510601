// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func plusTimes() Kernel[int, int, int] {
	return Kernel[int, int, int]{
		Mult:     func(x, y int) int { return x * y },
		MultAdd:  func(z, x, y int) int { return z + x*y },
		Identity: 0,
	}
}

func TestGustavsonColumn(t *testing.T) {
	// A = [[1,0,2],[0,3,0],[4,0,5]] stored by col (Ap/Ai/Ax sparse CSC)
	Ap := []int{0, 2, 3, 5}
	Ai := []int{0, 2, 1, 0, 2}
	Ax := []int{1, 4, 3, 2, 5}

	// B(:,0) = [1, 1, 1] (dense column, picks every A column once)
	bi := []int{0, 1, 2}
	bx := []int{1, 1, 1}

	k := plusTimes()
	scratch := NewScratch[int](3)
	aSlotOf := func(row int) (int, bool) {
		if row < 0 || row >= 3 {
			return 0, false
		}
		return row, true
	}
	outI := make([]int, 3)
	outX := make([]int, 3)
	n := GustavsonColumn(k, scratch, Ap, Ai, Ax, aSlotOf, bi, bx, outI, outX)

	wantI := []int{0, 1, 2}
	wantX := []int{1 + 2, 3, 4 + 5}
	if diff := cmp.Diff(wantI, outI[:n]); diff != "" {
		t.Errorf("row indices mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantX, outX[:n]); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestGustavsonColumnSkipsUnmappedRows(t *testing.T) {
	Ap := []int{0, 1}
	Ai := []int{0}
	Ax := []int{7}
	bi := []int{0, 99}
	bx := []int{1, 1}

	k := plusTimes()
	scratch := NewScratch[int](1)
	aSlotOf := func(row int) (int, bool) {
		if row == 0 {
			return 0, true
		}
		return 0, false
	}
	outI := make([]int, 1)
	outX := make([]int, 1)
	n := GustavsonColumn(k, scratch, Ap, Ai, Ax, aSlotOf, bi, bx, outI, outX)
	if n != 1 || outI[0] != 0 || outX[0] != 7 {
		t.Errorf("got n=%d I=%v X=%v, want n=1 I=[0] X=[7]", n, outI[:n], outX[:n])
	}
}

func TestDotEntry(t *testing.T) {
	k := plusTimes()
	ai := []int{0, 2, 4}
	ax := []int{1, 2, 3}
	bi := []int{2, 3, 4}
	bx := []int{10, 20, 30}

	z, ok := DotEntry(k, ai, ax, bi, bx)
	if !ok {
		t.Fatal("expected ok=true for overlapping indices {2,4}")
	}
	want := 2*10 + 3*30
	if z != want {
		t.Errorf("got %d, want %d", z, want)
	}
}

func TestDotEntryNoOverlap(t *testing.T) {
	k := plusTimes()
	_, ok := DotEntry(k, []int{0, 1}, []int{1, 1}, []int{5, 6}, []int{1, 1})
	if ok {
		t.Error("expected ok=false for disjoint index lists")
	}
}

func TestDotEntryTerminalShortCircuit(t *testing.T) {
	terminalAt := 100
	k := Kernel[int, int, int]{
		Mult:     func(x, y int) int { return x * y },
		MultAdd:  func(z, x, y int) int { return z + x*y },
		Identity: 0,
		Terminal: func(z int) bool { return z >= terminalAt },
	}
	ai := []int{0, 1, 2}
	ax := []int{100, 1, 1}
	bi := []int{0, 1, 2}
	bx := []int{1, 1, 1}

	z, ok := DotEntry(k, ai, ax, bi, bx)
	if !ok || z != 100 {
		t.Errorf("expected terminal short-circuit at first match (z=100), got z=%d ok=%v", z, ok)
	}
}

func TestHeapColumn(t *testing.T) {
	k := plusTimes()
	// Two sources contribute to row 1, one contributes to row 0 and 2.
	Ai := []int{0, 1, 1, 2}
	Ax := []int{5, 6, 7, 8}
	sourceStart := []int{0, 2}
	sourceEnd := []int{2, 4}
	by := []int{2, 3}

	scratch := NewHeapScratch(2)
	outI := make([]int, 3)
	outX := make([]int, 3)
	n := HeapColumn(k, scratch, Ai, Ax, sourceStart, sourceEnd, by, outI, outX)

	wantI := []int{0, 1, 2}
	wantX := []int{5 * 2, 6*2 + 7*3, 8 * 3}
	if diff := cmp.Diff(wantI, outI[:n]); diff != "" {
		t.Errorf("row indices mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantX, outX[:n]); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestEWiseAddColumn(t *testing.T) {
	add := Monoid[int]{Add: func(x, y int) int { return x + y }, Identity: 0}
	ai := []int{0, 2, 4}
	ax := []int{1, 2, 3}
	bi := []int{1, 2, 5}
	bx := []int{10, 20, 30}

	outI := make([]int, len(ai)+len(bi))
	outX := make([]int, len(outI))
	n := EWiseAddColumn(add, ai, ax, bi, bx, outI, outX)

	wantI := []int{0, 1, 2, 4, 5}
	wantX := []int{1, 10, 22, 3, 30}
	if diff := cmp.Diff(wantI, outI[:n]); diff != "" {
		t.Errorf("row indices mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantX, outX[:n]); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestEWiseMultColumn(t *testing.T) {
	mult := func(x, y int) int { return x * y }
	ai := []int{0, 2, 4}
	ax := []int{1, 2, 3}
	bi := []int{1, 2, 4}
	bx := []int{10, 20, 30}

	outI := make([]int, 3)
	outX := make([]int, 3)
	n := EWiseMultColumn[int, int, int](mult, ai, ax, bi, bx, outI, outX)

	wantI := []int{2, 4}
	wantX := []int{40, 90}
	if diff := cmp.Diff(wantI, outI[:n]); diff != "" {
		t.Errorf("row indices mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantX, outX[:n]); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyColumn(t *testing.T) {
	square := func(x int) int { return x * x }
	ai := []int{0, 3, 7}
	ax := []int{2, 3, 4}
	outI := make([]int, 3)
	outX := make([]int, 3)
	n := ApplyColumn(square, ai, ax, outI, outX)
	if n != 3 {
		t.Fatalf("got n=%d, want 3", n)
	}
	if diff := cmp.Diff(ai, outI); diff != "" {
		t.Errorf("structure should be preserved (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{4, 9, 16}, outX); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestAssignColumnReplace(t *testing.T) {
	curI, curX := []int{0, 1, 2}, []int{100, 200, 300}
	srcI, srcX := []int{1, 3}, []int{10, 30}
	mi, mv := []int{1, 2, 3}, []bool{true, false, true}

	outI := make([]int, len(curI)+len(srcI))
	outX := make([]int, len(outI))
	n := AssignColumn(MaskDefault, mi, mv, true, curI, curX, srcI, srcX, outI, outX)

	wantI := []int{1, 3}
	wantX := []int{10, 30}
	if diff := cmp.Diff(wantI, outI[:n]); diff != "" {
		t.Errorf("row indices mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantX, outX[:n]); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestAssignColumnNoReplaceCarriesUnselected(t *testing.T) {
	curI, curX := []int{0, 1, 2}, []int{100, 200, 300}
	srcI, srcX := []int{1}, []int{10}
	mi, mv := []int{1}, []bool{true}

	outI := make([]int, len(curI)+len(srcI))
	outX := make([]int, len(outI))
	n := AssignColumn(MaskDefault, mi, mv, false, curI, curX, srcI, srcX, outI, outX)

	wantI := []int{0, 1, 2}
	wantX := []int{100, 10, 300}
	if diff := cmp.Diff(wantI, outI[:n]); diff != "" {
		t.Errorf("row indices mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantX, outX[:n]); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestAssignColumnComplementMask(t *testing.T) {
	curI, curX := []int{0, 1}, []int{100, 200}
	srcI, srcX := []int{0, 1}, []int{1, 2}
	mi, mv := []int{0, 1}, []bool{true, false}

	outI := make([]int, 4)
	outX := make([]int, 4)
	n := AssignColumn(MaskComplement, mi, mv, false, curI, curX, srcI, srcX, outI, outX)

	// Complement flips: row 0 (true->false, not selected), row 1
	// (false->true, selected) so src(1) overwrites cur(1) and cur(0)
	// carries through unchanged.
	wantI := []int{0, 1}
	wantX := []int{100, 2}
	if diff := cmp.Diff(wantI, outI[:n]); diff != "" {
		t.Errorf("row indices mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantX, outX[:n]); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestColScale(t *testing.T) {
	k := plusTimes()
	ai := []int{0, 2, 5}
	ax := []int{1, 2, 3}
	outI := make([]int, 3)
	outX := make([]int, 3)
	n := ColScale(k, ai, ax, 10, outI, outX)
	if diff := cmp.Diff([]int{10, 20, 30}, outX[:n]); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestRowScale(t *testing.T) {
	k := plusTimes()
	d := []int{1, 2, 3, 4}
	bi := []int{0, 2, 3}
	bx := []int{10, 20, 30}
	outI := make([]int, 3)
	outX := make([]int, 3)
	n := RowScale(k, d, bi, bx, outI, outX)
	if diff := cmp.Diff([]int{10, 60, 120}, outX[:n]); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}
