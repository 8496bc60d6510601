// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type triple struct {
	i, j int
	v    float64
}

func buildFromTriples(t *testing.T, nrows, ncols int, orient Orientation, triples []triple) *Matrix[float64] {
	t.Helper()
	m := Empty[float64](nrows, ncols, orient)
	for _, tr := range triples {
		if err := m.SetElement(tr.i, tr.j, tr.v); err != nil {
			t.Fatalf("SetElement(%d,%d,%v): %v", tr.i, tr.j, tr.v, err)
		}
	}
	if err := m.FinishPending(nil); err != nil {
		t.Fatalf("FinishPending: %v", err)
	}
	return m
}

func allEntries(t *testing.T, m *Matrix[float64]) []triple {
	t.Helper()
	var got []triple
	for i := 0; i < m.NRows; i++ {
		for j := 0; j < m.NCols; j++ {
			v, ok, err := m.GetElement(i, j, nil)
			if err != nil {
				t.Fatalf("GetElement(%d,%d): %v", i, j, err)
			}
			if ok {
				got = append(got, triple{i, j, v})
			}
		}
	}
	sort.Slice(got, func(a, b int) bool {
		if got[a].i != got[b].i {
			return got[a].i < got[b].i
		}
		return got[a].j < got[b].j
	})
	return got
}

func TestSetElementGetElementRoundTrip(t *testing.T) {
	for _, orient := range []Orientation{ByCol, ByRow} {
		t.Run(orient.String(), func(t *testing.T) {
			want := []triple{{0, 0, 1}, {1, 2, 5}, {2, 1, 7}, {2, 2, 9}}
			m := buildFromTriples(t, 3, 3, orient, want)
			got := allEntries(t, m)
			sort.Slice(want, func(a, b int) bool {
				if want[a].i != want[b].i {
					return want[a].i < want[b].i
				}
				return want[a].j < want[b].j
			})
			if diff := cmp.Diff(want, got, cmp.AllowUnexported(triple{})); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetElementOutOfBounds(t *testing.T) {
	m := Empty[float64](2, 2, ByCol)
	if err := m.SetElement(2, 0, 1); err == nil {
		t.Error("expected an error for out-of-range row")
	}
	if err := m.SetElement(0, -1, 1); err == nil {
		t.Error("expected an error for negative column")
	}
}

func TestGetElementMissing(t *testing.T) {
	m := buildFromTriples(t, 3, 3, ByCol, []triple{{0, 0, 1}})
	_, ok, err := m.GetElement(1, 1, nil)
	if err != nil {
		t.Fatalf("GetElement: %v", err)
	}
	if ok {
		t.Error("expected ok=false for an absent cell")
	}
}

func TestSetElementDuplicateLastWriteWins(t *testing.T) {
	m := Empty[float64](2, 2, ByCol)
	if err := m.SetElement(0, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := m.SetElement(0, 0, 2); err != nil {
		t.Fatal(err)
	}
	if err := m.FinishPending(nil); err != nil {
		t.Fatal(err)
	}
	v, ok, _ := m.GetElement(0, 0, nil)
	if !ok || v != 2 {
		t.Errorf("got v=%v ok=%v, want v=2 ok=true (last write wins)", v, ok)
	}
}

func TestMarkZombieHidesEntryButPreservesLength(t *testing.T) {
	m := buildFromTriples(t, 3, 3, ByCol, []triple{{0, 0, 1}, {1, 0, 2}, {2, 0, 3}})
	before := len(m.I)
	m.MarkZombie(m.P[0])
	if m.NZombies() != 1 {
		t.Errorf("NZombies() = %d, want 1", m.NZombies())
	}
	if len(m.I) != before {
		t.Errorf("MarkZombie should not resize I; len=%d, want %d", len(m.I), before)
	}
	if m.NNZ() != 2 {
		t.Errorf("NNZ() = %d, want 2 (one zombie hidden)", m.NNZ())
	}
	if err := m.FinishPending(nil); err != nil {
		t.Fatal(err)
	}
	if m.NZombies() != 0 || len(m.I) != 2 {
		t.Errorf("after FinishPending: NZombies=%d len(I)=%d, want 0 and 2", m.NZombies(), len(m.I))
	}
}

func TestFormatRoundTripsPreserveContent(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	nrows, ncols := 12, 9
	var want []triple
	seen := map[[2]int]bool{}
	for len(want) < 30 {
		i, j := rng.IntN(nrows), rng.IntN(ncols)
		if seen[[2]int{i, j}] {
			continue
		}
		seen[[2]int{i, j}] = true
		want = append(want, triple{i, j, float64(i*31 + j)})
	}
	sort.Slice(want, func(a, b int) bool {
		if want[a].i != want[b].i {
			return want[a].i < want[b].i
		}
		return want[a].j < want[b].j
	})

	for _, target := range []struct {
		name    string
		convert func(m *Matrix[float64]) error
	}{
		{"ToSparse", func(m *Matrix[float64]) error { return m.ToSparse(nil) }},
		{"ToHyper", func(m *Matrix[float64]) error { return m.ToHyper(nil) }},
		{"ToBitmap", func(m *Matrix[float64]) error { return m.ToBitmap(nil) }},
	} {
		t.Run(target.name, func(t *testing.T) {
			m := buildFromTriples(t, nrows, ncols, ByCol, want)
			if err := target.convert(m); err != nil {
				t.Fatalf("convert: %v", err)
			}
			got := allEntries(t, m)
			if diff := cmp.Diff(want, got, cmp.AllowUnexported(triple{})); diff != "" {
				t.Errorf("content changed across conversion (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToFullOnDenseMatrix(t *testing.T) {
	nrows, ncols := 4, 4
	var want []triple
	for i := 0; i < nrows; i++ {
		for j := 0; j < ncols; j++ {
			want = append(want, triple{i, j, float64(i*10 + j)})
		}
	}
	m := buildFromTriples(t, nrows, ncols, ByCol, want)
	if err := m.ToFull(nil); err != nil {
		t.Fatalf("ToFull: %v", err)
	}
	if m.Format != Full {
		t.Fatalf("Format = %v, want Full", m.Format)
	}
	got := allEntries(t, m)
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(triple{})); diff != "" {
		t.Errorf("content changed across ToFull (-want +got):\n%s", diff)
	}
}

func TestClearResetsButKeepsPolicy(t *testing.T) {
	m := buildFromTriples(t, 3, 3, ByCol, []triple{{0, 0, 1}})
	m.Control = AllowSparse
	m.BitmapSwitch = 0.5
	m.Clear()
	if m.NNZ() != 0 {
		t.Errorf("NNZ() = %d after Clear, want 0", m.NNZ())
	}
	if m.Control != AllowSparse {
		t.Errorf("Control = %v after Clear, want AllowSparse to survive", m.Control)
	}
	if m.BitmapSwitch != 0.5 {
		t.Errorf("BitmapSwitch = %v after Clear, want 0.5 to survive", m.BitmapSwitch)
	}
}

func TestFreeDropsArrays(t *testing.T) {
	m := buildFromTriples(t, 3, 3, ByCol, []triple{{0, 0, 1}})
	m.Free()
	if m.I != nil || m.X != nil || m.P != nil {
		t.Error("Free should drop all backing arrays")
	}
}

func TestVDimVLenByOrientation(t *testing.T) {
	col := Empty[float64](3, 5, ByCol)
	if col.VDim() != 5 || col.VLen() != 3 {
		t.Errorf("ByCol: VDim=%d VLen=%d, want 5,3", col.VDim(), col.VLen())
	}
	row := Empty[float64](3, 5, ByRow)
	if row.VDim() != 3 || row.VLen() != 5 {
		t.Errorf("ByRow: VDim=%d VLen=%d, want 3,5", row.VDim(), row.VLen())
	}
}
