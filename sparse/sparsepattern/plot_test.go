// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparsepattern

import (
	"bytes"
	"testing"

	"graphblas.dev/v1/grb/sparse"
)

func smallMatrix(t *testing.T) *sparse.Matrix[float64] {
	t.Helper()
	m := sparse.Empty[float64](4, 4, sparse.ByCol)
	for _, tr := range []struct{ i, j int }{{0, 0}, {1, 2}, {3, 3}} {
		if err := m.SetElement(tr.i, tr.j, 1); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.FinishPending(nil); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestPlotWritesNonEmptyPNG(t *testing.T) {
	m := smallMatrix(t)
	var buf bytes.Buffer
	if err := Plot(&buf, m, PNG); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected Plot to write non-empty image bytes")
	}
}

func TestPlotSkipsZombies(t *testing.T) {
	m := smallMatrix(t)
	m.MarkZombie(m.P[0])
	pts, err := nonzeros(m)
	if err != nil {
		t.Fatalf("nonzeros: %v", err)
	}
	if len(pts) != 2 {
		t.Errorf("nonzeros returned %d points, want 2 (the zombie at (0,0) skipped)", len(pts))
	}
	var buf bytes.Buffer
	if err := Plot(&buf, m, SVG); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected Plot to write non-empty image bytes even with a zombie present")
	}
}

func TestPlotHandlesFullFormat(t *testing.T) {
	m := smallMatrix(t)
	if err := m.ToFull(nil); err != nil {
		t.Fatalf("ToFull: %v", err)
	}
	var buf bytes.Buffer
	if err := Plot(&buf, m, PNG); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected Plot to write non-empty image bytes for a Full matrix")
	}
}
