// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grb

import "testing"

func TestBurbleToggle(t *testing.T) {
	defer SetBurble(false)
	if Burble() {
		t.Fatal("burble should default to off")
	}
	SetBurble(true)
	if !Burble() {
		t.Error("Burble() should report true after SetBurble(true)")
	}
	SetBurble(false)
	if Burble() {
		t.Error("Burble() should report false after SetBurble(false)")
	}
}

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Orientation
		ok   bool
	}{
		{"by row", ByRow, true},
		{"by col", ByCol, true},
		{"nonsense", 0, false},
	} {
		got, err := ParseFormat(tc.in)
		if tc.ok && err != nil {
			t.Errorf("ParseFormat(%q): unexpected error %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("ParseFormat(%q): expected an error", tc.in)
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestExitCode(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want int
	}{
		{nil, 0},
		{&Error{Kind: BadInput}, 1},
		{&Error{Kind: OutOfMemory}, 2},
		{&Error{Kind: InvariantViolation}, 3},
	} {
		if got := ExitCode(tc.err); got != tc.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestDescriptorStringers(t *testing.T) {
	if got := InpTranspose.String(); got != "Transpose" {
		t.Errorf("InpTranspose.String() = %q, want %q", got, "Transpose")
	}
	if got := MaskStructureComplement.String(); got != "StructureComplement" {
		t.Errorf("MaskStructureComplement.String() = %q, want %q", got, "StructureComplement")
	}
	if got := OutpReplace.String(); got != "Replace" {
		t.Errorf("OutpReplace.String() = %q, want %q", got, "Replace")
	}
	if got := AxBHeap.String(); got != "Heap" {
		t.Errorf("AxBHeap.String() = %q, want %q", got, "Heap")
	}
	if got := AxBMethod(99).String(); got != "AxBMethod(99)" {
		t.Errorf("out-of-range String() = %q, want fallback form", got)
	}
}

func TestMatrixLifecycle(t *testing.T) {
	m := New[float64](3, 3, ByCol)
	if m.NRows() != 3 || m.NCols() != 3 {
		t.Fatalf("shape = %dx%d, want 3x3", m.NRows(), m.NCols())
	}
	if err := m.SetElement(0, 0, 1.5); err != nil {
		t.Fatal(err)
	}
	if err := m.Conform(); err != nil {
		t.Fatal(err)
	}
	v, ok, err := m.GetElement(0, 0)
	if err != nil || !ok || v != 1.5 {
		t.Fatalf("GetElement(0,0) = %v,%v,%v, want 1.5,true,nil", v, ok, err)
	}
	m.Clear()
	if m.NNZ() != 0 {
		t.Errorf("NNZ() = %d after Clear, want 0", m.NNZ())
	}
	m.Free()
}

func TestContextNilIsSequential(t *testing.T) {
	var ctx *Context
	if ctx.NWorkers() != 1 {
		t.Errorf("nil Context should report 1 worker, got %d", ctx.NWorkers())
	}
	n := 0
	err := ctx.Go(5, func(i int) error {
		n++
		return nil
	})
	if err != nil || n != 5 {
		t.Errorf("nil Context Go: n=%d err=%v, want n=5 err=nil", n, err)
	}
}
