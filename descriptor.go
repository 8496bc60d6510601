// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grb

// InpKind selects how an input operand is read by an operator: as-is, or
// logically transposed first.
type InpKind int

const (
	InpDefault InpKind = iota
	InpTranspose
)

//go:generate stringer -type=InpKind

// MaskKind selects how a Descriptor's mask operand is interpreted,
// mirroring grb/internal/kernel.MaskKind one-for-one (the latter stays
// internal; this is the value callers actually set).
type MaskKind int

const (
	MaskDefault MaskKind = iota
	MaskStructure
	MaskComplement
	MaskStructureComplement
)

//go:generate stringer -type=MaskKind

// OutpKind selects whether an operator's output starts from the prior
// contents of C (Default, i.e. merge) or from empty (Replace).
type OutpKind int

const (
	OutpDefault OutpKind = iota
	OutpReplace
)

//go:generate stringer -type=OutpKind

// AxBMethod names the algorithm family MxM should use. Default selects
// Gustavson; MxM applies no size or density heuristic of its own.
type AxBMethod int

const (
	AxBDefault AxBMethod = iota
	AxBGustavson
	AxBDot
	AxBHeap
)

//go:generate stringer -type=AxBMethod

// Descriptor configures one call to an operator: which inputs are
// transposed, how the mask is interpreted, whether output replaces or
// merges, and (for MxM) which algorithm family to force. The zero value
// is the all-Default descriptor: no transpose, no mask, merge into C,
// and let dispatch pick the algorithm.
type Descriptor struct {
	Inp0, Inp1 InpKind
	Mask       MaskKind
	Outp       OutpKind
	AxBMethod  AxBMethod
}
