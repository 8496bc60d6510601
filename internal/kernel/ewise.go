// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "math"

// EWiseAddColumn computes one column of C = A (+) B under monoid add: a
// set union of A(:,j) and B(:,j), with overlapping rows combined by
// add.Add and non-overlapping rows carried through unchanged. ai/bi must
// be ascending; output is written ascending into outI/outX, which the
// caller sizes to len(ai)+len(bi).
func EWiseAddColumn[T any](add Monoid[T], ai []int, ax []T, bi []int, bx []T, outI []int, outX []T) int {
	pa, pb, n := 0, 0, 0
	for pa < len(ai) && pb < len(bi) {
		switch {
		case ai[pa] < bi[pb]:
			outI[n], outX[n] = ai[pa], ax[pa]
			pa++
		case ai[pa] > bi[pb]:
			outI[n], outX[n] = bi[pb], bx[pb]
			pb++
		default:
			outI[n] = ai[pa]
			outX[n] = add.Add(ax[pa], bx[pb])
			pa++
			pb++
		}
		n++
	}
	for pa < len(ai) {
		outI[n], outX[n] = ai[pa], ax[pa]
		pa++
		n++
	}
	for pb < len(bi) {
		outI[n], outX[n] = bi[pb], bx[pb]
		pb++
		n++
	}
	return n
}

// EWiseMultColumn computes one column of C = A (.*) B under binary
// operator mult: a set intersection of A(:,j) and B(:,j), rows present
// in only one operand contribute nothing to the result.
func EWiseMultColumn[A, B, C any](mult BinaryOp[A, B, C], ai []int, ax []A, bi []int, bx []B, outI []int, outX []C) int {
	pa, pb, n := 0, 0, 0
	for pa < len(ai) && pb < len(bi) {
		switch {
		case ai[pa] < bi[pb]:
			pa++
		case ai[pa] > bi[pb]:
			pb++
		default:
			outI[n] = ai[pa]
			outX[n] = mult(ax[pa], bx[pb])
			pa++
			pb++
			n++
		}
	}
	return n
}

// ApplyColumn computes one column of C = op(A(:,j)), applying a unary
// function to every value while leaving the structure (row indices)
// unchanged.
func ApplyColumn[A, C any](op func(A) C, ai []int, ax []A, outI []int, outX []C) int {
	for p, row := range ai {
		outI[p] = row
		outX[p] = op(ax[p])
	}
	return len(ai)
}

// MaskKind selects how a mask column is interpreted: by its values
// (Default), by its structure alone (Structure; AssignColumn's caller
// passes mv == nil for it), or either of those negated (Complement,
// StructureComplement), matching the Descriptor.Mask options of §6.4.
type MaskKind int

const (
	MaskDefault MaskKind = iota
	MaskStructure
	MaskComplement
	MaskStructureComplement
)

// AssignColumn computes one column of C(:,j)<M(:,j)> = src(:,j): rows
// selected by the mask according to kind are taken from src; rows not
// selected keep their existing value from cur (or are dropped if OUTP is
// REPLACE and cur is not supplied). mi/mv is the mask's structure for
// this column (mv nil means structural-only, every present row is
// selected); replace, when true, means unselected rows of cur are
// dropped rather than carried through (Descriptor.Outp == REPLACE).
// mi, curI and srcI must each be ascending; AssignColumn merges the
// three in lockstep rather than bucketing through maps, matching the
// merge shape of EWiseAddColumn/EWiseMultColumn above.
func AssignColumn[T any](
	kind MaskKind,
	mi []int, mv []bool,
	replace bool,
	curI []int, curX []T,
	srcI []int, srcX []T,
	outI []int, outX []T,
) int {
	n := 0
	pm, pc, ps := 0, 0, 0
	for pm < len(mi) || pc < len(curI) || ps < len(srcI) {
		row := math.MaxInt
		if pm < len(mi) && mi[pm] < row {
			row = mi[pm]
		}
		if pc < len(curI) && curI[pc] < row {
			row = curI[pc]
		}
		if ps < len(srcI) && srcI[ps] < row {
			row = srcI[ps]
		}

		// A row absent from the mask is unselected, or selected under a
		// complemented mask.
		selected := kind == MaskComplement || kind == MaskStructureComplement
		if pm < len(mi) && mi[pm] == row {
			v := true
			if mv != nil {
				v = mv[pm]
			}
			switch kind {
			case MaskComplement, MaskStructureComplement:
				v = !v
			}
			selected = v
			pm++
		}

		curPresent := pc < len(curI) && curI[pc] == row
		srcPresent := ps < len(srcI) && srcI[ps] == row

		switch {
		case selected && srcPresent:
			outI[n], outX[n] = row, srcX[ps]
			n++
		case !selected && !replace && curPresent:
			outI[n], outX[n] = row, curX[pc]
			n++
		}

		if curPresent {
			pc++
		}
		if srcPresent {
			ps++
		}
	}
	return n
}
