// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

// Format identifies which of the four storage representations a Matrix
// currently holds. A Matrix is in exactly one Format at any time.
type Format int

const (
	// Hyper holds an ordered sequence of nvec <= vdim non-empty vectors,
	// with an explicit H array mapping vector slot to vector index.
	Hyper Format = iota
	// Sparse holds all vdim vectors implicitly (no H array).
	Sparse
	// Bitmap holds a dense vlen*vdim occupancy array B alongside values.
	Bitmap
	// Full holds every cell, with no occupancy or index arrays at all.
	Full
)

//go:generate stringer -type=Format

// Control is a bitmask of the formats a Matrix's sparsity_control policy
// permits. Any non-zero combination is legal; Auto permits all four.
type Control uint8

const (
	AllowHyper  Control = 1 << iota // HYPER
	AllowSparse                     // SPARSE
	AllowBitmap                     // BITMAP
	AllowFull                       // FULL

	// Auto permits every format; Conform is then free to pick whichever
	// minimizes cost.
	Auto = AllowHyper | AllowSparse | AllowBitmap | AllowFull
)

// Orientation says whether a Matrix's vectors are its columns (ByCol,
// the GraphBLAS default) or its rows (ByRow). Every algorithm in this
// package operates on "vectors" and is agnostic to which; vlen/vdim are
// derived from Orientation once, at the boundary.
type Orientation int

const (
	ByCol Orientation = iota
	ByRow
)

//go:generate stringer -type=Orientation

// ParseFormat recognizes the two format strings named by the host
// binding layer. Any other string is a BadInput error.
func ParseFormat(s string) (Orientation, error) {
	switch s {
	case "by row":
		return ByRow, nil
	case "by col":
		return ByCol, nil
	default:
		return 0, BadInputError("unknown format %q", s)
	}
}

// vdimVlen returns (vector dimension, vector length) for a matrix of the
// given orientation and shape, per §3: column-oriented matrices have
// vdim=ncols, vlen=nrows; row-oriented matrices have it reversed.
func vdimVlen(orient Orientation, nrows, ncols int) (vdim, vlen int) {
	if orient == ByRow {
		return nrows, ncols
	}
	return ncols, nrows
}
