// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grb

import "graphblas.dev/v1/grb/sparse"

// Orientation says whether a Matrix's vectors are its columns (ByCol)
// or rows (ByRow), re-exported from package sparse so callers never
// need to import it directly.
type Orientation = sparse.Orientation

const (
	ByCol = sparse.ByCol
	ByRow = sparse.ByRow
)

// Control is a bitmask of the storage formats a Matrix's sparsity
// control policy permits.
type Control = sparse.Control

const (
	AllowHyper  = sparse.AllowHyper
	AllowSparse = sparse.AllowSparse
	AllowBitmap = sparse.AllowBitmap
	AllowFull   = sparse.AllowFull
	Auto        = sparse.Auto
)

// ParseFormat recognizes the two orientation strings named by the host
// binding layer: "by row" and "by col". Any other string is a BadInput
// error.
func ParseFormat(s string) (Orientation, error) {
	return sparse.ParseFormat(s)
}
