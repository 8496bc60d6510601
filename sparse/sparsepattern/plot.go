// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sparsepattern renders the non-zero pattern of a sparse matrix
// as a scatter plot ("spy plot"), a debug aid for inspecting which
// format conversions and conform decisions a matrix is going through.
// It is grounded on the teacher's own use of gonum.org/v1/plot for
// visualizing numerical results (linsolve/pde_example_test.go's
// plot.New/plotter/p.Save sequence), adapted here from writing a named
// PNG file to writing a chosen image format to an io.Writer.
package sparsepattern

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"graphblas.dev/v1/grb/sparse"
)

// Format names the image encoding Plot produces, matching the
// extensions gonum.org/v1/plot's vg drivers accept.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
	PDF Format = "pdf"
)

// Plot renders m's non-zero pattern: one point per live (non-zombie)
// entry, row on the Y axis (inverted, so row 0 is at the top as
// convention for matrix spy plots), column on the X axis. Pending
// tuples not yet merged are not shown; call FinishPending first if they
// should be.
func Plot[T any](w io.Writer, m *sparse.Matrix[T], format Format) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = fmt.Sprintf("%dx%d %v, nnz=%d", m.NRows, m.NCols, m.Format, m.NNZ())
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.X.Min, p.X.Max = 0, float64(m.NCols)
	p.Y.Min, p.Y.Max = 0, float64(m.NRows)

	pts, err := nonzeros(m)
	if err != nil {
		return err
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Shape = draw.BoxGlyph{}
	sc.GlyphStyle.Radius = vg.Points(1)
	p.Add(sc)

	width := 12 * vg.Centimeter
	height := width * vg.Length(m.NRows) / vg.Length(maxInt(m.NCols, 1))
	canvas, err := draw.NewFormattedCanvas(width, height, string(format))
	if err != nil {
		return err
	}
	p.Draw(draw.New(canvas))
	_, err = canvas.WriteTo(w)
	return err
}

// nonzeros walks every vector of m and collects one point per stored
// entry that isn't a zombie, in (column, row) form for plotting with
// row increasing downward.
func nonzeros[T any](m *sparse.Matrix[T]) (plotter.XYs, error) {
	var pts plotter.XYs
	switch m.Format {
	case sparse.Full:
		for j := 0; j < m.NCols; j++ {
			for i := 0; i < m.NRows; i++ {
				pts = append(pts, plotPoint(m, i, j))
			}
		}
	case sparse.Bitmap:
		vlen, vdim := vlenVdim(m)
		for vj := 0; vj < vdim; vj++ {
			base := vj * vlen
			for vi := 0; vi < vlen; vi++ {
				if m.B[base+vi] != 0 {
					i, j := logical(m, vi, vj)
					pts = append(pts, plotPoint(m, i, j))
				}
			}
		}
	case sparse.Sparse:
		for vj := 0; vj < m.VDim(); vj++ {
			for p := m.P[vj]; p < m.P[vj+1]; p++ {
				if isZombie(m.I[p]) {
					continue
				}
				i, j := logical(m, m.I[p], vj)
				pts = append(pts, plotPoint(m, i, j))
			}
		}
	case sparse.Hyper:
		for k := 0; k < m.NVec(); k++ {
			vj := m.H[k]
			for p := m.P[k]; p < m.P[k+1]; p++ {
				if isZombie(m.I[p]) {
					continue
				}
				i, j := logical(m, m.I[p], vj)
				pts = append(pts, plotPoint(m, i, j))
			}
		}
	}
	return pts, nil
}

// isZombie reports whether a stored row index has been tombstoned,
// mirroring sparse's own (unexported) zombie encoding: a zombie is
// stored as -(i+1).
func isZombie(stored int) bool { return stored < 0 }

func plotPoint[T any](m *sparse.Matrix[T], i, j int) plotter.XY {
	return plotter.XY{X: float64(j) + 0.5, Y: float64(m.NRows-1-i) + 0.5}
}

func logical[T any](m *sparse.Matrix[T], vi, vj int) (i, j int) {
	if m.Orient == sparse.ByRow {
		return vj, vi
	}
	return vi, vj
}

func vlenVdim[T any](m *sparse.Matrix[T]) (vlen, vdim int) {
	return m.VLen(), m.VDim()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
