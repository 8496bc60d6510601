// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the §4.3 conform policy engine. Its structure
// mirrors GB_conform.c: the same bitmask-sum switch over Control, and
// the same three shared helpers (hyperOrBitmap, sparseOrBitmap,
// hyperSparseOrBitmap) that GB_conform.c factors out as
// GB_hyper_or_bitmap, GB_sparse_or_bitmap and GB_hyper_sparse_or_bitmap,
// since several table rows need identical "is it full, sparse/hyper, or
// bitmap with few entries" reasoning.
package sparse

// Conform brings m into a format permitted by m.Control while preserving
// its live contents (§4.3). If m.Control == 0 (no format allowed), the
// source's behavior is unspecified; this implementation returns
// BadInput (see DESIGN.md Open Questions).
func (m *Matrix[T]) Conform(dup Dup[T]) error {
	if m.Control == 0 {
		return BadInputError("conform: sparsity_control permits no format")
	}
	// Finish pending work first so the density tests below see the
	// matrix's real entry count.
	if err := m.FinishPending(dup); err != nil {
		return err
	}

	isHyper := m.Format == Hyper
	isSparse := m.Format == Sparse
	isBitmap := m.Format == Bitmap
	isFull := m.Format == Full
	fullOrDenseClean := isFull || (m.isDense() && !m.Jumbled() && m.NZombies() == 0 && m.NPending() == 0)

	switch m.Control {

	case AllowHyper:
		return m.ToHyper(dup)

	case AllowSparse:
		return m.ToSparse(dup)

	case AllowHyper | AllowSparse:
		if isFull || isBitmap {
			if err := m.ToSparse(dup); err != nil {
				return err
			}
		}
		return m.ConformHyper(dup)

	case AllowBitmap:
		return m.ToBitmap(dup)

	case AllowHyper | AllowBitmap:
		return m.hyperOrBitmap(isHyper, isSparse, isBitmap, isFull, dup)

	case AllowSparse | AllowBitmap:
		return m.sparseOrBitmap(isHyper, isSparse, isBitmap, isFull, dup)

	case AllowHyper | AllowSparse | AllowBitmap:
		return m.hyperSparseOrBitmap(isHyper, isSparse, isBitmap, isFull, dup)

	case AllowFull, AllowFull | AllowBitmap:
		if fullOrDenseClean {
			return m.ToFull(dup)
		}
		return m.ToBitmap(dup)

	case AllowHyper | AllowFull:
		if fullOrDenseClean {
			return m.ToFull(dup)
		}
		return m.ToHyper(dup)

	case AllowSparse | AllowFull:
		if fullOrDenseClean {
			return m.ToFull(dup)
		}
		return m.ToSparse(dup)

	case AllowHyper | AllowSparse | AllowFull:
		if fullOrDenseClean {
			return m.ToFull(dup)
		}
		if isBitmap {
			if err := m.ToSparse(dup); err != nil {
				return err
			}
		}
		return m.ConformHyper(dup)

	case AllowHyper | AllowBitmap | AllowFull:
		if fullOrDenseClean {
			return m.ToFull(dup)
		}
		return m.hyperOrBitmap(isHyper, isSparse, isBitmap, isFull, dup)

	case AllowSparse | AllowBitmap | AllowFull:
		if fullOrDenseClean {
			return m.ToFull(dup)
		}
		return m.sparseOrBitmap(isHyper, isSparse, isBitmap, isFull, dup)

	case Auto:
		fallthrough
	default:
		if fullOrDenseClean {
			return m.ToFull(dup)
		}
		return m.hyperSparseOrBitmap(isHyper, isSparse, isBitmap, isFull, dup)
	}
}

// isDense reports nnz == vlen*vdim, i.e. every cell is occupied,
// regardless of current format.
func (m *Matrix[T]) isDense() bool {
	return m.NNZ() == m.vlen*m.vdim
}

// hyperOrBitmap ensures m is Hyper or Bitmap: bitmap if full, or if
// sparse/hyper with enough entries to cross bitmap_switch; hyper
// otherwise (converting down from bitmap if it has grown sparse).
func (m *Matrix[T]) hyperOrBitmap(isHyper, isSparse, isBitmap, isFull bool, dup Dup[T]) error {
	if isFull || ((isHyper || isSparse) && sparseToBitmapTest(m.BitmapSwitch, m.NNZ(), m.vlen, m.vdim)) {
		return m.ToBitmap(dup)
	}
	if isSparse || (isBitmap && bitmapToSparseTest(m.BitmapSwitch, m.NNZ(), m.vlen, m.vdim)) {
		return m.ToHyper(dup)
	}
	return nil
}

// sparseOrBitmap ensures m is Sparse or Bitmap: the mirror image of
// hyperOrBitmap with Sparse as the sparse-side target.
func (m *Matrix[T]) sparseOrBitmap(isHyper, isSparse, isBitmap, isFull bool, dup Dup[T]) error {
	if isFull || ((isHyper || isSparse) && sparseToBitmapTest(m.BitmapSwitch, m.NNZ(), m.vlen, m.vdim)) {
		return m.ToBitmap(dup)
	}
	if isHyper || (isBitmap && bitmapToSparseTest(m.BitmapSwitch, m.NNZ(), m.vlen, m.vdim)) {
		return m.ToSparse(dup)
	}
	return nil
}

// hyperSparseOrBitmap ensures m is Hyper, Sparse, or Bitmap, conforming
// between hyper and sparse (via ConformHyper) whenever the result isn't
// Bitmap.
func (m *Matrix[T]) hyperSparseOrBitmap(isHyper, isSparse, isBitmap, isFull bool, dup Dup[T]) error {
	if isFull || ((isHyper || isSparse) && sparseToBitmapTest(m.BitmapSwitch, m.NNZ(), m.vlen, m.vdim)) {
		return m.ToBitmap(dup)
	}
	if isBitmap {
		if bitmapToSparseTest(m.BitmapSwitch, m.NNZ(), m.vlen, m.vdim) {
			if err := m.BitmapToSparse(); err != nil {
				return err
			}
			return m.ConformHyper(dup)
		}
		return nil
	}
	// isHyper || isSparse
	return m.ConformHyper(dup)
}
