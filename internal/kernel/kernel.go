// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel is the generated kernel family (§4.1): per (scalar
// type, operator) specialized inner loops for the saxpy (Gustavson),
// dot, heap, colscale and rowscale algorithm families, plus element-wise
// add/multiply. Where the source instantiates these via textual
// C-macro expansion over a header per (type, operator) pair, this
// package instantiates them via Go generics: Kernel[A, B, C] captures
// the six contracts of §4.1 (GET is just typed slice indexing in Go, so
// it needs no field of its own) and every algorithm below is a generic
// function over it, monomorphized by the compiler at each call site —
// the replacement the Design Notes prescribe for macro generation.
//
// Every kernel function here is pure and allocation-free: it writes only
// to the output slices and scratch the caller supplies, matching §4.1's
// "kernels are pure data over the format; they do not allocate". The
// scratch constructors and Reserve methods are the only allocating code.
package kernel

// Kernel describes one semiring or binary operator instantiated for
// operand types A, B producing C.
type Kernel[A, B, C any] struct {
	// Mult computes z = op(x, y) with no intermediate promotion.
	Mult func(x A, y B) C

	// MultAdd computes z = monoidAdd(z, op(x, y)).
	MultAdd func(z C, x A, y B) C

	// Identity is the monoid's identity element.
	Identity C

	// Terminal reports whether z has reached a value beyond which no
	// further contribution can change it, authorizing early exit from a
	// reduction. Nil means the monoid has no terminal value.
	Terminal func(z C) bool
}

// isTerminal reports whether k has a terminal value and z has reached
// it.
func (k Kernel[A, B, C]) isTerminal(z C) bool {
	return k.Terminal != nil && k.Terminal(z)
}

// Monoid describes a single commutative, associative operator with
// identity, used directly by element-wise add (no multiply stage).
type Monoid[T any] struct {
	Add      func(x, y T) T
	Identity T
	Terminal func(z T) bool
}

func (m Monoid[T]) isTerminal(z T) bool {
	return m.Terminal != nil && m.Terminal(z)
}

// BinaryOp describes a single binary operator with no accumulation,
// used by element-wise multiply.
type BinaryOp[A, B, C any] func(x A, y B) C
