// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package semiring provides the built-in monoids, binary operators, and
// semirings used to instantiate package grb's generated kernels. Each
// constructor here supplies the six contracts of §4.1
// (Mult/MultAdd/Identity/Terminal) the way a single entry of the
// source's Generated/ directory (e.g. GB_AxB__max_rminus_int64.c,
// GB_binop__isle_uint8.c) supplies them for one (type, operator) pair —
// except here one generic function serves every scalar type the
// constraint allows, rather than one file per type.
package semiring

import (
	"golang.org/x/exp/constraints"

	"graphblas.dev/v1/grb/internal/kernel"
)

// Monoid is the user-facing description of an associative, commutative
// operator with identity, usable as the additive side of a Semiring or
// directly as the combining operator of EWiseAdd.
type Monoid[T any] struct {
	Add      func(x, y T) T
	Identity T
	Terminal func(z T) bool
}

func (m Monoid[T]) toKernel() kernel.Monoid[T] {
	return kernel.Monoid[T]{Add: m.Add, Identity: m.Identity, Terminal: m.Terminal}
}

// ToKernel exposes the internal kernel representation of m to package
// grb's dispatch layer without making the kernel package itself public.
func (m Monoid[T]) ToKernel() kernel.Monoid[T] { return m.toKernel() }

// BinaryOp is a binary operator with no accumulation, usable directly by
// EWiseMult, or as the multiplicative side of a Semiring. (Apply takes a
// unary function, not a BinaryOp.)
type BinaryOp[A, B, C any] func(x A, y B) C

// Semiring pairs an additive Monoid with a multiplicative BinaryOp to
// drive MxM.
type Semiring[A, B, C any] struct {
	Add  Monoid[C]
	Mult BinaryOp[A, B, C]
}

// ToKernel builds the internal kernel.Kernel this semiring instantiates:
// Mult is the multiplicative operator, MultAdd folds a new product into
// an existing accumulator via the additive monoid, Identity/Terminal
// come straight from the additive monoid.
func (s Semiring[A, B, C]) ToKernel() kernel.Kernel[A, B, C] {
	return kernel.Kernel[A, B, C]{
		Mult: s.Mult,
		MultAdd: func(z C, x A, y B) C {
			return s.Add.Add(z, s.Mult(x, y))
		},
		Identity: s.Add.Identity,
		Terminal: s.Add.Terminal,
	}
}

// Number is the constraint satisfied by every scalar type the built-in
// arithmetic semirings below accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// PlusMonoid is the additive monoid (+, 0) over any Number type.
func PlusMonoid[T Number]() Monoid[T] {
	return Monoid[T]{Add: func(x, y T) T { return x + y }, Identity: 0}
}

// TimesOp is the multiplicative binary operator (*) over any Number
// type.
func TimesOp[T Number]() BinaryOp[T, T, T] {
	return func(x, y T) T { return x * y }
}

// PlusTimes is the classical arithmetic semiring (+, *), the default for
// numeric matrix multiply and the one exercised by scenario S1.
func PlusTimes[T Number]() Semiring[T, T, T] {
	return Semiring[T, T, T]{Add: PlusMonoid[T](), Mult: TimesOp[T]()}
}

// MaxMonoid is the additive monoid (max, identity) over an ordered type,
// parameterized by the type's minimum representable value (its identity)
// and, optionally, its maximum (its terminal value: once max reaches it,
// no further contribution can raise it further).
func MaxMonoid[T constraints.Ordered](minVal T, maxVal *T) Monoid[T] {
	m := Monoid[T]{
		Add:      func(x, y T) T { return maxOf(x, y) },
		Identity: minVal,
	}
	if maxVal != nil {
		top := *maxVal
		m.Terminal = func(z T) bool { return z == top }
	}
	return m
}

func maxOf[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

func minOf[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// MinMonoid is the additive monoid (min, identity) over an ordered type.
func MinMonoid[T constraints.Ordered](maxVal T, minVal *T) Monoid[T] {
	m := Monoid[T]{
		Add:      func(x, y T) T { return minOf(x, y) },
		Identity: maxVal,
	}
	if minVal != nil {
		bottom := *minVal
		m.Terminal = func(z T) bool { return z == bottom }
	}
	return m
}

// RMinusOp is the "reverse minus" binary operator z = y - x, the
// multiplicative operator grounded on the source's
// GB_AxB__max_rminus_int64.c.
func RMinusOp[T Number]() BinaryOp[T, T, T] {
	return func(x, y T) T { return y - x }
}

// MaxRMinus is the (max, rminus) semiring grounded directly on
// Generated/GB_AxB__max_rminus_int64.c: z = y - x combined by max, with
// minVal as the additive identity and maxVal as the terminal value (for
// int64, the source's choice is math.MinInt64 and math.MaxInt64;
// scenario S2 exercises the terminal short-circuit this produces).
func MaxRMinus[T constraints.Signed](minVal, maxVal T) Semiring[T, T, T] {
	top := maxVal
	return Semiring[T, T, T]{
		Add:  MaxMonoid[T](minVal, &top),
		Mult: RMinusOp[T](),
	}
}

// MinPlus is the tropical ("shortest path") semiring (min, +).
func MinPlus[T Number](maxVal T) Semiring[T, T, T] {
	return Semiring[T, T, T]{
		Add:  MinMonoid[T](maxVal, nil),
		Mult: func(x, y T) T { return x + y },
	}
}

// LorLand is the boolean semiring (||, &&), the semiring of choice for
// graph reachability (BFS-by-MxM).
func LorLand() Semiring[bool, bool, bool] {
	return Semiring[bool, bool, bool]{
		Add:  Monoid[bool]{Add: func(x, y bool) bool { return x || y }, Identity: false, Terminal: func(z bool) bool { return z }},
		Mult: func(x, y bool) bool { return x && y },
	}
}

// IsLE is a comparison binary operator grounded on
// Generated/GB_binop__isle_uint8.c: z = true if x <= y else false,
// usable as EWiseMult's operator.
func IsLE[T constraints.Ordered]() BinaryOp[T, T, bool] {
	return func(x, y T) bool { return x <= y }
}
