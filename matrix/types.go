// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the scalar constraint, the Matrix value type and the
// Operand sum type accepted by Multiply. Errors and options live in dedicated
// files (errors.go, options.go).
package matrix

// Integer is the set of Go integer kinds usable as matrix scalars.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of Go floating-point kinds usable as matrix scalars.
type Float interface {
	~float32 | ~float64
}

// Number is the scalar constraint of Matrix: any integer or floating-point kind.
type Number interface {
	Integer | Float
}

// Matrix is an immutable two-dimensional arrangement of numbers.
//
// The row storage is owned by the instance: New copies caller data in and
// accessors copy it out, so no method ever exposes data for in-place mutation.
// A *Matrix is therefore safe for concurrent reads without locking.
//
// Construction is tolerant (ragged or empty data is accepted); arithmetic
// validates rectangularity and non-emptiness before computing.
type Matrix[T Number] struct {
	data [][]T // row-major, never mutated after construction
}

// Operand is the multiplier accepted by Multiply: either a Scalar or a *Matrix.
// The interface is sealed; no other type can implement it.
type Operand[T Number] interface {
	isOperand()
}

// Scalar wraps a number so it can be passed to Multiply.
type Scalar[T Number] struct {
	V T
}

// S is shorthand for Scalar[T]{V: v}.
func S[T Number](v T) Scalar[T] { return Scalar[T]{V: v} }

func (Scalar[T]) isOperand()  {}
func (*Matrix[T]) isOperand() {}
