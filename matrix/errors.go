// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every operation returns
// one of these (wrapped with an operation tag) and tests match them via
// errors.Is. No public method panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Operations
// wrap with fmt.Errorf("Op: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// type (nil operand) -> empty -> rectangularity -> dimension compatibility.

var (
	// ErrTypeMismatch is returned when an operand of a binary operation is not
	// a usable Matrix (nil *Matrix) or, for Multiply, neither a Scalar nor a Matrix.
	ErrTypeMismatch = errors.New("matrix: operand type mismatch")

	// ErrShapeMismatch indicates incompatible or unusable operand shapes:
	// empty operands, ragged rows, Add/Sub of different shapes, or Mul where
	// a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy of NewStrict.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
