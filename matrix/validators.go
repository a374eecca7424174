// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/empty/shape checks here.
//  - Return sentinels wrapped with a validator tag and the offending shape so
//    call sites can wrap once more with their operation tag.
//
// Note:
//  - Each composite validator follows a fixed sequence:
//    NotNil → NonEmpty → Rectangular → compatibility.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m refers to a Matrix.
// Returns ErrTypeMismatch if m == nil: a nil operand is "not a Matrix".
func ValidateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrTypeMismatch)
	}

	return nil
}

// ValidateNonEmpty ensures m has at least one row and a non-empty first row.
// Assumes m is not nil.
func ValidateNonEmpty[T Number](m *Matrix[T]) error {
	if m.IsEmpty() {
		return validatorErrorf("ValidateNonEmpty",
			fmt.Errorf("%w: empty matrix %dx%d", ErrShapeMismatch, m.Rows(), m.Cols()))
	}

	return nil
}

// ValidateRectangular ensures all rows share the first row's length.
// Assumes m is not nil. Complexity: O(r).
func ValidateRectangular[T Number](m *Matrix[T]) error {
	cols := m.Cols()
	for i := 1; i < len(m.data); i++ {
		if len(m.data[i]) != cols {
			return validatorErrorf("ValidateRectangular",
				fmt.Errorf("%w: row %d has %d elements, want %d", ErrShapeMismatch, i, len(m.data[i]), cols))
		}
	}

	return nil
}

// ValidateOperand runs NotNil → NonEmpty → Rectangular on a single operand.
func ValidateOperand[T Number](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateNonEmpty(m); err != nil {
		return err
	}

	return ValidateRectangular(m)
}

// ValidateSameShape ensures a and b are usable operands of equal dimensions.
// Used by Add and Sub.
func ValidateSameShape[T Number](a, b *Matrix[T]) error {
	if err := ValidateOperand(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateOperand(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, a.Rows(), a.Cols(), b.Rows(), b.Cols()))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows for usable operands a and b.
func ValidateMulCompatible[T Number](a, b *Matrix[T]) error {
	if err := ValidateOperand(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateOperand(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%w: %dx%d times %dx%d", ErrShapeMismatch, a.Rows(), a.Cols(), b.Rows(), b.Cols()))
	}

	return nil
}

// ValidateSquare ensures m has rows and every row length equals the row count.
// Returns ErrShapeMismatch for a matrix with no rows and ErrNotSquare otherwise
// (a [[]] matrix is 1 row of 0 elements, hence not square).
func ValidateSquare[T Number](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() == 0 {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%w: matrix has no rows", ErrShapeMismatch))
	}
	if !m.IsSquare() {
		return validatorErrorf("ValidateSquare",
			fmt.Errorf("%w: %d rows, first row has %d elements", ErrNotSquare, m.Rows(), m.Cols()))
	}

	return nil
}
