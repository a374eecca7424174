// SPDX-License-Identifier: MIT
// Package matrix: arithmetic kernels.
//
// Purpose:
//   - Element-wise Add/Sub, scalar Scale, matrix product Mul, the Multiply
//     dispatcher over Operand, Transpose and structural Equal.
//
// Notes:
//   - Every kernel validates through validators.go first and wraps the
//     sentinel with its operation tag; no partial result is ever returned.
//   - Every kernel allocates a fresh result; receivers and operands are never mutated.
//   - Loop orders are fixed (i→j, i→j→k) so results are deterministic.

package matrix

// addSub computes out = a + b (sub=false) or out = a - b (sub=true).
// Shared by Add and Sub for one validation and allocation path.
func addSub[T Number](a, b *Matrix[T], sub bool, opTag string) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Shape()
	out := allocRows[T](rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		ar, br, row := a.data[i], b.data[i], out[i]
		for j = 0; j < cols; j++ {
			if sub {
				row[j] = ar[j] - br[j]
			} else {
				row[j] = ar[j] + br[j]
			}
		}
	}

	return &Matrix[T]{data: out}, nil
}

// Add returns the element-wise sum m + other.
//
// Errors:
//   - ErrTypeMismatch if m or other is nil.
//   - ErrShapeMismatch if either is empty or ragged, or the shapes differ.
//
// Complexity: O(r*c).
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	return addSub(m, other, false, opAdd)
}

// Sub returns the element-wise difference m - other. Validation as in Add.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	return addSub(m, other, true, opSub)
}

// Scale returns m with every element multiplied by s.
// m must be non-empty and rectangular (ErrShapeMismatch otherwise).
func (m *Matrix[T]) Scale(s T) (*Matrix[T], error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Shape()
	out := allocRows[T](rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out[i][j] = m.data[i][j] * s
		}
	}

	return &Matrix[T]{data: out}, nil
}

// Mul returns the matrix product m × other, (r×n)·(n×k) → (r×k).
//
// Errors:
//   - ErrTypeMismatch if m or other is nil.
//   - ErrShapeMismatch if either is empty or ragged, or m.Cols() != other.Rows().
//
// Complexity: O(r*n*k), plain i→j→k triple loop.
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := m.Rows(), m.Cols(), other.Cols()
	out := allocRows[T](rows, cols)
	var (
		i, j, k int
		sum     T
	)
	for i = 0; i < rows; i++ { // rows of m
		for j = 0; j < cols; j++ { // columns of other
			sum = 0
			for k = 0; k < inner; k++ { // shared dimension
				sum += m.data[i][k] * other.data[k][j]
			}
			out[i][j] = sum
		}
	}

	return &Matrix[T]{data: out}, nil
}

// Multiply dispatches on the operand kind: a Scalar scales m, a *Matrix
// multiplies as Mul does. A nil operand is neither and yields ErrTypeMismatch.
func (m *Matrix[T]) Multiply(op Operand[T]) (*Matrix[T], error) {
	switch v := op.(type) {
	case Scalar[T]:
		return m.Scale(v.V)
	case *Matrix[T]:
		return m.Mul(v)
	default:
		return nil, matrixErrorf(opMultiply, ErrTypeMismatch)
	}
}

// Equal reports whether m and other hold the same rows with the same values,
// compared with exact == on T.
//
// Unlike most equality helpers, a nil other is an error (ErrTypeMismatch),
// not false: equality is only defined between two matrices.
// Ragged matrices compare structurally as well.
func (m *Matrix[T]) Equal(other *Matrix[T]) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(other); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if len(m.data) != len(other.data) {
		return false, nil
	}
	for i := range m.data {
		if len(m.data[i]) != len(other.data[i]) {
			return false, nil
		}
		for j := range m.data[i] {
			if m.data[i][j] != other.data[i][j] {
				return false, nil
			}
		}
	}

	return true, nil
}

// Transpose returns a new cols×rows matrix t with t[i][j] = m[j][i].
// A matrix without rows or columns transposes to the empty matrix.
// Returns ErrShapeMismatch for a ragged matrix.
func (m *Matrix[T]) Transpose() (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err := ValidateRectangular(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if m.IsEmpty() {
		return &Matrix[T]{data: [][]T{}}, nil
	}

	rows, cols := m.Shape()
	out := allocRows[T](cols, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out[j][i] = m.data[i][j]
		}
	}

	return &Matrix[T]{data: out}, nil
}
