// SPDX-License-Identifier: MIT

// Package matrix - construction & safe accessors.
//
// Purpose:
//   - Copy caller rows into owned storage so later caller writes never leak in.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Derive dimensions from the data; nothing is stored separately.
//
// Complexity quicksheet:
//   - New/Data: O(r*c) copy; Rows/Cols/At: O(1); Row: O(c); IsRectangular: O(r).

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opMultiply    = "Multiply"
	opEqual       = "Equal"
	opTranspose   = "Transpose"
	opDeterminant = "Determinant"
	opAt          = "At"
	opRow         = "Row"
	opNewStrict   = "NewStrict"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// New builds a Matrix from rows. The rows are deep-copied; the caller may keep
// mutating data afterwards without affecting the Matrix.
// New never fails: ragged and empty inputs are stored as given and rejected
// later by the operations that require a rectangular, non-empty shape.
// Complexity: O(r*c).
func New[T Number](data [][]T) *Matrix[T] {
	return &Matrix[T]{data: cloneRows(data)}
}

// Zeros returns a rows×cols matrix filled with the zero value of T.
// Returns ErrInvalidDimensions if rows<=0 or cols<=0.
func Zeros[T Number](rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Zeros(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Matrix[T]{data: allocRows[T](rows, cols)}, nil
}

// Identity returns the n×n identity matrix.
// Returns ErrInvalidDimensions if n<=0.
func Identity[T Number](n int) (*Matrix[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrInvalidDimensions)
	}
	data := allocRows[T](n, n)
	for i := 0; i < n; i++ {
		data[i][i] = 1
	}

	return &Matrix[T]{data: data}, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int {
	if m == nil {
		return 0
	}

	return len(m.data)
}

// Cols returns the length of the first row, or 0 for an empty matrix.
// For a ragged matrix this is NOT the length of every row; see IsRectangular.
func (m *Matrix[T]) Cols() int {
	if m == nil || len(m.data) == 0 {
		return 0
	}

	return len(m.data[0])
}

// Shape returns (Rows(), Cols()).
func (m *Matrix[T]) Shape() (rows, cols int) {
	return m.Rows(), m.Cols()
}

// IsEmpty reports whether the matrix has no rows or a zero-length first row.
func (m *Matrix[T]) IsEmpty() bool {
	return m.Rows() == 0 || m.Cols() == 0
}

// IsRectangular reports whether every row has the length of the first row.
// An empty matrix is trivially rectangular.
func (m *Matrix[T]) IsRectangular() bool {
	cols := m.Cols()
	for i := 1; i < m.Rows(); i++ {
		if len(m.data[i]) != cols {
			return false
		}
	}

	return true
}

// IsSquare reports whether every row has exactly Rows() elements.
func (m *Matrix[T]) IsSquare() bool {
	n := m.Rows()
	for i := 0; i < n; i++ {
		if len(m.data[i]) != n {
			return false
		}
	}

	return true
}

// At returns the element at (row, col).
// Returns ErrOutOfRange for indices outside the stored data; for ragged
// matrices the column bound is the length of the addressed row.
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if row < 0 || row >= m.Rows() || col < 0 || col >= len(m.data[row]) {
		return zero, fmt.Errorf("%s(%d,%d): %w", opAt, row, col, ErrOutOfRange)
	}

	return m.data[row][col], nil
}

// Row returns a copy of row i.
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.Rows() {
		return nil, fmt.Errorf("%s(%d): %w", opRow, i, ErrOutOfRange)
	}

	return append([]T(nil), m.data[i]...), nil
}

// Data returns a deep copy of the rows. Mutating the result does not affect m.
func (m *Matrix[T]) Data() [][]T {
	if m == nil {
		return nil
	}

	return cloneRows(m.data)
}

// cloneRows deep-copies rows, preserving nil vs empty only at the outer level.
func cloneRows[T Number](rows [][]T) [][]T {
	out := make([][]T, len(rows))
	for i, r := range rows {
		out[i] = append(make([]T, 0, len(r)), r...)
	}

	return out
}

// allocRows allocates a zeroed rows×cols grid backed by one flat slice.
// The rows are sliced with full capacity limits so no row can grow into its neighbour.
func allocRows[T Number](rows, cols int) [][]T {
	flat := make([]T, rows*cols)
	out := make([][]T, rows)
	for i := range out {
		out[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return out
}
