// SPDX-License-Identifier: MIT

package matrix

// Determinant returns det(m) by Laplace (cofactor) expansion along row 0.
//
// Base cases: 1×1 → the sole element; 2×2 → ad − bc. For n > 2 the result is
// Σ_col (−1)^col · m[0][col] · det(minor(0, col)), each minor freshly allocated.
//
// Errors:
//   - ErrTypeMismatch  if m is nil.
//   - ErrShapeMismatch if m has no rows.
//   - ErrNotSquare     if any row length differs from the row count.
//
// Complexity: O(n!) time. Intended for small matrices only.
func (m *Matrix[T]) Determinant() (T, error) {
	if err := ValidateSquare(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDeterminant, err)
	}

	return det(m.data), nil
}

// det assumes data is a non-empty square grid.
func det[T Number](data [][]T) T {
	n := len(data)
	switch n {
	case 1:
		return data[0][0]
	case 2:
		return data[0][0]*data[1][1] - data[0][1]*data[1][0]
	}

	var sum T
	for col := 0; col < n; col++ {
		term := data[0][col] * det(minor(data, 0, col))
		if col%2 == 1 {
			sum -= term
		} else {
			sum += term
		}
	}

	return sum
}

// minor returns a copy of data without row skipRow and column skipCol.
func minor[T Number](data [][]T, skipRow, skipCol int) [][]T {
	n := len(data)
	out := allocRows[T](n-1, n-1)
	mi := 0
	for i := 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		mj := 0
		for j := 0; j < n; j++ {
			if j == skipCol {
				continue
			}
			out[mi][mj] = data[i][j]
			mj++
		}
		mi++
	}

	return out
}
