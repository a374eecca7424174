// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and assertion shortcuts.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// mustZeros allocates an r×c zero matrix or fails the test.
func mustZeros[T matrix.Number](t testing.TB, r, c int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.Zeros[T](r, c)
	require.NoError(t, err)

	return m
}

// requireData asserts that m holds exactly want (shape and values).
func requireData[T matrix.Number](t *testing.T, want [][]T, m *matrix.Matrix[T]) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, want, m.Data())
}

// requireEqual asserts that a.Equal(b) succeeds and reports true.
func requireEqual[T matrix.Number](t *testing.T, a, b *matrix.Matrix[T]) {
	t.Helper()
	eq, err := a.Equal(b)
	require.NoError(t, err)
	require.Truef(t, eq, "want %v == %v", a, b)
}

// randomInts returns an r×c matrix of small deterministic integers in [-9, 9].
func randomInts(r, c int, seed int64) *matrix.Matrix[int] {
	rng := rand.New(rand.NewSource(seed))
	data := make([][]int, r)
	for i := range data {
		data[i] = make([]int, c)
		for j := range data[i] {
			data[i][j] = rng.Intn(19) - 9
		}
	}

	return matrix.New(data)
}

// shapes used by property-style tests.
var propertyShapes = []struct{ rows, cols int }{
	{1, 1}, {1, 4}, {4, 1}, {2, 3}, {3, 3}, {5, 2},
}
