// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the textual forms.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestString_Int(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   [][]int
		want string
	}{
		{[][]int{{1, 2}, {3, 4}}, "[[1, 2], [3, 4]]"},
		{[][]int{{1, 2, 3}, {4, 5, 6}}, "[[1, 2, 3], [4, 5, 6]]"},
		{[][]int{{1}}, "[[1]]"},
		{[][]int{{-1, 0}, {10, -20}}, "[[-1, 0], [10, -20]]"},
		{[][]int{}, "[]"},
		{[][]int{{}}, "[[]]"},
		{[][]int{{1, 2}, {3}}, "[[1, 2], [3]]"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.want, func(t *testing.T) {
			m := matrix.New(tc.in)
			require.Equal(t, tc.want, m.String())
			require.Equal(t, "Matrix("+tc.want+")", m.GoString())
		})
	}
}

func TestString_Float(t *testing.T) {
	t.Parallel()

	x, y := 0.1, 0.2 // runtime sum, not a folded constant

	tests := []struct {
		in   [][]float64
		want string
	}{
		{[][]float64{{0.5, 1}, {1.5, 2}}, "[[0.5, 1.0], [1.5, 2.0]]"},
		{[][]float64{{-3.25, 0}}, "[[-3.25, 0.0]]"},
		{[][]float64{{math.Copysign(0, -1)}}, "[[-0.0]]"},
		{[][]float64{{x + y}}, "[[0.30000000000000004]]"},
		{[][]float64{{1e16, 1e-5}}, "[[1e+16, 1e-05]]"},
		{[][]float64{{1e15, 1e-4}}, "[[1000000000000000.0, 0.0001]]"},
		{[][]float64{{math.NaN(), math.Inf(1), math.Inf(-1)}}, "[[nan, inf, -inf]]"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.want, func(t *testing.T) {
			require.Equal(t, tc.want, matrix.New(tc.in).String())
		})
	}
}

func TestString_OtherKinds(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[[0.1, 2.5]]", matrix.New([][]float32{{0.1, 2.5}}).String())
	require.Equal(t, "[[255, 0]]", matrix.New([][]uint8{{255, 0}}).String())
	require.Equal(t, "[[-9223372036854775808]]", matrix.New([][]int64{{math.MinInt64}}).String())

	type celsius float64
	require.Equal(t, "[[21.0]]", matrix.New([][]celsius{{21}}).String())
}

func TestString_Fmt(t *testing.T) {
	t.Parallel()

	m := matrix.New([][]int{{1, 2}, {3, 4}})
	require.Equal(t, "[[1, 2], [3, 4]]", fmt.Sprint(m))
	require.Equal(t, "[[1, 2], [3, 4]]", fmt.Sprintf("%v", m))
	require.Equal(t, "Matrix([[1, 2], [3, 4]])", fmt.Sprintf("%#v", m))

	var nilM *matrix.Matrix[int]
	require.Equal(t, "<nil>", nilM.String())
}
