// Package matrix_test provides benchmarks for the matrix kernels,
// using deterministic random integer fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// benchSizes are the matrix sizes for the polynomial kernels.
var benchSizes = []int{16, 64, 128}

// detSizes stay small: cofactor expansion is O(n!).
var detSizes = []int{4, 6, 8}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[int]
	sinkI int
	sinkS string
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := randomInts(n, n, 1), randomInts(n, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM, _ = x.Add(y)
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := randomInts(n, n, 3), randomInts(n, n, 4)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM, _ = x.Mul(y)
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randomInts(n, 2*n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM, _ = x.Transpose()
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range detSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randomInts(n, n, 6)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkI, _ = x.Determinant()
			}
		})
	}
}

func BenchmarkString(b *testing.B) {
	b.ReportAllocs()
	x := randomInts(64, 64, 7)
	for i := 0; i < b.N; i++ {
		sinkS = x.String()
	}
}
