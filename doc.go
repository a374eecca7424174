// Package lvmatrix is a small, dependency-light arithmetic component: an
// immutable two-dimensional numeric Matrix with the standard algebra.
//
// What is inside:
//
//   - Matrix[T] over any Go integer or floating-point kind
//   - Add, Sub, Scale, Mul and the Multiply dispatcher (Scalar | *Matrix)
//   - Transpose, structural Equal, Determinant by cofactor expansion
//   - Canonical text forms: "[[1, 2], [3, 4]]" and "Matrix([[1, 2], [3, 4]])"
//
// What is NOT inside: inversion, decompositions, eigenvalues, sparse storage,
// tolerance-based comparison or parsing. Use a numerical package for those.
//
// Layout:
//
//	matrix/   — the Matrix value type, validators, options and kernels
//	examples/ — a runnable walkthrough of every operation
//
// Quick example:
//
//	a := matrix.New([][]int{{1, 2}, {3, 4}})
//	b := matrix.New([][]int{{5, 6}, {7, 8}})
//	p, _ := a.Mul(b) // [[19, 22], [43, 50]]
//
//	go get github.com/katalvlaran/lvmatrix
package lvmatrix
