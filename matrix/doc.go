// Package matrix offers an immutable, generic numeric Matrix value type.
//
// The matrix package provides:
//
//   - Matrix[T] over any integer or floating-point kind (Number), built with
//     New (tolerant, deep copy), NewStrict (validated, functional options),
//     Zeros and Identity.
//   - Element-wise Add/Sub, scalar Scale, matrix product Mul and the Multiply
//     dispatcher over the Operand sum type (Scalar | *Matrix).
//   - Transpose, structural Equal and Determinant by cofactor expansion.
//   - Canonical text forms: String "[[1, 2], [3, 4]]" and GoString
//     "Matrix([[1, 2], [3, 4]])".
//
// Every operation returns a new Matrix; nothing mutates its operands, so
// matrices may be shared between goroutines freely. Failures are reported as
// wrapped sentinels (ErrTypeMismatch, ErrShapeMismatch, ErrNotSquare, ...)
// matchable with errors.Is.
//
// The determinant is O(n!) and comparisons are exact: this is an arithmetic
// component for small matrices, not a numerical linear-algebra package.
//
// See the examples in this package for usage patterns.
package matrix
