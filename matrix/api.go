// SPDX-License-Identifier: MIT
// Package matrix: free-function facade.
//
// Purpose:
//   - Offer function-style entry points (Add(a, b), Mul(a, b), ...) next to the
//     methods, for pipelines that pass operations around as values.
//   - Each function delegates to the method of the same name; errors are identical.

package matrix

// Add returns a + b. See (*Matrix).Add.
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return a.Add(b) }

// Sub returns a - b. See (*Matrix).Sub.
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return a.Sub(b) }

// Mul returns the matrix product a × b. See (*Matrix).Mul.
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return a.Mul(b) }

// Scale returns a * s. See (*Matrix).Scale.
func Scale[T Number](a *Matrix[T], s T) (*Matrix[T], error) { return a.Scale(s) }

// Transpose returns aᵀ. See (*Matrix).Transpose.
func Transpose[T Number](a *Matrix[T]) (*Matrix[T], error) { return a.Transpose() }

// Determinant returns det(a). See (*Matrix).Determinant.
func Determinant[T Number](a *Matrix[T]) (T, error) { return a.Determinant() }

// Equal reports structural equality of a and b. See (*Matrix).Equal.
func Equal[T Number](a, b *Matrix[T]) (bool, error) { return a.Equal(b) }
