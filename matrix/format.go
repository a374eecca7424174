// SPDX-License-Identifier: MIT

// Package matrix - textual forms.
//
// Canonical form (String):  [[1, 2], [3, 4]]
// Debug form (GoString):    Matrix([[1, 2], [3, 4]])
//
// Both forms are compared byte-for-byte by callers, so separators are fixed:
// ", " between elements and between rows, "[" and "]" around each row and
// around the whole. Integers print in base 10. Floats always carry a
// fractional part or an exponent ("1.0", "0.5", "1e+16", "1e-05"), use fixed
// notation for 1e-4 <= |v| < 1e16 and print non-finite values as nan/inf/-inf.

package matrix

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "["
	_fmtClose    = "]"
	_fmtSep      = ", "
	_fmtDebugPfx = "Matrix("
	_fmtDebugSfx = ")"
	_fmtNil      = "<nil>"
)

// Fixed-notation window for floats; outside it the exponent form is used.
const (
	fixedMin = 1e-4
	fixedMax = 1e16
)

// String implements fmt.Stringer with the canonical nested-list form.
// Complexity: O(r*c).
func (m *Matrix[T]) String() string {
	if m == nil {
		return _fmtNil
	}

	format := scalarFormatter[T]()
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, row := range m.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(_fmtOpen)
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(format(v))
		}
		sb.WriteString(_fmtClose)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

// GoString implements fmt.GoStringer: Matrix(<String()>).
// It is what %#v prints.
func (m *Matrix[T]) GoString() string {
	return _fmtDebugPfx + m.String() + _fmtDebugSfx
}

// scalarFormatter picks the formatter for T by kind once per String call.
func scalarFormatter[T Number]() func(T) string {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Float32:
		return func(v T) string { return formatFloat(float64(v), 32) }
	case reflect.Float64:
		return func(v T) string { return formatFloat(float64(v), 64) }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(v T) string { return strconv.FormatUint(uint64(v), 10) }
	default:
		return func(v T) string { return strconv.FormatInt(int64(v), 10) }
	}
}

// formatFloat renders f with the shortest digits that round-trip at bitSize.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs < fixedMin || abs >= fixedMax) {
		return strconv.FormatFloat(f, 'e', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}
