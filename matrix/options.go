// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for validated construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal),
//   - NewStrict, the only consumer of ...Option.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - New stays tolerant; NewStrict is where callers opt into early rejection.
package matrix

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRequireRectangular rejects ragged rows at construction.
	DefaultRequireRectangular = true

	// DefaultRequireNonEmpty rejects matrices with no rows or empty rows.
	DefaultRequireNonEmpty = true

	// DefaultValidateNaNInf rejects NaN and ±Inf cells of floating-point matrices.
	// Integer matrices cannot hold such values; the flag is a no-op for them.
	DefaultValidateNaNInf = true
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	requireRectangular bool // DefaultRequireRectangular
	requireNonEmpty    bool // DefaultRequireNonEmpty
	validateNaNInf     bool // DefaultValidateNaNInf
}

// WithRequireRectangular toggles the rectangularity check of NewStrict.
func WithRequireRectangular(on bool) Option {
	return func(o *Options) { o.requireRectangular = on }
}

// WithRequireNonEmpty toggles the non-emptiness check of NewStrict.
func WithRequireNonEmpty(on bool) Option {
	return func(o *Options) { o.requireNonEmpty = on }
}

// WithValidateNaNInf toggles rejection of NaN/±Inf cells.
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) { o.validateNaNInf = on }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		requireRectangular: DefaultRequireRectangular,
		requireNonEmpty:    DefaultRequireNonEmpty,
		validateNaNInf:     DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// NewStrict builds a Matrix like New, but rejects data that the configured
// policy forbids instead of deferring the failure to the first operation.
//
// Errors (wrapped with "NewStrict"):
//   - ErrShapeMismatch if requireNonEmpty and data is empty,
//     or requireRectangular and a row is ragged.
//   - ErrNaNInf if validateNaNInf and a cell is NaN or ±Inf.
func NewStrict[T Number](data [][]T, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	m := New(data)

	if o.requireNonEmpty {
		if err := ValidateNonEmpty(m); err != nil {
			return nil, matrixErrorf(opNewStrict, err)
		}
	}
	if o.requireRectangular {
		if err := ValidateRectangular(m); err != nil {
			return nil, matrixErrorf(opNewStrict, err)
		}
	}
	if o.validateNaNInf {
		for i, row := range m.data {
			for j, v := range row {
				if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
					return nil, matrixErrorf(opNewStrict, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
				}
			}
		}
	}

	return m, nil
}
