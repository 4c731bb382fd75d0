// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Kernels return these
// sentinels (optionally wrapped with an operation tag via matrixErrorf) and
// tests match them via errors.Is. No kernel panics on user-triggered error
// conditions; panics are reserved for nonsensical option values.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Do not %w-wrap these sentinels twice in the same layer; wrap once at the
// operation boundary with matrixErrorf so callers still match via errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// a non-square input where a square one is required, or ragged literal rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when inversion/LU meets a pivot at or below the
	// configured singularity threshold, or when the reciprocal condition number
	// of an inverse falls below the singular tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNonFinite is returned when a kernel that needs finite input meets a
	// NaN or ±Inf entry.
	ErrNonFinite = errors.New("matrix: non-finite entry")

	// ErrParse is returned by Parse when a matrix literal is malformed.
	ErrParse = errors.New("matrix: malformed literal")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
