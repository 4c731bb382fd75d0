// SPDX-License-Identifier: MIT

// Package matrix: functional solver options for LU and Inverse.
// This file defines:
//   - InverseOption / solverOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherSolverOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivoting enables partial (row) pivoting in LU and Inverse.
	// Without pivoting, matrices such as [[0,1],[1,0]] report ErrSingular.
	DefaultPivoting = true

	// DefaultSingularTolerance is the float64 machine epsilon (2^-52).
	// A pivot p of an n×n matrix is singular when |p| <= n * tol * max|a_ij|,
	// and Inverse also rejects results whose reciprocal condition number
	// 1/(‖A‖₁·‖A⁻¹‖₁) is below tol.
	DefaultSingularTolerance = 0x1p-52
)

const panicSingularToleranceInvalid = "matrix: WithSingularTolerance: tol must be finite, non-negative"

// ---------- Public option type (functional) ----------

// InverseOption mutates solver options. Safe to apply repeatedly.
type InverseOption func(*solverOptions)

// solverOptions stores the effective solver configuration.
type solverOptions struct {
	pivoting bool    // DefaultPivoting
	tol      float64 // DefaultSingularTolerance
}

// WithPivoting toggles partial pivoting.
// Disabling it reproduces plain Doolittle elimination, which is bit-for-bit
// stable across inputs but fails on any zero leading pivot.
//
// Complexity: O(1).
func WithPivoting(enabled bool) InverseOption {
	return func(o *solverOptions) { o.pivoting = enabled }
}

// WithSingularTolerance sets the relative singularity threshold.
//
// Inputs:
//   - tol: non-negative finite factor. It scales n*max|a_ij| for the pivot
//     test and is the lower bound on the reciprocal condition number.
//
// Errors:
//   - Panics with a stable message when tol is negative, NaN or ±Inf.
//
// Notes:
//   - tol == 0 disables both checks: only an exact zero pivot is singular,
//     and ill-conditioned inputs such as [[1,2,3],[4,5,6],[7,8,9]] produce
//     a (meaningless) result.
//   - Raising tol (e.g. 1e-12) rejects matrices that are merely close to
//     singular.
func WithSingularTolerance(tol float64) InverseOption {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSingularToleranceInvalid)
	}

	return func(o *solverOptions) { o.tol = tol }
}

// gatherSolverOptions applies opts over the defaults. Nil options are skipped.
func gatherSolverOptions(opts ...InverseOption) solverOptions {
	o := solverOptions{pivoting: DefaultPivoting, tol: DefaultSingularTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
