// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the inverse
// cache: matrix product, LU factorization and inversion.
//
// Purpose:
//   - Declare the canonical kernels and the operation tags used for error wrapping.
//   - Keep loop orders fixed so identical inputs give bit-identical outputs.
//
// Notes:
//   - All kernels validate through validators.go and wrap failures with
//     matrixErrorf(op*, err) so errors.Is keeps matching the sentinels.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul     = "Mul"
	opLU      = "LU"
	opInverse = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product a*b into a fresh Dense.
// Round-trip checks (A*A⁻¹ ≈ I) are its main use, so it favors a single
// predictable kernel over blocking tricks.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); read both operands row-major.
//   - Stage 2: row i of the result accumulates a[i,k] * (row k of b) for
//     k↑, so every inner loop walks contiguous memory.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) (plus O(r*n + n*c) for non-Dense operands).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	av, err := values(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bv, err := values(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, n, c := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for i := 0; i < r; i++ {
		out := res.data[i*c : (i+1)*c]
		for k, x := range av[i*n : (i+1)*n] {
			for j, y := range bv[k*c : (k+1)*c] {
				out[j] += x * y
			}
		}
	}

	return res, nil
}

// values returns the row-major entries of m. For *Dense it is the backing
// slice itself, so callers that write must copy first.
func values(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.data, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	var (
		i, j int
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if out[i*cols+j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// norm1 is the maximum absolute column sum of the n×n row-major matrix a.
func norm1(a []float64, n int) float64 {
	var best, sum float64
	for j := 0; j < n; j++ {
		sum = ZeroSum
		for i := 0; i < n; i++ {
			sum += math.Abs(a[i*n+j])
		}
		best = math.Max(best, sum)
	}

	return best
}

// luFactor performs in-place Gaussian elimination on a copy of m.
// The returned slice holds the unit-lower multipliers below the diagonal and
// U on and above it; perm[i] is the source row of row i of P*A.
//
// Every entry must be finite. A pivot p is singular when it is zero or when
// |p| <= n * o.tol * max|a_ij|.
func luFactor(m Matrix, o solverOptions) ([]float64, []int, error) {
	n := m.Rows()
	src, err := values(m)
	if err != nil {
		return nil, nil, err
	}
	a := make([]float64, len(src))
	copy(a, src)

	var maxAbs float64
	for idx, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, fmt.Errorf("entry [%d,%d] is %v: %w", idx/n, idx%n, v, ErrNonFinite)
		}
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	threshold := float64(n) * o.tol * maxAbs

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, p int
		pivot, l   float64
	)
	for k = 0; k < n; k++ {
		// Select the pivot row: the first row with the largest |a[i,k]|.
		p = k
		if o.pivoting {
			for i = k + 1; i < n; i++ {
				if math.Abs(a[i*n+k]) > math.Abs(a[p*n+k]) {
					p = i
				}
			}
		}
		pivot = a[p*n+k]
		switch {
		case pivot == 0:
			return nil, nil, fmt.Errorf("zero pivot at column %d: %w", k, ErrSingular)
		case !(math.Abs(pivot) > threshold): // NaN after overflow lands here too
			return nil, nil, fmt.Errorf("pivot %.3g at column %d below threshold %.3g: %w", pivot, k, threshold, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		for i = k + 1; i < n; i++ {
			l = a[i*n+k] / pivot
			a[i*n+k] = l
			if l == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= l * a[k*n+j]
			}
		}
	}

	return a, perm, nil
}

// LU factorizes P*A = L*U with unit diagonal on L.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); resolve solver options.
//   - Stage 2: Gaussian elimination (k↑) with optional partial pivoting.
//   - Stage 3: Split the packed factor into fresh Dense L and U.
//
// Returns:
//   - L (unit lower triangular), U (upper triangular), and perm where
//     row i of P*A is row perm[i] of A. Without pivoting perm is the identity.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNonFinite, ErrSingular (pivot test
//     only; LU does not estimate the condition number).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix, opts ...InverseOption) (Matrix, Matrix, []int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	o := gatherSolverOptions(opts...)

	a, perm, err := luFactor(m, o)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	L, _ := NewIdentity(n) // n>=1 after ValidateSquare
	U, _ := NewDense(n, n) // ditto
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = a[i*n+j]
			} else {
				U.data[i*n+j] = a[i*n+j]
			}
		}
	}

	return L, U, perm, nil
}

// Inverse returns the inverse of the square matrix m.
//
// Implementation:
//   - Stage 1 (Validate): ensure m is non-nil and square.
//   - Stage 2 (Decompose): P*A = L*U via luFactor, honoring solver options.
//   - Stage 3 (Execute): for each basis column e_col, solve L*y = P*e_col
//     (top-down) then U*x = y (bottom-up).
//   - Stage 4 (Finalize): write x into column col of a fresh Dense.
//   - Stage 5 (Condition): with tol > 0, reject the result when
//     1/(‖A‖₁·‖A⁻¹‖₁) < tol. This catches inputs that are singular in exact
//     arithmetic but whose rounded pivots all pass the pivot test.
//
// Behavior highlights:
//   - Fixed loop orders (col↑, forward i↑, backward i↓): identical inputs and
//     options give bit-identical results.
//   - m is read-only.
//
// Errors:
//   - ErrNilMatrix         (nil input).
//   - ErrDimensionMismatch (non-square input).
//   - ErrNonFinite         (NaN or ±Inf entry).
//   - ErrSingular          (pivot at or below the singularity threshold, or
//     reciprocal condition number below tol).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - If only A^{-1}*b is needed, solving with LU is cheaper than forming A^{-1}.
func Inverse(m Matrix, opts ...InverseOption) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherSolverOptions(opts...)

	a, perm, err := luFactor(m, o)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.Rows()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum       float64
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = P*e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += a[i*n+k] * y[k]
			}
			if perm[i] == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = ZeroSum - sum // keeps +0 instead of -0 for zero sums
			}
		}
		// Backward substitution: U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += a[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / a[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	if o.tol > 0 {
		src, err := values(m)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		// rc is NaN or 0 when the substitution overflowed; both fail the test.
		if rc := 1 / (norm1(src, n) * norm1(inv.data, n)); !(rc >= o.tol) {
			return nil, matrixErrorf(opInverse,
				fmt.Errorf("computationally singular: reciprocal condition number %.3g: %w", rc, ErrSingular))
		}
	}

	return inv, nil
}
