// SPDX-License-Identifier: MIT
// Package: matrix_test (test helpers)
//
// Purpose:
//   • Small, deterministic fixtures shared by the kernel tests.
//   • A Matrix wrapper that hides *Dense so the generic (At/Set) paths run.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cachematrix/matrix"
	"github.com/stretchr/testify/require"
)

// MustDense creates an r×c zero Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return d
}

// NewFilledDense creates an r×c Dense from row-major vals.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c, "NewFilledDense: need r*c values")
	d := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, d.Set(i, j, vals[i*c+j]))
		}
	}

	return d
}

// RandWellConditioned returns A = MᵀM + n·I for a seeded random M,
// which is symmetric positive definite and comfortably invertible.
func RandWellConditioned(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}
	m := NewFilledDense(t, n, n, vals)
	a := MustDense(t, n, n)
	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum = 0
			for k := 0; k < n; k++ {
				sum += MustAt(t, m, k, i) * MustAt(t, m, k, j)
			}
			if i == j {
				sum += float64(n)
			}
			require.NoError(t, a.Set(i, j, sum))
		}
	}

	return a
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireIdentity asserts that m is the n×n identity within tol.
func RequireIdentity(t testing.TB, m matrix.Matrix, tol float64) {
	t.Helper()
	id, err := matrix.NewIdentity(m.Rows())
	require.NoError(t, err)
	ok, err := matrix.AllClose(m, id, 0, tol)
	require.NoError(t, err)
	require.True(t, ok, "not identity within %g:\n%v", tol, m)
}

// ExpectPanic asserts that fn panics with the given message.
func ExpectPanic(t *testing.T, msg string, fn func()) {
	t.Helper()
	require.PanicsWithValue(t, msg, fn)
}

// wrapped hides the concrete *Dense type behind the interface.
type wrapped struct{ m matrix.Matrix }

func (w wrapped) Rows() int { return w.m.Rows() }
func (w wrapped) Cols() int { return w.m.Cols() }
func (w wrapped) At(i, j int) (float64, error) { return w.m.At(i, j) }
func (w wrapped) Set(i, j int, v float64) error { return w.m.Set(i, j, v) }
func (w wrapped) Clone() matrix.Matrix { return wrapped{w.m.Clone()} }
