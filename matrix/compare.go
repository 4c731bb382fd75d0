// SPDX-License-Identifier: MIT

package matrix

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b have the same shape and bit-for-bit equal
// entries under ==. Two nil matrices are equal; NaN never equals NaN.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			for i := range da.data {
				if da.data[i] != db.data[i] {
					return false
				}
			}
			return true
		}
	}
	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if av != bv {
				return false
			}
		}
	}

	return true
}

// AllClose reports whether |a_ij - b_ij| <= atol + rtol*|b_ij| for every entry.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	var (
		av, bv float64
		err    error
	)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Fingerprint hashes the shape and the IEEE-754 bits of every entry with
// xxhash. Equal matrices (per Equal, ignoring ±0) share a fingerprint, so it
// can label a value generation in logs and spans. A nil matrix hashes to 0.
// Complexity: O(r*c).
func Fingerprint(m Matrix) uint64 {
	if ValidateNotNil(m) != nil {
		return 0
	}
	r, c := m.Rows(), m.Cols()
	buf := make([]byte, 0, 16+8*r*c)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(r))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(c))
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, _ = m.At(i, j)
			if v == 0 {
				v = 0 // fold -0 into +0
			}
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
	}

	return xxhash.Sum64(buf)
}
