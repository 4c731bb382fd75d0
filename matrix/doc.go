// Package matrix offers the small dense linear-algebra core used by cachematrix.
//
// The matrix package provides:
//
//   - Matrix, a bounds-checked interface over two-dimensional float64 arrays,
//     and Dense, its row-major implementation.
//   - Kernels: Mul, LU (Doolittle, optional partial pivoting) and Inverse with
//     functional solver options (WithPivoting, WithSingularTolerance).
//   - Comparison helpers (Equal, AllClose) and Fingerprint, a content hash
//     that tells two matrix values apart in logs and traces.
//   - Parse, a reader for literals such as "[[2, 0], [0, 2]]".
//
// All failures are reported through the sentinels in errors.go; match them
// with errors.Is.
//
// See the examples in this package and in cachematrix for usage patterns.
package matrix
