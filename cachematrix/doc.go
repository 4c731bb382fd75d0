// Package cachematrix memoizes the inverse of a single mutable matrix.
//
// A CacheableMatrix owns one matrix value and at most one cached inverse.
// Inverse computes the inverse on the first request, stores it in the
// container and hands the stored matrix back on every later request until
// SetValue replaces the value, which discards the cached inverse.
//
//	c := cachematrix.New(matrix.MustParse("[[2, 0], [0, 2]]"))
//	inv, _ := cachematrix.Inverse(c) // computes [[0.5, 0], [0, 0.5]]
//	inv, _ = cachematrix.Inverse(c)  // returns the cached matrix
//	c.SetValue(matrix.MustParse("[[1, 0], [0, 1]]"))
//	inv, _ = cachematrix.Inverse(c)  // computes again
//
// Sharp edge: solver options passed to Inverse only take effect on the call
// that computes. A cache hit returns the stored inverse whatever options are
// passed, so switching options between calls has no effect until the next
// SetValue.
//
// Singular, numerically singular and non-finite values are reported as
// ErrInversionFailure and never cached; see matrix.WithSingularTolerance for
// the default thresholds. The zero CacheableMatrix is an empty placeholder
// that logs through slog.Default and records no telemetry.
//
// The container is not a general cache: one key, no eviction, no locking.
// Callers that share a CacheableMatrix across goroutines must serialize
// access themselves.
//
// Every cache hit logs "returning cached inverse" through log/slog (silence it
// with WithSilent) and every accessor call is traced and counted through the
// OpenTelemetry providers configured with WithTracerProvider and
// WithMeterProvider (the global providers by default).
package cachematrix
