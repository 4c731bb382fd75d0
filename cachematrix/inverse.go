package cachematrix

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/cachematrix/matrix"
)

// Diagnostic messages; msgCacheHit is the human-facing notice of a cache hit.
const (
	msgCacheHit     = "returning cached inverse"
	msgCacheMiss    = "computing inverse"
	msgInverseError = "inverse failed"
)

// Inverse returns the inverse of c's current value, computing it at most once
// per value generation. See InverseContext.
func Inverse(c *CacheableMatrix, opts ...matrix.InverseOption) (matrix.Matrix, error) {
	return InverseContext(context.Background(), c, opts...)
}

// InverseContext returns the inverse of c's current value.
//
// Implementation:
//   - Stage 1: read the cache slot.
//   - Stage 2 (hit): log "returning cached inverse" and return the stored
//     matrix. The value is not re-checked and opts are ignored.
//   - Stage 3 (miss): invert c.Value() with the configured inverter and opts,
//     store the result via SetCachedInverse and return it.
//
// Errors:
//   - ErrNilContainer if c is nil.
//   - ErrInversionFailure joined with the inverter's error (for the default
//     inverter: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
//     matrix.ErrSingular). The slot stays Absent, so the next call retries.
//
// ctx only carries the trace parent; the computation is not cancellable.
//
// Complexity:
//   - Hit O(1).
//   - Miss: the inverter's cost, O(n³) for matrix.Inverse, plus O(n²) for
//     the fingerprint when Debug logging or telemetry is enabled.
func InverseContext(ctx context.Context, c *CacheableMatrix, opts ...matrix.InverseOption) (matrix.Matrix, error) {
	if c == nil {
		return nil, ErrNilContainer
	}
	ctx, sc := c.tel.startInverseSpan(ctx, c)
	logger := c.log()

	if inv, ok := c.inverse.Get(); ok {
		if logger.Enabled(ctx, slog.LevelInfo) {
			logger.LogAttrs(ctx, slog.LevelInfo, msgCacheHit, c.logAttrs()...)
		}
		c.tel.finishHit(ctx, sc)

		return inv, nil
	}

	if logger.Enabled(ctx, slog.LevelDebug) {
		attrs := c.logAttrs()
		if matrix.ValidateNotNil(c.value) == nil {
			attrs = append(attrs, slog.String("fingerprint", formatFingerprint(matrix.Fingerprint(c.value))))
		}
		logger.LogAttrs(ctx, slog.LevelDebug, msgCacheMiss, attrs...)
	}
	inv, err := c.invert()(c.value, opts...)
	if err == nil && matrix.ValidateNotNil(inv) != nil {
		err = fmt.Errorf("inverter returned no matrix: %w", matrix.ErrNilMatrix)
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInversionFailure, err)
		logger.LogAttrs(ctx, slog.LevelDebug, msgInverseError,
			slog.Uint64("generation", c.generation),
			slog.Any("error", err),
		)
		c.tel.finishMiss(ctx, sc, nil, err)

		return nil, err
	}

	c.SetCachedInverse(inv)
	c.tel.finishMiss(ctx, sc, c.value, nil)

	return inv, nil
}

// logAttrs describes the current value generation in O(1).
func (c *CacheableMatrix) logAttrs() []slog.Attr {
	attrs := []slog.Attr{slog.Uint64("generation", c.generation)}
	if matrix.ValidateNotNil(c.value) == nil {
		attrs = append(attrs, slog.Int("rows", c.value.Rows()))
	}

	return attrs
}

// formatFingerprint renders a fingerprint as fixed-width hex.
func formatFingerprint(fp uint64) string {
	return fmt.Sprintf("%016x", fp)
}
