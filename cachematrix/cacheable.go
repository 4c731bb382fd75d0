package cachematrix

import (
	"log/slog"

	"github.com/katalvlaran/cachematrix/matrix"
)

// CacheableMatrix holds one matrix value and the cached inverse of that value.
//
// Invariant: SetValue always resets the cached inverse to Absent, so a
// present inverse belongs to the current value generation. Only
// SetCachedInverse can break this, which is why it is meant for the Inverse
// accessor alone.
//
// A CacheableMatrix is owned by a single caller and is not safe for
// concurrent use.
//
// The zero value is a usable placeholder container: it holds no value, logs
// through slog.Default, inverts with matrix.Inverse and records no telemetry.
type CacheableMatrix struct {
	value      matrix.Matrix
	inverse    Slot
	generation uint64

	logger   *slog.Logger
	inverter Inverter
	tel      *instruments
}

// New returns a container holding initial with no cached inverse.
// initial may be nil: the container then holds a placeholder until SetValue,
// and Inverse reports ErrInversionFailure for it.
func New(initial matrix.Matrix, opts ...Option) *CacheableMatrix {
	o := gatherOptions(opts...)

	return &CacheableMatrix{
		value:    initial,
		logger:   o.logger,
		inverter: o.inverter,
		tel:      newInstruments(o),
	}
}

// SetValue replaces the value with m and discards the cached inverse.
// m is stored as given, without validation; squareness and invertibility are
// only checked when Inverse computes. Callers must not mutate m in place
// afterwards: the container cannot see such changes.
func (c *CacheableMatrix) SetValue(m matrix.Matrix) {
	c.value = m
	c.inverse = Absent()
	c.generation++
}

// Value returns the current value unchanged (nil for the placeholder).
func (c *CacheableMatrix) Value() matrix.Matrix { return c.value }

// SetCachedInverse stores inv verbatim as the cached inverse.
// It is the Inverse accessor's hook; general callers should not use it.
func (c *CacheableMatrix) SetCachedInverse(inv matrix.Matrix) { c.inverse = Present(inv) }

// CachedInverse returns the cache slot: Absent, or Present with the inverse.
func (c *CacheableMatrix) CachedInverse() Slot { return c.inverse }

// log returns the configured logger, or slog.Default for the zero value.
func (c *CacheableMatrix) log() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}

	return c.logger
}

// invert returns the configured inverter, or matrix.Inverse for the zero value.
func (c *CacheableMatrix) invert() Inverter {
	if c.inverter == nil {
		return matrix.Inverse
	}

	return c.inverter
}

// Generation counts SetValue calls since New. Each generation has at most one
// computed inverse.
func (c *CacheableMatrix) Generation() uint64 { return c.generation }
