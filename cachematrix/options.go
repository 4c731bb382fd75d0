// SPDX-License-Identifier: MIT

// Functional configuration for CacheableMatrix.
// Options are resolved once, in New; a container built by New never re-reads
// globals (slog.Default, otel providers) after construction.

package cachematrix

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/cachematrix/matrix"
)

// DefaultTelemetry enables spans and metrics for every accessor call.
const DefaultTelemetry = true

const (
	panicNilLogger         = "cachematrix: WithLogger: logger must be non-nil"
	panicNilInverter       = "cachematrix: WithInverter: inverter must be non-nil"
	panicNilTracerProvider = "cachematrix: WithTracerProvider: provider must be non-nil"
	panicNilMeterProvider  = "cachematrix: WithMeterProvider: provider must be non-nil"
)

// Inverter computes the inverse of m. matrix.Inverse is the default; tests
// and callers with their own numeric routine can swap it via WithInverter.
type Inverter func(m matrix.Matrix, opts ...matrix.InverseOption) (matrix.Matrix, error)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	logger         *slog.Logger
	inverter       Inverter
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	telemetry      bool
}

// WithLogger routes the cache diagnostics to logger.
// Panics if logger is nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = logger }
}

// WithSilent drops every diagnostic line (the "silent mode" of the cache-hit
// notice). Telemetry is unaffected.
func WithSilent() Option {
	return func(o *options) { o.logger = slog.New(discardHandler{}) }
}

// WithInverter replaces the numeric routine used on a cache miss.
// Panics if inv is nil.
func WithInverter(inv Inverter) Option {
	if inv == nil {
		panic(panicNilInverter)
	}

	return func(o *options) { o.inverter = inv }
}

// WithTracerProvider sets the provider for accessor spans.
// Panics if tp is nil.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic(panicNilTracerProvider)
	}

	return func(o *options) { o.tracerProvider = tp }
}

// WithMeterProvider sets the provider for hit/miss/failure metrics.
// Panics if mp is nil.
func WithMeterProvider(mp metric.MeterProvider) Option {
	if mp == nil {
		panic(panicNilMeterProvider)
	}

	return func(o *options) { o.meterProvider = mp }
}

// WithTelemetry toggles spans and metrics. Logging is controlled separately.
func WithTelemetry(enabled bool) Option {
	return func(o *options) { o.telemetry = enabled }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := options{
		inverter:  matrix.Inverse,
		telemetry: DefaultTelemetry,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}
	if o.meterProvider == nil {
		o.meterProvider = otel.GetMeterProvider()
	}

	return o
}

// discardHandler mirrors slog.DiscardHandler (Go 1.24+) for older toolchains.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
