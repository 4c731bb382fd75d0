package cachematrix

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/cachematrix/matrix"
)

const (
	// Instrumentation library name
	instrumentationName    = "github.com/katalvlaran/cachematrix"
	instrumentationVersion = "0.1.0"

	spanInverse = "cachematrix.inverse"

	metricHits     = "cachematrix.inverse.hits"
	metricMisses   = "cachematrix.inverse.misses"
	metricFailures = "cachematrix.inverse.failures"
	metricDuration = "cachematrix.inverse.duration"

	attrCacheHit    = attribute.Key("cache.hit")
	attrRows        = attribute.Key("matrix.rows")
	attrGeneration  = attribute.Key("matrix.generation")
	attrFingerprint = attribute.Key("matrix.fingerprint")
)

// instruments holds the OpenTelemetry instruments of one container.
// A disabled set has a nil tracer and records nothing; so does a nil
// *instruments, which is what the zero CacheableMatrix carries.
type instruments struct {
	tracer trace.Tracer

	hits     metric.Int64Counter
	misses   metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

// newInstruments creates the tracer and meters from the resolved options.
// Instrument creation errors are reported through otel.Handle.
func newInstruments(o options) *instruments {
	if !o.telemetry {
		return &instruments{}
	}
	meter := o.meterProvider.Meter(instrumentationName, metric.WithInstrumentationVersion(instrumentationVersion))
	in := &instruments{
		tracer: o.tracerProvider.Tracer(instrumentationName, trace.WithInstrumentationVersion(instrumentationVersion)),
	}

	var err error
	in.hits, err = meter.Int64Counter(metricHits,
		metric.WithDescription("Accessor calls served from the cached inverse"),
	)
	if err != nil {
		otel.Handle(err)
	}
	in.misses, err = meter.Int64Counter(metricMisses,
		metric.WithDescription("Accessor calls that computed the inverse"),
	)
	if err != nil {
		otel.Handle(err)
	}
	in.failures, err = meter.Int64Counter(metricFailures,
		metric.WithDescription("Accessor calls whose inversion failed"),
	)
	if err != nil {
		otel.Handle(err)
	}
	in.duration, err = meter.Float64Histogram(metricDuration,
		metric.WithDescription("Duration of inverse computations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return in
}

// enabled reports whether spans and metrics are recorded.
func (in *instruments) enabled() bool { return in != nil && in.tracer != nil }

// spanContext holds the span of one accessor call.
type spanContext struct {
	span      trace.Span
	startTime time.Time
}

// startInverseSpan opens the accessor span. With telemetry disabled it only
// records the start time.
func (in *instruments) startInverseSpan(ctx context.Context, c *CacheableMatrix) (context.Context, *spanContext) {
	sc := &spanContext{startTime: time.Now()}
	if !in.enabled() {
		return ctx, sc
	}
	attrs := []attribute.KeyValue{attrGeneration.Int64(int64(c.generation))}
	if matrix.ValidateNotNil(c.value) == nil {
		attrs = append(attrs, attrRows.Int(c.value.Rows()))
	}
	ctx, sc.span = in.tracer.Start(ctx, spanInverse, trace.WithAttributes(attrs...))

	return ctx, sc
}

// finishHit closes the span of a cache hit and counts it.
func (in *instruments) finishHit(ctx context.Context, sc *spanContext) {
	if !in.enabled() {
		return
	}
	in.hits.Add(ctx, 1)
	sc.span.SetAttributes(attrCacheHit.Bool(true))
	sc.span.SetStatus(codes.Ok, "")
	sc.span.End()
}

// finishMiss closes the span of a computing call, recording its duration and
// either the fingerprint of the inverted value or the error. The fingerprint
// is only hashed here, once the span is known to be recorded.
func (in *instruments) finishMiss(ctx context.Context, sc *spanContext, value matrix.Matrix, err error) {
	if !in.enabled() {
		return
	}
	in.misses.Add(ctx, 1)
	in.duration.Record(ctx, time.Since(sc.startTime).Seconds())
	sc.span.SetAttributes(attrCacheHit.Bool(false))
	if err != nil {
		in.failures.Add(ctx, 1)
		sc.span.RecordError(err)
		sc.span.SetStatus(codes.Error, err.Error())
	} else {
		sc.span.SetAttributes(attrFingerprint.String(formatFingerprint(matrix.Fingerprint(value))))
		sc.span.SetStatus(codes.Ok, "")
	}
	sc.span.End()
}
