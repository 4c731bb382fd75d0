package cachematrix_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/cachematrix/cachematrix"
	"github.com/katalvlaran/cachematrix/matrix"
)

// countingInverter wraps matrix.Inverse and counts invocations.
type countingInverter struct {
	calls int
}

func (ci *countingInverter) Invert(m matrix.Matrix, opts ...matrix.InverseOption) (matrix.Matrix, error) {
	ci.calls++
	return matrix.Inverse(m, opts...)
}

// logCapture collects debug-level text logs.
type logCapture struct {
	buf bytes.Buffer
}

func (lc *logCapture) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&lc.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Count returns how many records carry msg.
func (lc *logCapture) Count(msg string) int {
	return strings.Count(lc.buf.String(), `msg="`+msg+`"`)
}

// telemetry bundles in-memory trace and metric pipelines.
type telemetry struct {
	spans  *tracetest.SpanRecorder
	tp     *sdktrace.TracerProvider
	reader *sdkmetric.ManualReader
	mp     *sdkmetric.MeterProvider
}

func newTelemetry(t *testing.T) *telemetry {
	t.Helper()
	tel := &telemetry{
		spans:  tracetest.NewSpanRecorder(),
		reader: sdkmetric.NewManualReader(),
	}
	tel.tp = sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(tel.spans))
	tel.mp = sdkmetric.NewMeterProvider(sdkmetric.WithReader(tel.reader))
	t.Cleanup(func() {
		_ = tel.tp.Shutdown(context.Background())
		_ = tel.mp.Shutdown(context.Background())
	})

	return tel
}

func (tel *telemetry) Options() []cachematrix.Option {
	return []cachematrix.Option{
		cachematrix.WithTracerProvider(tel.tp),
		cachematrix.WithMeterProvider(tel.mp),
	}
}

// Counter returns the summed value of the int64 counter name (0 if absent).
func (tel *telemetry) Counter(t *testing.T, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, tel.reader.Collect(context.Background(), &rm))
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "%s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}

	return total
}

// HistogramCount returns the number of recordings of the float64 histogram name.
func (tel *telemetry) HistogramCount(t *testing.T, name string) uint64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, tel.reader.Collect(context.Background(), &rm))
	var total uint64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if h, ok := m.Data.(metricdata.Histogram[float64]); ok && m.Name == name {
				for _, dp := range h.DataPoints {
					total += dp.Count
				}
			}
		}
	}

	return total
}

// newQuiet builds a container that does not log.
func newQuiet(m matrix.Matrix, opts ...cachematrix.Option) *cachematrix.CacheableMatrix {
	return cachematrix.New(m, append([]cachematrix.Option{cachematrix.WithSilent()}, opts...)...)
}

// readCounter hides a Dense behind the Matrix interface and counts At calls.
type readCounter struct {
	matrix.Matrix
	reads int
}

func (rc *readCounter) At(i, j int) (float64, error) {
	rc.reads++
	return rc.Matrix.At(i, j)
}

// fixedInverter returns inv without reading its input.
func fixedInverter(inv matrix.Matrix) cachematrix.Inverter {
	return func(matrix.Matrix, ...matrix.InverseOption) (matrix.Matrix, error) { return inv, nil }
}
