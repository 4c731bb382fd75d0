package cachematrix_test

import (
	"testing"

	"github.com/katalvlaran/cachematrix/cachematrix"
	"github.com/katalvlaran/cachematrix/matrix"
)

func benchMatrix(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n-1; i++ {
		_ = m.Set(i, i+1, 0.5)
	}

	return m
}

// BenchmarkInverse_Hit measures the cached path.
func BenchmarkInverse_Hit(b *testing.B) {
	c := cachematrix.New(benchMatrix(b, 64), cachematrix.WithSilent(), cachematrix.WithTelemetry(false))
	if _, err := cachematrix.Inverse(c); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cachematrix.Inverse(c); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkInverse_Miss invalidates before every call.
func BenchmarkInverse_Miss(b *testing.B) {
	m := benchMatrix(b, 64)
	c := cachematrix.New(m, cachematrix.WithSilent(), cachematrix.WithTelemetry(false))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.SetValue(m)
		if _, err := cachematrix.Inverse(c); err != nil {
			b.Fatal(err)
		}
	}
}
