package pgelog

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newBenchLogger() *Logger {
	return NewBuilder().
		WithWorkflow("pge_bench").
		WithLogFilename("bench.log").
		WithFs(afero.NewMemMapFs()).
		WithMetrics(fakeCollector{}).
		WithoutExitHook().
		Build()
}

// BenchmarkInfo measures the full write path: normalize, tally,
// caller resolution, render, buffer append.
func BenchmarkInfo(b *testing.B) {
	l := newBenchLogger()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Info("Bench", 1, "benchmark message")
	}
}

// BenchmarkLogFromOffset adds the offset-to-severity classification on
// top of the plain write path.
func BenchmarkLogFromOffset(b *testing.B) {
	l := newBenchLogger()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Log("Bench", 3500, "benchmark message", 0)
	}
}

// BenchmarkZapInfo is the comparison point: zap writing a line with a
// caller to a discarded sink. The buffered logger trades throughput
// for its exactly-once finalize semantics, so this is context rather
// than a target.
func BenchmarkZapInfo(b *testing.B) {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.InfoLevel)
	l := zap.New(core, zap.AddCaller())

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("benchmark message", zap.Int("code", 900001))
	}
}

func BenchmarkResync(b *testing.B) {
	l := newBenchLogger()
	for i := 0; i < 1000; i++ {
		_ = l.Info("Bench", 1, "fill")
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Resync()
	}
}
