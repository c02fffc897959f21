package gotraj

import (
	"math"
	"math/rand"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const float32EqualityThreshold = 1e-4

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= float32EqualityThreshold
}

// observeLogs swaps in a logger that records entries and panics on Fatal,
// restoring the previous logger when the test ends.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := SetLogger(zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic)))
	t.Cleanup(func() { SetLogger(prev) })
	return logs
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
