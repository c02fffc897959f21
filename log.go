package gotraj

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var pkgLogger atomic.Pointer[zap.Logger]

// Logger returns the logger used for diagnostics. Unless replaced with
// SetLogger, it writes warnings and above to stderr.
func Logger() *zap.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	l := NewStderrLogger(zapcore.WarnLevel)
	if pkgLogger.CompareAndSwap(nil, l) {
		return l
	}
	return pkgLogger.Load()
}

// SetLogger replaces the diagnostics logger and returns the previous one.
// A nil logger restores the stderr default on next use.
func SetLogger(l *zap.Logger) *zap.Logger {
	return pkgLogger.Swap(l)
}

// NewStderrLogger builds a console logger on stderr. Fatal entries exit the
// process with status 1.
func NewStderrLogger(level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(NewEncoder("console"), zapcore.Lock(os.Stderr), level)
	return zap.New(core).Named("gotraj")
}

// NewEncoder returns a console encoder for "console" and a JSON encoder for
// anything else.
func NewEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	if format == "console" {
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
	return zapcore.NewJSONEncoder(encoderConfig)
}
