package main

import (
	"fmt"
	"os"

	"github.com/smasonuk/gotraj"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func newLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(gotraj.NewEncoder(cfg.LogFormat), zapcore.Lock(os.Stderr), level),
	}
	if cfg.LogFile != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
		})
		cores = append(cores, zapcore.NewCore(gotraj.NewEncoder("json"), fileWriter, level))
	}

	return zap.New(zapcore.NewTee(cores...)).Named("gotraj"), nil
}
