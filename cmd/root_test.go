package main

import (
	"bytes"
	"testing"

	"github.com/smasonuk/gotraj"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := gotraj.SetLogger(nil)
	t.Cleanup(func() { gotraj.SetLogger(prev) })

	var out bytes.Buffer
	cmd := newRootCmd(viper.New())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootSeedFlag(t *testing.T) {
	first, err := executeRoot(t, "--seed", "3")
	require.NoError(t, err)
	second, err := executeRoot(t, "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "Size of myVec after push: 10")
}

func TestRootSeedFromEnv(t *testing.T) {
	t.Setenv("GOTRAJ_SEED", "11")
	fromEnv, err := executeRoot(t)
	require.NoError(t, err)

	fromFlag, err := executeRoot(t, "--seed", "11")
	require.NoError(t, err)
	assert.Equal(t, fromFlag, fromEnv)
}

func TestRootInvalidLogLevel(t *testing.T) {
	_, err := executeRoot(t, "--log-level", "loud")
	assert.ErrorContains(t, err, `invalid log level "loud"`)
}

func TestNewLoggerLevels(t *testing.T) {
	logger, err := newLogger(Config{LogLevel: "debug", LogFormat: "json"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = newLogger(Config{LogLevel: "error", LogFormat: "console"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
}
