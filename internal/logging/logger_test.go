package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Level Tests
// =============================================================================

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{" info ", LevelInfo},
		{"Warn", LevelWarn},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"", LevelInfo},
		{"critical", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

// =============================================================================
// Charm Logger Tests
// =============================================================================

func newBufferLogger(level Level) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(Options{Level: level, Output: &buf, NoColor: true}), &buf
}

func TestFileOptions(t *testing.T) {
	var buf bytes.Buffer
	opts := FileOptions(&buf)

	assert.Equal(t, LevelDebug, opts.Level)
	assert.True(t, opts.NoColor)
	assert.Equal(t, "2006-01-02 15:04:05", opts.TimeFormat)
	assert.Equal(t, os.Stderr, DefaultOptions().Output)
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.Debug("recompute trace")
	logger.Info("store ready")
	assert.Empty(t, buf.String())

	logger.Warn("preference ignored")
	assert.Contains(t, buf.String(), "preference ignored")

	buf.Reset()
	logger.SetLevel(LevelError)
	assert.Equal(t, LevelError, logger.GetLevel())
	logger.Error("builder failed")
	assert.Contains(t, buf.String(), "builder failed")
}

func TestLoggerKeyValuesAndFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	scoped := logger.WithFields("component", "theme").WithFields("scheme", "blue")
	scoped.Info("tokens rebuilt", "mode", "dark")

	out := buf.String()
	assert.Contains(t, out, "tokens rebuilt")
	assert.Contains(t, out, "component=theme")
	assert.Contains(t, out, "scheme=blue")
	assert.Contains(t, out, "mode=dark")
}

func TestLoggerWithPrefix(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	logger.WithPrefix("theme").Info("ready")
	assert.Contains(t, buf.String(), "theme")
	assert.Contains(t, buf.String(), "ready")
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hue.log")

	logger, closer, err := NewFileLogger(path, LevelInfo)
	require.NoError(t, err)
	logger.Info("written to file", "scheme", "green")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Contains(t, string(data), "scheme=green")
}

func TestNewFileLogger_BadPath(t *testing.T) {
	_, _, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "hue.log"), LevelInfo)
	assert.Error(t, err)
}

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	logger.Debug("x")
	logger.Warn("x", "k", "v")
	logger.SetLevel(LevelDebug)

	assert.Equal(t, LevelInfo, logger.GetLevel())
	assert.NotNil(t, logger.WithPrefix("p"))
	assert.NotNil(t, logger.WithFields("k", "v"))
}

// =============================================================================
// Recorder Tests
// =============================================================================

func TestRecorder(t *testing.T) {
	rec := NewRecorder()

	rec.Info("store initializing")
	rec.WithFields("field", "mode").Warn("invalid preference ignored", "value", "sepia")

	entries := rec.Entries()
	require.Len(t, entries, 2)

	warns := rec.ByLevel(LevelWarn)
	require.Len(t, warns, 1)
	assert.Equal(t, "invalid preference ignored", warns[0].Message)

	v, ok := warns[0].Field("value")
	require.True(t, ok)
	assert.Equal(t, "sepia", v)
	v, ok = warns[0].Field("field")
	require.True(t, ok)
	assert.Equal(t, "mode", v)
	_, ok = warns[0].Field("missing")
	assert.False(t, ok)

	rec.Reset()
	assert.Empty(t, rec.Entries())
}

func TestRecorderLevel(t *testing.T) {
	rec := NewRecorder()
	rec.SetLevel(LevelWarn)

	rec.Debug("dropped")
	rec.Error("kept")

	assert.Equal(t, LevelWarn, rec.GetLevel())
	require.Len(t, rec.Entries(), 1)
	assert.Equal(t, "kept", rec.Entries()[0].Message)
}
