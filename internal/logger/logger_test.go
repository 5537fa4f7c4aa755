package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		expectLog bool
	}{
		{
			name:      "logs when BARO_DEBUG is set",
			envValue:  "1",
			expectLog: true,
		},
		{
			name:      "logs when BARO_DEBUG is any value",
			envValue:  "true",
			expectLog: true,
		},
		{
			name:      "does not log when BARO_DEBUG is empty",
			envValue:  "",
			expectLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv("BARO_DEBUG", tt.envValue)
			} else {
				os.Unsetenv("BARO_DEBUG")
			}

			var buf bytes.Buffer
			l := New(&buf)
			l.Debug("test message %s", "arg")

			if tt.expectLog {
				assert.Contains(t, buf.String(), "test message arg")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNew_Info(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Info("info message %d", 42)

	assert.Contains(t, buf.String(), "info message 42")
}

func TestNew_Warn(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Warn("warning message")

	assert.Contains(t, buf.String(), "warning message")
	assert.Contains(t, buf.String(), "WARN")
}

func TestNew_Error(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Error("error message")

	assert.Contains(t, buf.String(), "error message")
	assert.Contains(t, buf.String(), "ERRO")
}

func TestNewFileLogger(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "baro.log")

	l, closer, err := NewFileLogger(path)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNewFileLogger_Appends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baro.log")

	l1, c1, err := NewFileLogger(path)
	require.NoError(t, err)
	l1.Info("first run")
	require.NoError(t, c1.Close())

	l2, c2, err := NewFileLogger(path)
	require.NoError(t, err)
	l2.Info("second run")
	require.NoError(t, c2.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestNoopLogger(t *testing.T) {
	l := Noop()
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")
	// Nothing to assert beyond not panicking; Noop has no output path.
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %s", "msg")
	l.Info("info %s", "msg")
	l.Warn("warn %s", "msg")
	l.Error("error %s", "msg")

	require.Len(t, l.Messages, 4)

	assert.Equal(t, "debug", l.Messages[0].Level)
	assert.Equal(t, "debug msg", l.Messages[0].Message)

	assert.Equal(t, "info", l.Messages[1].Level)
	assert.Equal(t, "info msg", l.Messages[1].Message)

	assert.Equal(t, "warn", l.Messages[2].Level)
	assert.Equal(t, "warn msg", l.Messages[2].Message)

	assert.Equal(t, "error", l.Messages[3].Level)
	assert.Equal(t, "error msg", l.Messages[3].Message)
}

func TestBufferLogger_HasLevel(t *testing.T) {
	l := NewBufferLogger()

	assert.False(t, l.HasLevel("debug"))
	assert.False(t, l.HasLevel("error"))

	l.Debug("test")
	assert.True(t, l.HasLevel("debug"))
	assert.False(t, l.HasLevel("error"))

	l.Error("test")
	assert.True(t, l.HasLevel("error"))
}

func TestBufferLogger_Clear(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("test1")
	l.Info("test2")
	require.Len(t, l.Messages, 2)

	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestDefault(t *testing.T) {
	original := defaultLogger
	defer func() { defaultLogger = original }()

	// Default should return a logger
	d := Default()
	assert.NotNil(t, d)

	// SetDefault should change the default
	buf := NewBufferLogger()
	SetDefault(buf)

	assert.Equal(t, buf, Default())
}

func TestLoggerInterface(t *testing.T) {
	// Verify all implementations satisfy the interface
	_ = New(&bytes.Buffer{})
	_ = Noop()
	_ = NewBufferLogger()
}

func TestNew_FormatStrings(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	// Test various format specifiers
	l.Info("int: %d, string: %s, float: %.2f", 42, "hello", 3.14159)

	output := buf.String()
	assert.True(t, strings.Contains(output, "int: 42"))
	assert.True(t, strings.Contains(output, "string: hello"))
	assert.True(t, strings.Contains(output, "float: 3.14"))
}
