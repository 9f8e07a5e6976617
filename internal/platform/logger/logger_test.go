package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    slog.Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "warn", input: "warn", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "mixed case", input: "DeBuG", want: slog.LevelDebug},
		{name: "unknown falls back to info", input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLevel(tc.input)
			assert.Equal(t, tc.want, got)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetupWritesJSONAtConfiguredLevel(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(original)
		_ = SetLevel("info")
	})

	buf := &TestLogBuffer{}
	l, err := setup(config.ServerConfig{LogLevel: "warn"}, buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("hidden")
	l.Warn("visible", slog.String("todo_id", "abc"))

	assert.NotContains(t, buf.String(), "hidden")
	AssertLogField(t, buf, "msg", "visible")
	AssertLogField(t, buf, "todo_id", "abc")

	// The new logger is installed as default.
	slog.Error("via default")
	AssertLogContains(t, buf, "via default")
}

func TestSetupRejectsNilWriter(t *testing.T) {
	_, err := setup(config.ServerConfig{LogLevel: "info"}, nil)
	assert.Error(t, err)
}

func TestSetLevelAffectsExistingLoggers(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(original)
		_ = SetLevel("info")
	})

	buf := &TestLogBuffer{}
	l, err := setup(config.ServerConfig{LogLevel: "info"}, buf)
	require.NoError(t, err)

	l.Debug("first debug")
	assert.NotContains(t, buf.String(), "first debug")

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, slog.LevelDebug, Level())

	l.Debug("second debug")
	assert.Contains(t, buf.String(), "second debug")

	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, slog.LevelDebug, Level(), "invalid level must not change the current one")
}

func TestContextLogger(t *testing.T) {
	fallback, _ := GetTestLogger(t)
	scoped, scopedBuf := GetTestLogger(t)

	ctx := context.Background()
	assert.Nil(t, FromContext(ctx))
	assert.Same(t, fallback, FromContextOrDefault(ctx, fallback))
	assert.Same(t, slog.Default(), FromContextOrDefault(ctx, nil))

	ctx = WithLogger(ctx, scoped)
	assert.Same(t, scoped, FromContext(ctx))
	assert.Same(t, scoped, FromContextOrDefault(ctx, fallback))

	FromContextOrDefault(ctx, fallback).Info("scoped message")
	AssertLogContains(t, scopedBuf, "scoped message")
}
