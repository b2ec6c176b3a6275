package logger

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("Should return logger from context when present", func(t *testing.T) {
		expected := NewLogger(TestConfig())
		ctx := ContextWithLogger(context.Background(), expected)

		assert.Equal(t, expected, FromContext(ctx))
	})

	t.Run("Should return no-op logger when context has none", func(t *testing.T) {
		l := FromContext(context.Background())

		require.NotNil(t, l)
		l.Info("dropped")
	})

	t.Run("Should return no-op logger when wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), LoggerCtxKey, "not a logger")

		require.NotNil(t, FromContext(ctx))
	})
}

func TestLogLevel_ToCharmlogLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected int
	}{
		{DebugLevel, -4},
		{InfoLevel, 0},
		{WarnLevel, 4},
		{ErrorLevel, 8},
		{DisabledLevel, math.MaxInt32},
		{LogLevel("verbose"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, int(tt.level.ToCharmlogLevel()))
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("Should write text output", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: InfoLevel, Output: &buf, TimeFormat: "15:04:05"})

		l.Info("normalized", "file", "_toc.yml")

		assert.Contains(t, buf.String(), "normalized")
		assert.Contains(t, buf.String(), "_toc.yml")
	})

	t.Run("Should write JSON output", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: InfoLevel, Output: &buf, JSON: true, TimeFormat: "15:04:05"})

		l.Warn("skipped")

		assert.Contains(t, buf.String(), `"msg":"skipped"`)
	})

	t.Run("Should filter below level", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: WarnLevel, Output: &buf, TimeFormat: "15:04:05"})

		l.Debug("hidden debug")
		l.Info("hidden info")
		l.Error("shown error")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown error")
	})

	t.Run("Should keep fields added with With", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: InfoLevel, Output: &buf, TimeFormat: "15:04:05"})

		l.With("source", "book/_toc.yml").Info("done")

		assert.Contains(t, buf.String(), "book/_toc.yml")
	})
}
