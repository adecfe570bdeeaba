package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_TextLevelFilter(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Setup(Config{Level: "warn", Writer: &buf}))

	slog.Info("hidden")
	slog.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Setup(Config{JSON: true, Writer: &buf}))

	slog.Info("answer computed", "value", 35)

	assert.Contains(t, buf.String(), `"value":35`)
}

func TestSetup_UnknownLevel(t *testing.T) {
	assert.Error(t, Setup(Config{Level: "loud"}))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
