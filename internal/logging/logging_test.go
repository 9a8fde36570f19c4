package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewDisabled(t *testing.T) {
	l, err := New(Options{Enabled: false, Path: "/unused"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewWritesJSONWithSession(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs", "lunar.log")
	l, err := New(Options{Enabled: true, Path: p, Level: "warn"})
	require.NoError(t, err)

	l.Info("dropped")
	l.Warn("kept", zap.String("route", "/chatbot"))
	_ = l.Sync()

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "/chatbot", entry["route"])
	assert.NotEmpty(t, entry["session"])
}

func TestVerboseForcesDebug(t *testing.T) {
	p := filepath.Join(t.TempDir(), "lunar.log")
	l, err := New(Options{Enabled: true, Path: p, Level: "error", Verbose: true})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("whatever"))
}
