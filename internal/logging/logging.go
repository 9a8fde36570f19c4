// Package logging builds the zap logger. The TUI owns the terminal, so logs
// go to a file as JSON lines, tagged with a per-run session id.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configure New.
type Options struct {
	Enabled bool
	Path    string
	Level   string // debug | info | warn | error
	Verbose bool   // forces debug
}

// New returns a file logger, or a no-op logger when disabled or no path is set.
func New(opt Options) (*zap.Logger, error) {
	if !opt.Enabled || opt.Path == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(opt.Path), 0o700); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{opt.Path}
	cfg.ErrorOutputPaths = []string{opt.Path}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(opt.Level))
	if opt.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.With(zap.String("session", uuid.NewString())), nil
}

// ParseLevel maps a level name to zap; unknown names mean info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}
