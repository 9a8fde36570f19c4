// Package config loads lunar's settings.
//
// Settings come from ~/.lunar/config.toml (or --config), then environment
// variables override individual fields:
//   - LUNAR_THEME
//   - LUNAR_CONTENT
//   - LUNAR_LOG_PATH
//   - LUNAR_NO_SPLASH
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/idilsaglam/lunar/internal/loading"
	"github.com/idilsaglam/lunar/internal/router"
	"github.com/idilsaglam/lunar/internal/ui"
)

const (
	dirName  = ".lunar"
	fileName = "config.toml"
	logName  = "lunar.log"
)

var ErrInvalid = errors.New("invalid config")

// Duration lets TOML carry values like "250ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Config struct {
	Loading LoadingConfig `toml:"loading"`
	UI      UIConfig      `toml:"ui"`
	Content ContentConfig `toml:"content"`
	Log     LogConfig     `toml:"log"`
}

type LoadingConfig struct {
	Interval Duration `toml:"interval"`
	Step     int      `toml:"step"`
	Settle   Duration `toml:"settle"`
}

type UIConfig struct {
	// Theme is one of ui.ThemeNames().
	Theme string `toml:"theme"`
	// Splash shows the loading screen before the first view.
	Splash bool `toml:"splash"`
	// Start is the path opened after the splash, e.g. "/chatbot".
	Start string `toml:"start"`
}

type ContentConfig struct {
	// Path to a YAML or JSON catalog; empty uses the built-in one.
	Path  string `toml:"path"`
	Watch bool   `toml:"watch"`
}

type LogConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
	Level   string `toml:"level"`
}

func Default() Config {
	ls := loading.DefaultSettings()
	return Config{
		Loading: LoadingConfig{
			Interval: Duration{ls.Interval},
			Step:     ls.Step,
			Settle:   Duration{ls.Settle},
		},
		UI:  UIConfig{Theme: ui.DefaultTheme, Splash: true, Start: "/"},
		Log: LogConfig{Enabled: true, Level: "info"},
	}
}

// Dir is ~/.lunar.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath is ~/.lunar/config.toml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads path (DefaultPath when empty) and applies env overrides. The
// caller validates once its own overrides are in. A missing file at the
// default location is not an error. A relative content path in the file is
// taken relative to the file's directory.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !(errors.Is(err, os.ErrNotExist) && !explicit) {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if p := cfg.Content.Path; p != "" && !filepath.IsAbs(p) {
		cfg.Content.Path = filepath.Join(filepath.Dir(path), p)
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	if cfg.Log.Path == "" {
		dir, err := Dir()
		if err == nil {
			cfg.Log.Path = filepath.Join(dir, logName)
		}
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv("LUNAR_THEME")); v != "" {
		c.UI.Theme = v
	}
	if v := strings.TrimSpace(getenv("LUNAR_CONTENT")); v != "" {
		c.Content.Path = v
	}
	if v := strings.TrimSpace(getenv("LUNAR_LOG_PATH")); v != "" {
		c.Log.Path = v
	}
	if v := strings.TrimSpace(getenv("LUNAR_NO_SPLASH")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: LUNAR_NO_SPLASH=%q", ErrInvalid, v)
		}
		c.UI.Splash = !b
	}
	return nil
}

func (c Config) Validate() error {
	if err := c.LoadingSettings().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !ui.KnownTheme(c.UI.Theme) {
		return fmt.Errorf("%w: unknown theme %q (want one of %s)", ErrInvalid, c.UI.Theme, strings.Join(ui.ThemeNames(), ", "))
	}
	if _, err := router.Parse(c.UI.Start); err != nil {
		return fmt.Errorf("%w: start: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// LoadingSettings converts the [loading] section.
func (c Config) LoadingSettings() loading.Settings {
	s := loading.DefaultSettings()
	s.Interval = c.Loading.Interval.Duration
	s.Step = c.Loading.Step
	s.Settle = c.Loading.Settle.Duration
	return s
}

// StartRoute is the parsed UI.Start. Validate guarantees it parses.
func (c Config) StartRoute() router.Route {
	r, err := router.Parse(c.UI.Start)
	if err != nil {
		return router.HomeRoute()
	}
	return r
}
