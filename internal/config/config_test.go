package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/idilsaglam/lunar/internal/model"
	"github.com/idilsaglam/lunar/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaultsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 250*time.Millisecond, c.LoadingSettings().Interval)
	assert.Equal(t, 2, c.LoadingSettings().Step)
	assert.Equal(t, router.HomeRoute(), c.StartRoute())
}

func TestLoadFile(t *testing.T) {
	p := writeConfig(t, `
[loading]
interval = "10ms"
step = 25
settle = "0s"

[ui]
theme = "mono"
splash = false
start = "/chatbot/bunny"

[content]
path = "site.yaml"
watch = true

[log]
enabled = false
level = "debug"
`)
	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, c.Loading.Interval.Duration)
	assert.Equal(t, 25, c.Loading.Step)
	assert.Equal(t, "mono", c.UI.Theme)
	assert.False(t, c.UI.Splash)
	assert.Equal(t, router.ChatRoute(model.ProfileBunny), c.StartRoute())
	assert.Equal(t, filepath.Join(filepath.Dir(p), "site.yaml"), c.Content.Path)
	assert.True(t, c.Content.Watch)
	assert.False(t, c.Log.Enabled)
	assert.NoError(t, c.Validate())
}

func TestLoadContentPath(t *testing.T) {
	tests := map[string]struct {
		path string
		want func(dir string) string
	}{
		"relative": {"content/site.yaml", func(dir string) string { return filepath.Join(dir, "content", "site.yaml") }},
		"absolute": {"/srv/lunar/site.json", func(string) string { return "/srv/lunar/site.json" }},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p := writeConfig(t, "[content]\npath = \""+tc.path+"\"\n")
			c, err := Load(p)
			require.NoError(t, err)
			assert.Equal(t, tc.want(filepath.Dir(p)), c.Content.Path)
		})
	}
}

func TestEnvContentStaysAsGiven(t *testing.T) {
	t.Setenv("LUNAR_CONTENT", "site.yaml")
	c, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "site.yaml", c.Content.Path)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().UI, c.UI)
	assert.Contains(t, c.Log.Path, filepath.Join(".lunar", "lunar.log"))
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"theme":    "[ui]\ntheme = \"disco\"\n",
		"start":    "[ui]\nstart = \"/nowhere\"\n",
		"step":     "[loading]\nstep = 0\n",
		"interval": "[loading]\ninterval = \"-1s\"\n",
		"level":    "[log]\nlevel = \"loud\"\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := Load(writeConfig(t, body))
			require.NoError(t, err)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestLoadBadDuration(t *testing.T) {
	_, err := Load(writeConfig(t, "[loading]\ninterval = \"soon\"\n"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LUNAR_THEME", "classic")
	t.Setenv("LUNAR_CONTENT", "/tmp/site.json")
	t.Setenv("LUNAR_LOG_PATH", "/tmp/lunar.log")
	t.Setenv("LUNAR_NO_SPLASH", "true")

	c, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "classic", c.UI.Theme)
	assert.Equal(t, "/tmp/site.json", c.Content.Path)
	assert.Equal(t, "/tmp/lunar.log", c.Log.Path)
	assert.False(t, c.UI.Splash)
}

func TestEnvBadBool(t *testing.T) {
	t.Setenv("LUNAR_NO_SPLASH", "maybe")
	_, err := Load(writeConfig(t, ""))
	assert.ErrorIs(t, err, ErrInvalid)
}
