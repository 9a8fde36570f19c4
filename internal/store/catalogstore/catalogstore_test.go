package catalogstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/idilsaglam/lunar/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestLoadDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, content.Default(), c)
}

func TestSaveLoad(t *testing.T) {
	for _, name := range []string{"site.yaml", "nested/site.json"} {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), name)
			want := content.Default()
			want.Brand = "Lunar Health Test"
			require.NoError(t, Save(p, want))

			got, err := Load(p)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(filepath.Join(dir, "site.txt"))
	assert.ErrorIs(t, err, content.ErrUnknownFormat)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"articles":[]}`), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, content.ErrEmptyCatalog)
}

func TestWatchReloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, Save(p, content.Default()))

	w, err := Watch(context.Background(), p)
	require.NoError(t, err)
	defer w.Close()

	next := content.Default()
	next.Brand = "Reloaded"
	require.NoError(t, Save(p, next))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case u := <-w.Updates():
			if u.Err == nil && u.Catalog.Brand == "Reloaded" {
				require.NoError(t, w.Close())
				return
			}
		case <-deadline:
			t.Fatal("no reload within 5s")
		}
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, Save(p, content.Default()))

	ctx, cancel := context.WithCancel(context.Background())
	w, err := Watch(ctx, p)
	require.NoError(t, err)

	cancel()
	_, open := <-w.Updates()
	assert.False(t, open)
	require.NoError(t, w.Close())
}
