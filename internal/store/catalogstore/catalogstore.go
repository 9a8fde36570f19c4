package catalogstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/lunar/internal/content"
)

// File-backed catalog overrides. Read-only at runtime; Save only serves
// `lunar content export`.

// Load reads the catalog at path. An empty path means the built-in catalog.
func Load(path string) (content.Catalog, error) {
	if path == "" {
		return content.Default(), nil
	}
	f, err := content.FormatFor(path)
	if err != nil {
		return content.Catalog{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return content.Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
		}
		return content.Catalog{}, fmt.Errorf("read file: %w", err)
	}
	c, err := content.Decode(b, f)
	if err != nil {
		return content.Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path, choosing the encoding from the extension.
func Save(path string, c content.Catalog) error {
	f, err := content.FormatFor(path)
	if err != nil {
		return err
	}
	b, err := content.Encode(c, f)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
