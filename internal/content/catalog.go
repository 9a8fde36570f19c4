// Package content holds the static catalog rendered by the views: hero copy,
// featured articles, news flashes and fun facts.
package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/idilsaglam/lunar/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	ErrEmptyCatalog   = errors.New("catalog has no articles")
	ErrDuplicateID    = errors.New("duplicate article id")
	ErrInvalidArticle = errors.New("invalid article")
	ErrUnknownFormat  = errors.New("unknown catalog format")
)

// Format is the on-disk encoding of a catalog.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks a format from a file name extension.
func FormatFor(name string) (Format, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML, nil
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, name)
}

type Hero struct {
	Title   string   `yaml:"title" json:"title"`
	Body    string   `yaml:"body" json:"body"`
	Actions []string `yaml:"actions" json:"actions"`
}

type Footer struct {
	QuickLinks []string `yaml:"quick_links" json:"quick_links"`
	Topics     []string `yaml:"topics" json:"topics"`
	Subscribe  string   `yaml:"subscribe" json:"subscribe"`
}

// Catalog is everything the home view shows.
type Catalog struct {
	Brand    string          `yaml:"brand" json:"brand"`
	Tagline  string          `yaml:"tagline" json:"tagline"`
	Nav      []string        `yaml:"nav" json:"nav"`
	Hero     Hero            `yaml:"hero" json:"hero"`
	Articles []model.Article `yaml:"articles" json:"articles"`
	News     []string        `yaml:"news" json:"news"`
	Facts    []string        `yaml:"facts" json:"facts"`
	Footer   Footer          `yaml:"footer" json:"footer"`
}

// Default returns the built-in catalog. It panics only if the embedded
// file is broken, which the package tests guard against.
func Default() Catalog {
	c, err := Decode(defaultCatalog, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded catalog: %v", err))
	}
	return c
}

// Decode parses and validates a catalog.
func Decode(b []byte, f Format) (Catalog, error) {
	var c Catalog
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Catalog{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(b, &c); err != nil {
			return Catalog{}, fmt.Errorf("json unmarshal: %w", err)
		}
	default:
		return Catalog{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Encode serialises the catalog.
func Encode(c Catalog, f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		b, err := yaml.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("yaml marshal: %w", err)
		}
		return b, nil
	case FormatJSON:
		b, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("json marshal: %w", err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Validate checks the catalog invariants.
func (c Catalog) Validate() error {
	if len(c.Articles) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[int]bool, len(c.Articles))
	for i, a := range c.Articles {
		if a.ID <= 0 {
			return fmt.Errorf("%w: #%d has id %d", ErrInvalidArticle, i+1, a.ID)
		}
		if seen[a.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, a.ID)
		}
		seen[a.ID] = true
		if strings.TrimSpace(a.Title) == "" {
			return fmt.Errorf("%w: %d has no title", ErrInvalidArticle, a.ID)
		}
		if !a.Category.Known() {
			return fmt.Errorf("%w: %d has unknown category %q", ErrInvalidArticle, a.ID, a.Category)
		}
	}
	for _, s := range append(append([]string{}, c.News...), c.Facts...) {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: blank news or fact entry", ErrInvalidArticle)
		}
	}
	return nil
}

// Article looks up an article by id.
func (c Catalog) Article(id int) (model.Article, bool) {
	for _, a := range c.Articles {
		if a.ID == id {
			return a, true
		}
	}
	return model.Article{}, false
}

// ByCategory groups articles, preserving catalog order inside each group.
func (c Catalog) ByCategory() map[model.Category][]model.Article {
	out := make(map[model.Category][]model.Article)
	for _, a := range c.Articles {
		out[a.Category] = append(out[a.Category], a)
	}
	return out
}
