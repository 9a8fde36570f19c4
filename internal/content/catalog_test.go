package content

import (
	"testing"

	"github.com/idilsaglam/lunar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Equal(t, "Lunar Health", c.Brand)
	require.Len(t, c.Articles, 3)
	assert.Equal(t, "Understanding PCOS: Symptoms & Management", c.Articles[0].Title)
	assert.Equal(t, model.CategoryBreast, c.Articles[2].Category)
	assert.Len(t, c.News, 3)
	assert.Len(t, c.Facts, 3)
	assert.Equal(t, "PCOS affects approximately 1 in 10 women of childbearing age", c.Facts[0])
	assert.Equal(t, []string{"Get Started", "Learn More"}, c.Hero.Actions)
}

func TestValidate(t *testing.T) {
	base := Default()

	tests := []struct {
		name   string
		mutate func(c *Catalog)
		want   error
	}{
		{"ok", func(c *Catalog) {}, nil},
		{"no articles", func(c *Catalog) { c.Articles = nil }, ErrEmptyCatalog},
		{"duplicate id", func(c *Catalog) { c.Articles[1].ID = c.Articles[0].ID }, ErrDuplicateID},
		{"zero id", func(c *Catalog) { c.Articles[0].ID = 0 }, ErrInvalidArticle},
		{"blank title", func(c *Catalog) { c.Articles[0].Title = "  " }, ErrInvalidArticle},
		{"bad category", func(c *Catalog) { c.Articles[0].Category = "Other" }, ErrInvalidArticle},
		{"blank fact", func(c *Catalog) { c.Facts = append(c.Facts, "") }, ErrInvalidArticle},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			c.Articles = append([]model.Article(nil), base.Articles...)
			c.Facts = append([]string(nil), base.Facts...)
			tc.mutate(&c)
			err := c.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEncodeDecodeJSON(t *testing.T) {
	b, err := Encode(Default(), FormatJSON)
	require.NoError(t, err)
	c, err := Decode(b, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte("articles: ["), FormatYAML)
	assert.Error(t, err)

	_, err = Decode([]byte("{}"), FormatJSON)
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = Decode(nil, "toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("site.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatFor("/tmp/site.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = FormatFor("site.txt")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLookupAndGroup(t *testing.T) {
	c := Default()
	a, ok := c.Article(2)
	require.True(t, ok)
	assert.Equal(t, model.CategoryPCOD, a.Category)

	_, ok = c.Article(42)
	assert.False(t, ok)

	groups := c.ByCategory()
	assert.Len(t, groups[model.CategoryPCOS], 1)
	assert.Len(t, groups[model.CategoryBreast], 1)
}
