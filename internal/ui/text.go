package ui

import (
	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"
)

// Truncate shortens s to at most width terminal cells, adding "…".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// Markdown renders md for a terminal of the given width using the theme's
// Glamour style.
func Markdown(md string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(Current().Markdown),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
