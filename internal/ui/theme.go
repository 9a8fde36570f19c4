package ui

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const DefaultTheme = "lunar"

// Theme bundles palette, symbols and the Glamour style used for Markdown.
// All UI helpers pull from Current().
type Theme struct {
	Name string

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Button   lipgloss.Style
	Border   lipgloss.Style
	Star     lipgloss.Style
	Moon     lipgloss.Style

	BorderColor lipgloss.TerminalColor
	BorderShape lipgloss.Border

	SymOK, SymFail, SymBullet, SymStar string
	BoxChecked, BoxUnchecked           string
	BarFull, BarEmpty                  string

	Markdown string // glamour standard style name
	Colors   bool   // false disables category gradients
}

var (
	mu      sync.RWMutex
	current = themes[DefaultTheme]()
)

var themes = map[string]func() Theme{
	"lunar": func() Theme {
		return Theme{
			Name:     "lunar",
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("219")),
			Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("183")),
			Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("103")),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
			Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("97")),
			Button:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("162")).Padding(0, 2),
			Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("61")),
			Star:     lipgloss.NewStyle().Foreground(lipgloss.Color("230")),
			Moon:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")),

			BorderColor: lipgloss.Color("61"),
			BorderShape: lipgloss.RoundedBorder(),

			SymOK: "✔", SymFail: "✖", SymBullet: "•", SymStar: "★",
			BoxChecked: "☑", BoxUnchecked: "☐",
			BarFull: "█", BarEmpty: "░",
			Markdown: "dark",
			Colors:   true,
		}
	},
	"classic": func() Theme {
		return Theme{
			Name:     "classic",
			Title:    lipgloss.NewStyle().Bold(true),
			Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Text:     lipgloss.NewStyle(),
			Muted:    lipgloss.NewStyle().Faint(true),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Button:   lipgloss.NewStyle().Reverse(true).Padding(0, 2),
			Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Star:     lipgloss.NewStyle().Faint(true),
			Moon:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

			BorderColor: lipgloss.Color("8"),
			BorderShape: lipgloss.NormalBorder(),

			SymOK: "✔", SymFail: "✖", SymBullet: "•", SymStar: "*",
			BoxChecked: "☑", BoxUnchecked: "☐",
			BarFull: "█", BarEmpty: "░",
			Markdown: "light",
			Colors:   true,
		}
	},
	"mono": func() Theme {
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain, Subtitle: plain, Text: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Border: plain, Star: plain, Moon: plain,
			Selected: lipgloss.NewStyle().Reverse(true),
			Button:   plain,

			BorderColor: lipgloss.NoColor{},
			BorderShape: lipgloss.Border{
				Top: "-", Bottom: "-", Left: "|", Right: "|",
				TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
			},

			SymOK: "ok", SymFail: "x", SymBullet: "-", SymStar: "*",
			BoxChecked: "[x]", BoxUnchecked: "[ ]",
			BarFull: "#", BarEmpty: "-",
			Markdown: "notty",
		}
	},
}

// ThemeNames lists the available themes, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func KnownTheme(name string) bool {
	_, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// SetTheme switches the current theme.
func SetTheme(name string) error {
	mk, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	mu.Lock()
	current = mk()
	mu.Unlock()
	return nil
}

// Current returns the active theme.
func Current() Theme {
	mu.RLock()
	defer mu.RUnlock()
	return current
}
