package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/idilsaglam/lunar/internal/loading"
	"github.com/idilsaglam/lunar/internal/ui"
)

const (
	starCount = 100
	starSeed  = 28
	barWidth  = 32
)

type loadingView struct {
	settings loading.Settings
	progress loading.Progress
	settling bool
	width    int
	height   int
	stars    []loading.Star
}

func newLoadingView(s loading.Settings) loadingView {
	return loadingView{settings: s, progress: loading.New(s)}
}

func (m loadingView) Init() tea.Cmd { return m.tick() }

func (m loadingView) tick() tea.Cmd {
	return tea.Tick(m.settings.Interval, func(time.Time) tea.Msg { return loadTickMsg{} })
}

func (m loadingView) settle() tea.Cmd {
	if m.settings.Settle <= 0 {
		return func() tea.Msg { return loadedMsg{} }
	}
	return tea.Tick(m.settings.Settle, func(time.Time) tea.Msg { return loadedMsg{} })
}

func (m loadingView) Update(msg tea.Msg) (loadingView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.stars = loading.Starfield(starSeed, m.width, m.height, starCount)
	case loadTickMsg:
		if m.settling {
			return m, nil
		}
		m.progress = m.progress.Advance()
		if m.progress.Done() {
			m.settling = true
			return m, m.settle()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m loadingView) View() string {
	t := ui.Current()
	moon := t.Moon.Render(loading.MoonGlyph(m.progress.Phase))
	block := lipgloss.JoinVertical(lipgloss.Center,
		moon,
		t.Muted.Render(loading.PhaseName(m.progress.Phase)),
		"",
		t.Title.Render("Embracing Every Phase"),
		"",
		ui.ProgressBar(m.progress.Percent, 100, barWidth),
	)
	if m.width <= 0 || m.height <= 0 {
		return block
	}
	return overlay(m.sky(), block, m.width, m.height)
}

// sky draws the star background as plain rows.
func (m loadingView) sky() []string {
	rows := make([][]rune, m.height)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", m.width))
	}
	for _, s := range m.stars {
		c := '·'
		if s.Bright {
			c = '✦'
		}
		rows[s.Y][s.X] = c
	}
	out := make([]string, len(rows))
	star := ui.Current().Star
	for i, r := range rows {
		out[i] = star.Render(string(r))
	}
	return out
}

// overlay centres block over the background rows; the rows the block
// occupies are replaced entirely.
func overlay(bg []string, block string, width, height int) string {
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
	lines := strings.Split(placed, "\n")
	for i := range lines {
		if i < len(bg) && strings.TrimSpace(lines[i]) == "" {
			lines[i] = bg[i]
		}
	}
	return strings.Join(lines, "\n")
}
