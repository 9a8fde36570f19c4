package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/idilsaglam/lunar/internal/account"
	"github.com/idilsaglam/lunar/internal/content"
	"github.com/idilsaglam/lunar/internal/model"
	"github.com/idilsaglam/lunar/internal/router"
	"github.com/idilsaglam/lunar/internal/ui"
)

const (
	cardWidth       = 34
	sideBySideWidth = 3*cardWidth + 8
)

type homeView struct {
	catalog content.Catalog
	year    int

	focus     int // 0..len(articles)-1 are cards, len(articles) is the subscribe box
	subscribe textinput.Model
	subNote   string
	subErr    string

	login     loginModal
	loginOpen bool

	vp      viewport.Model
	anchors []int
	width   int
}

func newHomeView(c content.Catalog, now time.Time) homeView {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "Your email"
	in.CharLimit = 254
	in.Width = 28

	m := homeView{
		catalog:   c,
		year:      now.Year(),
		subscribe: in,
		vp:        viewport.New(80, 20),
		width:     80,
	}
	m.refresh()
	return m
}

func (m homeView) focusables() int { return len(m.catalog.Articles) + 1 }

func (m homeView) subscribeFocused() bool { return m.focus == len(m.catalog.Articles) }

// setCatalog swaps in reloaded content, keeping focus in range.
func (m *homeView) setCatalog(c content.Catalog) {
	m.catalog = c
	if m.focus >= m.focusables() {
		m.focus = m.focusables() - 1
	}
	m.syncInputFocus()
	m.refresh()
}

func (m *homeView) setSize(w, h int) {
	m.width = w
	m.vp.Width = w
	m.vp.Height = max(h, 3)
	m.refresh()
}

func (m *homeView) openLogin() {
	m.login = newLoginModal()
	m.loginOpen = true
}

func (m *homeView) syncInputFocus() {
	if m.subscribeFocused() {
		m.subscribe.Focus()
	} else {
		m.subscribe.Blur()
	}
}

func (m *homeView) moveFocus(delta int) {
	n := m.focusables()
	m.focus = ((m.focus+delta)%n + n) % n
	m.syncInputFocus()
	m.refresh()
	if m.focus < len(m.anchors) {
		a := m.anchors[m.focus]
		if a < m.vp.YOffset || a >= m.vp.YOffset+m.vp.Height {
			m.vp.SetYOffset(a)
		}
	}
}

func (m homeView) Update(msg tea.Msg) (homeView, tea.Cmd) {
	if m.loginOpen {
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		if m.login.closed {
			m.loginOpen = false
		}
		return m, cmd
	}

	k, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(k, keys.Next):
			m.moveFocus(1)
			return m, nil
		case key.Matches(k, keys.Prev):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(k, keys.Enter):
			if m.subscribeFocused() {
				m.submitSubscribe()
				m.refresh()
				return m, nil
			}
			a := m.catalog.Articles[m.focus]
			return m, navigate(router.ArticleRoute(a.ID))
		}

		if m.subscribeFocused() {
			if key.Matches(k, keys.Back) {
				m.focus = 0
				m.syncInputFocus()
				m.refresh()
				return m, nil
			}
			var cmd tea.Cmd
			m.subscribe, cmd = m.subscribe.Update(msg)
			m.refresh()
			return m, cmd
		}

		switch {
		case key.Matches(k, keys.Login):
			m.openLogin()
			return m, nil
		case key.Matches(k, keys.Chat):
			return m, navigate(router.ProfilesRoute())
		case key.Matches(k, keys.Exit):
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *homeView) submitSubscribe() {
	err := account.Subscribe(m.subscribe.Value())
	m.subNote, m.subErr = "", ""
	switch {
	case errors.Is(err, account.ErrSubscribeUnavailable):
		m.subNote = "Thanks! Newsletter sign-up opens soon."
		m.subscribe.SetValue("")
	case err != nil:
		m.subErr = err.Error()
	}
}

func (m *homeView) refresh() {
	body, anchors := m.render()
	m.anchors = anchors
	m.vp.SetContent(body)
}

func (m homeView) View() string {
	if m.loginOpen {
		return lipgloss.Place(m.vp.Width, m.vp.Height, lipgloss.Center, lipgloss.Center, m.login.View())
	}
	return m.vp.View()
}

func (m homeView) helpKeys() helpKeys {
	if m.loginOpen {
		return m.login.helpKeys()
	}
	if m.subscribeFocused() {
		return helpKeys{keys.Next, keys.Enter, keys.Back}
	}
	return helpKeys{keys.Next, keys.Enter, keys.Login, keys.Chat, keys.Up, keys.Down, keys.Exit}
}

// render lays out the page and reports the line where each focusable starts.
func (m homeView) render() (string, []int) {
	t := ui.Current()
	w := max(m.width-2, 20)
	var sections []string
	anchors := make([]int, m.focusables())
	lineCount := func() int {
		n := 0
		for _, s := range sections {
			n += lipgloss.Height(s)
		}
		return n
	}

	sections = append(sections, m.header(w), "")
	sections = append(sections, m.hero(w), "")

	articlesHeader := lipgloss.JoinHorizontal(lipgloss.Top,
		t.Subtitle.Bold(true).Render("Featured Articles"), "   ", t.Accent.Render("View All →"))
	sections = append(sections, articlesHeader, "")

	if w >= sideBySideWidth {
		cards := make([]string, len(m.catalog.Articles))
		start := lineCount()
		for i, a := range m.catalog.Articles {
			cards[i] = m.card(a, i == m.focus, cardWidth)
			anchors[i] = start
		}
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, spaced(cards, "  ")...))
	} else {
		for i, a := range m.catalog.Articles {
			anchors[i] = lineCount()
			sections = append(sections, m.card(a, i == m.focus, min(w, 60)))
		}
	}
	sections = append(sections, "")

	news := m.list("🔔 Latest News", t.SymBullet, m.catalog.News, min(w, 50))
	facts := m.list("♥ Fun Facts", t.SymStar, m.catalog.Facts, min(w, 50))
	if w >= 2*50+4 {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, news, "    ", facts))
	} else {
		sections = append(sections, news, "", facts)
	}
	sections = append(sections, "")

	anchors[len(anchors)-1] = lineCount()
	sections = append(sections, m.footer(w))

	return strings.Join(sections, "\n"), anchors
}

func spaced(items []string, gap string) []string {
	out := make([]string, 0, 2*len(items))
	for i, s := range items {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, s)
	}
	return out
}

func (m homeView) header(w int) string {
	t := ui.Current()
	brand := t.Moon.Render("☾ ") + t.Title.Render(m.catalog.Brand)
	nav := t.Muted.Render(strings.Join(m.catalog.Nav, "  ·  "))
	login := t.Button.Render("Log In (l)")
	left := lipgloss.JoinHorizontal(lipgloss.Top, brand, "    ", nav)
	gap := w - lipgloss.Width(left) - lipgloss.Width(login)
	if gap < 2 {
		return lipgloss.JoinVertical(lipgloss.Left, brand, nav, login)
	}
	return left + strings.Repeat(" ", gap) + login
}

func (m homeView) hero(w int) string {
	t := ui.Current()
	hw := min(w, 72)
	var buttons []string
	for i, a := range m.catalog.Hero.Actions {
		if i == 0 {
			buttons = append(buttons, t.Button.Render(a))
		} else {
			buttons = append(buttons, t.Accent.Render("[ "+a+" ]"))
		}
	}
	return lipgloss.NewStyle().Width(hw).Render(lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(m.catalog.Hero.Title),
		"",
		t.Text.Render(m.catalog.Hero.Body),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, spaced(buttons, "  ")...),
	))
}

func (m homeView) card(a model.Article, focused bool, width int) string {
	t := ui.Current()
	inner := width - 4
	banner := categoryBanner(a.Category, inner)
	body := lipgloss.JoinVertical(lipgloss.Left,
		banner,
		"",
		lipgloss.NewStyle().Width(inner).Render(t.Title.Render(a.Title)),
		"",
		lipgloss.NewStyle().Width(inner).Render(t.Muted.Render(a.Excerpt)),
		"",
		t.Accent.Render("Read More →"),
	)
	border := lipgloss.NewStyle().
		Border(t.BorderShape).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Width(width - 2)
	if focused {
		border = border.Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("213"))
		if !t.Colors {
			border = border.Border(lipgloss.DoubleBorder())
		}
	}
	return border.Render(body)
}

// categoryBanner stands in for the article image: a two-colour band with
// the category glyph and label.
func categoryBanner(c model.Category, width int) string {
	t := ui.Current()
	label := c.Glyph() + "  " + string(c)
	if !t.Colors {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, label)
	}
	from, to := c.Gradient()
	half := width / 2
	left := lipgloss.NewStyle().Background(lipgloss.Color(from)).Width(half)
	right := lipgloss.NewStyle().Background(lipgloss.Color(to)).Width(width - half)
	row := func(s string) string {
		return left.Render("") + right.Render("") + s
	}
	mid := lipgloss.NewStyle().
		Background(lipgloss.Color(from)).
		Foreground(lipgloss.Color("231")).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Render(label)
	return lipgloss.JoinVertical(lipgloss.Left, row(""), mid, row(""))
}

func (m homeView) list(title, bullet string, items []string, width int) string {
	t := ui.Current()
	lines := []string{t.Subtitle.Bold(true).Render(title), ""}
	for _, it := range items {
		lines = append(lines, lipgloss.NewStyle().Width(width).Render(t.Accent.Render(bullet)+" "+t.Text.Render(it)))
	}
	return strings.Join(lines, "\n")
}

func (m homeView) footer(w int) string {
	t := ui.Current()
	col := func(title string, items []string) string {
		lines := []string{t.Subtitle.Bold(true).Render(title)}
		for _, it := range items {
			lines = append(lines, t.Muted.Render(it))
		}
		return strings.Join(lines, "\n")
	}
	brand := lipgloss.NewStyle().Width(30).Render(
		t.Moon.Render("☾ ") + t.Title.Render(m.catalog.Brand) + "\n" + t.Muted.Render(m.catalog.Tagline))

	field := m.subscribe.View()
	if m.subscribeFocused() {
		field = t.Selected.Render(" ") + field
	}
	subLines := []string{
		t.Subtitle.Bold(true).Render("Subscribe"),
		t.Muted.Render(m.catalog.Footer.Subscribe),
		field + " " + t.Button.Render("→"),
	}
	if m.subErr != "" {
		subLines = append(subLines, t.Error.Render(t.SymFail+" "+m.subErr))
	}
	if m.subNote != "" {
		subLines = append(subLines, t.Success.Render(m.subNote))
	}
	subscribe := strings.Join(subLines, "\n")

	cols := []string{brand, col("Quick Links", m.catalog.Footer.QuickLinks), col("Health Topics", m.catalog.Footer.Topics), subscribe}
	var top string
	if w >= 110 {
		top = lipgloss.JoinHorizontal(lipgloss.Top, spaced(cols, "    ")...)
	} else {
		top = lipgloss.JoinVertical(lipgloss.Left, spaced(cols, "")...)
	}
	copyright := t.Muted.Render(fmt.Sprintf("© %d %s. All rights reserved.", m.year, m.catalog.Brand))
	return lipgloss.JoinVertical(lipgloss.Left, top, "", copyright)
}
