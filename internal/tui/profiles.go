package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/idilsaglam/lunar/internal/model"
	"github.com/idilsaglam/lunar/internal/router"
	"github.com/idilsaglam/lunar/internal/ui"
)

// profileItem adapts model.Profile to list.Item.
type profileItem struct{ profile model.Profile }

func (i profileItem) Title() string       { return i.profile.Name() }
func (i profileItem) Description() string { return i.profile.Tagline() }
func (i profileItem) FilterValue() string { return i.profile.Name() }

// profileDelegate renders each persona as a small card: avatar on the left,
// name and tagline on the right.
type profileDelegate struct{}

func (d profileDelegate) Height() int                             { return 3 }
func (d profileDelegate) Spacing() int                            { return 1 }
func (d profileDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d profileDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(profileItem)
	if !ok {
		return
	}
	t := ui.Current()
	avatar := lipgloss.NewStyle().Width(10).Render(t.Accent.Render(it.profile.Avatar()))
	name := t.Title.Render(it.profile.Name())
	prefix := "  "
	if index == m.Index() {
		name = t.Selected.Render(" " + it.profile.Name() + " ")
		prefix = t.Accent.Render("> ")
	}
	text := lipgloss.JoinVertical(lipgloss.Left, name, t.Muted.Render(it.profile.Tagline()))
	card := lipgloss.JoinHorizontal(lipgloss.Top, avatar, "  ", text)

	lines := strings.Split(card, "\n")
	for i := range lines {
		if i == 1 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = "  " + lines[i]
		}
	}
	for len(lines) < d.Height() {
		lines = append(lines, "")
	}
	fmt.Fprint(w, strings.Join(lines[:d.Height()], "\n"))
}

type profilesView struct {
	list list.Model
}

func newProfilesView() profilesView {
	items := make([]list.Item, 0, 2)
	for _, p := range model.Profiles() {
		items = append(items, profileItem{profile: p})
	}
	l := list.New(items, profileDelegate{}, 60, 12)
	l.Title = "Choose Your Guide"
	l.Styles.Title = ui.Current().Title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	return profilesView{list: l}
}

func (m *profilesView) setSize(w, h int) {
	m.list.SetSize(w, max(h-2, 8))
}

// Selected is the highlighted persona.
func (m profilesView) Selected() model.Profile {
	if it, ok := m.list.SelectedItem().(profileItem); ok {
		return it.profile
	}
	return model.ProfileBunny
}

func (m profilesView) Update(msg tea.Msg) (profilesView, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Enter):
			return m, navigate(router.ChatRoute(m.Selected()))
		case key.Matches(k, keys.Back), k.String() == "b":
			return m, navigate(router.HomeRoute())
		case key.Matches(k, keys.Exit):
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m profilesView) View() string {
	t := ui.Current()
	return m.list.View() + "\n" + t.Muted.Render("  ← ") + t.Accent.Render("Back to Home") + t.Muted.Render(" (b)")
}

func (m profilesView) helpKeys() helpKeys {
	return helpKeys{keys.Up, keys.Down, keys.Enter, keys.Back, keys.Exit}
}
