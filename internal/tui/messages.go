package tui

import (
	"github.com/idilsaglam/lunar/internal/router"
	"github.com/idilsaglam/lunar/internal/store/catalogstore"

	tea "github.com/charmbracelet/bubbletea"
)

// navigateMsg asks the app to open a route.
type navigateMsg struct{ route router.Route }

// backMsg asks the app to go back one step.
type backMsg struct{}

// loadTickMsg advances the splash counter.
type loadTickMsg struct{}

// loadedMsg ends the splash.
type loadedMsg struct{}

// catalogMsg carries a reloaded catalog from the watcher. A closed watcher
// sends ok=false.
type catalogMsg struct {
	update catalogstore.Update
	ok     bool
}

func navigate(r router.Route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{route: r} }
}

func back() tea.Msg { return backMsg{} }

func waitForCatalog(ch <-chan catalogstore.Update) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-ch
		return catalogMsg{update: u, ok: ok}
	}
}
