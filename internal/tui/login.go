package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/idilsaglam/lunar/internal/account"
	"github.com/idilsaglam/lunar/internal/ui"
)

const (
	loginEmail = iota
	loginPassword
	loginRemember
	loginSubmit
	loginFields
)

type loginModal struct {
	email    textinput.Model
	password textinput.Model
	remember bool
	focus    int
	closed   bool

	err    string
	notice string

	// last holds the most recent submission outcome for logging.
	last error
}

func newLoginModal() loginModal {
	e := textinput.New()
	e.Prompt = ""
	e.Placeholder = "you@example.com"
	e.CharLimit = 254
	e.Width = 32

	p := textinput.New()
	p.Prompt = ""
	p.Placeholder = "••••••••"
	p.EchoMode = textinput.EchoPassword
	p.EchoCharacter = '•'
	p.CharLimit = 128
	p.Width = 32

	m := loginModal{email: e, password: p}
	m.email.Focus()
	return m
}

func (m loginModal) form() account.LoginForm {
	return account.LoginForm{
		Email:    strings.TrimSpace(m.email.Value()),
		Password: m.password.Value(),
		Remember: m.remember,
	}
}

func (m *loginModal) setFocus(i int) {
	m.focus = (i + loginFields) % loginFields
	m.email.Blur()
	m.password.Blur()
	switch m.focus {
	case loginEmail:
		m.email.Focus()
	case loginPassword:
		m.password.Focus()
	}
}

func (m loginModal) Update(msg tea.Msg) (loginModal, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Back):
			m.closed = true
			return m, nil
		case key.Matches(k, keys.Next), k.String() == "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(k, keys.Prev), k.String() == "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(k, keys.Toggle) && m.focus == loginRemember:
			m.remember = !m.remember
			return m, nil
		case key.Matches(k, keys.Enter):
			if m.focus == loginRemember {
				m.remember = !m.remember
				return m, nil
			}
			if m.focus == loginEmail {
				m.setFocus(loginPassword)
				return m, nil
			}
			m.submit()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case loginEmail:
		m.email, cmd = m.email.Update(msg)
	case loginPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *loginModal) submit() {
	err := m.form().Submit()
	m.last = err
	m.err, m.notice = "", ""
	if errors.Is(err, account.ErrSignInUnavailable) {
		m.notice = "Thanks! Sign-in is not available yet."
		return
	}
	if err != nil {
		m.err = err.Error()
		if errors.Is(err, account.ErrEmptyPassword) {
			m.setFocus(loginPassword)
		} else {
			m.setFocus(loginEmail)
		}
	}
}

func (m loginModal) View() string {
	t := ui.Current()
	label := func(i int, s string) string {
		if m.focus == i {
			return t.Accent.Render(s)
		}
		return t.Muted.Render(s)
	}
	box := t.BoxUnchecked
	if m.remember {
		box = t.BoxChecked
	}
	remember := box + " Remember me"
	if m.focus == loginRemember {
		remember = t.Selected.Render(remember)
	}
	button := t.Button.Render("Log In")
	if m.focus == loginSubmit {
		button = t.Selected.Render(" Log In ")
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, t.Title.Render("Log In"), "                         ", t.Muted.Render("✕ esc")),
		"",
		label(loginEmail, "Email"),
		m.email.View(),
		"",
		label(loginPassword, "Password"),
		m.password.View(),
		"",
		remember + "     " + t.Accent.Render("Forgot password?"),
		"",
		button,
	}
	if m.err != "" {
		lines = append(lines, "", t.Error.Render(t.SymFail+" "+m.err))
	}
	if m.notice != "" {
		lines = append(lines, "", t.Success.Render(m.notice))
	}
	lines = append(lines, "", t.Muted.Render("Don't have an account? ")+t.Accent.Render("Sign up"))

	return lipgloss.NewStyle().
		Border(t.BorderShape).
		BorderForeground(t.BorderColor).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))
}

func (m loginModal) helpKeys() helpKeys {
	return helpKeys{keys.Next, keys.Toggle, keys.Enter, keys.Back}
}
