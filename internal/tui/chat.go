package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/idilsaglam/lunar/internal/model"
	"github.com/idilsaglam/lunar/internal/router"
	"github.com/idilsaglam/lunar/internal/ui"
)

const (
	chatPending  = "Chat functionality will be implemented with your provided API links"
	chatNotSent  = "Not sent: the assistant is not connected yet."
	chatBubbleW  = 60
	chatMinWidth = 20
)

// chatView is the persona chat screen. No messages are exchanged: the
// greeting is fixed and Send only reports that chat is not connected.
type chatView struct {
	profile model.Profile
	input   textinput.Model
	status  string
	width   int
	height  int
}

func newChatView(p model.Profile) chatView {
	in := textinput.New()
	in.Placeholder = "Type your message here..."
	in.Prompt = "› "
	in.CharLimit = 500
	in.Width = chatBubbleW
	in.Focus()
	return chatView{profile: p, input: in, width: 80, height: 24}
}

func (m *chatView) setSize(w, h int) {
	m.width, m.height = w, h
	m.input.Width = max(min(w-12, chatBubbleW), chatMinWidth)
}

func (m chatView) Update(msg tea.Msg) (chatView, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Back):
			return m, navigate(router.ProfilesRoute())
		case key.Matches(k, keys.Enter):
			if strings.TrimSpace(m.input.Value()) == "" {
				m.status = ""
				return m, nil
			}
			m.status = chatNotSent
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatView) View() string {
	t := ui.Current()
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		t.Accent.Render("← Back"), "   ", t.Title.Render(m.profile.ChatTitle()))

	bubbleW := min(chatBubbleW, max(m.width-6, chatMinWidth))
	bubble := lipgloss.NewStyle().
		Border(t.BorderShape).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Width(bubbleW).
		Render(t.Subtitle.Render(m.profile.Name()) + "\n" + t.Text.Render(m.profile.Greeting()))

	pending := lipgloss.NewStyle().Width(bubbleW).Align(lipgloss.Center).Render(t.Muted.Render(chatPending))

	inputBox := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Border(t.BorderShape).BorderForeground(t.BorderColor).Render(m.input.View()),
		" ", t.Button.Render("Send"))

	parts := []string{header, "", bubble, "", pending}
	// push the input to the bottom like a chat window
	used := lipgloss.Height(strings.Join(parts, "\n")) + lipgloss.Height(inputBox) + 1
	if pad := m.height - used - 2; pad > 0 {
		parts = append(parts, strings.Repeat("\n", pad-1))
	}
	if m.status != "" {
		parts = append(parts, t.Error.Render(m.status))
	} else {
		parts = append(parts, "")
	}
	parts = append(parts, inputBox)
	return strings.Join(parts, "\n")
}

func (m chatView) helpKeys() helpKeys {
	return helpKeys{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		keys.Back,
		keys.Quit,
	}
}
