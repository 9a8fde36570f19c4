package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/idilsaglam/lunar/internal/model"
	"github.com/idilsaglam/lunar/internal/ui"
)

const articleMaxWidth = 80

// articleView is the "Read More" page for one article.
type articleView struct {
	article model.Article
	vp      viewport.Model
	err     error
}

func newArticleView(a model.Article, w, h int) articleView {
	m := articleView{article: a, vp: viewport.New(w, h)}
	m.render()
	return m
}

func (m *articleView) setSize(w, h int) {
	m.vp.Width, m.vp.Height = w, max(h, 3)
	if m.article.ID != 0 {
		m.render()
	}
}

func (m *articleView) render() {
	out, err := ui.Markdown(m.article.Markdown(), min(m.vp.Width, articleMaxWidth)-2)
	m.err = err
	if err != nil {
		// fall back to the raw text
		out = m.article.Markdown()
	}
	m.vp.SetContent(out)
}

func (m articleView) Update(msg tea.Msg) (articleView, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(k, keys.Back) || k.String() == "backspace" {
			return m, back
		}
		if key.Matches(k, keys.Exit) {
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m articleView) View() string {
	t := ui.Current()
	return t.Accent.Render("← Back") + "\n" + m.vp.View()
}

func (m articleView) helpKeys() helpKeys {
	return helpKeys{keys.Up, keys.Down, keys.Back, keys.Exit}
}
