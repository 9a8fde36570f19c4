// Package tui is the interactive Lunar Health app: a splash screen followed
// by routed views (home, profile selector, chat, article).
package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/idilsaglam/lunar/internal/account"
	"github.com/idilsaglam/lunar/internal/content"
	"github.com/idilsaglam/lunar/internal/loading"
	"github.com/idilsaglam/lunar/internal/router"
	"github.com/idilsaglam/lunar/internal/store/catalogstore"
	"github.com/idilsaglam/lunar/internal/ui"
	"go.uber.org/zap"
)

// Options configure the app.
type Options struct {
	Catalog content.Catalog
	Loading loading.Settings
	Splash  bool
	Start   router.Route
	Logger  *zap.Logger
	// Updates, when set, delivers reloaded catalogs.
	Updates <-chan catalogstore.Update
	Now     func() time.Time
}

// App is the root Bubble Tea model.
type App struct {
	opt     Options
	log     *zap.Logger
	history *router.History

	splash  loadingView
	loading bool

	home     homeView
	profiles profilesView
	chat     chatView
	article  articleView

	help   help.Model
	notice string
	width  int
	height int
}

func New(opt Options) App {
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Loading == (loading.Settings{}) {
		opt.Loading = loading.DefaultSettings()
	}
	a := App{
		opt:      opt,
		log:      opt.Logger,
		history:  router.NewHistory(router.HomeRoute()),
		splash:   newLoadingView(opt.Loading),
		loading:  opt.Splash,
		home:     newHomeView(opt.Catalog, opt.Now()),
		profiles: newProfilesView(),
		help:     help.New(),
		width:    80,
		height:   24,
	}
	if !a.loading {
		a.open(opt.Start)
	}
	return a
}

// Route is the route currently shown (home while the splash is up).
func (a App) Route() router.Route { return a.history.Current() }

// Loading reports whether the splash screen is showing.
func (a App) Loading() bool { return a.loading }

func (a App) Init() tea.Cmd {
	var cmds []tea.Cmd
	if a.loading {
		cmds = append(cmds, a.splash.Init())
	}
	cmds = append(cmds, waitForCatalog(a.opt.Updates))
	return tea.Batch(cmds...)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.resize()
		var cmd tea.Cmd
		a.splash, cmd = a.splash.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return a, tea.Quit
		}
		a.notice = ""

	case loadedMsg:
		a.loading = false
		a.log.Debug("splash finished", zap.Duration("duration", a.opt.Loading.Duration()))
		a.open(a.opt.Start)
		return a, nil

	case navigateMsg:
		a.open(msg.route)
		return a, nil

	case backMsg:
		r, ok := a.history.Back()
		if ok {
			a.open(r)
		}
		return a, nil

	case catalogMsg:
		if !msg.ok {
			return a, nil
		}
		if msg.update.Err != nil {
			a.log.Warn("catalog reload failed", zap.Error(msg.update.Err))
			a.notice = "Content reload failed: " + msg.update.Err.Error()
		} else {
			a.log.Info("catalog reloaded", zap.Int("articles", len(msg.update.Catalog.Articles)))
			a.opt.Catalog = msg.update.Catalog
			a.home.setCatalog(msg.update.Catalog)
			a.notice = "Content updated"
		}
		return a, waitForCatalog(a.opt.Updates)
	}

	if a.loading {
		var cmd tea.Cmd
		a.splash, cmd = a.splash.Update(msg)
		return a, cmd
	}
	return a.updateRoute(msg)
}

func (a App) updateRoute(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.Route().Kind {
	case router.Home:
		wasOpen := a.home.loginOpen
		a.home, cmd = a.home.Update(msg)
		if !wasOpen && a.home.loginOpen {
			a.log.Debug("login modal opened")
		}
		if wasOpen {
			a.logLogin()
		}
	case router.Profiles:
		a.profiles, cmd = a.profiles.Update(msg)
	case router.Chat:
		a.chat, cmd = a.chat.Update(msg)
	case router.Article:
		a.article, cmd = a.article.Update(msg)
	}
	return a, cmd
}

func (a *App) logLogin() {
	err := a.home.login.last
	if err == nil {
		return
	}
	a.home.login.last = nil
	email := account.MaskEmail(a.home.login.form().Email)
	if errors.Is(err, account.ErrSignInUnavailable) {
		a.log.Info("login submitted", zap.String("email", email), zap.Bool("remember", a.home.login.remember))
		return
	}
	a.log.Debug("login rejected", zap.String("email", email), zap.Error(err))
}

// open builds the view for r. Unknown articles fall back to home.
func (a *App) open(r router.Route) {
	a.log.Debug("navigate", zap.String("path", r.Path()))
	switch r.Kind {
	case router.Chat:
		a.chat = newChatView(r.Profile)
	case router.Article:
		art, ok := a.opt.Catalog.Article(r.ArticleID)
		if !ok {
			a.notice = "Article not found: " + r.Path()
			a.log.Warn("article not found", zap.Int("id", r.ArticleID))
			a.history.Navigate(router.HomeRoute())
			a.resize()
			return
		}
		a.article = newArticleView(art, a.width, a.bodyHeight()-1)
	case router.Home:
		a.home.loginOpen = false
	}
	if a.history.Current() != r {
		a.history.Navigate(r)
	}
	a.resize()
}

func (a App) bodyHeight() int {
	return max(a.height-2, 3)
}

func (a *App) resize() {
	h := a.bodyHeight()
	a.home.setSize(a.width, h)
	a.profiles.setSize(a.width, h)
	a.chat.setSize(a.width, h)
	a.article.setSize(a.width, h-1)
}

func (a App) View() string {
	if a.loading {
		return a.splash.View()
	}
	var body string
	var hk helpKeys
	switch a.Route().Kind {
	case router.Profiles:
		body, hk = a.profiles.View(), a.profiles.helpKeys()
	case router.Chat:
		body, hk = a.chat.View(), a.chat.helpKeys()
	case router.Article:
		body, hk = a.article.View(), a.article.helpKeys()
	default:
		body, hk = a.home.View(), a.home.helpKeys()
	}
	t := ui.Current()
	status := a.help.View(hk)
	if a.notice != "" {
		status = t.Accent.Render(a.notice) + "  " + status
	}
	return body + "\n" + status
}

// Run starts the program on the alternate screen and blocks until it quits.
func Run(opt Options) error {
	p := tea.NewProgram(New(opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
