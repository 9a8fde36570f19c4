// Package router maps the app's client-side paths to views and keeps the
// back-navigation history.
package router

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/lunar/internal/model"
)

var (
	ErrUnknownRoute   = errors.New("unknown route")
	ErrUnknownProfile = errors.New("unknown chatbot profile")
	ErrBadArticleID   = errors.New("bad article id")
)

// Kind identifies which view a route renders.
type Kind int

const (
	Home Kind = iota
	Profiles
	Chat
	Article
)

func (k Kind) String() string {
	switch k {
	case Home:
		return "home"
	case Profiles:
		return "profiles"
	case Chat:
		return "chat"
	case Article:
		return "article"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Route is a parsed path.
type Route struct {
	Kind      Kind
	Profile   model.Profile // Chat only
	ArticleID int           // Article only
}

func HomeRoute() Route                { return Route{Kind: Home} }
func ProfilesRoute() Route            { return Route{Kind: Profiles} }
func ChatRoute(p model.Profile) Route { return Route{Kind: Chat, Profile: p} }
func ArticleRoute(id int) Route       { return Route{Kind: Article, ArticleID: id} }

// Path renders the route back to its URL-style path.
func (r Route) Path() string {
	switch r.Kind {
	case Profiles:
		return "/chatbot"
	case Chat:
		return "/chatbot/" + string(r.Profile)
	case Article:
		return "/articles/" + strconv.Itoa(r.ArticleID)
	}
	return "/"
}

func (r Route) String() string { return r.Path() }

// Parent is where "Back" leads from r.
func (r Route) Parent() Route {
	if r.Kind == Chat {
		return ProfilesRoute()
	}
	return HomeRoute()
}

// Patterns lists the supported path patterns.
func Patterns() []string {
	return []string{"/", "/chatbot", "/chatbot/:profile", "/articles/:id"}
}

// Parse resolves a path. Trailing slashes are ignored.
func Parse(path string) (Route, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		return HomeRoute(), nil
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	parts := strings.Split(strings.TrimPrefix(p, "/"), "/")

	switch {
	case p == "/":
		return HomeRoute(), nil
	case parts[0] == "chatbot" && len(parts) == 1:
		return ProfilesRoute(), nil
	case parts[0] == "chatbot" && len(parts) == 2:
		prof, ok := model.ParseProfile(parts[1])
		if !ok {
			return Route{}, fmt.Errorf("%w: %q", ErrUnknownProfile, parts[1])
		}
		return ChatRoute(prof), nil
	case parts[0] == "articles" && len(parts) == 2:
		id, err := strconv.Atoi(parts[1])
		if err != nil || id <= 0 {
			return Route{}, fmt.Errorf("%w: %q", ErrBadArticleID, parts[1])
		}
		return ArticleRoute(id), nil
	}
	return Route{}, fmt.Errorf("%w: %s", ErrUnknownRoute, path)
}

// History is the navigation stack. The zero value starts at home.
type History struct {
	stack []Route
}

func NewHistory(start Route) *History {
	return &History{stack: []Route{start}}
}

func (h *History) Current() Route {
	if len(h.stack) == 0 {
		return HomeRoute()
	}
	return h.stack[len(h.stack)-1]
}

// Navigate pushes r unless it is already current. Navigating to the entry
// below the current one pops instead, so explicit back links do not grow
// the stack.
func (h *History) Navigate(r Route) {
	if len(h.stack) == 0 {
		h.stack = []Route{HomeRoute()}
	}
	n := len(h.stack)
	switch {
	case h.stack[n-1] == r:
	case n > 1 && h.stack[n-2] == r:
		h.stack = h.stack[:n-1]
	default:
		h.stack = append(h.stack, r)
	}
}

// Back pops the current route. With nothing to pop it moves to the parent
// route instead, and reports false when already at home.
func (h *History) Back() (Route, bool) {
	if len(h.stack) > 1 {
		h.stack = h.stack[:len(h.stack)-1]
		return h.Current(), true
	}
	cur := h.Current()
	if cur.Kind == Home {
		return cur, false
	}
	parent := cur.Parent()
	h.stack = []Route{parent}
	return parent, true
}

// Depth is the number of routes on the stack.
func (h *History) Depth() int { return len(h.stack) }
