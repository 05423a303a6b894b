// Package routes maps navigation paths to pages and guards the private ones.
package routes

import (
	"net/url"
	"slices"
	"strings"
)

// Page identifies a screen of the application
type Page int

const (
	PageWelcome Page = iota
	PageAuth
	PageProfile
	PageError404
	PageBoard
)

func (p Page) String() string {
	switch p {
	case PageWelcome:
		return "welcome"
	case PageAuth:
		return "auth"
	case PageProfile:
		return "profile"
	case PageError404:
		return "error404"
	case PageBoard:
		return "board"
	}
	return "unknown"
}

// Route paths
const (
	Root     = "/"
	Auth     = "/auth"
	Profile  = "/profile"
	NotFound = "*"
	Board    = "board/:id"
)

// Route binds a path pattern to a page
type Route struct {
	Path string
	Page Page
}

// Table lists every route in declaration order
var Table = []Route{
	{Path: Root, Page: PageWelcome},
	{Path: Auth, Page: PageAuth},
	{Path: Profile, Page: PageProfile},
	{Path: NotFound, Page: PageError404},
	{Path: Board, Page: PageBoard},
}

// PublicRoutes are reachable without a token
var PublicRoutes = []string{Root, Auth}

// Match is the result of resolving a path
type Match struct {
	Path     string
	Route    Route
	Params   map[string]string
	Redirect bool // true when the requested path was replaced by Auth
}

// Param returns a path parameter, e.g. Param("id") for board/:id
func (m Match) Param(name string) string {
	return m.Params[name]
}

// Normalize strips queries and trailing slashes and ensures a leading slash
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = "/" + strings.Trim(strings.TrimSpace(path), "/")
	return path
}

// Lookup finds the route for path: exact routes first, then
// parameterised ones, then the catch-all.
func Lookup(path string) Match {
	path = Normalize(path)

	for _, r := range Table {
		if isPattern(r.Path) {
			continue
		}
		if Normalize(r.Path) == path {
			return Match{Path: path, Route: r}
		}
	}

	for _, r := range Table {
		if !strings.Contains(r.Path, ":") {
			continue
		}
		if params, ok := matchPattern(r.Path, path); ok {
			return Match{Path: path, Route: r, Params: params}
		}
	}

	for _, r := range Table {
		if r.Path == NotFound {
			return Match{Path: path, Route: r}
		}
	}
	return Match{Path: path, Route: Route{Path: NotFound, Page: PageError404}}
}

// IsPublic reports whether path can be visited without a token
func IsPublic(path string) bool {
	return slices.Contains(PublicRoutes, Normalize(path))
}

// Resolve looks up path, redirecting private routes to Auth when not authenticated
func Resolve(path string, authenticated bool) Match {
	if !authenticated && !IsPublic(path) {
		m := Lookup(Auth)
		m.Redirect = true
		return m
	}
	return Lookup(path)
}

// BoardPath builds the path of a board page
func BoardPath(id string) string {
	return "/board/" + url.PathEscape(id)
}

func isPattern(p string) bool {
	return p == NotFound || strings.Contains(p, ":")
}

func matchPattern(pattern, path string) (map[string]string, bool) {
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(want) != len(got) {
		return nil, false
	}

	params := map[string]string{}
	for i, seg := range want {
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			if got[i] == "" {
				return nil, false
			}
			v, err := url.PathUnescape(got[i])
			if err != nil {
				return nil, false
			}
			params[name] = v
			continue
		}
		if seg != got[i] {
			return nil, false
		}
	}
	return params, true
}
