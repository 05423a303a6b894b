// Package tui is the Bubble Tea front end of kanbo. The model reads the
// store's state, re-renders whenever the store publishes, and runs store
// thunks as commands.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/kanbo/internal/config"
	"github.com/thenoetrevino/kanbo/internal/routes"
	"github.com/thenoetrevino/kanbo/internal/store"
	"github.com/thenoetrevino/kanbo/internal/tui/huhforms"
	"github.com/thenoetrevino/kanbo/internal/tui/layers"
	"github.com/thenoetrevino/kanbo/internal/tui/state"
	"github.com/thenoetrevino/kanbo/internal/tui/theme"
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	store  *store.Store
	cfg    *config.Config
	logger *slog.Logger
	theme  *huh.Theme

	state       store.State
	updates     <-chan store.State
	unsubscribe func()

	start        string
	match        routes.Match
	width        int
	height       int
	showFullHelp bool

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	modals        *ModalRoot
	notifications *state.NotificationState

	welcome *welcomePage
	auth    *authPage
	board   *boardPage
}

// Option configures a Model
type Option func(*Model)

// WithLogger sets the logger used for navigation and failures
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithStartPath opens the TUI at path instead of the home page. The
// auth guard still applies.
func WithStartPath(path string) Option {
	return func(m *Model) {
		if path != "" {
			m.start = path
		}
	}
}

// InitialModel creates the TUI model on top of st and subscribes to it.
// Call Close once the program has exited.
func InitialModel(ctx context.Context, st *store.Store, cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.ColorScheme)
	initStyles()

	formTheme := huhforms.CreateKanboTheme(cfg.ColorScheme)
	updates, unsubscribe := st.Subscribe()
	current := st.State()

	m := Model{
		ctx:           ctx,
		store:         st,
		cfg:           cfg,
		logger:        slog.Default(),
		theme:         formTheme,
		state:         current,
		updates:       updates,
		unsubscribe:   unsubscribe,
		start:         routes.Root,
		keys:          newKeyMap(cfg.KeyMappings),
		help:          help.New(),
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(TitleStyle)),
		modals:        NewModalRoot(),
		notifications: state.NewNotificationState(),
		welcome:       &welcomePage{},
		auth:          newAuthPage(formTheme),
		board:         &boardPage{},
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.match = routes.Resolve(m.start, store.IsAuthenticated(current))
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForState(m.updates),
		m.spinner.Tick,
		m.load(),
	)
}

// Close ends the store subscription
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Page returns the page currently shown
func (m Model) Page() routes.Page {
	return m.match.Route.Page
}

// Match returns the resolved route of the current page
func (m Model) Match() routes.Match {
	return m.match
}

func (m Model) authenticated() bool {
	return store.IsAuthenticated(m.state)
}

// navigate resolves path against the auth guard and loads the page's data
func (m Model) navigate(path string) (Model, tea.Cmd) {
	m.match = routes.Resolve(path, m.authenticated())
	m.modals.Unmount()
	m.logger.Debug("navigate",
		"path", path,
		"page", m.match.Route.Page.String(),
		"redirect", m.match.Redirect,
	)

	switch m.match.Route.Page {
	case routes.PageBoard:
		m.board.reset()
	case routes.PageAuth:
		m.auth.reset()
	}
	return m, m.load()
}

// load fetches what the current page shows
func (m Model) load() tea.Cmd {
	switch m.match.Route.Page {
	case routes.PageWelcome:
		if !m.authenticated() {
			return nil
		}
		return m.do(opLoadBoards, func(ctx context.Context, st *store.Store) error {
			_, err := st.GetAllBoards(ctx)
			return err
		})
	case routes.PageBoard:
		id := m.match.Param("id")
		return m.do(opLoadBoard, func(ctx context.Context, st *store.Store) error {
			return st.LoadBoard(ctx, id)
		})
	case routes.PageAuth:
		return m.auth.current().Init()
	}
	return nil
}

// pageSlices lists the slices whose status and error a page reflects
func pageSlices(page routes.Page) []store.SliceName {
	switch page {
	case routes.PageWelcome:
		return []store.SliceName{store.SliceBoard}
	case routes.PageAuth:
		return []store.SliceName{store.SliceAuth}
	case routes.PageProfile:
		return []store.SliceName{store.SliceUser}
	case routes.PageBoard:
		return []store.SliceName{store.SliceBoard, store.SliceColumn, store.SliceTask}
	}
	return nil
}

// loading reports whether any slice of the current page is loading
func (m Model) loading() bool {
	for _, s := range pageSlices(m.match.Route.Page) {
		if m.state.Status(s) == store.Loading {
			return true
		}
	}
	return false
}

// formWidth is the width of a form inside a modal
func (m Model) formWidth() int {
	return layers.ModalWidth(m.width) - layers.ModalBorderPaddingWidth - 2
}

// contentHeight is the height left for the page body
func (m Model) contentHeight(used ...string) int {
	h := m.height
	for _, s := range used {
		h -= lipgloss.Height(s)
	}
	return max(h, 0)
}
