package store

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/thenoetrevino/kanbo/internal/services/auth"
	"github.com/thenoetrevino/kanbo/internal/services/board"
	"github.com/thenoetrevino/kanbo/internal/services/column"
	"github.com/thenoetrevino/kanbo/internal/services/task"
	"github.com/thenoetrevino/kanbo/internal/services/token"
	"github.com/thenoetrevino/kanbo/internal/services/user"
)

// Services are the collaborators thunks and effects call into
type Services struct {
	Auth    auth.Service
	Users   user.Service
	Tokens  token.Service
	Boards  board.Service
	Columns column.Service
	Tasks   task.Service
}

// Store holds the application state and applies actions to it.
// Dispatch is safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	state State

	subMu   sync.Mutex
	subs    map[int]chan State
	nextSub int

	services Services
	flights  singleflight.Group
	logger   *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for action tracing and effect failures
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithInitialState replaces the initial state
func WithInitialState(st State) Option {
	return func(s *Store) {
		s.state = st
	}
}

// New creates a Store
func New(services Services, opts ...Option) *Store {
	s := &Store{
		state:    InitialState(),
		subs:     make(map[int]chan State),
		services: services,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the current state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces a into the state, notifies subscribers, then runs
// the action's persistence effects.
func (s *Store) Dispatch(ctx context.Context, a Action) {
	s.mu.Lock()
	prev := s.state
	s.state = Reduce(prev, a)
	next := s.state
	s.publish(next)
	s.mu.Unlock()

	s.logger.Debug("dispatch", "action", a.Type())
	s.runEffects(ctx, prev, a)
}

// Subscribe returns a channel that receives the latest state after every
// dispatch. Slow readers only see the most recent value. The returned
// func unsubscribes and closes the channel.
func (s *Store) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			close(ch)
			s.subMu.Unlock()
		})
	}
}

// publish must be called with s.mu held so subscribers observe states in order
func (s *Store) publish(st State) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- st:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- st:
			default:
			}
		}
	}
}

func (s *Store) runEffects(ctx context.Context, prev State, a Action) {
	switch a := a.(type) {
	case Logout:
		s.clearCredentials(ctx)
	case SetUser:
		if s.services.Users == nil {
			return
		}
		if err := s.services.Users.SetUserData(ctx, a.User); err != nil {
			s.logger.Warn("failed to persist user data", "error", err)
		}
	case SetToken:
		if s.services.Tokens == nil {
			return
		}
		if err := s.services.Tokens.SetToken(ctx, a.Token); err != nil {
			s.logger.Warn("failed to persist token", "error", err)
		}
	case Fulfilled:
		switch a.Kind {
		case KindUpdateUser:
			if s.services.Users == nil {
				return
			}
			next := s.State().User.User
			if next != prev.User.User && !next.IsEmpty() {
				if err := s.services.Users.SetUserData(ctx, next); err != nil {
					s.logger.Warn("failed to persist user data", "error", err)
				}
			}
		case KindDeleteUser:
			if id, _ := a.Arg.(string); id != "" && id == prev.User.User.UserID {
				s.clearCredentials(ctx)
			}
		}
	}
}

func (s *Store) clearCredentials(ctx context.Context) {
	if s.services.Tokens != nil {
		if err := s.services.Tokens.RemoveToken(ctx); err != nil {
			s.logger.Warn("failed to remove token", "error", err)
		}
	}
	if s.services.Users != nil {
		if err := s.services.Users.RemoveUserData(ctx); err != nil {
			s.logger.Warn("failed to remove user data", "error", err)
		}
	}
}

// Hydrate restores the token and user data persisted by a previous session
func (s *Store) Hydrate(ctx context.Context) error {
	var h Hydrated
	if s.services.Tokens != nil {
		tok, err := s.services.Tokens.GetToken(ctx)
		if err != nil {
			return err
		}
		h.Token = tok
	}
	if s.services.Users != nil {
		u, found, err := s.services.Users.GetUserData(ctx)
		if err != nil {
			return err
		}
		if found {
			h.User = u
		}
	}
	s.Dispatch(ctx, h)
	return nil
}
