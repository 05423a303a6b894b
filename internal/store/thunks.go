package store

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/kanbo/internal/models"
)

// run drives one async action: pending, then fulfilled or rejected
func run[T any](ctx context.Context, s *Store, kind Kind, arg any, call func(context.Context) (T, error)) (T, error) {
	s.Dispatch(ctx, Pending{Kind: kind})
	result, err := call(ctx)
	if err != nil {
		s.logger.Debug("thunk rejected", "action", kind.String(), "error", err)
		s.Dispatch(ctx, Rejected{Kind: kind, Message: ErrorMessage(err)})
		return result, err
	}
	s.Dispatch(ctx, Fulfilled{Kind: kind, Arg: arg, Payload: result})
	return result, nil
}

// shared is run for reads: concurrent calls with the same key share one request
func shared[T any](ctx context.Context, s *Store, kind Kind, key string, arg any, call func(context.Context) (T, error)) (T, error) {
	v, err, _ := s.flights.Do(kind.String()+":"+key, func() (any, error) {
		return run(ctx, s, kind, arg, call)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// flightKey joins resource ids with NUL, which no id contains
func flightKey(ids ...string) string {
	return strings.Join(ids, "\x00")
}

// ============================================================================
// users
// ============================================================================

// GetAllUsers fetches every user into the user slice
func (s *Store) GetAllUsers(ctx context.Context) ([]models.UserResponse, error) {
	return shared(ctx, s, KindGetAllUsers, "", nil, s.services.Users.GetAllUsers)
}

// GetUserByID fetches one user. The response is returned to the caller
// but not copied into state.
func (s *Store) GetUserByID(ctx context.Context, id string) (*models.UserResponse, error) {
	return shared(ctx, s, KindGetUserByID, id, id, func(ctx context.Context) (*models.UserResponse, error) {
		return s.services.Users.GetUserByID(ctx, id)
	})
}

// UpdateUser replaces a user's name, login and password
func (s *Store) UpdateUser(ctx context.Context, id string, req models.SignUpRequest) (*models.UserResponse, error) {
	return run(ctx, s, KindUpdateUser, id, func(ctx context.Context) (*models.UserResponse, error) {
		return s.services.Users.UpdateUser(ctx, id, req)
	})
}

// DeleteUser removes a user; deleting the signed-in user signs out
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	_, err := run(ctx, s, KindDeleteUser, id, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.services.Users.DeleteUser(ctx, id)
	})
	return err
}

// ============================================================================
// auth
// ============================================================================

// SignIn exchanges credentials for a token, persists it, and loads the
// signed-in user's profile.
func (s *Store) SignIn(ctx context.Context, req models.SignInRequest) (string, error) {
	tok, err := run(ctx, s, KindSignIn, req.Login, func(ctx context.Context) (string, error) {
		resp, err := s.services.Auth.SignIn(ctx, req)
		if err != nil {
			return "", err
		}
		if err := s.services.Tokens.SetToken(ctx, resp.Token); err != nil {
			return "", fmt.Errorf("failed to persist token: %w", err)
		}
		return resp.Token, nil
	})
	if err != nil {
		return "", err
	}

	claims, err := s.services.Tokens.Claims(tok)
	if err != nil {
		s.logger.Warn("token has no readable claims", "error", err)
		return tok, nil
	}
	s.Dispatch(ctx, SetUser{User: models.User{UserID: claims.UserID, Login: claims.Login}})

	profile, err := s.GetUserByID(ctx, claims.UserID)
	if err != nil {
		s.logger.Warn("failed to load profile after sign in", "user_id", claims.UserID, "error", err)
		return tok, nil
	}
	s.Dispatch(ctx, SetUser{User: profile.ToUser()})
	return tok, nil
}

// SignUp registers a new account
func (s *Store) SignUp(ctx context.Context, req models.SignUpRequest) (*models.SignUpResponse, error) {
	return run(ctx, s, KindSignUp, req.Login, func(ctx context.Context) (*models.SignUpResponse, error) {
		return s.services.Auth.SignUp(ctx, req)
	})
}

// Logout signs out and clears persisted credentials
func (s *Store) Logout(ctx context.Context) {
	s.Dispatch(ctx, Logout{})
}

// ============================================================================
// boards
// ============================================================================

func (s *Store) GetAllBoards(ctx context.Context) ([]models.Board, error) {
	return shared(ctx, s, KindGetAllBoards, "", nil, s.services.Boards.GetAllBoards)
}

func (s *Store) GetBoard(ctx context.Context, id string) (*models.Board, error) {
	return shared(ctx, s, KindGetBoard, id, id, func(ctx context.Context) (*models.Board, error) {
		return s.services.Boards.GetBoard(ctx, id)
	})
}

func (s *Store) CreateBoard(ctx context.Context, req models.CreateBoardRequest) (*models.Board, error) {
	return run(ctx, s, KindCreateBoard, req, func(ctx context.Context) (*models.Board, error) {
		return s.services.Boards.CreateBoard(ctx, req)
	})
}

func (s *Store) UpdateBoard(ctx context.Context, id string, req models.UpdateBoardRequest) (*models.Board, error) {
	return run(ctx, s, KindUpdateBoard, id, func(ctx context.Context) (*models.Board, error) {
		return s.services.Boards.UpdateBoard(ctx, id, req)
	})
}

func (s *Store) DeleteBoard(ctx context.Context, id string) error {
	_, err := run(ctx, s, KindDeleteBoard, id, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.services.Boards.DeleteBoard(ctx, id)
	})
	return err
}

// LoadBoard fetches a board, its columns, then every column's tasks in parallel
func (s *Store) LoadBoard(ctx context.Context, id string) error {
	if _, err := s.GetBoard(ctx, id); err != nil {
		return err
	}
	cols, err := s.GetAllColumns(ctx, id)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, col := range cols {
		g.Go(func() error {
			_, err := s.GetAllTasks(gctx, models.RequestGetAllTasks{BoardID: id, ColumnID: col.ID})
			return err
		})
	}
	return g.Wait()
}

// ============================================================================
// columns
// ============================================================================

func (s *Store) GetAllColumns(ctx context.Context, boardID string) ([]models.Column, error) {
	return shared(ctx, s, KindGetAllColumns, boardID, boardID, func(ctx context.Context) ([]models.Column, error) {
		return s.services.Columns.GetAllColumns(ctx, boardID)
	})
}

func (s *Store) CreateColumn(ctx context.Context, boardID string, req models.CreateColumnRequest) (*models.Column, error) {
	return run(ctx, s, KindCreateColumn, boardID, func(ctx context.Context) (*models.Column, error) {
		return s.services.Columns.CreateColumn(ctx, boardID, req)
	})
}

func (s *Store) UpdateColumn(ctx context.Context, req models.RequestGetColumn, body models.UpdateColumnRequest) (*models.Column, error) {
	return run(ctx, s, KindUpdateColumn, req, func(ctx context.Context) (*models.Column, error) {
		return s.services.Columns.UpdateColumn(ctx, req, body)
	})
}

func (s *Store) DeleteColumn(ctx context.Context, req models.RequestGetColumn) error {
	_, err := run(ctx, s, KindDeleteColumn, req, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.services.Columns.DeleteColumn(ctx, req)
	})
	return err
}

// ============================================================================
// tasks
// ============================================================================

func (s *Store) GetAllTasks(ctx context.Context, req models.RequestGetAllTasks) ([]models.Task, error) {
	key := flightKey(req.BoardID, req.ColumnID)
	return shared(ctx, s, KindGetAllTasks, key, req, func(ctx context.Context) ([]models.Task, error) {
		return s.services.Tasks.GetAllTasks(ctx, req)
	})
}

func (s *Store) GetTask(ctx context.Context, req models.RequestGetTask) (*models.Task, error) {
	key := flightKey(req.BoardID, req.ColumnID, req.TaskID)
	return shared(ctx, s, KindGetTask, key, req, func(ctx context.Context) (*models.Task, error) {
		return s.services.Tasks.GetTask(ctx, req)
	})
}

func (s *Store) CreateTask(ctx context.Context, req models.RequestCreateTask) (*models.Task, error) {
	return run(ctx, s, KindCreateTask, req, func(ctx context.Context) (*models.Task, error) {
		return s.services.Tasks.CreateTask(ctx, req)
	})
}

func (s *Store) UpdateTask(ctx context.Context, req models.RequestUpdateTask) (*models.Task, error) {
	return run(ctx, s, KindUpdateTask, req, func(ctx context.Context) (*models.Task, error) {
		return s.services.Tasks.UpdateTask(ctx, req)
	})
}

func (s *Store) DeleteTask(ctx context.Context, req models.RequestGetTask) error {
	_, err := run(ctx, s, KindDeleteTask, req, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.services.Tasks.DeleteTask(ctx, req)
	})
	return err
}
