package store

import "github.com/thenoetrevino/kanbo/internal/models"

// UserState is the user slice
type UserState struct {
	UserLoadingStatus LoadingStatus
	User              models.User
	Users             []models.UserResponse
	Error             string
}

// AuthState is the auth slice
type AuthState struct {
	Status     LoadingStatus
	Token      string
	Registered *models.SignUpResponse
	Error      string
}

// BoardState is the board slice
type BoardState struct {
	Status  LoadingStatus
	Boards  []models.Board
	Current *models.Board
	Error   string
}

// ColumnState is the column slice; Columns belong to BoardID
type ColumnState struct {
	Status  LoadingStatus
	BoardID string
	Columns []models.Column
	Error   string
}

// TaskState is the task slice; Tasks are keyed by column ID
type TaskState struct {
	Status  LoadingStatus
	Tasks   map[string][]models.Task
	Current *models.Task
	Error   string
}

// State is the whole client-side copy of server state.
// Values handed out by the store share backing arrays and must be treated as read-only.
type State struct {
	User   UserState
	Auth   AuthState
	Board  BoardState
	Column ColumnState
	Task   TaskState
}

// InitialState returns the state before any action ran
func InitialState() State {
	return State{
		User: UserState{
			UserLoadingStatus: Idle,
			User:              models.User{},
		},
		Task: TaskState{Tasks: map[string][]models.Task{}},
	}
}

// Status returns the loading status of the named slice
func (s State) Status(slice SliceName) LoadingStatus {
	switch slice {
	case SliceUser:
		return s.User.UserLoadingStatus
	case SliceAuth:
		return s.Auth.Status
	case SliceBoard:
		return s.Board.Status
	case SliceColumn:
		return s.Column.Status
	case SliceTask:
		return s.Task.Status
	}
	return Idle
}

// Err returns the error message of the named slice
func (s State) Err(slice SliceName) string {
	switch slice {
	case SliceUser:
		return s.User.Error
	case SliceAuth:
		return s.Auth.Error
	case SliceBoard:
		return s.Board.Error
	case SliceColumn:
		return s.Column.Error
	case SliceTask:
		return s.Task.Error
	}
	return ""
}

// SelectUser returns the current user
func SelectUser(s State) models.User {
	return s.User.User
}

// SelectUserLoadingStatus returns the user slice status
func SelectUserLoadingStatus(s State) LoadingStatus {
	return s.User.UserLoadingStatus
}

// IsAuthenticated reports whether a bearer token is held
func IsAuthenticated(s State) bool {
	return s.Auth.Token != ""
}

// ColumnTasks returns the tasks of one column (nil when not loaded)
func ColumnTasks(s State, columnID string) []models.Task {
	return s.Task.Tasks[columnID]
}
