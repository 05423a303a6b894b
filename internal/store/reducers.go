package store

import (
	"maps"
	"slices"

	"github.com/thenoetrevino/kanbo/internal/models"
)

// Reduce returns the state that results from applying a to s.
// It never mutates s: slices and maps are copied before they change.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Logout:
		return reduceLogout(s)
	case SetUser:
		s.User.User = a.User
		return s
	case SetToken:
		s.Auth.Token = a.Token
		return s
	case Hydrated:
		s.Auth.Token = a.Token
		s.User.User = a.User
		return s
	case Pending:
		return setStatus(s, a.Kind.Slice(), Loading, "")
	case Rejected:
		msg := a.Message
		if msg == "" {
			msg = DefaultErrorMessage
		}
		return setStatus(s, a.Kind.Slice(), Failed, msg)
	case Fulfilled:
		s = setStatus(s, a.Kind.Slice(), Succeeded, "")
		return reduceFulfilled(s, a)
	}
	return s
}

func reduceLogout(s State) State {
	initial := InitialState()
	s.User.UserLoadingStatus = Idle
	s.User.User = models.User{}
	s.Auth = initial.Auth
	s.Board = initial.Board
	s.Column = initial.Column
	s.Task = initial.Task
	return s
}

func setStatus(s State, slice SliceName, status LoadingStatus, msg string) State {
	switch slice {
	case SliceUser:
		s.User.UserLoadingStatus, s.User.Error = status, msg
	case SliceAuth:
		s.Auth.Status, s.Auth.Error = status, msg
	case SliceBoard:
		s.Board.Status, s.Board.Error = status, msg
	case SliceColumn:
		s.Column.Status, s.Column.Error = status, msg
	case SliceTask:
		s.Task.Status, s.Task.Error = status, msg
	}
	return s
}

func reduceFulfilled(s State, a Fulfilled) State {
	switch a.Kind {
	// user
	case KindGetAllUsers:
		if users, ok := a.Payload.([]models.UserResponse); ok {
			s.User.Users = users
		}
	case KindGetUserByID:
		// The profile fetch only moves the status; callers copy the
		// response into the slice with SetUser when they need it.
	case KindUpdateUser:
		if u, ok := a.Payload.(*models.UserResponse); ok && u != nil {
			s.User.Users = replaceBy(s.User.Users, *u, func(x models.UserResponse) string { return x.ID })
			if u.ID == s.User.User.UserID {
				s.User.User = u.ToUser()
			}
		}
	case KindDeleteUser:
		id, _ := a.Arg.(string)
		s.User.Users = removeBy(s.User.Users, id, func(x models.UserResponse) string { return x.ID })
		if id != "" && id == s.User.User.UserID {
			status := s.User.UserLoadingStatus
			s = reduceLogout(s)
			s.User.UserLoadingStatus = status
		}

	// auth
	case KindSignIn:
		if token, ok := a.Payload.(string); ok {
			s.Auth.Token = token
		}
	case KindSignUp:
		if u, ok := a.Payload.(*models.SignUpResponse); ok {
			s.Auth.Registered = u
		}

	// board
	case KindGetAllBoards:
		if boards, ok := a.Payload.([]models.Board); ok {
			s.Board.Boards = boards
		}
	case KindGetBoard:
		if b, ok := a.Payload.(*models.Board); ok {
			s.Board.Current = b
		}
	case KindCreateBoard:
		if b, ok := a.Payload.(*models.Board); ok && b != nil {
			s.Board.Boards = append(slices.Clip(s.Board.Boards), *b)
		}
	case KindUpdateBoard:
		if b, ok := a.Payload.(*models.Board); ok && b != nil {
			s.Board.Boards = replaceBy(s.Board.Boards, *b, boardID)
			if s.Board.Current != nil && s.Board.Current.ID == b.ID {
				updated := *b
				if updated.Columns == nil {
					updated.Columns = s.Board.Current.Columns
				}
				s.Board.Current = &updated
			}
		}
	case KindDeleteBoard:
		id, _ := a.Arg.(string)
		s.Board.Boards = removeBy(s.Board.Boards, id, boardID)
		if s.Board.Current != nil && s.Board.Current.ID == id {
			s.Board.Current = nil
		}
		if s.Column.BoardID == id {
			s.Column = ColumnState{Status: s.Column.Status}
			s.Task.Tasks = map[string][]models.Task{}
			s.Task.Current = nil
		}

	// column
	case KindGetAllColumns:
		if cols, ok := a.Payload.([]models.Column); ok {
			s.Column.Columns = sortColumns(cols)
		}
		s.Column.BoardID, _ = a.Arg.(string)
	case KindCreateColumn:
		if c, ok := a.Payload.(*models.Column); ok && c != nil {
			s.Column.Columns = sortColumns(append(slices.Clip(s.Column.Columns), *c))
		}
	case KindUpdateColumn:
		if c, ok := a.Payload.(*models.Column); ok && c != nil {
			s.Column.Columns = sortColumns(replaceBy(s.Column.Columns, *c, columnID))
		}
	case KindDeleteColumn:
		req, _ := a.Arg.(models.RequestGetColumn)
		s.Column.Columns = removeBy(s.Column.Columns, req.ColumnID, columnID)
		if _, ok := s.Task.Tasks[req.ColumnID]; ok {
			tasks := maps.Clone(s.Task.Tasks)
			delete(tasks, req.ColumnID)
			s.Task.Tasks = tasks
		}

	// task
	case KindGetAllTasks:
		req, _ := a.Arg.(models.RequestGetAllTasks)
		if list, ok := a.Payload.([]models.Task); ok {
			s.Task.Tasks = withColumn(s.Task.Tasks, req.ColumnID, sortTasks(list))
		}
	case KindGetTask:
		if t, ok := a.Payload.(*models.Task); ok {
			s.Task.Current = t
		}
	case KindCreateTask:
		if t, ok := a.Payload.(*models.Task); ok && t != nil {
			col := t.ColumnID
			if req, ok := a.Arg.(models.RequestCreateTask); ok && col == "" {
				col = req.ColumnID
			}
			list := append(slices.Clip(s.Task.Tasks[col]), *t)
			s.Task.Tasks = withColumn(s.Task.Tasks, col, sortTasks(list))
		}
	case KindUpdateTask:
		if t, ok := a.Payload.(*models.Task); ok && t != nil {
			s.Task = applyTaskUpdate(s.Task, a.Arg, *t)
		}
	case KindDeleteTask:
		req, _ := a.Arg.(models.RequestGetTask)
		if list, ok := s.Task.Tasks[req.ColumnID]; ok {
			s.Task.Tasks = withColumn(s.Task.Tasks, req.ColumnID, removeBy(list, req.TaskID, taskID))
		}
		if s.Task.Current != nil && s.Task.Current.ID == req.TaskID {
			s.Task.Current = nil
		}
	}
	return s
}

func applyTaskUpdate(ts TaskState, arg any, t models.Task) TaskState {
	from := t.ColumnID
	if req, ok := arg.(models.RequestUpdateTask); ok {
		from = req.ColumnID
	}
	to := t.ColumnID
	if to == "" {
		to = from
	}

	tasks := ts.Tasks
	if from != to {
		tasks = withColumn(tasks, from, removeBy(tasks[from], t.ID, taskID))
		tasks = withColumn(tasks, to, sortTasks(append(slices.Clip(tasks[to]), t)))
	} else {
		tasks = withColumn(tasks, to, sortTasks(replaceBy(tasks[to], t, taskID)))
	}
	ts.Tasks = tasks
	if ts.Current != nil && ts.Current.ID == t.ID {
		updated := t
		ts.Current = &updated
	}
	return ts
}

func boardID(b models.Board) string   { return b.ID }
func columnID(c models.Column) string { return c.ID }
func taskID(t models.Task) string     { return t.ID }

// replaceBy returns a copy of list with the element matching v's id swapped for v,
// or v appended when no element matches.
func replaceBy[T any](list []T, v T, id func(T) string) []T {
	out := slices.Clone(list)
	for i := range out {
		if id(out[i]) == id(v) {
			out[i] = v
			return out
		}
	}
	return append(out, v)
}

func removeBy[T any](list []T, target string, id func(T) string) []T {
	if list == nil {
		return nil
	}
	return slices.DeleteFunc(slices.Clone(list), func(x T) bool { return id(x) == target })
}

func withColumn(tasks map[string][]models.Task, col string, list []models.Task) map[string][]models.Task {
	out := maps.Clone(tasks)
	if out == nil {
		out = map[string][]models.Task{}
	}
	out[col] = list
	return out
}

func sortColumns(cols []models.Column) []models.Column {
	out := slices.Clone(cols)
	slices.SortStableFunc(out, func(a, b models.Column) int { return a.Order - b.Order })
	return out
}

func sortTasks(list []models.Task) []models.Task {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b models.Task) int { return a.Order - b.Order })
	return out
}
