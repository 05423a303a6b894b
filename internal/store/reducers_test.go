package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanbo/internal/models"
)

func TestKindNames(t *testing.T) {
	tests := []struct {
		kind  Kind
		name  string
		slice SliceName
	}{
		{KindGetUserByID, "user/getUserById", SliceUser},
		{KindSignIn, "auth/signIn", SliceAuth},
		{KindCreateBoard, "board/createBoard", SliceBoard},
		{KindDeleteColumn, "column/deleteColumn", SliceColumn},
		{KindUpdateTask, "task/updateTask", SliceTask},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.slice, tt.kind.Slice())
		})
	}

	for _, k := range Kinds() {
		assert.NotEqual(t, "unknown", k.String())
	}
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestActionTypes(t *testing.T) {
	assert.Equal(t, "user/logout", Logout{}.Type())
	assert.Equal(t, "auth/setToken", SetToken{}.Type())
	assert.Equal(t, "user/getUserById/pending", Pending{Kind: KindGetUserByID}.Type())
	assert.Equal(t, "board/getBoard/fulfilled", Fulfilled{Kind: KindGetBoard}.Type())
	assert.Equal(t, "task/getTask/rejected", Rejected{Kind: KindGetTask}.Type())
}

func TestInitialState(t *testing.T) {
	st := InitialState()
	assert.Equal(t, Idle, st.User.UserLoadingStatus)
	assert.True(t, st.User.User.IsEmpty())
	assert.False(t, IsAuthenticated(st))
	assert.NotNil(t, st.Task.Tasks)
}

func TestReduceLifecycle(t *testing.T) {
	st := InitialState()
	st = Reduce(st, SetUser{User: models.User{UserID: "u1", UserName: "Ada", Login: "ada"}})

	st = Reduce(st, Pending{Kind: KindGetUserByID})
	assert.Equal(t, Loading, SelectUserLoadingStatus(st))

	st = Reduce(st, Fulfilled{
		Kind:    KindGetUserByID,
		Arg:     "u1",
		Payload: &models.UserResponse{ID: "u1", Name: "Someone Else", Login: "x"},
	})
	assert.Equal(t, Succeeded, SelectUserLoadingStatus(st))
	assert.Equal(t, "Ada", SelectUser(st).UserName, "getUserById leaves the user untouched")

	st = Reduce(st, Pending{Kind: KindGetAllUsers})
	st = Reduce(st, Rejected{Kind: KindGetAllUsers})
	assert.Equal(t, Failed, SelectUserLoadingStatus(st))
	assert.Equal(t, DefaultErrorMessage, st.User.Error)
	assert.Equal(t, "Ada", SelectUser(st).UserName)

	st = Reduce(st, Pending{Kind: KindGetAllUsers})
	assert.Empty(t, st.User.Error, "pending clears a stale error")
}

func TestReduceRejectedKeepsData(t *testing.T) {
	st := InitialState()
	st = Reduce(st, Fulfilled{Kind: KindGetAllBoards, Payload: []models.Board{{ID: "b1"}}})
	st = Reduce(st, Rejected{Kind: KindCreateBoard, Message: "Board title is required"})

	assert.Equal(t, Failed, st.Board.Status)
	assert.Equal(t, "Board title is required", st.Board.Error)
	require.Len(t, st.Board.Boards, 1)
	assert.Equal(t, Idle, st.Task.Status, "other slices are unaffected")
}

func TestReduceLogout(t *testing.T) {
	st := InitialState()
	st = Reduce(st, Hydrated{Token: "tok", User: models.User{UserID: "u1", UserName: "Ada", Login: "ada"}})
	st = Reduce(st, Pending{Kind: KindGetUserByID})
	st = Reduce(st, Fulfilled{Kind: KindGetAllBoards, Payload: []models.Board{{ID: "b1"}}})

	st = Reduce(st, Logout{})

	assert.Equal(t, Idle, st.User.UserLoadingStatus)
	assert.Equal(t, models.User{}, st.User.User)
	assert.False(t, IsAuthenticated(st))
	assert.Empty(t, st.Board.Boards)

	// logging out twice is harmless
	assert.Equal(t, st, Reduce(st, Logout{}))
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := InitialState()
	before = Reduce(before, Fulfilled{
		Kind:    KindGetAllTasks,
		Arg:     models.RequestGetAllTasks{BoardID: "b1", ColumnID: "c1"},
		Payload: []models.Task{{ID: "t1", Order: 1, ColumnID: "c1"}},
	})
	snapshot := ColumnTasks(before, "c1")

	after := Reduce(before, Fulfilled{
		Kind:    KindCreateTask,
		Arg:     models.RequestCreateTask{BoardID: "b1", ColumnID: "c1"},
		Payload: &models.Task{ID: "t2", Order: 2, ColumnID: "c1"},
	})

	assert.Len(t, ColumnTasks(before, "c1"), 1)
	assert.Len(t, snapshot, 1)
	assert.Len(t, ColumnTasks(after, "c1"), 2)
}

func TestReduceTaskMove(t *testing.T) {
	st := InitialState()
	st = Reduce(st, Fulfilled{
		Kind:    KindGetAllTasks,
		Arg:     models.RequestGetAllTasks{BoardID: "b1", ColumnID: "todo"},
		Payload: []models.Task{{ID: "t1", Order: 1, ColumnID: "todo"}, {ID: "t2", Order: 2, ColumnID: "todo"}},
	})

	st = Reduce(st, Fulfilled{
		Kind:    KindUpdateTask,
		Arg:     models.RequestUpdateTask{BoardID: "b1", ColumnID: "todo", TaskID: "t1"},
		Payload: &models.Task{ID: "t1", Title: "moved", Order: 1, ColumnID: "done"},
	})

	require.Len(t, ColumnTasks(st, "todo"), 1)
	assert.Equal(t, "t2", ColumnTasks(st, "todo")[0].ID)
	require.Len(t, ColumnTasks(st, "done"), 1)
	assert.Equal(t, "moved", ColumnTasks(st, "done")[0].Title)

	st = Reduce(st, Fulfilled{
		Kind: KindDeleteTask,
		Arg:  models.RequestGetTask{BoardID: "b1", ColumnID: "done", TaskID: "t1"},
	})
	assert.Empty(t, ColumnTasks(st, "done"))
}

func TestReduceColumns(t *testing.T) {
	st := InitialState()
	st = Reduce(st, Fulfilled{
		Kind:    KindGetAllColumns,
		Arg:     "b1",
		Payload: []models.Column{{ID: "c2", Order: 2}, {ID: "c1", Order: 1}},
	})
	assert.Equal(t, "b1", st.Column.BoardID)
	require.Len(t, st.Column.Columns, 2)
	assert.Equal(t, "c1", st.Column.Columns[0].ID, "columns are kept in order")

	st = Reduce(st, Fulfilled{
		Kind:    KindGetAllTasks,
		Arg:     models.RequestGetAllTasks{BoardID: "b1", ColumnID: "c1"},
		Payload: []models.Task{{ID: "t1"}},
	})
	st = Reduce(st, Fulfilled{Kind: KindDeleteColumn, Arg: models.RequestGetColumn{BoardID: "b1", ColumnID: "c1"}})

	require.Len(t, st.Column.Columns, 1)
	assert.Nil(t, ColumnTasks(st, "c1"), "tasks of a deleted column are dropped")
}

func TestReduceBoards(t *testing.T) {
	st := InitialState()
	st = Reduce(st, Fulfilled{Kind: KindCreateBoard, Payload: &models.Board{ID: "b1", Title: "One"}})
	st = Reduce(st, Fulfilled{Kind: KindGetBoard, Arg: "b1", Payload: &models.Board{
		ID: "b1", Title: "One", Columns: []models.Column{{ID: "c1"}},
	}})
	st = Reduce(st, Fulfilled{Kind: KindUpdateBoard, Arg: "b1", Payload: &models.Board{ID: "b1", Title: "Renamed"}})

	assert.Equal(t, "Renamed", st.Board.Boards[0].Title)
	require.NotNil(t, st.Board.Current)
	assert.Equal(t, "Renamed", st.Board.Current.Title)
	assert.Len(t, st.Board.Current.Columns, 1, "update keeps loaded columns")

	st = Reduce(st, Fulfilled{Kind: KindDeleteBoard, Arg: "b1"})
	assert.Empty(t, st.Board.Boards)
	assert.Nil(t, st.Board.Current)
}

func TestReduceDeleteSelf(t *testing.T) {
	st := InitialState()
	st = Reduce(st, Hydrated{Token: "tok", User: models.User{UserID: "u1", Login: "ada"}})
	st = Reduce(st, Fulfilled{Kind: KindGetAllUsers, Payload: []models.UserResponse{{ID: "u1"}, {ID: "u2"}}})

	other := Reduce(st, Fulfilled{Kind: KindDeleteUser, Arg: "u2"})
	assert.True(t, IsAuthenticated(other))
	assert.Len(t, other.User.Users, 1)

	self := Reduce(st, Fulfilled{Kind: KindDeleteUser, Arg: "u1"})
	assert.False(t, IsAuthenticated(self))
	assert.True(t, SelectUser(self).IsEmpty())
	assert.Equal(t, Succeeded, SelectUserLoadingStatus(self))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "succeeded", Succeeded.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", LoadingStatus(42).String())
}
