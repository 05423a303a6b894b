package store

// SliceName identifies one subdivision of the store
type SliceName string

const (
	SliceUser   SliceName = "user"
	SliceAuth   SliceName = "auth"
	SliceBoard  SliceName = "board"
	SliceColumn SliceName = "column"
	SliceTask   SliceName = "task"
)

// Kind enumerates every async action (thunk) the store runs
type Kind int

const (
	KindGetAllUsers Kind = iota + 1
	KindGetUserByID
	KindDeleteUser
	KindUpdateUser

	KindSignIn
	KindSignUp

	KindGetAllBoards
	KindGetBoard
	KindCreateBoard
	KindUpdateBoard
	KindDeleteBoard

	KindGetAllColumns
	KindCreateColumn
	KindUpdateColumn
	KindDeleteColumn

	KindGetAllTasks
	KindGetTask
	KindCreateTask
	KindUpdateTask
	KindDeleteTask
)

type kindInfo struct {
	slice SliceName
	name  string
}

var kinds = map[Kind]kindInfo{
	KindGetAllUsers: {SliceUser, "getAllUsers"},
	KindGetUserByID: {SliceUser, "getUserById"},
	KindDeleteUser:  {SliceUser, "deleteUser"},
	KindUpdateUser:  {SliceUser, "updateUser"},

	KindSignIn: {SliceAuth, "signIn"},
	KindSignUp: {SliceAuth, "signUp"},

	KindGetAllBoards: {SliceBoard, "getAllBoards"},
	KindGetBoard:     {SliceBoard, "getBoard"},
	KindCreateBoard:  {SliceBoard, "createBoard"},
	KindUpdateBoard:  {SliceBoard, "updateBoard"},
	KindDeleteBoard:  {SliceBoard, "deleteBoard"},

	KindGetAllColumns: {SliceColumn, "getAllColumns"},
	KindCreateColumn:  {SliceColumn, "createColumn"},
	KindUpdateColumn:  {SliceColumn, "updateColumn"},
	KindDeleteColumn:  {SliceColumn, "deleteColumn"},

	KindGetAllTasks: {SliceTask, "getAllTasks"},
	KindGetTask:     {SliceTask, "getTask"},
	KindCreateTask:  {SliceTask, "createTask"},
	KindUpdateTask:  {SliceTask, "updateTask"},
	KindDeleteTask:  {SliceTask, "deleteTask"},
}

// Slice returns the slice that owns the kind's status and error
func (k Kind) Slice() SliceName {
	return kinds[k].slice
}

// String returns the action type, e.g. "user/getUserById"
func (k Kind) String() string {
	info, ok := kinds[k]
	if !ok {
		return "unknown"
	}
	return string(info.slice) + "/" + info.name
}

// Kinds returns every kind in declaration order
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds))
	for k := KindGetAllUsers; k <= KindDeleteTask; k++ {
		out = append(out, k)
	}
	return out
}
