package models

// RequestGetAllTasks identifies the column whose tasks are listed
type RequestGetAllTasks struct {
	BoardID  string
	ColumnID string
}

// RequestCreateTask identifies the target column and carries the new task
type RequestCreateTask struct {
	BoardID  string
	ColumnID string
	Body     TaskBody
}

// RequestGetTask identifies a single task
type RequestGetTask struct {
	BoardID  string
	ColumnID string
	TaskID   string
}

// RequestUpdateTask identifies a single task and carries its replacement fields
type RequestUpdateTask struct {
	BoardID  string
	ColumnID string
	TaskID   string
	Body     TaskBody
}

// RequestGetColumn identifies a single column
type RequestGetColumn struct {
	BoardID  string
	ColumnID string
}
