package models

// Task is the smallest unit of work tracked within a column
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Order       int    `json:"order"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
	BoardID     string `json:"boardId"`
	ColumnID    string `json:"columnId"`
}

// GetID returns the task ID
func (t Task) GetID() string {
	return t.ID
}

// TaskBody carries the writable task fields sent on create and update
type TaskBody struct {
	Title       string `json:"title"`
	Order       int    `json:"order"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
	BoardID     string `json:"boardId,omitempty"`
	ColumnID    string `json:"columnId,omitempty"`
}
