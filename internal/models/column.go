package models

// Column is an ordered grouping of tasks within a board
type Column struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Order   int    `json:"order"`
	BoardID string `json:"boardId,omitempty"`
	Tasks   []Task `json:"tasks,omitempty"`
}

// GetID returns the column ID
func (c Column) GetID() string {
	return c.ID
}

// CreateColumnRequest is the body of POST /boards/{boardId}/columns
type CreateColumnRequest struct {
	Title string `json:"title"`
	Order int    `json:"order"`
}

// UpdateColumnRequest is the body of PUT /boards/{boardId}/columns/{columnId}
type UpdateColumnRequest struct {
	Title string `json:"title"`
	Order int    `json:"order"`
}
