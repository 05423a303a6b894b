package models

// Board is the top-level container of columns
type Board struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Columns     []Column `json:"columns,omitempty"`
}

// GetID returns the board ID
func (b Board) GetID() string {
	return b.ID
}

// CreateBoardRequest is the body of POST /boards
type CreateBoardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateBoardRequest is the body of PUT /boards/{boardId}
type UpdateBoardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
