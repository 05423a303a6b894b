package column

import "errors"

// ErrMissingBoardID is returned when a column request does not name its board
var ErrMissingBoardID = errors.New("column request requires a board ID")
