package task

import "errors"

// ErrMissingIDs is returned when a request does not name its board and column
var ErrMissingIDs = errors.New("task request requires board and column IDs")
