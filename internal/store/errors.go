package store

import (
	"errors"

	"github.com/thenoetrevino/kanbo/internal/api"
)

// ErrorMessage converts a thunk failure into the message stored in state:
// the server's message when it sent one, DefaultErrorMessage otherwise.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	return DefaultErrorMessage
}
