package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/thenoetrevino/kanbo/internal/models"
)

// ErrNoBaseURL is returned by New when the API base URL is empty
var ErrNoBaseURL = errors.New("api base URL is not configured")

// HTTPError is returned for every non-2xx response.
// Message holds the server's error message and is empty when the body carried none.
type HTTPError struct {
	StatusCode int
	Message    string
	Body       []byte
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// StatusCode returns the HTTP status of err when it is (or wraps) an *HTTPError, 0 otherwise
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

func newHTTPError(status int, body []byte) *HTTPError {
	httpErr := &HTTPError{StatusCode: status, Body: body}

	var payload models.ErrorBody
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		httpErr.Message = string(payload.Message)
	}
	return httpErr
}
