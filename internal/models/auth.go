package models

import (
	"encoding/json"
	"strings"
)

// SignInRequest is the body of POST /signin
type SignInRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// SignInResponse carries the bearer token issued on sign-in
type SignInResponse struct {
	Token string `json:"token"`
}

// SignUpRequest is the body of POST /signup and PUT /users/{id}
type SignUpRequest struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

// SignUpResponse is the account returned after registration or update
type SignUpResponse = UserResponse

// ErrorBody is the JSON error payload the API sends with non-2xx responses
type ErrorBody struct {
	StatusCode int          `json:"statusCode"`
	Message    ErrorMessage `json:"message"`
}

// ErrorMessage is the "message" field of an error payload. Validation
// failures send a list of messages, which are joined with "; ".
// Any other shape decodes to the empty message.
type ErrorMessage string

// UnmarshalJSON accepts a string or an array of strings
func (m *ErrorMessage) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*m = ErrorMessage(single)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*m = ErrorMessage(strings.Join(list, "; "))
		return nil
	}
	*m = ""
	return nil
}
