package store

import "github.com/thenoetrevino/kanbo/internal/models"

// Action is the closed set of messages the store accepts.
// Only the types in this file implement it.
type Action interface {
	Type() string
	isAction()
}

// Logout resets the signed-in identity and drops persisted credentials
type Logout struct{}

// SetUser replaces the current user and persists it as user data
type SetUser struct {
	User models.User
}

// SetToken replaces the bearer token and persists it
type SetToken struct {
	Token string
}

// Hydrated carries the values restored from persistent storage at startup
type Hydrated struct {
	Token string
	User  models.User
}

// Pending marks the start of an async action
type Pending struct {
	Kind Kind
}

// Fulfilled carries the result of an async action.
// Arg is the request the thunk was called with, Payload the decoded response.
type Fulfilled struct {
	Kind    Kind
	Arg     any
	Payload any
}

// Rejected carries the human-readable failure of an async action
type Rejected struct {
	Kind    Kind
	Message string
}

func (Logout) Type() string    { return "user/logout" }
func (SetUser) Type() string   { return "user/setUser" }
func (SetToken) Type() string  { return "auth/setToken" }
func (Hydrated) Type() string  { return "store/hydrated" }
func (a Pending) Type() string { return a.Kind.String() + "/pending" }
func (a Fulfilled) Type() string {
	return a.Kind.String() + "/fulfilled"
}
func (a Rejected) Type() string { return a.Kind.String() + "/rejected" }

func (Logout) isAction()    {}
func (SetUser) isAction()   {}
func (SetToken) isAction()  {}
func (Hydrated) isAction()  {}
func (Pending) isAction()   {}
func (Fulfilled) isAction() {}
func (Rejected) isAction()  {}
