// Package endpoints maps the API's resources to their URL path fragments
package endpoints

import "net/url"

// Path fragments of the REST API
const (
	BOARDS  = "/boards"
	COLUMNS = "/columns"
	TASKS   = "/tasks"
	USERS   = "/users"
	SIGNIN  = "/signin"
	SIGNUP  = "/signup"
)

func seg(id string) string {
	return "/" + url.PathEscape(id)
}

// Users returns /users
func Users() string {
	return USERS
}

// User returns /users/{userID}
func User(userID string) string {
	return USERS + seg(userID)
}

// Boards returns /boards
func Boards() string {
	return BOARDS
}

// Board returns /boards/{boardID}
func Board(boardID string) string {
	return BOARDS + seg(boardID)
}

// Columns returns /boards/{boardID}/columns
func Columns(boardID string) string {
	return Board(boardID) + COLUMNS
}

// Column returns /boards/{boardID}/columns/{columnID}
func Column(boardID, columnID string) string {
	return Columns(boardID) + seg(columnID)
}

// Tasks returns /boards/{boardID}/columns/{columnID}/tasks
func Tasks(boardID, columnID string) string {
	return Column(boardID, columnID) + TASKS
}

// Task returns /boards/{boardID}/columns/{columnID}/tasks/{taskID}
func Task(boardID, columnID, taskID string) string {
	return Tasks(boardID, columnID) + seg(taskID)
}
