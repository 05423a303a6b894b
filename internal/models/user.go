package models

// User is the client-side identity of the signed-in account.
// The zero value is the empty identity used before sign-in and after logout.
type User struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Login    string `json:"login"`
}

// IsEmpty reports whether u is the empty identity
func (u User) IsEmpty() bool {
	return u.UserID == "" && u.UserName == "" && u.Login == ""
}

// UserResponse is the user resource as the API returns it
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
}

// ToUser maps the API representation onto the client-side identity
func (r UserResponse) ToUser() User {
	return User{
		UserID:   r.ID,
		UserName: r.Name,
		Login:    r.Login,
	}
}

// GetID returns the user ID (used by quiet CLI output)
func (r UserResponse) GetID() string {
	return r.ID
}
