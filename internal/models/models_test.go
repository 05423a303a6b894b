package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSONKeys(t *testing.T) {
	data, err := json.Marshal(User{UserID: "u1", UserName: "Ada", Login: "ada"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":"u1","userName":"Ada","login":"ada"}`, string(data))
}

func TestUserIsEmpty(t *testing.T) {
	assert.True(t, User{}.IsEmpty())
	assert.False(t, User{Login: "ada"}.IsEmpty())
}

func TestUserResponseToUser(t *testing.T) {
	r := UserResponse{ID: "u1", Name: "Ada", Login: "ada"}
	assert.Equal(t, User{UserID: "u1", UserName: "Ada", Login: "ada"}, r.ToUser())
	assert.Equal(t, "u1", r.GetID())
}

func TestTaskBodyOmitsRoutingFields(t *testing.T) {
	data, err := json.Marshal(TaskBody{Title: "t", Order: 1, Description: "d", UserID: "u1"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "boardId")
	assert.NotContains(t, string(data), "columnId")
}

func TestSignInValidate(t *testing.T) {
	tests := []struct {
		name string
		req  SignInRequest
		want []string
	}{
		{"valid", SignInRequest{Login: "ada", Password: "pw"}, nil},
		{"missing login", SignInRequest{Password: "pw"}, []string{MsgLoginRequired}},
		{"empty password", SignInRequest{Login: "ada"}, []string{MsgPasswordRequired}},
		{"whitespace login", SignInRequest{Login: "  ", Password: "pw"}, nil},
		{"empty", SignInRequest{}, []string{MsgLoginRequired, MsgPasswordRequired}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			var got []string
			for _, fe := range errs {
				got = append(got, fe.Message)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidationErrors(t *testing.T) {
	errs := SignUpRequest{}.Validate()
	require.Len(t, errs, 3)
	assert.Equal(t, MsgNameRequired, errs.Message("name"))
	assert.Equal(t, "", errs.Message("nope"))
	assert.Equal(t, "Name is required; Login is required; Password is required", errs.Error())

	assert.Nil(t, CreateBoardRequest{Title: "x"}.Validate())
	assert.Equal(t, MsgTitleRequired, TaskBody{}.Validate().Message("title"))
	assert.Equal(t, MsgTitleRequired, CreateColumnRequest{}.Validate().Message("title"))
}
