package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableOrder(t *testing.T) {
	paths := make([]string, 0, len(Table))
	for _, r := range Table {
		paths = append(paths, r.Path)
	}
	assert.Equal(t, []string{"/", "/auth", "/profile", "*", "board/:id"}, paths)
	assert.Equal(t, []string{"/", "/auth"}, PublicRoutes)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		path   string
		page   Page
		params map[string]string
	}{
		{"/", PageWelcome, nil},
		{"", PageWelcome, nil},
		{"/auth", PageAuth, nil},
		{"/auth/", PageAuth, nil},
		{"/profile?tab=edit", PageProfile, nil},
		{"/board/b1", PageBoard, map[string]string{"id": "b1"}},
		{"board/b1", PageBoard, map[string]string{"id": "b1"}},
		{"/board/a%2Fb", PageBoard, map[string]string{"id": "a/b"}},
		{"/board", PageError404, nil},
		{"/board/b1/extra", PageError404, nil},
		{"/nowhere", PageError404, nil},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m := Lookup(tt.path)
			assert.Equal(t, tt.page, m.Route.Page)
			assert.Equal(t, tt.params, m.Params)
			assert.False(t, m.Redirect)
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		authenticated bool
		page          Page
		redirect      bool
	}{
		{"public root", "/", false, PageWelcome, false},
		{"public auth", "/auth", false, PageAuth, false},
		{"private profile", "/profile", false, PageAuth, true},
		{"private board", "/board/b1", false, PageAuth, true},
		{"unknown path", "/nowhere", false, PageAuth, true},
		{"signed in profile", "/profile", true, PageProfile, false},
		{"signed in board", "/board/b1", true, PageBoard, false},
		{"signed in unknown", "/nowhere", true, PageError404, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Resolve(tt.path, tt.authenticated)
			assert.Equal(t, tt.page, m.Route.Page)
			assert.Equal(t, tt.redirect, m.Redirect)
		})
	}
}

func TestBoardPathRoundTrip(t *testing.T) {
	m := Lookup(BoardPath("b 1/2"))
	assert.Equal(t, PageBoard, m.Route.Page)
	assert.Equal(t, "b 1/2", m.Param("id"))
}

func TestPageString(t *testing.T) {
	assert.Equal(t, "board", PageBoard.String())
	assert.Equal(t, "unknown", Page(99).String())
}
