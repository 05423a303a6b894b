package endpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"users", Users(), "/users"},
		{"user", User("u1"), "/users/u1"},
		{"boards", Boards(), "/boards"},
		{"board", Board("b1"), "/boards/b1"},
		{"columns", Columns("b1"), "/boards/b1/columns"},
		{"column", Column("b1", "c1"), "/boards/b1/columns/c1"},
		{"tasks", Tasks("b1", "c1"), "/boards/b1/columns/c1/tasks"},
		{"task", Task("b1", "c1", "t1"), "/boards/b1/columns/c1/tasks/t1"},
		{"escaped id", Board("a/b"), "/boards/a%2Fb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
