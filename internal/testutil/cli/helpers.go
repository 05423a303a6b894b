package cli

import (
	"testing"

	"github.com/thenoetrevino/kanbo/internal/models"
	"github.com/thenoetrevino/kanbo/internal/testutil"
)

// TestBoard is a board seeded with Todo, In Progress and Done columns
type TestBoard struct {
	Board   models.Board
	Columns []models.Column
}

// CreateTestBoard seeds a board with default columns on the fake API
func CreateTestBoard(t *testing.T, fake *testutil.FakeAPI, title string) TestBoard {
	t.Helper()
	b := fake.SeedBoard(title, "")
	tb := TestBoard{Board: b}
	for _, name := range []string{"Todo", "In Progress", "Done"} {
		tb.Columns = append(tb.Columns, fake.SeedColumn(b.ID, name))
	}
	return tb
}

// CreateTestTask seeds a task in a column and returns it
func CreateTestTask(t *testing.T, fake *testutil.FakeAPI, boardID, columnID, title string) models.Task {
	t.Helper()
	return fake.SeedTask(boardID, columnID, title, "")
}
