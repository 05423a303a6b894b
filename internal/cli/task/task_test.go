package task

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/models"
	"github.com/thenoetrevino/kanbo/internal/testutil"
	clitest "github.com/thenoetrevino/kanbo/internal/testutil/cli"
)

func TestResolveColumn(t *testing.T) {
	cols := []models.Column{
		{ID: "c1", Title: "Todo"},
		{ID: "c2", Title: "In Progress"},
	}

	tests := []struct {
		ref    string
		wantID string
		wantOK bool
	}{
		{"c2", "c2", true},
		{"todo", "c1", true},
		{"IN PROGRESS", "c2", true},
		{"Done", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			col, ok := resolveColumn(cols, tt.ref)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, col.ID)
		})
	}
}

func TestNextOrder(t *testing.T) {
	assert.Equal(t, 1, nextOrder(nil))
	assert.Equal(t, 6, nextOrder([]models.Task{{Order: 2}, {Order: 5}, {Order: 1}}))
}

// ============================================================================
// integration
// ============================================================================

func TestCreateTask_Integration(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	me := clitest.SignIn(t, fake, app)
	tb := clitest.CreateTestBoard(t, fake, "Roadmap")
	board := "--board=" + tb.Board.ID

	t.Run("defaults to the first column and the current user", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "Fix bug", board, "--json"})
		require.NoError(t, err)
		data := testutil.ParseJSON(t, output)["data"].(map[string]any)
		assert.Equal(t, tb.Columns[0].ID, data["columnId"])
		assert.Equal(t, me.ID, data["userId"])
		assert.Equal(t, float64(1), data["order"])
	})

	t.Run("column by title", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "Review", "--column", "in progress", board})
		require.NoError(t, err)
		assert.Contains(t, output, "Task 'Review' created successfully")
		assert.Contains(t, output, "Column: In Progress")
	})

	t.Run("description from stdin", func(t *testing.T) {
		cmd := CreateCmd()
		cmd.SetIn(strings.NewReader("# Notes\nsome details\n"))
		output, err := clitest.ExecuteCLICommand(t, app, cmd, []string{"--title", "Docs", "--description", "-", board, "--quiet"})
		require.NoError(t, err)
		id := strings.TrimSpace(output)
		var found *models.Task
		for _, task := range fake.Tasks(tb.Columns[0].ID) {
			if task.ID == id {
				found = &task
			}
		}
		require.NotNil(t, found)
		assert.Equal(t, "# Notes\nsome details", found.Description)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{board, "--json"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "x", "--column", "Nope", board, "--json"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("board without columns", func(t *testing.T) {
		empty := fake.SeedBoard("Empty", "")
		_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "x", "--board", empty.ID, "--json"})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})
}

func TestListTasks_Integration(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	clitest.SignIn(t, fake, app)
	tb := clitest.CreateTestBoard(t, fake, "Roadmap")
	a := clitest.CreateTestTask(t, fake, tb.Board.ID, tb.Columns[0].ID, "First")
	clitest.CreateTestTask(t, fake, tb.Board.ID, tb.Columns[2].ID, "Shipped")
	t.Setenv(cli.BoardEnv, tb.Board.ID)

	t.Run("every column", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "First")
		assert.Contains(t, output, "Shipped")
		assert.Contains(t, output, "In Progress")
	})

	t.Run("one column", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--column", "Todo", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, a.ID+"\n", output)
	})

	t.Run("json", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)
		assert.Len(t, testutil.ParseJSON(t, output)["data"], 2)
	})
}

func TestGetTask_Integration(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	clitest.SignIn(t, fake, app)
	tb := clitest.CreateTestBoard(t, fake, "Roadmap")
	task := fake.SeedTask(tb.Board.ID, tb.Columns[0].ID, "Write docs", "Cover the **CLI**")
	board := "--board=" + tb.Board.ID

	output, err := clitest.ExecuteCLICommand(t, app, GetCmd(), []string{task.ID, "--column", "Todo", board})
	require.NoError(t, err)
	assert.Contains(t, output, "Write docs")
	assert.Contains(t, output, "CLI")

	output, err = clitest.ExecuteCLICommand(t, app, GetCmd(), []string{task.ID, "--column", tb.Columns[0].ID, board, "--json"})
	require.NoError(t, err)
	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, "Cover the **CLI**", data["description"])

	_, err = clitest.ExecuteCLICommand(t, app, GetCmd(), []string{task.ID, board, "--json"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err), "--column is required")

	_, err = clitest.ExecuteCLICommand(t, app, GetCmd(), []string{"missing", "--column", "Todo", board, "--json"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestUpdateTask_Integration(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	clitest.SignIn(t, fake, app)
	tb := clitest.CreateTestBoard(t, fake, "Roadmap")
	task := fake.SeedTask(tb.Board.ID, tb.Columns[0].ID, "Write docs", "keep")
	board := "--board=" + tb.Board.ID

	t.Run("rename keeps other fields", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(),
			[]string{task.ID, "--column", "Todo", "--title", "Write more docs", board, "--json"})
		require.NoError(t, err)
		data := testutil.ParseJSON(t, output)["data"].(map[string]any)
		assert.Equal(t, "Write more docs", data["title"])
		assert.Equal(t, "keep", data["description"])
	})

	t.Run("move to another column", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(),
			[]string{task.ID, "--column", "Todo", "--to-column", "Done", board})
		require.NoError(t, err)
		assert.Contains(t, output, "Moved: Todo → Done")
		assert.Empty(t, fake.Tasks(tb.Columns[0].ID))
		require.Len(t, fake.Tasks(tb.Columns[2].ID), 1)

		st := app.Store.State()
		assert.Empty(t, st.Task.Tasks[tb.Columns[0].ID])
		assert.Len(t, st.Task.Tasks[tb.Columns[2].ID], 1)
	})

	t.Run("nothing to update", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{task.ID, "--column", "Done", board, "--json"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(),
			[]string{task.ID, "--column", "Done", "--title", "", board, "--json"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}

func TestDeleteTask_Integration(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	clitest.SignIn(t, fake, app)
	tb := clitest.CreateTestBoard(t, fake, "Roadmap")
	task := clitest.CreateTestTask(t, fake, tb.Board.ID, tb.Columns[0].ID, "Obsolete")
	board := "--board=" + tb.Board.ID

	cmd := DeleteCmd()
	cmd.SetIn(strings.NewReader("n\n"))
	output, err := clitest.ExecuteCLICommand(t, app, cmd, []string{task.ID, "--column", "Todo", board})
	require.NoError(t, err)
	assert.Contains(t, output, "Cancelled")
	assert.Len(t, fake.Tasks(tb.Columns[0].ID), 1)

	output, err = clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{task.ID, "--column", "Todo", board, "--json"})
	require.NoError(t, err)
	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, task.ID, data["task_id"])
	assert.Empty(t, fake.Tasks(tb.Columns[0].ID))
}
