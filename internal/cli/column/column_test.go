package column

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/testutil"
	clitest "github.com/thenoetrevino/kanbo/internal/testutil/cli"
)

func TestColumnCmdSubcommands(t *testing.T) {
	cmd := ColumnCmd()
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"list", "create", "update", "delete"}, names)
}

func TestListColumns_Integration(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	clitest.SignIn(t, fake, app)
	tb := clitest.CreateTestBoard(t, fake, "Roadmap")

	t.Run("human readable", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--board", tb.Board.ID})
		require.NoError(t, err)
		assert.Contains(t, output, "1. Todo")
		assert.Contains(t, output, "3. Done")
	})

	t.Run("quiet prints ids in order", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--board", tb.Board.ID, "--quiet"})
		require.NoError(t, err)
		lines := strings.Fields(output)
		require.Len(t, lines, 3)
		assert.Equal(t, tb.Columns[0].ID, lines[0])
	})

	t.Run("board from environment", func(t *testing.T) {
		t.Setenv(cli.BoardEnv, tb.Board.ID)
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)
		result := testutil.ParseJSON(t, output)
		assert.Len(t, result["data"], 3)
	})
}

func TestListColumns_Errors(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)

	t.Run("missing board", func(t *testing.T) {
		t.Setenv(cli.BoardEnv, "")
		_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("signed out", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--board", "b1", "--json"})
		assert.Equal(t, cli.ExitAuth, cli.ExitCode(err))
	})

	t.Run("unknown board", func(t *testing.T) {
		clitest.SignIn(t, fake, app)
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--board", "nope", "--json"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
		result := testutil.ParseJSON(t, output)
		assert.False(t, result["success"].(bool))
	})
}

func TestCreateColumn_Integration(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	clitest.SignIn(t, fake, app)
	tb := clitest.CreateTestBoard(t, fake, "Roadmap")

	tests := []struct {
		name         string
		flags        []string
		wantCode     int
		verifyOutput func(t *testing.T, output string)
	}{
		{
			name:  "appends after the last column",
			flags: []string{"--title", "Review", "--board", tb.Board.ID},
			verifyOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "Column 'Review' created successfully")
				assert.Contains(t, output, "Order: 4")
			},
		},
		{
			name:  "json output",
			flags: []string{"--title", "Blocked", "--order", "2", "--board", tb.Board.ID, "--json"},
			verifyOutput: func(t *testing.T, output string) {
				result := testutil.ParseJSON(t, output)
				assert.True(t, result["success"].(bool))
				data := result["data"].(map[string]any)
				assert.Equal(t, "Blocked", data["title"])
				assert.Equal(t, float64(2), data["order"])
			},
		},
		{
			name:  "quiet mode prints the id",
			flags: []string{"--title", "Quiet", "--board", tb.Board.ID, "--quiet"},
			verifyOutput: func(t *testing.T, output string) {
				assert.NotEmpty(t, strings.TrimSpace(output))
				assert.NotContains(t, output, "created")
			},
		},
		{
			name:     "missing title",
			flags:    []string{"--board", tb.Board.ID, "--json"},
			wantCode: cli.ExitUsage,
		},
		{
			name:     "negative order",
			flags:    []string{"--title", "x", "--order", "-1", "--board", tb.Board.ID, "--json"},
			wantCode: cli.ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), tt.flags)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, cli.ExitCode(err))
				return
			}
			require.NoError(t, err)
			if tt.verifyOutput != nil {
				tt.verifyOutput(t, output)
			}
		})
	}
}

func TestUpdateColumn_Integration(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	clitest.SignIn(t, fake, app)
	tb := clitest.CreateTestBoard(t, fake, "Roadmap")
	todo := tb.Columns[0]

	t.Run("rename keeps order", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(),
			[]string{todo.ID, "--title", "Backlog", "--board", tb.Board.ID, "--json"})
		require.NoError(t, err)
		data := testutil.ParseJSON(t, output)["data"].(map[string]any)
		assert.Equal(t, "Backlog", data["title"])
		assert.Equal(t, float64(todo.Order), data["order"])
	})

	t.Run("nothing to update", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(),
			[]string{todo.ID, "--board", tb.Board.ID, "--json"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(),
			[]string{"missing", "--title", "x", "--board", tb.Board.ID, "--json"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestDeleteColumn_Integration(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	clitest.SignIn(t, fake, app)
	tb := clitest.CreateTestBoard(t, fake, "Roadmap")

	t.Run("declined confirmation keeps the column", func(t *testing.T) {
		cmd := DeleteCmd()
		cmd.SetIn(strings.NewReader("n\n"))
		output, err := clitest.ExecuteCLICommand(t, app, cmd, []string{tb.Columns[0].ID, "--board", tb.Board.ID})
		require.NoError(t, err)
		assert.Contains(t, output, "Cancelled")
		assert.Equal(t, 0, fake.CountRequests("DELETE", "/boards/"+tb.Board.ID+"/columns/"+tb.Columns[0].ID))
	})

	t.Run("confirmed", func(t *testing.T) {
		cmd := DeleteCmd()
		cmd.SetIn(strings.NewReader("yes\n"))
		output, err := clitest.ExecuteCLICommand(t, app, cmd, []string{tb.Columns[0].ID, "--board", tb.Board.ID})
		require.NoError(t, err)
		assert.Contains(t, output, "Column 'Todo' deleted successfully")
	})

	t.Run("force with json", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(),
			[]string{"--id", tb.Columns[1].ID, "--force", "--board", tb.Board.ID, "--json"})
		require.NoError(t, err)
		data := testutil.ParseJSON(t, output)["data"].(map[string]any)
		assert.Equal(t, tb.Columns[1].ID, data["column_id"])
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--board", tb.Board.ID, "--json"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}
