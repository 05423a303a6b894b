package use

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanbo/internal/cli"
	clitest "github.com/thenoetrevino/kanbo/internal/testutil/cli"
)

func TestUseBoard(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	clitest.SignIn(t, fake, app)
	b := fake.SeedBoard("Roadmap", "")

	t.Run("exports the board", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{b.ID})
		require.NoError(t, err)
		assert.Equal(t, "export KANBO_BOARD="+b.ID+"\n", output)
	})

	t.Run("dry run prints nothing to stdout", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{b.ID, "--dry-run"})
		require.NoError(t, err)
		assert.Empty(t, output)
	})

	t.Run("clear", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"--clear"})
		require.NoError(t, err)
		assert.Equal(t, "unset KANBO_BOARD\n", output)
	})

	t.Run("show", func(t *testing.T) {
		t.Setenv(cli.BoardEnv, b.ID)
		output, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"--show"})
		require.NoError(t, err)
		assert.Contains(t, output, "Current board: "+b.ID+" (Roadmap)")
	})

	t.Run("unknown board", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"missing"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), nil)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}
