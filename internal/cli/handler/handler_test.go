package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/models"
	clitest "github.com/thenoetrevino/kanbo/internal/testutil/cli"
	"github.com/thenoetrevino/kanbo/internal/testutil"
)

func newCmd(h Handler, cfg CommandConfig) *cobra.Command {
	cmd := &cobra.Command{Use: "probe [id]", RunE: Command(h, cfg)}
	cmd.Flags().String("name", "", "")
	cmd.Flags().Int("count", 0, "")
	cmd.Flags().Bool("force", false, "")
	cli.AddOutputFlags(cmd)
	return cmd
}

func TestCommandPassesFlags(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	clitest.SignIn(t, fake, app)

	var got *Arguments
	h := HandlerFunc(func(_ context.Context, _ *cli.CLI, args *Arguments) (any, error) {
		got = args
		return models.Board{ID: "b9"}, nil
	})

	output, err := clitest.ExecuteCLICommand(t, app, newCmd(h, CommandConfig{}),
		[]string{"pos", "--name", "x", "--count", "3", "--force", "--quiet"})
	require.NoError(t, err)

	assert.Equal(t, "b9\n", output)
	assert.Equal(t, []string{"pos"}, got.Args)
	assert.Equal(t, "x", got.GetString("name", ""))
	assert.Equal(t, 3, got.GetInt("count", 0))
	assert.True(t, got.GetBool("force"))
	assert.False(t, got.Has("json"))
	assert.Equal(t, "fallback", got.GetString("missing", "fallback"))
}

func TestCommandRequiresAuth(t *testing.T) {
	_, app := clitest.SetupCLITest(t)
	called := false
	h := HandlerFunc(func(context.Context, *cli.CLI, *Arguments) (any, error) {
		called = true
		return nil, nil
	})

	_, err := clitest.ExecuteCLICommand(t, app, newCmd(h, CommandConfig{}), []string{"--json"})
	assert.Equal(t, cli.ExitAuth, cli.ExitCode(err))
	assert.False(t, called)

	_, err = clitest.ExecuteCLICommand(t, app, newCmd(h, CommandConfig{Public: true}), []string{"--json"})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommandReportsFailure(t *testing.T) {
	_, app := clitest.SetupCLITest(t)
	h := HandlerFunc(func(context.Context, *cli.CLI, *Arguments) (any, error) {
		return nil, errors.New("boom")
	})

	output, err := clitest.ExecuteCLICommand(t, app,
		newCmd(h, CommandConfig{Public: true, ErrorCode: "PROBE_ERROR"}), []string{"--json"})
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
	assert.Equal(t, "PROBE_ERROR", errData["code"])
}

func TestFlagParserID(t *testing.T) {
	cmd := &cobra.Command{Use: "get [id]"}
	cmd.Flags().String("id", "", "")
	p := NewFlagParser(cmd, &cli.OutputFormatter{JSON: true})

	id, err := p.ID([]string{"b1"}, "id")
	require.NoError(t, err)
	assert.Equal(t, "b1", id)

	require.NoError(t, cmd.Flags().Set("id", "b2"))
	id, err = p.ID(nil, "id")
	require.NoError(t, err)
	assert.Equal(t, "b2", id)

	require.NoError(t, cmd.Flags().Set("id", ""))
	testutil.CaptureOutput(t, func() {
		_, err = p.ID(nil, "id")
	})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}
