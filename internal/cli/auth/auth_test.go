package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/models"
	"github.com/thenoetrevino/kanbo/internal/storage"
	"github.com/thenoetrevino/kanbo/internal/store"
	"github.com/thenoetrevino/kanbo/internal/testutil"
	clitest "github.com/thenoetrevino/kanbo/internal/testutil/cli"
)

func init() {
	isTerminal = func() bool { return false }
}

func TestCommands(t *testing.T) {
	var names []string
	for _, cmd := range Commands() {
		names = append(names, cmd.Name())
	}
	assert.Equal(t, []string{"login", "logout", "signup", "whoami"}, names)
}

// ============================================================================
// login
// ============================================================================

func TestLogin_Integration(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	alice := fake.SeedUser("Alice", "alice", "pw")

	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantCode int
		verify   func(t *testing.T, output string)
	}{
		{
			name:     "missing login",
			args:     []string{"--password", "pw", "--json"},
			wantCode: cli.ExitUsage,
			verify: func(t *testing.T, output string) {
				errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
				assert.Contains(t, errData["message"], models.MsgLoginRequired)
			},
		},
		{
			name:     "missing password",
			args:     []string{"--login", "alice", "--json"},
			wantCode: cli.ExitUsage,
		},
		{
			name:     "wrong password",
			args:     []string{"--login", "alice", "--password", "nope", "--json"},
			wantCode: cli.ExitAuth,
			verify: func(t *testing.T, output string) {
				errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
				assert.Equal(t, "User was not founded!", errData["message"])
			},
		},
		{
			name:  "password from stdin",
			args:  []string{"--login", "alice", "--password", "-"},
			stdin: "pw\n",
			verify: func(t *testing.T, output string) {
				assert.Contains(t, output, "Signed in as Alice (alice)")
			},
		},
		{
			name: "json",
			args: []string{"--login", "alice", "--password", "pw", "--json"},
			verify: func(t *testing.T, output string) {
				data := testutil.ParseJSON(t, output)["data"].(map[string]any)
				assert.Equal(t, alice.ID, data["userId"])
				assert.Equal(t, "Alice", data["userName"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := LoginCmd()
			cmd.SetIn(strings.NewReader(tt.stdin))
			output, err := clitest.ExecuteCLICommand(t, app, cmd, tt.args)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, cli.ExitCode(err))
			} else {
				require.NoError(t, err)
			}
			if tt.verify != nil {
				tt.verify(t, output)
			}
		})
	}

	token, ok, err := app.Storage().Get(context.Background(), storage.KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, token, "sign in persists the token")
}

// ============================================================================
// logout
// ============================================================================

func TestLogout_Integration(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, LogoutCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Not signed in")

	clitest.SignIn(t, fake, app)
	output, err = clitest.ExecuteCLICommand(t, app, LogoutCmd(), []string{"--json"})
	require.NoError(t, err)
	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, true, data["signed_out"])

	assert.False(t, store.IsAuthenticated(app.Store.State()))
	_, ok, err := app.Storage().Get(context.Background(), storage.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

// ============================================================================
// signup
// ============================================================================

func TestSignup_Integration(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	fake.SeedUser("Taken", "taken", "pw")

	output, err := clitest.ExecuteCLICommand(t, app, SignupCmd(),
		[]string{"--name", "Bob", "--login", "bob", "--password", "pw"})
	require.NoError(t, err)
	assert.Contains(t, output, "Account 'bob' created")
	assert.NotNil(t, app.Store.State().Auth.Registered)
	assert.False(t, store.IsAuthenticated(app.Store.State()), "signup does not sign in")

	output, err = clitest.ExecuteCLICommand(t, app, SignupCmd(),
		[]string{"--name", "Dup", "--login", "taken", "--password", "pw", "--json"})
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
	assert.Equal(t, "User login already exists!", errData["message"])

	_, err = clitest.ExecuteCLICommand(t, app, SignupCmd(), []string{"--login", "x", "--password", "pw", "--json"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

// ============================================================================
// whoami
// ============================================================================

func TestWhoami_Integration(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, app, WhoamiCmd(), []string{"--json"})
	assert.Equal(t, cli.ExitAuth, cli.ExitCode(err))

	me := clitest.SignIn(t, fake, app)

	output, err := clitest.ExecuteCLICommand(t, app, WhoamiCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "tester")

	output, err = clitest.ExecuteCLICommand(t, app, WhoamiCmd(), []string{"--refresh", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, me.ID+"\n", output)
	assert.Equal(t, 2, fake.CountRequests("GET", "/users/"+me.ID))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "alice", displayName(models.User{Login: "alice"}))
	assert.Equal(t, "Alice (alice)", displayName(models.User{UserName: "Alice", Login: "alice"}))
}
