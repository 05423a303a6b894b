package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli/styles"
	"github.com/thenoetrevino/kanbo/internal/store"
)

// AddOutputFlags registers the agent-friendly flags every leaf command carries
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// Formatter builds the OutputFormatter selected by the command's flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// Setup resolves the CLI for a command, reporting initialization failures
func Setup(ctx context.Context, f *OutputFormatter) (*CLI, error) {
	c, err := GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := f.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return nil, Exit(ExitError, err)
	}
	styles.Init(c.App.Config.ColorScheme)
	return c, nil
}

// Close releases the CLI, logging failures
func Close(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

// RequireAuth fails with ExitAuth when no token is stored
func RequireAuth(c *CLI, f *OutputFormatter) error {
	if store.IsAuthenticated(c.App.Store.State()) {
		return nil
	}
	if fmtErr := f.ErrorWithSuggestion("NOT_AUTHENTICATED", "you are not signed in",
		"Sign in with 'kanbo login'"); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return Exit(ExitAuth, fmt.Errorf("not signed in"))
}

// Fail reports a failed store action with the message the store recorded
// and returns an error carrying the matching exit code.
func Fail(f *OutputFormatter, code string, err error) error {
	exit := ExitCode(err)

	suggestion := ""
	switch exit {
	case ExitAuth:
		suggestion = "Sign in again with 'kanbo login'"
	case ExitNotFound:
		suggestion = "Use a list command to see available IDs"
	}

	if fmtErr := f.ErrorWithSuggestion(code, store.ErrorMessage(err), suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return Exit(exit, err)
}

// Usage reports a usage error and returns it with ExitUsage
func Usage(f *OutputFormatter, message, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion("USAGE_ERROR", message, suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return Exit(ExitUsage, fmt.Errorf("%s", message))
}

// ReadText returns value, or everything on in when value is "-"
func ReadText(value string, in io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// BoardEnv is the variable 'kanbo use board' exports for the shell session
const BoardEnv = "KANBO_BOARD"

// AddBoardFlag registers the --board flag that falls back to BoardEnv
func AddBoardFlag(cmd *cobra.Command) {
	cmd.Flags().String("board", "", "Board ID (uses "+BoardEnv+" env var if not specified)")
}

// BoardID returns --board, or BoardEnv when the flag is unset
func BoardID(cmd *cobra.Command, f *OutputFormatter) (string, error) {
	if id, _ := cmd.Flags().GetString("board"); id != "" {
		return id, nil
	}
	if id := os.Getenv(BoardEnv); id != "" {
		return id, nil
	}
	return "", Usage(f, "no board specified",
		"Pass --board or set one with: eval $(kanbo use board <board-id>)")
}

// Confirm prints prompt and reports whether the answer read from in is yes
func Confirm(in io.Reader, prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		slog.Debug("no confirmation input", "error", err)
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// PrintIDs prints one ID per line for quiet list output
func PrintIDs[T interface{ GetID() string }](items []T) {
	for _, item := range items {
		fmt.Println(item.GetID())
	}
}
