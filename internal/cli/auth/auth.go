// Package auth holds the session commands: login, logout, signup and whoami
package auth

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Commands returns the top-level session commands
func Commands() []*cobra.Command {
	return []*cobra.Command{
		LoginCmd(),
		LogoutCmd(),
		SignupCmd(),
		WhoamiCmd(),
	}
}

// isTerminal reports whether stdin is interactive
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptPassword asks for a password without echoing it
func promptPassword(title string) (string, error) {
	var password string
	err := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&password).
		Run()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}
