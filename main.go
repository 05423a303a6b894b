package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/kanbo/cmd"
	"github.com/thenoetrevino/kanbo/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	// Commands report their own failures before returning a coded error
	var coded *cli.CodedError
	if !errors.As(err, &coded) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
