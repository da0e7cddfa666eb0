// Package main is the entry point for the capsel CLI.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/capsel/cmd/capsel/commands"
	"github.com/thoreinstein/capsel/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
	if hints := errors.FlattenHints(err); hints != "" {
		fmt.Fprintln(os.Stderr, hints)
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintln(os.Stderr, color.New(color.FgHiBlack).Sprint(exitErr.Suggestion))
	}
	os.Exit(errors.ExitCode(err))
}
