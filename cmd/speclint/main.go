// Package main is the entry point for the speclint CLI.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/speclint/cmd/speclint/commands"
	"github.com/thoreinstein/speclint/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	// The report has already described validation failures.
	if !errors.Is(err, errors.ErrValidationFailed) {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
	}
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.HiBlackString("Hint:"), exitErr.Suggestion)
	}
	os.Exit(errors.ExitCode(err))
}
