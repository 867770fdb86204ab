// Package main provides the shoebox CLI.
// See docs/ARCHITECTURE.md § System Components (CLI).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/driftwood-labs/shoebox/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps an error to the process exit code: bad input exits 1,
// system failures exit 2.
func exitCode(err error) int {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		return exitUserError
	}
	if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidQuery) {
		return exitUserError
	}
	return exitSysError
}
