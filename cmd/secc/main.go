package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bjaus/secc/internal/clipboard"
)

const (
	exitOK    = 0
	exitError = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, clipboard.NewService()))
}

// run executes the command and maps the outcome to an exit code. Panics
// are reported and exit with exitError.
func run(args []string, stdout, stderr io.Writer, copier clipboard.Copier) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "Unexpected error: %v\n", r)
			code = exitError
		}
	}()

	cmd := newRootCmd(stdout, stderr, copier)
	// Non-nil so cobra never falls back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}
