package main

import (
	"errors"
	"fmt"
	"io"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError signals a non-zero exit code without calling os.Exit in RunE.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCode reports err on w and maps it to a process exit code.
// Errors that are not ExitErrors come from cobra itself (unknown command,
// bad flag) and count as usage errors.
func exitCode(err error, w io.Writer) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintf(w, "Error: %v\n", exitErr.Err)
		}
		return exitErr.Code
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	fmt.Fprintln(w, "Run 'greenbench --help' for usage.")
	return ExitUsage
}
