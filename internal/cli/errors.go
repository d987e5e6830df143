package cli

import (
	"errors"
	"fmt"
)

var (
	ErrUsage          = errors.New("usage error")
	ErrNoCommand      = fmt.Errorf("%w: no command given", ErrUsage)
	ErrUnknownCommand = fmt.Errorf("%w: unknown command", ErrUsage)
	ErrInputRead      = errors.New("read input")
	ErrPromptAborted  = errors.New("prompt aborted")
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// ExitCode maps the result of Run to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrUsage):
		return exitUsage
	default:
		return exitFailure
	}
}
