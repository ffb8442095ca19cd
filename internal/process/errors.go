package process

import "fmt"

// NotFoundError is returned when the executable is neither on PATH nor at
// the fallback location.
type NotFoundError struct {
	Name     string
	Fallback string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("the %s executable could not be found (looked on PATH and at %s)", e.Name, e.Fallback)
}

// CommandFailedError is returned when the external process exits non-zero.
type CommandFailedError struct {
	// Command is the full shell command line that was run.
	Command  string
	ExitCode int
}

func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("command failed with exit code %d: %s", e.ExitCode, e.Command)
}
