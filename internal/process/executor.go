package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sungur/bowerbridge/internal/platform"
)

// Executor runs a shell command line and reports its exit code.
// An error is returned only when the process could not be run at all.
type Executor interface {
	Execute(ctx context.Context, command, dir string) (int, error)
}

// ShellExecutor runs commands through the platform's POSIX shell, streaming
// output to Stdout and Stderr.
type ShellExecutor struct {
	Stdout io.Writer
	Stderr io.Writer
	// Env is appended to the current environment.
	Env []string
}

// NewShellExecutor creates a ShellExecutor writing to the given streams.
func NewShellExecutor(stdout, stderr io.Writer, env []string) *ShellExecutor {
	return &ShellExecutor{Stdout: stdout, Stderr: stderr, Env: env}
}

// Execute runs command with dir as the child's working directory. An empty
// dir inherits the current directory; the caller's directory is never changed.
func (e *ShellExecutor) Execute(ctx context.Context, command, dir string) (int, error) {
	shell, args, err := platform.Shell()
	if err != nil {
		return -1, err
	}

	cmd := exec.CommandContext(ctx, shell, append(args, command)...)
	if dir != "" {
		cmd.Dir = dir
	}
	cmd.Env = append(os.Environ(), e.Env...)
	cmd.Stdin = nil
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("failed to execute command: %w", err)
	}
	return 0, nil
}
