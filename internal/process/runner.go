// Package process locates an external executable and runs it.
//
// A Runner resolves its executable once and reuses the result (or the
// failure) for its whole lifetime. Commands are built by quoting every
// argument for a POSIX shell, so package names and install paths with
// spaces or metacharacters reach the tool as single literal arguments.
package process

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"mvdan.cc/sh/v3/syntax"

	"github.com/sungur/bowerbridge/internal/log"
	"github.com/sungur/bowerbridge/internal/paths"
)

// Runner resolves one executable and runs command lines with it.
type Runner struct {
	name     string
	fallback string
	baseDir  string
	finder   Finder
	executor Executor

	once sync.Once
	path string
	err  error
}

// NewRunner creates a Runner for the executable name. fallback is resolved
// against baseDir so that it keeps pointing at the project's copy when
// commands run inside vendor package directories.
func NewRunner(name, fallback, baseDir string, finder Finder, executor Executor) *Runner {
	return &Runner{
		name:     name,
		fallback: fallback,
		baseDir:  baseDir,
		finder:   finder,
		executor: executor,
	}
}

// ResolveExecutable returns the executable path, searching only on the
// first call. A failed search is also remembered.
func (r *Runner) ResolveExecutable() (string, error) {
	r.once.Do(func() {
		fallback := r.fallback
		if fallback != "" {
			resolved, err := paths.Resolve(r.baseDir, fallback)
			if err != nil {
				r.err = err
				return
			}
			fallback = resolved
		}

		p, ok := r.finder.Find(r.name, fallback)
		if !ok {
			r.err = &NotFoundError{Name: r.name, Fallback: fallback}
			return
		}
		log.Debugf("Using %s at %s", r.name, p)
		r.path = p
	})
	return r.path, r.err
}

// Run executes args as one shell command in dir ("" = current directory).
// A non-zero exit code is returned as *CommandFailedError.
func (r *Runner) Run(ctx context.Context, args []string, dir string) error {
	command, err := BuildCommand(args)
	if err != nil {
		return err
	}

	if dir != "" {
		log.Debugf("Running %s in %s", command, dir)
	} else {
		log.Debugf("Running %s", command)
	}

	exitCode, err := r.executor.Execute(ctx, command, dir)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		return &CommandFailedError{Command: command, ExitCode: exitCode}
	}
	return nil
}

// BuildCommand quotes each argument for a POSIX shell and joins them with spaces.
// Arguments the quoter rejects for control characters (tabs, newlines) are
// single-quoted verbatim; only NUL bytes cannot be passed.
func BuildCommand(args []string) (string, error) {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.ContainsRune(arg, 0) {
			return "", fmt.Errorf("cannot quote argument %q: contains a null byte", arg)
		}
		q, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err != nil {
			q = singleQuote(arg)
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, " "), nil
}

// singleQuote wraps s in single quotes, closing and reopening the quotes
// around each embedded single quote.
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
