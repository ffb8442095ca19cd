// Package bower runs the Bower CLI for a project directory.
package bower

import (
	"context"
	"io"

	"github.com/sungur/bowerbridge/internal/config"
	"github.com/sungur/bowerbridge/internal/process"
)

// DefaultIncludeDev is the includeDev value callers use when they have no
// opinion: development dependencies are installed.
const DefaultIncludeDev = true

// Runner resolves the bower executable and runs argument vectors with it.
type Runner interface {
	ResolveExecutable() (string, error)
	Run(ctx context.Context, args []string, dir string) error
}

// Client issues bower install and update commands.
type Client struct {
	runner Runner
}

// NewClient creates a Client backed by runner.
func NewClient(runner Runner) *Client {
	return &Client{runner: runner}
}

// NewDefault creates a Client that looks bower up on PATH and falls back to
// the project-local copy under baseDir. Bower output goes to stdout/stderr.
func NewDefault(cfg config.BridgeConfig, baseDir string, stdout, stderr io.Writer) *Client {
	runner := process.NewRunner(
		config.ExecutableName(cfg),
		config.FallbackPath(cfg),
		baseDir,
		process.NewExecutableFinder(),
		process.NewShellExecutor(stdout, stderr, config.ConfigEnvToArray(cfg)),
	)
	return NewClient(runner)
}

// Install runs "bower install" in path ("" = current directory).
// Without includeDev, "--production" skips devDependencies.
func (c *Client) Install(ctx context.Context, path string, includeDev bool) error {
	args := []string{"install"}
	if !includeDev {
		args = append(args, "--production")
	}
	return c.run(ctx, args, path)
}

// Update runs "bower update" in path ("" = current directory).
func (c *Client) Update(ctx context.Context, path string) error {
	return c.run(ctx, []string{"update"}, path)
}

func (c *Client) run(ctx context.Context, args []string, path string) error {
	executable, err := c.runner.ResolveExecutable()
	if err != nil {
		return err
	}
	return c.runner.Run(ctx, append([]string{executable}, args...), path)
}
