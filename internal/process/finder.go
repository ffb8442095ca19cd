package process

import (
	"os/exec"
	"path/filepath"

	"github.com/sungur/bowerbridge/internal/paths"
	"github.com/sungur/bowerbridge/internal/platform"
)

// Finder locates an executable by name, falling back to a fixed path.
type Finder interface {
	Find(name, fallback string) (string, bool)
}

// ExecutableFinder searches PATH first, then checks the fallback path.
type ExecutableFinder struct {
	lookPath     func(string) (string, error)
	isExecutable func(string) bool
}

// NewExecutableFinder returns a finder backed by exec.LookPath.
func NewExecutableFinder() *ExecutableFinder {
	return &ExecutableFinder{
		lookPath:     exec.LookPath,
		isExecutable: paths.IsExecutableFile,
	}
}

// Find returns the first match among the platform's names for the
// executable on PATH, then among the same names at fallback.
func (f *ExecutableFinder) Find(name, fallback string) (string, bool) {
	for _, candidate := range platform.ExecutableNames(name) {
		if p, err := f.lookPath(candidate); err == nil {
			return p, true
		}
	}
	if fallback == "" {
		return "", false
	}

	dir, base := filepath.Split(fallback)
	for _, candidate := range platform.ExecutableNames(base) {
		p := filepath.Join(dir, candidate)
		if f.isExecutable(p) {
			return p, true
		}
	}
	return "", false
}
