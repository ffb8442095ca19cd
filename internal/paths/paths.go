// Package paths provides path validation and normalization for project and
// package directories.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// PathError represents a path validation or access error.
type PathError struct {
	Message string
}

func (e *PathError) Error() string {
	return e.Message
}

// ValidateProjectPath validates and resolves a project directory path.
// Returns the resolved absolute path or an error if the path is invalid.
func ValidateProjectPath(path string) (string, error) {
	projectPath, err := filepath.Abs(path)
	if err != nil {
		return "", &PathError{Message: fmt.Sprintf("Cannot resolve path: %s", path)}
	}

	info, err := os.Lstat(projectPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &PathError{Message: fmt.Sprintf("Project path does not exist: %s", projectPath)}
		}
		return "", &PathError{Message: fmt.Sprintf("Cannot access path: %s: %v", projectPath, err)}
	}

	// Reject symlinks to prevent symlink-based path traversal
	if info.Mode()&os.ModeSymlink != 0 {
		return "", &PathError{Message: fmt.Sprintf("Project path cannot be a symlink: %s", projectPath)}
	}

	if !info.IsDir() {
		return "", &PathError{Message: fmt.Sprintf("Project path must be a directory: %s", projectPath)}
	}

	return projectPath, nil
}

// Resolve returns path as an absolute, cleaned, NFC-normalized path.
// Relative paths are joined onto base. Composer writes paths from the host
// filesystem, which on macOS may come back in NFD form.
func Resolve(base, path string) (string, error) {
	if strings.ContainsRune(path, 0) {
		return "", &PathError{
			Message: fmt.Sprintf("Null bytes not allowed in path: %q contains null byte at position %d", path, strings.IndexRune(path, 0)),
		}
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}
	return norm.NFC.String(filepath.Clean(path)), nil
}

// IsExecutableFile reports whether path exists and is a regular file that
// can be run. On Windows any regular file qualifies.
func IsExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
