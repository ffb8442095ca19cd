// Package platform provides host platform detection and the platform-specific
// details of running external tools (shell selection, executable names).
package platform

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// HostPlatform represents the detected host operating system environment.
type HostPlatform string

const (
	// WindowsWSL is Windows Subsystem for Linux.
	WindowsWSL HostPlatform = "windows-wsl"
	// WindowsNative is native Windows (Git Bash, PowerShell, cmd).
	WindowsNative HostPlatform = "windows-native"
	// MacOS is macOS.
	MacOS HostPlatform = "macos"
	// Linux is native Linux.
	Linux HostPlatform = "linux"
)

var (
	detectedPlatform HostPlatform
	detectOnce       sync.Once
)

// DetectHost returns the current host platform, caching the result.
func DetectHost() HostPlatform {
	detectOnce.Do(func() {
		switch runtime.GOOS {
		case "windows":
			detectedPlatform = WindowsNative
		case "darwin":
			detectedPlatform = MacOS
		case "linux":
			if isWSL() {
				detectedPlatform = WindowsWSL
			} else {
				detectedPlatform = Linux
			}
		default:
			// Unknown OS, assume Linux-like behavior
			detectedPlatform = Linux
		}
	})
	return detectedPlatform
}

// isWSL checks if running inside WSL by reading /proc/version.
func isWSL() bool {
	data, err := os.ReadFile("/proc/version")
	if err == nil && strings.Contains(strings.ToLower(string(data)), "microsoft") {
		return true
	}
	return os.Getenv("WSL_DISTRO_NAME") != "" || os.Getenv("WSLENV") != ""
}

// HostOSName returns a human-readable OS name string.
func HostOSName() string {
	switch DetectHost() {
	case WindowsNative:
		return "Windows"
	case WindowsWSL:
		return "Windows (WSL)"
	case MacOS:
		return "macOS"
	case Linux:
		return "Linux"
	default:
		return "Unknown"
	}
}

// ErrNoShell is returned when no POSIX shell can be found.
var ErrNoShell = errors.New("no POSIX shell found (install Git for Windows or add sh to PATH)")

// Shell returns the POSIX shell and the arguments that precede the command
// string. Commands are quoted for POSIX sh, so Windows needs sh or bash from
// Git for Windows; cmd.exe and PowerShell are never used.
func Shell() (string, []string, error) {
	if DetectHost() != WindowsNative {
		if sh, err := exec.LookPath("sh"); err == nil {
			return sh, []string{"-c"}, nil
		}
		return "/bin/sh", []string{"-c"}, nil
	}
	for _, name := range []string{"sh", "bash"} {
		if p, err := exec.LookPath(name); err == nil {
			return p, []string{"-c"}, nil
		}
	}
	return "", nil, ErrNoShell
}

// ExecutableNames returns the file names under which an npm-installed tool
// can be found. npm writes "bower.cmd" shims on Windows next to the POSIX
// script, so both are candidates there.
func ExecutableNames(name string) []string {
	if DetectHost() != WindowsNative || filepath.Ext(name) != "" {
		return []string{name}
	}
	return []string{name + ".cmd", name + ".exe", name}
}
