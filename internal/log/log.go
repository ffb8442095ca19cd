// Package log provides the console logger for bowerbridge.
//
// All bowerbridge output goes through this package. Styling uses lipgloss;
// warnings and errors go to stderr, everything else to stdout so that
// Composer shows it inline with its own script output.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// LogLevel controls the verbosity of log output.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is the default level.
	LevelInfo
	// LevelWarn shows only warnings and errors.
	LevelWarn
	// LevelError shows only errors.
	LevelError
	// LevelSilent suppresses all output.
	LevelSilent
)

type config struct {
	mu     sync.RWMutex
	level  LogLevel
	prefix bool
	quiet  bool
	stdout io.Writer
	stderr io.Writer
}

var cfg = &config{
	level:  LevelInfo,
	stdout: os.Stdout,
	stderr: os.Stderr,
}

var (
	dimStyle    = lipgloss.NewStyle().Faint(true)
	boldStyle   = lipgloss.NewStyle().Bold(true)
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// SetLevel sets the minimum log level. Messages below this level are suppressed.
func SetLevel(level LogLevel) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.level = level
}

// GetLevel returns the current log level.
func GetLevel() LogLevel {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.level
}

// SetVerbosity maps a -v count onto a level: 0 keeps info, 1+ enables debug.
func SetVerbosity(count int) {
	if count > 0 {
		SetLevel(LevelDebug)
	}
}

// SetPrefix enables or disables the [bowerbridge] prefix on all messages.
func SetPrefix(enabled bool) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.prefix = enabled
}

// SetOutput redirects stdout and stderr output. Nil keeps the current writer.
func SetOutput(stdout, stderr io.Writer) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	if stdout != nil {
		cfg.stdout = stdout
	}
	if stderr != nil {
		cfg.stderr = stderr
	}
}

// EnableQuietMode suppresses ALL output including errors.
// Only exit codes communicate success/failure.
func EnableQuietMode() {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.quiet = true
	cfg.level = LevelSilent
}

// DisableQuietMode restores normal output.
func DisableQuietMode() {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.quiet = false
	cfg.level = LevelInfo
}

// IsQuiet returns whether quiet mode is enabled.
func IsQuiet() bool {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.quiet
}

func canOutput(level LogLevel) bool {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return !cfg.quiet && cfg.level <= level
}

func formatMessage(message string) string {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	if cfg.prefix {
		return "[bowerbridge] " + message
	}
	return message
}

func stdout() io.Writer {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.stdout
}

func stderr() io.Writer {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.stderr
}

// Debug outputs a debug-level message (dim styling).
func Debug(message string) {
	if canOutput(LevelDebug) {
		fmt.Fprintln(stdout(), dimStyle.Render(formatMessage(message)))
	}
}

// Debugf outputs a formatted debug-level message.
func Debugf(format string, args ...any) {
	if canOutput(LevelDebug) {
		Debug(fmt.Sprintf(format, args...))
	}
}

// Info outputs an info-level message (no styling).
func Info(message string) {
	if canOutput(LevelInfo) {
		fmt.Fprintln(stdout(), formatMessage(message))
	}
}

// Infof outputs a formatted info-level message.
func Infof(format string, args ...any) {
	if canOutput(LevelInfo) {
		Info(fmt.Sprintf(format, args...))
	}
}

// Warn outputs a warning message (yellow, to stderr).
func Warn(message string) {
	if canOutput(LevelWarn) {
		fmt.Fprintln(stderr(), yellowStyle.Render(formatMessage(message)))
	}
}

// Warnf outputs a formatted warning message.
func Warnf(format string, args ...any) {
	if canOutput(LevelWarn) {
		Warn(fmt.Sprintf(format, args...))
	}
}

// Error outputs an error message (red, to stderr).
func Error(message string) {
	if canOutput(LevelError) {
		fmt.Fprintln(stderr(), redStyle.Render(formatMessage(message)))
	}
}

// Errorf outputs a formatted error message.
func Errorf(format string, args ...any) {
	if canOutput(LevelError) {
		Error(fmt.Sprintf(format, args...))
	}
}

// Success outputs a success message (green, info level).
func Success(message string) {
	if canOutput(LevelInfo) {
		fmt.Fprintln(stdout(), greenStyle.Render(formatMessage(message)))
	}
}

// Dim outputs a subtle message (info level).
func Dim(message string) {
	if canOutput(LevelInfo) {
		fmt.Fprintln(stdout(), dimStyle.Render(formatMessage(message)))
	}
}

// Raw outputs a message without any styling or prefix.
func Raw(message string) {
	if canOutput(LevelInfo) {
		fmt.Fprintln(stdout(), message)
	}
}

// Style returns styled strings without printing them. Use with Raw.
var Style = struct {
	Dim    func(...string) string
	Bold   func(...string) string
	Green  func(...string) string
	Yellow func(...string) string
	Cyan   func(...string) string
}{
	Dim:    dimStyle.Render,
	Bold:   boldStyle.Render,
	Green:  greenStyle.Render,
	Yellow: yellowStyle.Render,
	Cyan:   cyanStyle.Render,
}
