// Package config provides configuration types, constants, and utilities for bowerbridge.
package config

import (
	"fmt"
	"os"
	"strings"
)

// BridgeConfig represents the bowerbridge configuration model.
// All fields are optional (zero value = not set). CLI flags take precedence.
type BridgeConfig struct {
	// Bower executable name looked up on PATH, or an explicit path.
	Executable string `yaml:"executable,omitempty"`
	// Fallback path, relative to the project root, used when Executable is not on PATH.
	Fallback string `yaml:"fallback,omitempty"`

	// Composer layout
	VendorDir string `yaml:"vendorDir,omitempty"`

	// Behavior
	DevMode *bool `yaml:"devMode,omitempty"` // pointer to distinguish unset from false
	Quiet   *bool `yaml:"quiet,omitempty"`
	Debug   int   `yaml:"debug,omitempty"`

	// Self-update release repository ("owner/name")
	UpdateRepo string `yaml:"updateRepo,omitempty"`

	// Extra environment variables passed to bower
	Env map[string]string `yaml:"env,omitempty"`
}

// MarkerPackage is the Composer package name a package must require to have
// its Bower dependencies installed. Matching is exact and case-sensitive.
const MarkerPackage = "peertopark/composer-bower-bridge"

// --- Bower executable ---

const (
	// DefaultExecutable is the canonical bower binary name looked up on PATH.
	DefaultExecutable = "bower"
	// DefaultFallback is where a project-local bower lives after "npm install bower".
	DefaultFallback = "node_modules/.bin/bower"
)

// --- Composer layout ---

const (
	// DefaultManifest is the root Composer manifest file name.
	DefaultManifest = "composer.json"
	// DefaultVendorDir is Composer's default vendor directory.
	DefaultVendorDir = "vendor"
	// InstalledFile is the installed package list, relative to the vendor dir.
	InstalledFile = "composer/installed.json"
	// RootPackageName is the name Composer gives a root package without one.
	RootPackageName = "__root__"
)

// Env holds the environment variable names bowerbridge reads.
var Env = struct {
	// Bower overrides the bower executable.
	Bower string
	// DevMode is set by Composer for scripts: "1" for dev, "0" for --no-dev.
	DevMode string
	// VendorDir overrides Composer's vendor-dir.
	VendorDir string
	// Manifest overrides the composer.json file name.
	Manifest string
}{
	Bower:     "BOWERBRIDGE_BOWER",
	DevMode:   "COMPOSER_DEV_MODE",
	VendorDir: "COMPOSER_VENDOR_DIR",
	Manifest:  "COMPOSER",
}

// ExecutableName returns the bower executable to use: cfg.Executable when
// set, DefaultExecutable otherwise.
func ExecutableName(cfg BridgeConfig) string {
	if cfg.Executable != "" {
		return cfg.Executable
	}
	return DefaultExecutable
}

// ApplyEnv overrides cfg with values from the environment.
// BOWERBRIDGE_BOWER replaces the configured executable when non-blank.
func ApplyEnv(cfg *BridgeConfig) {
	if v := strings.TrimSpace(os.Getenv(Env.Bower)); v != "" {
		cfg.Executable = v
	}
}

// FallbackPath returns the project-relative fallback location of bower.
func FallbackPath(cfg BridgeConfig) string {
	if cfg.Fallback != "" {
		return cfg.Fallback
	}
	return DefaultFallback
}

// DevModeFromEnv reports the dev mode Composer exported for the current
// script. ok is false when COMPOSER_DEV_MODE is unset.
func DevModeFromEnv() (dev bool, ok bool) {
	v, set := os.LookupEnv(Env.DevMode)
	if !set {
		return false, false
	}
	return strings.TrimSpace(v) != "0", true
}

// ConfigEnvToArray converts the Env map in a BridgeConfig to a slice
// of "KEY=VALUE" strings suitable for exec.Cmd.Env.
func ConfigEnvToArray(cfg BridgeConfig) []string {
	if cfg.Env == nil {
		return nil
	}
	result := make([]string, 0, len(cfg.Env))
	for k, v := range cfg.Env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}
