package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sungur/bowerbridge/internal/composer"
	"github.com/sungur/bowerbridge/internal/config"
	"github.com/sungur/bowerbridge/internal/log"
	"github.com/sungur/bowerbridge/internal/paths"
	"github.com/sungur/bowerbridge/internal/platform"
)

// projectContext is everything a command needs to run the bridge.
type projectContext struct {
	Dir     string
	Config  config.BridgeConfig
	Project *composer.Project
}

// loadProject resolves the working directory, loads configuration and reads
// the Composer project. When --working-dir is given the process changes into
// it first, like "composer -d", so the root project's bower runs there.
func loadProject(cmd *cobra.Command) (*projectContext, error) {
	f := cmd.Flags()

	dir := "."
	if wd, _ := f.GetString("working-dir"); wd != "" {
		dir = wd
	}
	projectDir, err := paths.ValidateProjectPath(dir)
	if err != nil {
		return nil, err
	}
	if dir != "." {
		if err := os.Chdir(projectDir); err != nil {
			return nil, fmt.Errorf("cannot change to directory %q: %w", projectDir, err)
		}
	}

	cfg := config.LoadConfig(projectDir)
	applyConfig(f, &cfg)
	log.Debugf("Project %s on %s", projectDir, platform.HostOSName())

	project, err := composer.Load(projectDir, composer.LoadOptions{VendorDir: cfg.VendorDir})
	if err != nil {
		return nil, err
	}

	return &projectContext{Dir: projectDir, Config: cfg, Project: project}, nil
}

// applyConfig merges CLI flags into the file configuration and applies the
// file's logging settings when the flags left them alone.
func applyConfig(f *pflag.FlagSet, cfg *config.BridgeConfig) {
	cfg.Executable = resolveStringFlag(f, "bower", cfg.Executable)

	if !f.Changed("quiet") && boolPtrDefault(cfg.Quiet, false) {
		log.EnableQuietMode()
	}
	if !f.Changed("verbose") {
		log.SetVerbosity(cfg.Debug)
	}
}

// resolveDevMode picks the dev mode for an install: an explicit --no-dev
// wins, then Composer's COMPOSER_DEV_MODE, then the config file, then dev.
func resolveDevMode(f *pflag.FlagSet, cfg config.BridgeConfig) bool {
	if f.Lookup("no-dev") != nil && f.Changed("no-dev") {
		noDev, _ := f.GetBool("no-dev")
		return !noDev
	}
	if dev, ok := config.DevModeFromEnv(); ok {
		return dev
	}
	return boolPtrDefault(cfg.DevMode, true)
}

// --- Utility helpers ---

// boolPtrDefault dereferences a *bool, returning defaultVal if nil.
func boolPtrDefault(ptr *bool, defaultVal bool) bool {
	if ptr == nil {
		return defaultVal
	}
	return *ptr
}

// resolveStringFlag returns the CLI flag value if explicitly set by the user,
// otherwise the config file value if non-empty, otherwise the flag default.
func resolveStringFlag(f *pflag.FlagSet, name string, configValue string) string {
	if f.Changed(name) {
		val, _ := f.GetString(name)
		return val
	}
	if configValue != "" {
		return configValue
	}
	val, _ := f.GetString(name)
	return val
}
