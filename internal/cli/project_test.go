package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/sungur/bowerbridge/internal/composer"
	"github.com/sungur/bowerbridge/internal/config"
)

func TestBoolPtrDefault(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		ptr        *bool
		defaultVal bool
		want       bool
	}{
		{"nil with true default", nil, true, true},
		{"nil with false default", nil, false, false},
		{"true ptr ignores default", &trueVal, false, true},
		{"false ptr ignores default", &falseVal, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := boolPtrDefault(tt.ptr, tt.defaultVal)
			if got != tt.want {
				t.Errorf("boolPtrDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.String("bower", "", "")
	f.Bool("no-dev", false, "")
	if err := f.Parse(args); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestResolveStringFlag(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		configValue string
		want        string
	}{
		{"flag set wins", []string{"--bower", "/cli/bower"}, "/cfg/bower", "/cli/bower"},
		{"config when flag unset", nil, "/cfg/bower", "/cfg/bower"},
		{"flag default last", nil, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFlagSet(t, tt.args...)
			if got := resolveStringFlag(f, "bower", tt.configValue); got != tt.want {
				t.Errorf("resolveStringFlag() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveDevMode(t *testing.T) {
	falseVal := false

	tests := []struct {
		name string
		args []string
		env  *string
		cfg  config.BridgeConfig
		want bool
	}{
		{"default is dev", nil, nil, config.BridgeConfig{}, true},
		{"config turns dev off", nil, nil, config.BridgeConfig{DevMode: &falseVal}, false},
		{"composer no-dev", nil, strPtr("0"), config.BridgeConfig{}, false},
		{"composer dev beats config", nil, strPtr("1"), config.BridgeConfig{DevMode: &falseVal}, true},
		{"flag beats composer", []string{"--no-dev"}, strPtr("1"), config.BridgeConfig{}, false},
		{"explicit --no-dev=false", []string{"--no-dev=false"}, strPtr("0"), config.BridgeConfig{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != nil {
				t.Setenv(config.Env.DevMode, *tt.env)
			} else {
				unsetEnv(t, config.Env.DevMode)
			}
			f := newFlagSet(t, tt.args...)
			if got := resolveDevMode(f, tt.cfg); got != tt.want {
				t.Errorf("resolveDevMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveDevModeWithoutFlag(t *testing.T) {
	t.Setenv(config.Env.DevMode, "0")
	f := pflag.NewFlagSet("update", pflag.ContinueOnError)
	if got := resolveDevMode(f, config.BridgeConfig{}); got {
		t.Error("resolveDevMode() = true, want false from COMPOSER_DEV_MODE")
	}
}

func TestPackageLines(t *testing.T) {
	project := &composer.Project{
		Root: composer.Package{Name: "app/app", PrettyName: "App/App", DevRequires: []string{config.MarkerPackage}},
		Packages: []composer.Package{
			{Name: "acme/ui", PrettyName: "Acme/UI", Requires: []string{config.MarkerPackage}, InstallPath: filepath.FromSlash("/app/vendor/acme/ui")},
			{Name: "acme/core", PrettyName: "Acme/Core", InstallPath: filepath.FromSlash("/app/vendor/acme/core")},
		},
	}

	lines := packageLines(project)
	if len(lines) != 2 {
		t.Fatalf("packageLines() returned %d lines, want 2: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "App/App") || !strings.Contains(lines[0], "opted in (dev)") {
		t.Errorf("root line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Acme/UI") || !strings.Contains(lines[1], project.Packages[0].InstallPath) {
		t.Errorf("vendor line = %q", lines[1])
	}

	empty := packageLines(&composer.Project{Root: composer.Package{PrettyName: config.RootPackageName}})
	if len(empty) != 2 || !strings.Contains(empty[0], "not opted in") {
		t.Errorf("packageLines() for empty project = %q", empty)
	}
}

func strPtr(s string) *string { return &s }

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}
}
