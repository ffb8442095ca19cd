package composer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sungur/bowerbridge/internal/config"
	"github.com/sungur/bowerbridge/internal/log"
	"github.com/sungur/bowerbridge/internal/paths"
)

// ManifestError reports an unreadable or malformed Composer file.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error { return e.Err }

// LoadOptions tunes how a project is located on disk.
type LoadOptions struct {
	// Manifest overrides the root manifest file name (default: $COMPOSER or composer.json).
	Manifest string
	// VendorDir overrides the vendor dir (default: $COMPOSER_VENDOR_DIR, config.vendor-dir, "vendor").
	VendorDir string
}

// manifest is the subset of composer.json and installed.json entries we read.
type manifest struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Type        string            `json:"type"`
	Require     map[string]string `json:"require"`
	RequireDev  map[string]string `json:"require-dev"`
	InstallPath *string           `json:"install-path"`
	Config      struct {
		VendorDir string `json:"vendor-dir"`
	} `json:"config"`
}

// installedV2 is the Composer 2 installed.json layout. Composer 1 wrote a
// bare array of packages instead.
type installedV2 struct {
	Packages []manifest `json:"packages"`
}

// Load reads the Composer project rooted at dir.
//
// A missing installed.json is not an error: the project simply has no
// vendor packages yet.
func Load(dir string, opts LoadOptions) (*Project, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve project dir: %w", err)
	}

	manifestPath := filepath.Join(dir, manifestName(opts))
	root, err := readManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	vendorDir, err := paths.Resolve(dir, vendorDirName(opts, root))
	if err != nil {
		return nil, err
	}

	project := &Project{
		Dir:       dir,
		VendorDir: vendorDir,
		Root:      toPackage(root),
	}
	if project.Root.Name == "" {
		project.Root.Name = config.RootPackageName
		project.Root.PrettyName = config.RootPackageName
	}

	installedPath := filepath.Join(vendorDir, filepath.FromSlash(config.InstalledFile))
	entries, err := readInstalled(installedPath)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		log.Debugf("No installed packages: %s not found", installedPath)
	}

	installerDir := filepath.Dir(installedPath)
	for _, entry := range entries {
		pkg := toPackage(entry)
		if pkg.Name == "" {
			continue
		}
		rel := filepath.FromSlash(pkg.Name)
		base := vendorDir
		if entry.InstallPath != nil && *entry.InstallPath != "" {
			rel = filepath.FromSlash(*entry.InstallPath)
			base = installerDir
		}
		pkg.InstallPath, err = paths.Resolve(base, rel)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", pkg.PrettyName, err)
		}
		project.Packages = append(project.Packages, pkg)
	}

	log.Debugf("Loaded %s with %d installed package(s)", manifestPath, len(project.Packages))
	return project, nil
}

func manifestName(opts LoadOptions) string {
	if opts.Manifest != "" {
		return opts.Manifest
	}
	if v := strings.TrimSpace(os.Getenv(config.Env.Manifest)); v != "" {
		return v
	}
	return config.DefaultManifest
}

func vendorDirName(opts LoadOptions, root manifest) string {
	if opts.VendorDir != "" {
		return opts.VendorDir
	}
	if v := strings.TrimSpace(os.Getenv(config.Env.VendorDir)); v != "" {
		return v
	}
	if root.Config.VendorDir != "" {
		return root.Config.VendorDir
	}
	return config.DefaultVendorDir
}

func readManifest(path string) (manifest, error) {
	var m manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, &ManifestError{Path: path, Err: err}
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, &ManifestError{Path: path, Err: err}
	}
	return m, nil
}

// readInstalled returns nil, nil when the file does not exist.
func readInstalled(path string) ([]manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &ManifestError{Path: path, Err: err}
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var v1 []manifest
		if err := json.Unmarshal(data, &v1); err != nil {
			return nil, &ManifestError{Path: path, Err: err}
		}
		return v1, nil
	}

	var v2 installedV2
	if err := json.Unmarshal(data, &v2); err != nil {
		return nil, &ManifestError{Path: path, Err: err}
	}
	if v2.Packages == nil {
		return []manifest{}, nil
	}
	return v2.Packages, nil
}

func toPackage(m manifest) Package {
	return Package{
		Name:        strings.ToLower(m.Name),
		PrettyName:  m.Name,
		Version:     m.Version,
		Type:        m.Type,
		Requires:    linkTargets(m.Require),
		DevRequires: linkTargets(m.RequireDev),
	}
}

// linkTargets lowercases and sorts requirement names, like Composer's own
// loader does when it builds links.
func linkTargets(links map[string]string) []string {
	if len(links) == 0 {
		return nil
	}
	targets := make([]string, 0, len(links))
	for target := range links {
		targets = append(targets, strings.ToLower(target))
	}
	sort.Strings(targets)
	return targets
}
