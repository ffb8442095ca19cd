// Package composer reads the package graph Composer has already resolved:
// the root manifest and the installed package list under the vendor dir.
//
// The data is read-only. bowerbridge never writes Composer files.
package composer

import (
	"slices"
)

// Package is a resolved Composer package.
type Package struct {
	// Name is the lowercased unique package name.
	Name string
	// PrettyName is the name as declared in the manifest.
	PrettyName string
	Version    string
	Type       string
	// Requires holds production link targets, lowercased and sorted.
	Requires []string
	// DevRequires holds development link targets, lowercased and sorted.
	DevRequires []string
	// InstallPath is the absolute directory the package is installed in.
	// Empty for the root package, which runs in the current directory.
	InstallPath string
}

// Requirement reports whether target is one of the production requirements.
func (p Package) Requirement(target string) bool {
	return slices.Contains(p.Requires, target)
}

// DevRequirement reports whether target is one of the dev requirements.
func (p Package) DevRequirement(target string) bool {
	return slices.Contains(p.DevRequires, target)
}

// Project is a Composer project: its root package plus everything installed
// into its vendor dir, in the order Composer listed them.
type Project struct {
	Dir       string
	VendorDir string
	Root      Package
	Packages  []Package
}

// InstallPath returns where pkg is installed.
func (p *Project) InstallPath(pkg Package) string {
	return pkg.InstallPath
}
