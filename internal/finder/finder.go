// Package finder selects the installed Composer packages that want their
// Bower dependencies installed.
package finder

import "github.com/sungur/bowerbridge/internal/composer"

// Predicate reports whether a package opts in. The second argument says
// whether development requirements count.
type Predicate func(pkg composer.Package, includeDev bool) bool

// VendorFinder filters a package list by a Predicate.
type VendorFinder struct{}

// New returns a VendorFinder.
func New() *VendorFinder {
	return &VendorFinder{}
}

// Find returns the packages for which isDependant holds, in their original
// order. Development requirements of vendor packages never count, since
// Composer does not install them. The result is never nil.
func (f *VendorFinder) Find(packages []composer.Package, isDependant Predicate) []composer.Package {
	found := make([]composer.Package, 0, len(packages))
	for _, pkg := range packages {
		if isDependant(pkg, false) {
			found = append(found, pkg)
		}
	}
	return found
}
