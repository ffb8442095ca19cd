// Package bridge installs Bower dependencies for a Composer project and for
// every installed package that opts in by requiring the bridge.
//
// The root project is handled first, then vendor packages in the order
// Composer installed them. The first failure stops the run.
package bridge

import (
	"context"
	"fmt"

	"github.com/sungur/bowerbridge/internal/composer"
	"github.com/sungur/bowerbridge/internal/config"
	"github.com/sungur/bowerbridge/internal/finder"
	"github.com/sungur/bowerbridge/internal/log"
)

// DependencyClient runs the Bower commands.
type DependencyClient interface {
	Install(ctx context.Context, path string, includeDev bool) error
	Update(ctx context.Context, path string) error
}

// VendorFinder selects opted-in packages from the installed list.
type VendorFinder interface {
	Find(packages []composer.Package, isDependant finder.Predicate) []composer.Package
}

// Bridge sequences Bower runs for a project.
type Bridge struct {
	io     log.Output
	finder VendorFinder
	client DependencyClient
}

// New creates a Bridge reporting progress to io.
func New(io log.Output, vendorFinder VendorFinder, client DependencyClient) *Bridge {
	if io == nil {
		io = log.Discard{}
	}
	return &Bridge{io: io, finder: vendorFinder, client: client}
}

// IsDependantPackage reports whether pkg requires the bridge marker package.
// Dev requirements count only with includeDev.
func IsDependantPackage(pkg composer.Package, includeDev bool) bool {
	if pkg.Requirement(config.MarkerPackage) {
		return true
	}
	return includeDev && pkg.DevRequirement(config.MarkerPackage)
}

// Install runs "bower install" for the root project when it opts in, then
// for every opted-in vendor package. devMode controls whether the root's
// Bower devDependencies are installed; vendor packages never get them.
func (b *Bridge) Install(ctx context.Context, project *composer.Project, devMode bool) error {
	b.io.Info("Installing Bower dependencies for root project")

	if IsDependantPackage(project.Root, devMode) {
		if err := b.client.Install(ctx, rootPath, devMode); err != nil {
			return err
		}
	} else {
		b.io.Write("Nothing to install")
	}

	return b.installForVendors(ctx, project)
}

// Update runs "bower update" followed by "bower install" for the root
// project when it opts in, then installs for every opted-in vendor package.
func (b *Bridge) Update(ctx context.Context, project *composer.Project) error {
	b.io.Info("Updating Bower dependencies for root project")

	if IsDependantPackage(project.Root, true) {
		if err := b.client.Update(ctx, rootPath); err != nil {
			return err
		}
		if err := b.client.Install(ctx, rootPath, true); err != nil {
			return err
		}
	} else {
		b.io.Write("Nothing to update")
	}

	return b.installForVendors(ctx, project)
}

// rootPath is where root project commands run: the current directory.
const rootPath = ""

func (b *Bridge) installForVendors(ctx context.Context, project *composer.Project) error {
	b.io.Info("Installing Bower dependencies for Composer dependencies")

	packages := b.finder.Find(project.Packages, IsDependantPackage)
	if len(packages) == 0 {
		b.io.Write("Nothing to install")
		return nil
	}

	for _, pkg := range packages {
		b.io.Info(fmt.Sprintf("Installing Bower dependencies for %s", pkg.PrettyName))
		if err := b.client.Install(ctx, project.InstallPath(pkg), false); err != nil {
			return err
		}
	}
	return nil
}
