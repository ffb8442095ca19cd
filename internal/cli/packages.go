package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sungur/bowerbridge/internal/bridge"
	"github.com/sungur/bowerbridge/internal/composer"
	"github.com/sungur/bowerbridge/internal/finder"
	"github.com/sungur/bowerbridge/internal/log"
)

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "List the packages bowerbridge would run Bower for",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pc, err := loadProject(cmd)
		if err != nil {
			return err
		}
		for _, line := range packageLines(pc.Project) {
			log.Raw(line)
		}
		return nil
	},
}

// packageLines renders the root project's opt-in state followed by the
// opted-in vendor packages and their install paths.
func packageLines(project *composer.Project) []string {
	root := log.Style.Dim("not opted in")
	switch {
	case bridge.IsDependantPackage(project.Root, false):
		root = log.Style.Green("opted in")
	case bridge.IsDependantPackage(project.Root, true):
		root = log.Style.Yellow("opted in (dev)")
	}
	lines := []string{fmt.Sprintf("%s %s", log.Style.Bold(project.Root.PrettyName), root)}

	vendors := finder.New().Find(project.Packages, bridge.IsDependantPackage)
	if len(vendors) == 0 {
		return append(lines, log.Style.Dim("No installed package requires the bridge"))
	}
	for _, pkg := range vendors {
		lines = append(lines, fmt.Sprintf("  %s %s", log.Style.Cyan(pkg.PrettyName), log.Style.Dim(project.InstallPath(pkg))))
	}
	return lines
}
