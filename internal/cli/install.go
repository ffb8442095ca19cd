package cli

import (
	"github.com/spf13/cobra"

	"github.com/sungur/bowerbridge/internal/plugin"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install Bower dependencies for the project and opted-in packages",
	Long: `Runs "bower install" for the root project when it requires the bridge,
then "bower install --production" in every installed package that does.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, plugin.PostInstallCmd)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update Bower dependencies for the project, then install for packages",
	Long: `Runs "bower update" and "bower install" for the root project when it
requires the bridge, then "bower install --production" in every installed
package that does.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, plugin.PostUpdateCmd)
	},
}

func init() {
	installCmd.Flags().Bool("no-dev", false, "Skip the root project's Bower devDependencies")
}
