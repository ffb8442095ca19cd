package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sungur/bowerbridge/internal/config"
	"github.com/sungur/bowerbridge/internal/log"
	"github.com/sungur/bowerbridge/internal/paths"
	"github.com/sungur/bowerbridge/internal/upgrade"
)

var selfUpdateCmd = &cobra.Command{
	Use:   "self-update",
	Short: "Update bowerbridge to the latest version",
	Long: `Checks GitHub releases for a newer version and optionally applies the update.
The release repository comes from --repo, then the updateRepo config key,
then ` + upgrade.DefaultRepository + `.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		force, _ := f.GetBool("force")

		repo, err := updateRepository(f)
		if err != nil {
			return err
		}
		updater, err := upgrade.New(repo)
		if err != nil {
			return err
		}

		log.Dim(fmt.Sprintf("Checking %s for updates...", updater.Repository()))

		rel, err := updater.Latest(cmd.Context(), Version)
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}
		if rel == nil {
			log.Success("Already up to date (v" + Version + ")")
			return nil
		}

		log.Infof("New version available: %s -> %s", Version, rel.Version)
		if !force {
			log.Info("Run with --force to apply the update automatically.")
			return nil
		}

		log.Dim("Downloading and applying update...")
		if err := updater.Apply(cmd.Context(), rel); err != nil {
			return fmt.Errorf("update failed: %w", err)
		}

		log.Success("Updated to v" + rel.Version)
		return nil
	},
}

// updateRepository returns --repo when set, else the updateRepo config of
// the working directory's project (merged with the global config).
func updateRepository(f *pflag.FlagSet) (string, error) {
	dir := "."
	if wd, _ := f.GetString("working-dir"); wd != "" {
		validated, err := paths.ValidateProjectPath(wd)
		if err != nil {
			return "", err
		}
		dir = validated
	}
	return resolveStringFlag(f, "repo", config.LoadConfig(dir).UpdateRepo), nil
}

func init() {
	selfUpdateCmd.Flags().Bool("force", false, "Apply update without confirmation")
	selfUpdateCmd.Flags().String("repo", "", "GitHub release repository (owner/name)")
}
