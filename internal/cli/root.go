// Package cli defines the bowerbridge command-line interface using cobra.
//
// Composer calls "bowerbridge hook <event>" from its scripts section. The
// install, update and packages commands do the same work by hand.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sungur/bowerbridge/internal/log"
	"github.com/sungur/bowerbridge/internal/upgrade"
)

// Version, Commit, and Date are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

var rootCmd = &cobra.Command{
	Use:   "bowerbridge",
	Short: "Install Bower dependencies alongside Composer packages",
	Long: `bowerbridge runs Bower for a Composer project and for every installed
package that requires peertopark/composer-bower-bridge.

Add it to composer.json so it runs after Composer:

  "scripts": {
    "post-install-cmd": "bowerbridge hook post-install-cmd",
    "post-update-cmd": "bowerbridge hook post-update-cmd"
  }`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyLogFlags,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(upgrade.BuildInfo{Version: Version, Commit: Commit, Date: Date}.String() + "\n")

	// --- Persistent flags (available to all subcommands) ---
	pf := rootCmd.PersistentFlags()
	pf.StringP("working-dir", "d", "", "Use the given directory as the Composer project root")
	pf.BoolP("quiet", "q", false, "Suppress all output (exit code only)")
	pf.CountP("verbose", "v", "Verbose output (-v shows resolved paths and commands)")
	pf.String("bower", "", "Bower executable name or path")

	// --- Subcommands ---
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(packagesCmd)
	rootCmd.AddCommand(selfUpdateCmd)
}

// applyLogFlags sets quiet mode and verbosity before any command runs.
func applyLogFlags(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	if quiet, _ := f.GetBool("quiet"); quiet {
		log.EnableQuietMode()
	}
	verbose, _ := f.GetCount("verbose")
	log.SetVerbosity(verbose)
	return nil
}

// Execute runs the root command and exits on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
