package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sungur/bowerbridge/internal/bridge"
	"github.com/sungur/bowerbridge/internal/log"
	"github.com/sungur/bowerbridge/internal/plugin"
)

var hookCmd = &cobra.Command{
	Use:   "hook <event>",
	Short: "Handle a Composer script event",
	Long: fmt.Sprintf(`Handle a Composer script event. Supported events: %s.

Composer exports COMPOSER_DEV_MODE to scripts; "0" (composer install --no-dev)
skips the root project's Bower devDependencies.`, strings.Join(plugin.EventNames(), ", ")),
	Args:      cobra.ExactArgs(1),
	ValidArgs: plugin.EventNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, args[0])
	},
}

// dispatch loads the project and sends the named event through the plugin.
func dispatch(cmd *cobra.Command, event string) error {
	pc, err := loadProject(cmd)
	if err != nil {
		return err
	}

	p := plugin.New(bridge.DefaultFactory(pc.Config, pc.Dir))
	return p.Dispatch(cmd.Context(), plugin.Event{
		Name:     event,
		IO:       log.Console{},
		Composer: pc.Project,
		DevMode:  resolveDevMode(cmd.Flags(), pc.Config),
	})
}
