// internal/cli/show_config.go
package chatfreq

import (
	"github.com/k0kubun/pp"
	"github.com/mwiater/chatfreq/internal/appconfig"
	"github.com/spf13/cobra"
)

// newShowConfigCmd implements 'show config', which displays the merged
// configuration settings.
func newShowConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show config settings",
		Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by flags accordingly.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			appconfig.ShowConfig(cmd.OutOrStdout(), a.v.ConfigFileUsed(), a.cfg)
			if a.cfg.Debug {
				pp.Fprintln(cmd.OutOrStdout(), a.cfg)
			}
		},
	}
}
