// internal/cli/explore.go
package chatfreq

import (
	"github.com/mwiater/chatfreq/internal/tui"
	"github.com/spf13/cobra"
)

// newExploreCmd implements 'explore', the interactive terminal UI.
func newExploreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explore [paths...]",
		Short: "Browse ranked words and search interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := a.collect(args)
			if err != nil {
				return err
			}
			analyzer, err := a.cfg.NewAnalyzer()
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), analyzer, batch)
		},
	}
}
