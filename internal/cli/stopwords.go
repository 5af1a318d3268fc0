// internal/cli/stopwords.go
package chatfreq

import (
	"fmt"

	"github.com/mwiater/chatfreq/internal/render"
	"github.com/spf13/cobra"
)

// newStopwordsCmd implements 'stopwords', which prints the words excluded
// from the ranked view.
func newStopwordsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stopwords",
		Short: "List the words excluded from the ranked view",
		Long:  `List the built-in stop words plus any extraStopWords from the configuration. Stop words are still counted and can be searched.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words := a.cfg.StopWords().Words()
			if a.cfg.JSONMode {
				return render.JSON(cmd.OutOrStdout(), words)
			}
			for _, w := range words {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
}
