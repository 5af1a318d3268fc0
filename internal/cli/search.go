// internal/cli/search.go
package chatfreq

import (
	"errors"
	"strings"

	"github.com/mwiater/chatfreq/internal/render"
	"github.com/mwiater/chatfreq/internal/wordfreq"
	"github.com/spf13/cobra"
)

// newSearchCmd implements 'search', which reports how often one word occurs
// in a batch, stop words included.
func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <word> [paths...]",
		Short: "Report how often a word occurs in exported chat archives",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return wordfreq.ErrNoAnalysis
			}
			word := args[0]
			if strings.TrimSpace(word) == "" {
				return errors.New("word is required")
			}

			batch, err := a.collect(args[1:])
			if err != nil {
				return err
			}
			analyzer, err := a.cfg.NewAnalyzer()
			if err != nil {
				return err
			}
			if _, err := analyzer.Analyze(cmd.Context(), batch); err != nil {
				return err
			}
			res, err := analyzer.Search(word)
			if err != nil {
				return err
			}

			if a.cfg.JSONMode {
				return render.JSON(cmd.OutOrStdout(), render.NewLookupJSON(res))
			}
			render.Lookup(cmd.OutOrStdout(), res)
			return nil
		},
	}
}
