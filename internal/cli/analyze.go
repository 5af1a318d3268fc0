// internal/cli/analyze.go
package chatfreq

import (
	"strings"

	"github.com/k0kubun/pp"
	"github.com/mwiater/chatfreq/internal/logging"
	"github.com/mwiater/chatfreq/internal/render"
	"github.com/mwiater/chatfreq/internal/wordfreq"
	"github.com/spf13/cobra"
)

// newAnalyzeCmd implements 'analyze', which ranks the words of a batch and
// optionally answers lookups against it.
func newAnalyzeCmd(a *app) *cobra.Command {
	var searches []string

	cmd := &cobra.Command{
		Use:   "analyze [paths...]",
		Short: "Rank the most frequent words of exported chat archives",
		Long: `Read every archive named on the command line (directories are walked for
allowed extensions), count the words of all messages together and print the
most frequent ones that are not stop words. Use --search to look up words in
the same batch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := a.collect(args)
			if err != nil {
				return err
			}
			analyzer, err := a.cfg.NewAnalyzer()
			if err != nil {
				return err
			}
			report, err := analyzer.Analyze(cmd.Context(), batch)
			if err != nil {
				return err
			}

			logging.LogPayload("summary", report.Summary)

			var lookups []wordfreq.LookupResult
			for _, word := range searches {
				if strings.TrimSpace(word) == "" {
					continue
				}
				res, err := analyzer.Search(word)
				if err != nil {
					return err
				}
				lookups = append(lookups, res)
			}

			out := cmd.OutOrStdout()
			if a.cfg.Debug {
				pp.Fprintln(cmd.ErrOrStderr(), report.Summary)
			}
			if a.cfg.JSONMode {
				return render.JSON(out, render.NewReportJSON(report, lookups...))
			}

			render.Summary(out, report.Summary)
			render.RankedTable(out, report.Top)
			for _, res := range lookups {
				render.Lookup(out, res)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&searches, "search", "s", nil, "word to look up after analysis (repeatable)")
	return cmd
}
