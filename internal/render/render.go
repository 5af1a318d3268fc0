// internal/render/render.go
// Package render writes analysis results for terminal and JSON output.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mwiater/chatfreq/internal/wordfreq"
)

// baseBackground is used for rows without weight.
const baseBackground = "#f0f0f0"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	rankStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(4).Align(lipgloss.Right)
	countStyle  = lipgloss.NewStyle().Width(8).Align(lipgloss.Right)
	emptyStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))

	warn    = color.New(color.FgYellow)
	errText = color.New(color.FgRed, color.Bold)
	okText  = color.New(color.FgGreen)
)

// Background returns the row colour for a weight: red at full weight fading
// towards white, and the neutral base colour at zero.
func Background(weight float64) string {
	if weight <= 0 {
		return baseBackground
	}
	if weight > 1 {
		weight = 1
	}
	fade := int(255*(1-weight) + 0.5)
	return fmt.Sprintf("#ff%02x%02x", fade, fade)
}

// RankedTable writes one line per entry, "word: count", shading the leading
// rows by their weight.
func RankedTable(w io.Writer, entries []wordfreq.RankedEntry) {
	fmt.Fprintln(w, headerStyle.Render("Most frequent words"))
	if len(entries) == 0 {
		fmt.Fprintln(w, emptyStyle.Render("  (no words to rank)"))
		return
	}
	width := 0
	for _, e := range entries {
		if len(e.Word) > width {
			width = len(e.Word)
		}
	}
	for _, e := range entries {
		word := lipgloss.NewStyle().
			Width(width+1).
			Background(lipgloss.Color(Background(e.Weight))).
			Foreground(lipgloss.Color("0")).
			Render(e.Word + ":")
		fmt.Fprintf(w, "%s %s%s\n", rankStyle.Render(fmt.Sprintf("%d.", e.Rank)), word, countStyle.Render(fmt.Sprintf("%d", e.Count)))
	}
}

// Summary writes the batch counts and one warning per failed input.
func Summary(w io.Writer, s wordfreq.BatchSummary) {
	fmt.Fprintf(w, "Inputs: %d (parsed %d, skipped %d, failed %d)\n", s.Inputs, s.Parsed, s.Skipped, s.Failed)
	fmt.Fprintf(w, "Messages: %d, words counted: %d\n", s.Messages, s.Tokens)
	for _, f := range s.Failures {
		warn.Fprintf(w, "warning: %s\n", f.Error())
	}
}

// Lookup writes the sentence for a lookup result.
func Lookup(w io.Writer, res wordfreq.LookupResult) {
	if res.Found {
		okText.Fprintln(w, res.Message())
		return
	}
	fmt.Fprintln(w, res.Message())
}

// Error writes the user-facing message for err.
func Error(w io.Writer, err error) {
	errText.Fprintln(w, wordfreq.UserMessage(err))
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// LookupJSON is the JSON shape of a lookup result.
type LookupJSON struct {
	wordfreq.LookupResult
	Message string `json:"message"`
}

// NewLookupJSON pairs res with its message.
func NewLookupJSON(res wordfreq.LookupResult) LookupJSON {
	return LookupJSON{LookupResult: res, Message: res.Message()}
}

// ReportJSON is the JSON shape of an analysis run plus any lookups.
type ReportJSON struct {
	*wordfreq.Report
	Failures []string     `json:"failures"`
	Lookups  []LookupJSON `json:"lookups,omitempty"`
}

// NewReportJSON builds the JSON view of report.
func NewReportJSON(report *wordfreq.Report, lookups ...wordfreq.LookupResult) ReportJSON {
	out := ReportJSON{Report: report, Failures: report.Summary.FailureMessages()}
	for _, l := range lookups {
		out.Lookups = append(out.Lookups, NewLookupJSON(l))
	}
	return out
}
