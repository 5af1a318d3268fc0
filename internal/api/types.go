package api

import (
	"context"

	"github.com/mwiater/chatfreq/internal/wordfreq"
)

// Analyzer is the part of *wordfreq.Analyzer the handlers use.
type Analyzer interface {
	Analyze(ctx context.Context, inputs []wordfreq.RawInput) (*wordfreq.Report, error)
	Search(word string) (wordfreq.LookupResult, error)
	Top() []wordfreq.RankedEntry
	Summary() wordfreq.BatchSummary
	Table() *wordfreq.FrequencyTable
	Analyzed() bool
}

var _ Analyzer = (*wordfreq.Analyzer)(nil)

type Handler struct {
	analyzer       Analyzer
	maxUploadBytes int64
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type topResponse struct {
	Top     []wordfreq.RankedEntry `json:"top"`
	Summary wordfreq.BatchSummary  `json:"summary"`
}
