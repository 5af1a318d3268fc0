// internal/wordfreq/analyzer.go
package wordfreq

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mwiater/chatfreq/internal/logging"
	"golang.org/x/sync/errgroup"
)

// BatchSummary describes how the inputs of one analysis run were handled.
type BatchSummary struct {
	Inputs   int                    `json:"inputs"`
	Parsed   int                    `json:"parsed"`
	Skipped  int                    `json:"skipped"`
	Failed   int                    `json:"failed"`
	Messages int                    `json:"messages"`
	Tokens   int                    `json:"tokens"`
	Failures []*MalformedInputError `json:"-"`
}

// FailureMessages returns the failures as strings, in input order.
func (s BatchSummary) FailureMessages() []string {
	out := make([]string, len(s.Failures))
	for i, f := range s.Failures {
		out[i] = f.Error()
	}
	return out
}

// Report is the result of a successful analysis run.
type Report struct {
	Summary       BatchSummary  `json:"summary"`
	Top           []RankedEntry `json:"top"`
	DistinctWords int           `json:"distinct_words"`
	TotalWords    int           `json:"total_words"`
}

// Analyzer owns the frequency table of the most recent successful batch and
// answers ranking and lookup requests against it. It is safe for concurrent
// use.
type Analyzer struct {
	extractor *Extractor
	stopWords StopWordSet
	limit     int
	workers   int
	logf      func(format string, args ...any)

	mu      sync.RWMutex
	table   *FrequencyTable
	top     []RankedEntry
	summary BatchSummary
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithStopWords replaces the default stop words.
func WithStopWords(s StopWordSet) Option {
	return func(a *Analyzer) { a.stopWords = s }
}

// WithLimit sets the ranked view size. Values <= 0 keep DefaultLimit.
func WithLimit(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.limit = n
		}
	}
}

// WithWorkers sets how many inputs are extracted concurrently. Values < 1
// mean sequential extraction.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n < 1 {
			n = 1
		}
		a.workers = n
	}
}

// WithExtractor replaces the default extractor.
func WithExtractor(e *Extractor) Option {
	return func(a *Analyzer) {
		if e != nil {
			a.extractor = e
		}
	}
}

// WithLogger redirects the analyzer's log lines. nil silences them.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(a *Analyzer) {
		if logf == nil {
			logf = func(string, ...any) {}
		}
		a.logf = logf
	}
}

// NewAnalyzer returns an Analyzer with no completed analysis.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		stopWords: DefaultStopWords(),
		limit:     DefaultLimit,
		workers:   1,
		logf:      logging.LogEvent,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.extractor == nil {
		e, err := NewExtractor(ExtractorOptions{})
		if err != nil {
			return nil, err
		}
		a.extractor = e
	}
	return a, nil
}

// Analyze runs the pipeline over inputs and, on success, replaces the current
// table with the new one. An empty batch returns ErrEmptyBatch and a
// cancelled ctx returns its error; in both cases the current table is kept.
// Malformed inputs are logged and counted but never fail the batch.
func (a *Analyzer) Analyze(ctx context.Context, inputs []RawInput) (*Report, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyBatch
	}
	start := time.Now()
	a.logf("[BATCH] Analyzing %d inputs with %d workers", len(inputs), a.workers)

	results := make([]ExtractResult, len(inputs))
	partials := make([]*FrequencyTable, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.extractor.Extract(in)
			if results[i].OK() {
				partials[i] = Aggregate(results[i].Records)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		a.logf("[BATCH] Analysis cancelled: %v", err)
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		a.logf("[BATCH] Analysis cancelled: %v", err)
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	summary := BatchSummary{Inputs: len(inputs)}
	for _, res := range results {
		switch {
		case res.Skipped:
			summary.Skipped++
			a.logf("[EXTRACT] Skipping %s: not an accepted media type", res.Name)
		case res.Err != nil:
			summary.Failed++
			summary.Failures = append(summary.Failures, res.Err)
			a.logf("[EXTRACT] Error processing %s: %v", res.Name, res.Err)
		default:
			summary.Parsed++
			summary.Messages += len(res.Records)
			a.logf("[EXTRACT] Parsed %s: %d messages", res.Name, len(res.Records))
		}
	}

	table := Merge(partials...)
	summary.Tokens = table.Total()
	top := Rank(table, a.stopWords, a.limit)

	a.mu.Lock()
	a.table = table
	a.top = top
	a.summary = summary
	a.mu.Unlock()

	a.logf("[BATCH] Counted %d words (%d distinct) from %d messages in %s",
		table.Total(), table.Len(), summary.Messages, time.Since(start).Truncate(time.Millisecond))

	return &Report{
		Summary:       summary,
		Top:           top,
		DistinctWords: table.Len(),
		TotalWords:    table.Total(),
	}, nil
}

// Search looks word up in the current table.
func (a *Analyzer) Search(word string) (LookupResult, error) {
	a.mu.RLock()
	table := a.table
	a.mu.RUnlock()

	res, err := Lookup(table, word)
	if err != nil {
		a.logf("[LOOKUP] %q: %v", word, err)
		return res, err
	}
	a.logf("[LOOKUP] %q -> found=%v count=%d", res.Word, res.Found, res.Count)
	return res, nil
}

// Top returns the ranked view of the current table, or nil before the first
// successful analysis.
func (a *Analyzer) Top() []RankedEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.table == nil {
		return nil
	}
	return append([]RankedEntry(nil), a.top...)
}

// Table returns the current table, or nil before the first successful
// analysis. The table must not be modified.
func (a *Analyzer) Table() *FrequencyTable {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.table
}

// Summary returns the batch summary of the current table.
func (a *Analyzer) Summary() BatchSummary {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.summary
}

// Analyzed reports whether an analysis has completed.
func (a *Analyzer) Analyzed() bool {
	return a.Table() != nil
}

// StopWords returns the stop words used for ranking.
func (a *Analyzer) StopWords() StopWordSet {
	return a.stopWords
}
