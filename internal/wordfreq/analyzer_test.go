package wordfreq

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type logRecorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *logRecorder) logf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *logRecorder) contains(sub string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

func archive(contents ...string) string {
	parts := make([]string, len(contents))
	for i, c := range contents {
		parts[i] = fmt.Sprintf(`{"sender_name":"x","content":%q}`, c)
	}
	return `{"messages":[` + strings.Join(parts, ",") + `]}`
}

func newTestAnalyzer(t *testing.T, opts ...Option) (*Analyzer, *logRecorder) {
	t.Helper()
	rec := &logRecorder{}
	a, err := NewAnalyzer(append([]Option{WithLogger(rec.logf)}, opts...)...)
	if err != nil {
		t.Fatalf("NewAnalyzer error: %v", err)
	}
	return a, rec
}

func TestAnalyzeTieBreakFollowsFirstSeen(t *testing.T) {
	a, _ := newTestAnalyzer(t)
	report, err := a.Analyze(context.Background(), []RawInput{jsonInput("a.json", archive("Hi Hi there! there."))})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if len(report.Top) != 2 {
		t.Fatalf("top = %+v", report.Top)
	}
	if report.Top[0].Word != "hi" || report.Top[0].Count != 2 || report.Top[1].Word != "there" || report.Top[1].Count != 2 {
		t.Fatalf("top = %+v", report.Top)
	}
	if report.DistinctWords != 2 || report.TotalWords != 4 {
		t.Fatalf("distinct=%d total=%d", report.DistinctWords, report.TotalWords)
	}
}

func TestAnalyzeStopWordsStillSearchable(t *testing.T) {
	a, _ := newTestAnalyzer(t)
	report, err := a.Analyze(context.Background(), []RawInput{jsonInput("a.json", archive("The the THE cat"))})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if len(report.Top) != 1 || report.Top[0].Word != "cat" || report.Top[0].Count != 1 {
		t.Fatalf("top = %+v", report.Top)
	}

	res, err := a.Search("the")
	if err != nil || !res.Found || res.Count != 3 {
		t.Fatalf("search the = %+v, %v", res, err)
	}
	res, err = a.Search("Cat")
	if err != nil || !res.Found || res.Count != 1 {
		t.Fatalf("search Cat = %+v, %v", res, err)
	}
	res, err = a.Search("dog")
	if err != nil || res.Found {
		t.Fatalf("search dog = %+v, %v", res, err)
	}
}

func TestAnalyzeIsolatesMalformedInput(t *testing.T) {
	a, rec := newTestAnalyzer(t)
	inputs := []RawInput{
		jsonInput("broken.json", `{"messages": [{"content": "lost words"`),
		jsonInput("good.json", archive("kept words", "kept")),
		{Name: "notes.txt", MediaType: "text/plain", Data: []byte("ignored words")},
	}
	report, err := a.Analyze(context.Background(), inputs)
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	s := report.Summary
	if s.Inputs != 3 || s.Parsed != 1 || s.Failed != 1 || s.Skipped != 1 || s.Messages != 2 || s.Tokens != 3 {
		t.Fatalf("summary = %+v", s)
	}
	if len(s.Failures) != 1 || s.Failures[0].Name != "broken.json" {
		t.Fatalf("failures = %v", s.FailureMessages())
	}
	if n, _ := a.Table().Count("kept"); n != 2 {
		t.Fatalf("kept = %d", n)
	}
	if _, ok := a.Table().Count("lost"); ok {
		t.Fatal("malformed input contributed tokens")
	}
	if _, ok := a.Table().Count("ignored"); ok {
		t.Fatal("skipped input contributed tokens")
	}
	if !rec.contains("Error processing broken.json") {
		t.Fatalf("expected failure to be logged, got %v", rec.lines)
	}
}

func TestAnalyzeEmptyBatchKeepsState(t *testing.T) {
	a, _ := newTestAnalyzer(t)
	if _, err := a.Analyze(context.Background(), nil); !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
	if a.Analyzed() || a.Table() != nil || a.Top() != nil {
		t.Fatal("empty batch must not create a table")
	}

	if _, err := a.Analyze(context.Background(), []RawInput{jsonInput("a", archive("cat"))}); err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	before := a.Table()
	if _, err := a.Analyze(context.Background(), []RawInput{}); !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
	if a.Table() != before {
		t.Fatal("empty batch replaced the previous table")
	}
}

func TestSearchBeforeAnalysis(t *testing.T) {
	a, _ := newTestAnalyzer(t)
	_, err := a.Search("cat")
	if !errors.Is(err, ErrNoAnalysis) {
		t.Fatalf("expected ErrNoAnalysis, got %v", err)
	}
	if msg := UserMessage(err); msg != "Please upload and analyze files before searching." {
		t.Fatalf("user message = %q", msg)
	}
}

func TestAnalyzeReplacesPreviousTable(t *testing.T) {
	a, _ := newTestAnalyzer(t)
	ctx := context.Background()
	if _, err := a.Analyze(ctx, []RawInput{jsonInput("a", archive("alpha alpha"))}); err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if _, err := a.Analyze(ctx, []RawInput{jsonInput("b", archive("beta"))}); err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	res, err := a.Search("alpha")
	if err != nil || res.Found {
		t.Fatalf("second batch should wholly replace the first, got %+v, %v", res, err)
	}
	if n, _ := a.Table().Count("beta"); n != 1 {
		t.Fatalf("beta = %d", n)
	}
}

func TestAnalyzeParallelMatchesSequential(t *testing.T) {
	var inputs []RawInput
	for i := 0; i < 40; i++ {
		body := archive(
			fmt.Sprintf("word%d shared shared", i%9),
			fmt.Sprintf("tail%d common", i),
		)
		if i%11 == 5 {
			body = `{"messages": "nope"}`
		}
		inputs = append(inputs, jsonInput(fmt.Sprintf("in%02d.json", i), body))
	}

	seq, _ := newTestAnalyzer(t, WithWorkers(1))
	par, _ := newTestAnalyzer(t, WithWorkers(8))

	seqReport, err := seq.Analyze(context.Background(), inputs)
	if err != nil {
		t.Fatalf("sequential Analyze error: %v", err)
	}
	parReport, err := par.Analyze(context.Background(), inputs)
	if err != nil {
		t.Fatalf("parallel Analyze error: %v", err)
	}

	if !seq.Table().Equal(par.Table()) {
		t.Fatal("parallel table differs from sequential table")
	}
	if len(seqReport.Top) != len(parReport.Top) {
		t.Fatalf("top lengths differ: %d vs %d", len(seqReport.Top), len(parReport.Top))
	}
	for i := range seqReport.Top {
		if seqReport.Top[i] != parReport.Top[i] {
			t.Fatalf("top[%d] differs: %+v vs %+v", i, seqReport.Top[i], parReport.Top[i])
		}
	}
	for i, f := range parReport.Summary.Failures {
		if f.Name != seqReport.Summary.Failures[i].Name {
			t.Fatalf("failure order differs at %d", i)
		}
	}
}

func TestAnalyzeCancelledContext(t *testing.T) {
	a, _ := newTestAnalyzer(t, WithWorkers(2))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Analyze(ctx, []RawInput{jsonInput("a", archive("cat"))})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if a.Analyzed() {
		t.Fatal("cancelled analysis must not publish a table")
	}
}

func TestAnalyzerOptions(t *testing.T) {
	e, err := NewExtractor(ExtractorOptions{MessagesField: "items"})
	if err != nil {
		t.Fatalf("NewExtractor error: %v", err)
	}
	a, _ := newTestAnalyzer(t,
		WithExtractor(e),
		WithStopWords(NewStopWordSet("alpha")),
		WithLimit(1),
	)
	report, err := a.Analyze(context.Background(), []RawInput{
		jsonInput("a", `{"items":[{"content":"alpha alpha beta gamma gamma"}]}`),
	})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if len(report.Top) != 1 || report.Top[0].Word != "gamma" {
		t.Fatalf("top = %+v", report.Top)
	}
	if !a.StopWords().Contains("alpha") || a.StopWords().Contains("the") {
		t.Fatal("custom stop words not applied")
	}
	if got := a.Top(); len(got) != 1 || got[0].Word != "gamma" {
		t.Fatalf("Top() = %+v", got)
	}
	if a.Summary().Parsed != 1 {
		t.Fatalf("summary = %+v", a.Summary())
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(nil); got != "" {
		t.Fatalf("nil error message = %q", got)
	}
	if got := UserMessage(fmt.Errorf("wrapped: %w", ErrEmptyBatch)); got != "Please upload files before analyzing." {
		t.Fatalf("empty batch message = %q", got)
	}
	err := &MalformedInputError{Name: "x.json", Reason: "unexpected structure"}
	if got := UserMessage(err); got != `input "x.json": unexpected structure` {
		t.Fatalf("malformed message = %q", got)
	}
}
