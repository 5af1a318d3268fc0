// internal/tui/explorer_test.go
package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwiater/chatfreq/internal/wordfreq"
)

func newTestModel(t *testing.T, inputs []wordfreq.RawInput) *model {
	t.Helper()
	analyzer, err := wordfreq.NewAnalyzer(wordfreq.WithLogger(nil))
	if err != nil {
		t.Fatalf("NewAnalyzer error: %v", err)
	}
	return initialModel(context.Background(), analyzer, inputs)
}

func typeText(m *model, text string) *model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(*model)
}

func runAnalysis(t *testing.T, m *model) *model {
	t.Helper()
	msg := m.analyze()()
	next, _ := m.Update(msg)
	return next.(*model)
}

// TestUpdate verifies quit keys, resizing and the loading to ready transition.
func TestUpdate(t *testing.T) {
	inputs := []wordfreq.RawInput{{
		Name:      "a.json",
		MediaType: "application/json",
		Data:      []byte(`{"messages":[{"content":"The the THE cat"}]}`),
	}}
	m := newTestModel(t, inputs)
	if m.state != viewLoading {
		t.Fatalf("expected initial state viewLoading, got %v", m.state)
	}
	if m.Init() == nil {
		t.Fatal("expected Init to start the analysis")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command, got nil")
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a quit command, got nil")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(*model)
	if m.width != 100 || m.height != 40 {
		t.Fatalf("expected 100x40, got %dx%d", m.width, m.height)
	}

	m = runAnalysis(t, m)
	if m.state != viewReady {
		t.Fatalf("expected viewReady, got %v (err %v)", m.state, m.err)
	}
	if got := len(m.words.Items()); got != 1 {
		t.Fatalf("expected 1 ranked word, got %d", got)
	}
	if it, ok := m.words.Items()[0].(item); !ok || it.FilterValue() != "cat" {
		t.Fatalf("unexpected first item %#v", m.words.Items()[0])
	}
}

func TestSearchAfterAnalysis(t *testing.T) {
	m := newTestModel(t, []wordfreq.RawInput{{
		Name:      "a.json",
		MediaType: "application/json",
		Data:      []byte(`{"messages":[{"content":"The the THE cat"}]}`),
	}})
	m = runAnalysis(t, m)

	m = typeText(m, "THE")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(*model)
	if !strings.Contains(m.result, `The word "THE" appears 3 time(s).`) {
		t.Fatalf("unexpected result %q", m.result)
	}
	if m.query.Value() != "" {
		t.Fatalf("expected query to reset, got %q", m.query.Value())
	}

	m = typeText(m, "dog")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(*model)
	if !strings.Contains(m.result, "does not appear") {
		t.Fatalf("unexpected result %q", m.result)
	}
}

func TestSearchBeforeAnalysis(t *testing.T) {
	m := newTestModel(t, nil)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(*model)
	if !strings.Contains(m.result, "Please upload and analyze files before searching.") {
		t.Fatalf("blank query: unexpected result %q", m.result)
	}

	m = typeText(m, "cat")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(*model)
	if !strings.Contains(m.result, "Please upload and analyze files before searching.") {
		t.Fatalf("unexpected result %q", m.result)
	}
}

func TestEmptyBatchShowsError(t *testing.T) {
	m := newTestModel(t, nil)
	m = runAnalysis(t, m)
	if m.state != viewFailed || !errors.Is(m.err, wordfreq.ErrEmptyBatch) {
		t.Fatalf("expected failed state with ErrEmptyBatch, got %v / %v", m.state, m.err)
	}
	if !strings.Contains(m.View(), "Please upload files before analyzing.") {
		t.Fatalf("expected empty batch message in view:\n%s", m.View())
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t, []wordfreq.RawInput{{Name: "x.txt", MediaType: "text/plain"}})
	if !strings.Contains(m.View(), "Analyzing 1 input(s)") {
		t.Fatalf("expected loading view:\n%s", m.View())
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = runAnalysis(t, next.(*model))
	view := m.View()
	if !strings.Contains(view, "0 words (0 distinct)") || !strings.Contains(view, "1 skipped") {
		t.Fatalf("unexpected ready view:\n%s", view)
	}
}
