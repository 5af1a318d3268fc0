// internal/tui/explorer.go
// Package tui provides the interactive terminal explorer for an analysis.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/chatfreq/internal/wordfreq"
)

// viewState represents the current screen of the explorer.
type viewState int

const (
	// viewLoading is shown while a batch is being analyzed.
	viewLoading viewState = iota
	// viewReady shows the ranked words and accepts lookups.
	viewReady
	// viewFailed shows why the batch could not be analyzed.
	viewFailed
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// analyzedMsg carries the outcome of a batch analysis back to the model.
type analyzedMsg struct {
	report *wordfreq.Report
	err    error
}

// model is the Bubble Tea model of the explorer.
type model struct {
	ctx           context.Context
	analyzer      *wordfreq.Analyzer
	inputs        []wordfreq.RawInput
	state         viewState
	spinner       spinner.Model
	words         list.Model
	query         textarea.Model
	report        *wordfreq.Report
	result        string
	err           error
	width, height int
}

// item is one ranked word in the list.
type item struct {
	entry wordfreq.RankedEntry
}

// Title returns the ranked word with its position.
func (i item) Title() string { return fmt.Sprintf("%d. %s", i.entry.Rank, i.entry.Word) }

// Description returns the occurrence count.
func (i item) Description() string { return fmt.Sprintf("%d occurrence(s)", i.entry.Count) }

// FilterValue returns the word, used for filtering.
func (i item) FilterValue() string { return i.entry.Word }

func initialModel(ctx context.Context, analyzer *wordfreq.Analyzer, inputs []wordfreq.RawInput) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ta := textarea.New()
	ta.Placeholder = "Enter a word to search"
	ta.Prompt = "Search: "
	ta.ShowLineNumbers = false
	ta.CharLimit = 64
	ta.SetHeight(1)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	words := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	words.Title = "Most frequent words"
	words.SetShowHelp(false)
	words.SetFilteringEnabled(false)

	return &model{
		ctx:      ctx,
		analyzer: analyzer,
		inputs:   inputs,
		state:    viewLoading,
		spinner:  s,
		words:    words,
		query:    ta,
	}
}

// Init starts the spinner and the analysis.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.analyze())
}

func (m *model) analyze() tea.Cmd {
	ctx, analyzer, inputs := m.ctx, m.analyzer, m.inputs
	return func() tea.Msg {
		report, err := analyzer.Analyze(ctx, inputs)
		return analyzedMsg{report: report, err: err}
	}
}

// Update handles key presses, window resizes and analysis results.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.query.SetWidth(msg.Width)
		listHeight := msg.Height - 8
		if listHeight < 3 {
			listHeight = 3
		}
		m.words.SetSize(msg.Width, listHeight)
		return m, nil

	case analyzedMsg:
		if msg.err != nil {
			m.state = viewFailed
			m.err = msg.err
			return m, nil
		}
		m.state = viewReady
		m.err = nil
		m.report = msg.report
		items := make([]list.Item, len(msg.report.Top))
		for i, e := range msg.report.Top {
			items[i] = item{entry: e}
		}
		return m, m.words.SetItems(items)

	case spinner.TickMsg:
		if m.state != viewLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.search()
			return m, nil
		case tea.KeyCtrlR:
			if m.state == viewLoading {
				return m, nil
			}
			m.state = viewLoading
			m.result = ""
			return m, tea.Batch(m.spinner.Tick, m.analyze())
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.words, cmd = m.words.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return m, cmd
	}
	return m, nil
}

// search runs a lookup for the current query and stores the message to show.
func (m *model) search() {
	if !m.analyzer.Analyzed() {
		m.result = errorStyle.Render(wordfreq.UserMessage(wordfreq.ErrNoAnalysis))
		return
	}
	word := m.query.Value()
	if strings.TrimSpace(word) == "" {
		return
	}
	m.query.Reset()
	res, err := m.analyzer.Search(word)
	if err != nil {
		m.result = errorStyle.Render(wordfreq.UserMessage(err))
		return
	}
	m.result = resultStyle.Render(res.Message())
}

// View renders the explorer.
func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("chatfreq explorer"))
	b.WriteString("\n\n")

	switch m.state {
	case viewLoading:
		b.WriteString(fmt.Sprintf("%s Analyzing %d input(s)...\n", m.spinner.View(), len(m.inputs)))
	case viewFailed:
		b.WriteString(errorStyle.Render(wordfreq.UserMessage(m.err)))
		b.WriteString("\n")
	case viewReady:
		b.WriteString(m.words.View())
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(summaryLine(m.report)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.query.View())
	b.WriteString("\n")
	if m.result != "" {
		b.WriteString(m.result)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: search • ↑/↓: scroll • ctrl+r: re-analyze • esc: quit"))
	return b.String()
}

func summaryLine(r *wordfreq.Report) string {
	if r == nil {
		return ""
	}
	s := r.Summary
	line := fmt.Sprintf("%d words (%d distinct) from %d messages in %d input(s)", r.TotalWords, r.DistinctWords, s.Messages, s.Parsed)
	if s.Failed > 0 || s.Skipped > 0 {
		line += fmt.Sprintf(" • %d failed, %d skipped", s.Failed, s.Skipped)
	}
	return line
}

// Run starts the explorer and blocks until the user quits.
func Run(ctx context.Context, analyzer *wordfreq.Analyzer, inputs []wordfreq.RawInput, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(initialModel(ctx, analyzer, inputs), opts...)
	_, err := p.Run()
	return err
}
