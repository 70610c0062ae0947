// Package history lists recent attempts from the local store, newest
// first.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arulmurugan/vidhai/internal/exam"
	"github.com/arulmurugan/vidhai/internal/screen"
	"github.com/arulmurugan/vidhai/internal/store"
	"github.com/arulmurugan/vidhai/internal/timing"
	"github.com/arulmurugan/vidhai/internal/ui/layout"
	"github.com/arulmurugan/vidhai/internal/ui/theme"
)

// recentLimit caps how many rows the screen loads.
const recentLimit = 20

// loadedMsg delivers the attempt rows, or the failure to read them.
type loadedMsg struct {
	Rows []store.AttemptRow
	Err  error
}

// HistoryScreen shows recent attempts as a table.
type HistoryScreen struct {
	attempts store.AttemptRepo

	rows    []store.AttemptRow
	loading bool
	errMsg  string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen. A nil repo means no store could be
// opened; the screen shows that instead of rows.
func New(attempts store.AttemptRepo) *HistoryScreen {
	return &HistoryScreen{attempts: attempts, loading: attempts != nil}
}

func (h *HistoryScreen) Init() tea.Cmd {
	if h.attempts == nil {
		return nil
	}
	attempts := h.attempts
	return func() tea.Msg {
		rows, err := attempts.Recent(context.Background(), recentLimit)
		return loadedMsg{Rows: rows, Err: err}
	}
}

func (h *HistoryScreen) Title() string {
	return "Attempt History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(loadedMsg); ok {
		h.loading = false
		if msg.Err != nil {
			h.errMsg = "Could not read attempt history: " + msg.Err.Error()
			return h, nil
		}
		h.rows = msg.Rows
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	var b strings.Builder

	switch {
	case h.attempts == nil:
		b.WriteString(theme.Hint.Render("History is unavailable: the local database could not be opened."))
	case h.loading:
		b.WriteString(theme.Hint.Render("Loading..."))
	case h.errMsg != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(h.errMsg))
	case len(h.rows) == 0:
		b.WriteString(theme.Hint.Render("No attempts yet. Finish a test and it will show up here."))
	default:
		b.WriteString(h.tableView())
	}

	card := theme.Card.Width(min(width-4, 100)).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (h *HistoryScreen) tableView() string {
	var b strings.Builder

	header := fmt.Sprintf("%-12s  %-10s  %-34s  %-9s  %-8s", "Date", "Type", "Test", "Score", "Time")
	b.WriteString(theme.Subtitle.Render(header))
	b.WriteString("\n")

	for _, row := range h.rows {
		score := fmt.Sprintf("%d/%d", row.Score, row.TotalQs)
		line := fmt.Sprintf("%-12s  %-10s  %-34s  %-9s  %-8s",
			row.TakenAt.Format("2006-01-02"),
			row.TestType,
			truncate(rowTitle(row), 34),
			score,
			timing.FormatTaken(row.TimeTakenSecs),
		)
		b.WriteString(theme.Body.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// rowTitle names the attempt: the topic for topic-wise tests, the
// subject for mocks.
func rowTitle(row store.AttemptRow) string {
	if row.Topic != "" {
		return exam.DisplayName(row.Topic)
	}
	return row.Subject
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
