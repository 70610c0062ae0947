// Package results shows the score card for a submitted attempt and the
// read-only answer review behind it.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arulmurugan/vidhai/internal/exam"
	"github.com/arulmurugan/vidhai/internal/review"
	"github.com/arulmurugan/vidhai/internal/router"
	"github.com/arulmurugan/vidhai/internal/screen"
	"github.com/arulmurugan/vidhai/internal/session"
	"github.com/arulmurugan/vidhai/internal/timing"
	"github.com/arulmurugan/vidhai/internal/ui/components"
	"github.com/arulmurugan/vidhai/internal/ui/layout"
	"github.com/arulmurugan/vidhai/internal/ui/theme"
)

// ResultsScreen shows the summary first; R flips into the per-question
// review, Esc flips back.
type ResultsScreen struct {
	res       session.Result
	cursor    *review.Cursor
	restart   func() screen.Screen
	reviewing bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.EscOwner = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen over the finalized attempt.
func New(res session.Result, questions []exam.Question, answers []int, restart func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		res:     res,
		cursor:  review.NewCursor(questions, answers),
		restart: restart,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	if r.reviewing {
		return "Review"
	}
	return "Results"
}

// OwnsEsc keeps Esc local: in review it returns to the summary, on the
// summary it starts over. The finished attempt has no screen to pop to.
func (r *ResultsScreen) OwnsEsc() bool {
	return true
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	if r.reviewing {
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "Esc", Description: "Summary"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Review answers"},
		{Key: "Enter", Description: "New test"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	if r.reviewing {
		switch key.String() {
		case "left", "h":
			r.cursor.Prev()
		case "right", "l":
			r.cursor.Next()
		case "esc":
			r.reviewing = false
		}
		return r, nil
	}

	switch key.String() {
	case "r":
		r.reviewing = true
		return r, nil
	case "enter", "esc":
		restart := r.restart
		return r, func() tea.Msg {
			return router.ResetScreenMsg{Screen: restart()}
		}
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	var body string
	if r.reviewing {
		body = r.reviewView(width)
	} else {
		body = r.summaryView()
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (r *ResultsScreen) summaryView() string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Test Complete"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(r.res.Title))
	b.WriteString("\n\n")

	score := fmt.Sprintf("%d / %d", r.res.Score, r.res.Total)
	b.WriteString(theme.Body.Bold(true).Render("Score      ") + scoreStyle(r.res.Percent).Render(score))
	b.WriteString("\n")
	b.WriteString(theme.Body.Bold(true).Render("Accuracy   ") + theme.Body.Render(fmt.Sprintf("%.1f%%", r.res.Percent)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Bold(true).Render("Unanswered ") + theme.Body.Render(fmt.Sprintf("%d", r.res.Unanswered)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Bold(true).Render("Time taken ") + theme.Body.Render(timing.FormatTaken(r.res.TakenSeconds)))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press R to review your answers."))

	return theme.Card.Render(b.String())
}

func (r *ResultsScreen) reviewView(width int) string {
	q := r.cursor.Question()
	answer := r.cursor.Answer()

	var b strings.Builder

	counter := fmt.Sprintf("Question %d of %d", r.cursor.Index()+1, r.cursor.Len())
	b.WriteString(theme.Subtitle.Render(counter))
	if q.Topic != "" {
		b.WriteString("  " + theme.Hint.Render("["+q.Topic+"]"))
	}
	if answer == session.Unanswered {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Warning).Render("not answered"))
	}
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Bold(true).Render(q.Text))
	b.WriteString("\n\n")

	opts := components.OptionList{
		Options:      q.Options,
		Chosen:       answer,
		Reveal:       true,
		CorrectIndex: q.CorrectIndex,
	}
	b.WriteString(opts.View())

	if q.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Why: " + q.Explanation))
	}

	return theme.Card.Width(min(width-4, 90)).Render(b.String())
}

// scoreStyle colors the headline score by how the attempt went.
func scoreStyle(percent float64) lipgloss.Style {
	switch {
	case percent >= 75:
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	case percent >= 40:
		return lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
}
