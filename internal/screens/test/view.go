package test

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/arulmurugan/vidhai/internal/session"
	"github.com/arulmurugan/vidhai/internal/ui/components"
	"github.com/arulmurugan/vidhai/internal/ui/theme"
)

func (t *TestScreen) View(width, height int) string {
	if t.confirm == confirmSubmit {
		m := components.Modal{
			Title:   "Finish test",
			Body:    t.submitPrompt(),
			Choices: []string{"Yes", "No"},
			Cursor:  t.confirmCursor,
		}
		return m.View(width, height)
	}
	if t.confirm == confirmLeave {
		m := components.Modal{
			Title:   "Leave test",
			Body:    "Leave this test? Your answers will be lost.",
			Choices: []string{"Yes", "No"},
			Cursor:  t.confirmCursor,
		}
		return m.View(width, height)
	}
	if t.sess.Paused() {
		m := components.Modal{
			Title: "Paused",
			Body:  "The clock is stopped. Press P to resume.",
		}
		return m.View(width, height)
	}
	if t.chatOpen {
		return t.chatView(width, height)
	}
	return t.questionView(width, height)
}

func (t *TestScreen) questionView(width, height int) string {
	cur := t.sess.Current()
	q := t.sess.Question(cur)

	var b strings.Builder

	counter := fmt.Sprintf("Question %d of %d", cur+1, t.sess.Len())
	b.WriteString(theme.Subtitle.Render(counter))
	if q.Topic != "" {
		b.WriteString("  " + theme.Hint.Render("["+q.Topic+"]"))
	}
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Bold(true).Render(q.Text))
	b.WriteString("\n\n")

	opts := components.OptionList{
		Options: q.Options,
		Cursor:  t.optionCursor,
		Chosen:  t.sess.Answer(cur),
	}
	b.WriteString(opts.View())

	b.WriteString("\n")
	b.WriteString(t.paletteView())

	card := theme.Card.Width(min(width-4, 90)).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

// paletteView renders one cell per question: answered cells in teal,
// the current cell highlighted.
func (t *TestScreen) paletteView() string {
	var b strings.Builder
	for i := range t.sess.Len() {
		cell := fmt.Sprintf(" %d ", i+1)
		switch {
		case i == t.sess.Current():
			b.WriteString(theme.Selected.Render("[" + strings.TrimSpace(cell) + "]"))
		case t.sess.Answer(i) != session.Unanswered:
			b.WriteString(theme.Answered.Render(cell))
		default:
			b.WriteString(theme.Hint.Render(cell))
		}
		if (i+1)%20 == 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (t *TestScreen) chatView(width, height int) string {
	cur := t.sess.Current()
	q := t.sess.Question(cur)

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("VidhAI Tutor"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(q.Text))
	b.WriteString("\n\n")

	for _, line := range t.chatLogs[cur] {
		if line.fromUser {
			b.WriteString(theme.Selected.Render("You: ") + theme.Body.Render(line.text) + "\n")
		} else {
			b.WriteString(theme.Answered.Render("VidhAI: ") + theme.Body.Render(line.text) + "\n")
		}
	}
	if t.chatPending {
		b.WriteString(theme.Hint.Render("VidhAI is thinking..."))
		b.WriteString("\n")
	}

	b.WriteString("\n" + t.chatInput.View())

	card := theme.Card.Width(min(width-4, 90)).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}
