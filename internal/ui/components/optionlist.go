package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/arulmurugan/vidhai/internal/ui/theme"
)

// OptionList renders the answer choices of one question. During a test
// it shows the cursor and the saved answer; in review mode (Reveal) it
// marks the correct option green and a wrong pick red.
type OptionList struct {
	Options      []string
	Cursor       int
	Chosen       int // saved answer, -1 when unanswered
	Reveal       bool
	CorrectIndex int
}

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		prefix := "  "
		if i == o.Cursor && !o.Reveal {
			prefix = "▸ "
		}
		marker := " "
		if i == o.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case o.Reveal && i == o.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case o.Reveal && i == o.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Reveal:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		case i == o.Chosen:
			s += theme.Answered.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
