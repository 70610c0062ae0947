package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/arulmurugan/vidhai/internal/ui/theme"
)

// ProgressBar draws generation progress: a filled track with the
// percentage alongside. Percent runs 0-100, matching the estimator.
type ProgressBar struct {
	Percent float64
	Width   int
}

// NewProgressBar creates a bar of the given total width.
func NewProgressBar(percent float64, width int) ProgressBar {
	return ProgressBar{Percent: percent, Width: width}
}

// View renders the bar.
func (p ProgressBar) View() string {
	barWidth := p.Width - 5 // room for " 100%"
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth)*p.Percent/100 + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" %3.0f%%", p.Percent))
}
