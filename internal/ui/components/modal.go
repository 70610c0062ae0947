package components

import (
	"charm.land/lipgloss/v2"

	"github.com/arulmurugan/vidhai/internal/ui/theme"
)

// Modal renders a centered dialog box over blank space. Screens own the
// keys; this is presentation only.
type Modal struct {
	Title   string
	Body    string
	Choices []string
	Cursor  int
}

// View renders the modal centered within the given dimensions.
func (m Modal) View(width, height int) string {
	var inner string
	if m.Title != "" {
		inner += lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Title) + "\n\n"
	}
	if m.Body != "" {
		inner += lipgloss.NewStyle().Foreground(theme.Text).Render(m.Body) + "\n\n"
	}

	for i, c := range m.Choices {
		label := "  " + c + "  "
		if i == m.Cursor {
			inner += theme.ButtonActive.Render(label)
		} else {
			inner += theme.ButtonInactive.Render(label)
		}
		if i < len(m.Choices)-1 {
			inner += "  "
		}
	}

	box := theme.Card.
		BorderForeground(theme.Primary).
		Render(inner)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}
