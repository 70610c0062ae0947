package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/arulmurugan/vidhai/internal/ui/theme"
)

// MenuItem is one entry of a menu: a label and the command its
// selection dispatches.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical menu with a single cursor.
type Menu struct {
	Items  []MenuItem
	Cursor int
}

// NewMenu creates a menu with the cursor on the first item.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update moves the cursor and dispatches the selected action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}
	case "enter":
		if item := m.Items[m.Cursor]; item.Action != nil {
			return m, item.Action()
		}
	}
	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		if i == m.Cursor {
			s += theme.Selected.Render("  ▸ "+item.Label) + "\n"
		} else {
			s += theme.Unselected.Render("    "+item.Label) + "\n"
		}
	}
	return s
}
