// Package home is the entry screen: the mode menu plus the syllabus
// fetch that gates it.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arulmurugan/vidhai/internal/backend"
	"github.com/arulmurugan/vidhai/internal/exam"
	"github.com/arulmurugan/vidhai/internal/router"
	"github.com/arulmurugan/vidhai/internal/screen"
	"github.com/arulmurugan/vidhai/internal/screens/history"
	"github.com/arulmurugan/vidhai/internal/screens/selection"
	"github.com/arulmurugan/vidhai/internal/store"
	"github.com/arulmurugan/vidhai/internal/ui/components"
	"github.com/arulmurugan/vidhai/internal/ui/theme"
)

// structureMsg delivers the syllabus tree, or the failure to fetch it.
type structureMsg struct {
	Tree exam.Structure
	Err  error
}

// HomeScreen is the landing screen of the application.
type HomeScreen struct {
	svc      backend.Service
	attempts store.AttemptRepo

	menu     components.Menu
	fetching bool
	errMsg   string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(svc backend.Service, attempts store.AttemptRepo) *HomeScreen {
	h := &HomeScreen{svc: svc, attempts: attempts}

	items := []components.MenuItem{
		{Label: "START A TEST", Action: func() tea.Cmd {
			return h.fetchStructure()
		}},
		{Label: "ATTEMPT HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(attempts)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case structureMsg:
		h.fetching = false
		if msg.Err != nil {
			h.errMsg = "Could not load the syllabus: " + msg.Err.Error()
			return h, nil
		}
		svc, attempts := h.svc, h.attempts
		restart := func() screen.Screen { return New(svc, attempts) }
		return h, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: selection.New(svc, attempts, msg.Tree, restart),
			}
		}

	case tea.KeyMsg:
		if h.fetching {
			return h, nil
		}
		h.errMsg = ""
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// fetchStructure loads the syllabus tree before the wizard can open.
func (h *HomeScreen) fetchStructure() tea.Cmd {
	h.fetching = true
	svc := h.svc
	return func() tea.Msg {
		tree, err := svc.Structure(context.Background())
		return structureMsg{Tree: tree, Err: err}
	}
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("VidhAI"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("TNPSC Group 4 Practice Tests"))
	b.WriteString("\n\n")

	switch {
	case h.fetching:
		b.WriteString(theme.Hint.Render("Loading syllabus..."))
	case h.errMsg != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(h.errMsg))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Press any key to dismiss."))
	default:
		b.WriteString(h.menu.View())
	}

	card := theme.Card.Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}
