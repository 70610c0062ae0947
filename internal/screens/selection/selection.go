// Package selection renders the test setup wizard: mode, subject,
// unit/topic, and test shape, with the language modal where the flow
// calls for it. All decisions live in the wizard package; this screen
// only draws steps and forwards keys.
package selection

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arulmurugan/vidhai/internal/backend"
	"github.com/arulmurugan/vidhai/internal/exam"
	"github.com/arulmurugan/vidhai/internal/router"
	"github.com/arulmurugan/vidhai/internal/screen"
	"github.com/arulmurugan/vidhai/internal/screens/loading"
	"github.com/arulmurugan/vidhai/internal/store"
	"github.com/arulmurugan/vidhai/internal/ui/components"
	"github.com/arulmurugan/vidhai/internal/ui/layout"
	"github.com/arulmurugan/vidhai/internal/ui/theme"
	"github.com/arulmurugan/vidhai/internal/wizard"
)

// Mode menu entries, in display order.
var modeLabels = []string{
	"Topic-wise Practice Test",
	"Full Mock Test — General Tamil",
	"Full Mock Test — General Studies",
}

// Language modal choices.
var languages = []string{"Tamil", "English"}

// SelectionScreen drives the wizard UI.
type SelectionScreen struct {
	svc      backend.Service
	attempts store.AttemptRepo
	restart  func() screen.Screen

	wiz    *wizard.Wizard
	cursor int

	// Config step inputs.
	numInput      components.TextInput
	durInput      components.TextInput
	configFocus   int // 0 = questions, 1 = duration
	configErr     string
	inlineWarning string
}

var _ screen.Screen = (*SelectionScreen)(nil)
var _ screen.EscOwner = (*SelectionScreen)(nil)
var _ screen.KeyHintProvider = (*SelectionScreen)(nil)

// New creates the wizard screen over a fetched syllabus tree. restart
// builds a fresh home screen for full-flow resets further down the line.
func New(svc backend.Service, attempts store.AttemptRepo, tree exam.Structure, restart func() screen.Screen) *SelectionScreen {
	return &SelectionScreen{
		svc:      svc,
		attempts: attempts,
		restart:  restart,
		wiz:      wizard.New(tree),
		numInput: components.NewTextInput(fmt.Sprintf("%d", wizard.DefaultNumQuestions), true, 3),
		durInput: components.NewTextInput(fmt.Sprintf("%d", wizard.DefaultDurationMin), true, 3),
	}
}

func (s *SelectionScreen) Init() tea.Cmd {
	return nil
}

func (s *SelectionScreen) Title() string {
	return "New Test"
}

func (s *SelectionScreen) OwnsEsc() bool {
	return s.wiz.ModalOpen() || s.wiz.Step() != wizard.StepMode
}

func (s *SelectionScreen) KeyHints() []layout.KeyHint {
	if s.wiz.ModalOpen() {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose language"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.wiz.Step() == wizard.StepTopic && s.wiz.UnitOpen() {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "←→", Description: "Page"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SelectionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.wiz.Step() == wizard.StepConfig {
			return s, s.updateConfigInputs(msg)
		}
		return s, nil
	}

	if s.wiz.ModalOpen() {
		return s.updateModal(kmsg)
	}

	switch s.wiz.Step() {
	case wizard.StepMode:
		return s.updateMode(kmsg)
	case wizard.StepSubject:
		return s.updateSubject(kmsg)
	case wizard.StepTopic:
		return s.updateTopic(kmsg)
	case wizard.StepConfig:
		return s.updateConfig(kmsg)
	}
	return s, nil
}

func (s *SelectionScreen) updateModal(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(languages)-1 {
			s.cursor++
		}
	case "esc":
		s.wiz.DismissModal()
		s.cursor = 0
	case "enter":
		lang := languages[s.cursor]
		s.cursor = 0
		if s.wiz.ConfirmLanguage(lang) == wizard.PendingMockGS {
			return s, s.launchMock(exam.SubjectGeneralStudies, lang)
		}
	}
	return s, nil
}

func (s *SelectionScreen) updateMode(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(modeLabels)-1 {
			s.cursor++
		}
	case "enter":
		switch s.cursor {
		case 0:
			s.wiz.ChooseTopicWise()
			s.cursor = 0
		case 1:
			return s, s.launchMock(exam.SubjectGeneralTamil, "Tamil")
		case 2:
			s.cursor = 0
			s.wiz.OpenMockGSModal()
		}
	}
	return s, nil
}

func (s *SelectionScreen) updateSubject(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	subjects := s.wiz.Structure().Subjects()
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(subjects)-1 {
			s.cursor++
		}
	case "esc":
		s.wiz.Back()
		s.cursor = 0
	case "enter":
		if len(subjects) == 0 {
			return s, nil
		}
		s.wiz.ChooseSubject(subjects[s.cursor])
		s.cursor = 0
	}
	return s, nil
}

func (s *SelectionScreen) updateTopic(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !s.wiz.UnitOpen() {
		units := s.wiz.Units()
		switch kmsg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(units)-1 {
				s.cursor++
			}
		case "esc":
			s.wiz.Back()
			s.cursor = 0
		case "enter":
			if len(units) == 0 {
				return s, nil
			}
			s.wiz.ChooseUnit(units[s.cursor])
			s.cursor = 0
		}
		return s, nil
	}

	page := s.wiz.TopicPage()
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(page.Items)-1 {
			s.cursor++
		}
	case "left", "h":
		s.wiz.PrevTopicPage()
		s.cursor = 0
	case "right", "l":
		s.wiz.NextTopicPage()
		s.cursor = 0
	case "esc":
		s.wiz.Back()
		s.cursor = 0
	case "enter":
		if len(page.Items) == 0 {
			return s, nil
		}
		s.wiz.ChooseTopic(page.Items[s.cursor])
		s.cursor = 0
		s.numInput = components.NewTextInput(fmt.Sprintf("%d", wizard.DefaultNumQuestions), true, 3)
		s.durInput = components.NewTextInput(fmt.Sprintf("%d", wizard.DefaultDurationMin), true, 3)
		s.configFocus = 0
		s.configErr = ""
		return s, s.numInput.Init()
	}
	return s, nil
}

func (s *SelectionScreen) updateConfig(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		s.wiz.Back()
		s.cursor = 0
		return s, nil
	case "tab", "shift+tab", "up", "down":
		s.configFocus = 1 - s.configFocus
		return s, nil
	case "enter":
		return s.startTopicWise()
	}
	return s, s.updateConfigInputs(kmsg)
}

func (s *SelectionScreen) updateConfigInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if s.configFocus == 0 {
		s.numInput, cmd = s.numInput.Update(msg)
	} else {
		s.durInput, cmd = s.durInput.Update(msg)
	}
	return cmd
}

// startTopicWise validates the config step and hands off to the loading
// screen with a single-topic plan.
func (s *SelectionScreen) startTopicWise() (screen.Screen, tea.Cmd) {
	num := wizard.DefaultNumQuestions
	if v, err := s.numInput.NumericValue(); err == nil {
		num = v
	}
	if num < wizard.MinNumQuestions || num > wizard.MaxNumQuestions {
		s.configErr = fmt.Sprintf("Questions must be between %d and %d.", wizard.MinNumQuestions, wizard.MaxNumQuestions)
		return s, nil
	}

	dur := wizard.DefaultDurationMin
	if v, err := s.durInput.NumericValue(); err == nil {
		dur = v
	}
	if dur < 1 {
		s.configErr = "Duration must be at least 1 minute."
		return s, nil
	}

	s.wiz.SetConfig(num, dur)
	sel := s.wiz.Selection()

	plan := loading.Plan{
		TestType:        backend.TestTypeTopicWise,
		Subject:         sel.Subject,
		Unit:            sel.Unit,
		Topic:           sel.Topic,
		Language:        sel.Language,
		NumQuestions:    sel.NumQuestions,
		DurationSeconds: sel.DurationMin * 60,
		Title:           exam.DisplayName(sel.Topic),
	}
	return s, s.pushLoading(plan)
}

// launchMock builds the client-side mock pipeline plan for a subject.
func (s *SelectionScreen) launchMock(subject, language string) tea.Cmd {
	tree := s.wiz.Structure()
	tasks := exam.MockTasks(tree, subject)
	if len(tasks) == 0 {
		s.inlineWarning = fmt.Sprintf("No material found for %s.", subject)
		return nil
	}

	duration := exam.MockDurationGeneralTamil
	if subject == exam.SubjectGeneralStudies {
		duration = exam.MockDurationGeneralStudies
	}

	plan := loading.Plan{
		TestType:        backend.TestTypeMock,
		Subject:         subject,
		Language:        language,
		NumQuestions:    exam.MockQuestionCap,
		DurationSeconds: int(duration.Seconds()),
		Title:           subject + " Mock Test",
		Tasks:           tasks,
		PerTask:         exam.QuestionsPerTask(len(tasks)),
	}
	return s.pushLoading(plan)
}

func (s *SelectionScreen) pushLoading(plan loading.Plan) tea.Cmd {
	svc, attempts, restart := s.svc, s.attempts, s.restart
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: loading.New(svc, attempts, plan, restart),
		}
	}
}

func (s *SelectionScreen) View(width, height int) string {
	if s.wiz.ModalOpen() {
		m := components.Modal{
			Title:   "Choose question language",
			Choices: languages,
			Cursor:  s.cursor,
		}
		return m.View(width, height)
	}

	var b strings.Builder
	switch s.wiz.Step() {
	case wizard.StepMode:
		b.WriteString(theme.Body.Bold(true).Render("What would you like to practise?"))
		b.WriteString("\n\n")
		b.WriteString(renderList(modeLabels, s.cursor))
		if s.inlineWarning != "" {
			b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Warning).Render(s.inlineWarning))
		}

	case wizard.StepSubject:
		b.WriteString(theme.Body.Bold(true).Render("Choose a subject"))
		b.WriteString("\n\n")
		subjects := s.wiz.Structure().Subjects()
		if len(subjects) == 0 {
			b.WriteString(theme.Hint.Render("No subjects available."))
		} else {
			b.WriteString(renderList(subjects, s.cursor))
		}

	case wizard.StepTopic:
		b.WriteString(s.renderTopicStep())

	case wizard.StepConfig:
		b.WriteString(s.renderConfigStep())
	}

	card := theme.Card.Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (s *SelectionScreen) renderTopicStep() string {
	var b strings.Builder
	sel := s.wiz.Selection()

	if !s.wiz.UnitOpen() {
		b.WriteString(theme.Body.Bold(true).Render("Choose a unit — " + sel.Subject))
		b.WriteString("\n\n")
		units := s.wiz.Units()
		if len(units) == 0 {
			b.WriteString(theme.Hint.Render("No units found for this subject. Press Esc to go back."))
			return b.String()
		}
		display := make([]string, len(units))
		for i, u := range units {
			display[i] = exam.DisplayName(u)
		}
		b.WriteString(renderList(display, s.cursor))
		return b.String()
	}

	page := s.wiz.TopicPage()
	b.WriteString(theme.Body.Bold(true).Render("Choose a topic — " + exam.DisplayName(sel.Unit)))
	b.WriteString("\n\n")
	if len(page.Items) == 0 {
		b.WriteString(theme.Hint.Render("No topics in this unit. Press Esc to go back."))
		return b.String()
	}
	display := make([]string, len(page.Items))
	for i, t := range page.Items {
		display[i] = exam.DisplayName(t)
	}
	b.WriteString(renderList(display, s.cursor))

	b.WriteString("\n")
	pager := fmt.Sprintf("Page %d", page.Number+1)
	if page.HasPrev {
		pager = "← " + pager
	}
	if page.HasNext {
		pager = pager + " →"
	}
	b.WriteString(theme.Hint.Render(pager))
	return b.String()
}

func (s *SelectionScreen) renderConfigStep() string {
	var b strings.Builder
	sel := s.wiz.Selection()

	b.WriteString(theme.Body.Bold(true).Render("Test setup — " + exam.DisplayName(sel.Topic)))
	b.WriteString("\n\n")

	numLabel := "  Questions (5-50): "
	durLabel := "  Duration (minutes): "
	if s.configFocus == 0 {
		numLabel = "▸ Questions (5-50): "
	} else {
		durLabel = "▸ Duration (minutes): "
	}

	b.WriteString(theme.Body.Render(numLabel) + s.numInput.View() + "\n")
	b.WriteString(theme.Body.Render(durLabel) + s.durInput.View() + "\n")

	if s.configErr != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.configErr))
	}
	b.WriteString("\n" + theme.Hint.Render("Enter to start, Tab to switch fields."))
	return b.String()
}

func renderList(items []string, cursor int) string {
	var b strings.Builder
	for i, item := range items {
		if i == cursor {
			b.WriteString(theme.Selected.Render("  ▸ "+item) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+item) + "\n")
		}
	}
	return b.String()
}
