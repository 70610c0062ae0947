// Package loading runs question generation and shows the progress
// estimate while it is in flight. Topic-wise tests are one request;
// mock tests run a sequential per-topic pipeline assembled client-side.
package loading

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arulmurugan/vidhai/internal/backend"
	"github.com/arulmurugan/vidhai/internal/exam"
	"github.com/arulmurugan/vidhai/internal/progress"
	"github.com/arulmurugan/vidhai/internal/router"
	"github.com/arulmurugan/vidhai/internal/screen"
	"github.com/arulmurugan/vidhai/internal/screens/test"
	"github.com/arulmurugan/vidhai/internal/session"
	"github.com/arulmurugan/vidhai/internal/store"
	"github.com/arulmurugan/vidhai/internal/timing"
	"github.com/arulmurugan/vidhai/internal/ui/components"
	"github.com/arulmurugan/vidhai/internal/ui/layout"
	"github.com/arulmurugan/vidhai/internal/ui/theme"
)

// Generation time estimates feeding the progress display.
const (
	baseEstimateSeconds        = 20
	perQuestionEstimateSeconds = 4
	perTaskEstimateSeconds     = 25
)

// Plan is everything the loading screen needs to produce a test.
type Plan struct {
	TestType        string
	Subject         string
	Unit            string
	Topic           string
	Language        string
	NumQuestions    int
	DurationSeconds int
	Title           string

	// Mock pipeline only.
	Tasks   []exam.Task
	PerTask int
}

// generatedMsg delivers the single topic-wise question set.
type generatedMsg struct {
	Questions []exam.Question
	Err       error
}

// taskDoneMsg delivers one mock subtask's questions. An error aborts
// the whole pipeline and discards partial results; an empty set without
// an error only warns.
type taskDoneMsg struct {
	Index     int
	Questions []exam.Question
	Err       error
}

// estimateTickMsg drives the per-second ETA countdown.
type estimateTickMsg time.Time

// LoadingScreen shows generation progress, then replaces itself with
// the test screen.
type LoadingScreen struct {
	svc      backend.Service
	attempts store.AttemptRepo
	plan     Plan
	restart  func() screen.Screen

	est      *progress.Estimator
	gathered []exam.Question
	warnings []string
	errMsg   string
}

var _ screen.Screen = (*LoadingScreen)(nil)
var _ screen.EscOwner = (*LoadingScreen)(nil)
var _ screen.KeyHintProvider = (*LoadingScreen)(nil)

// New creates a loading screen for the given plan.
func New(svc backend.Service, attempts store.AttemptRepo, plan Plan, restart func() screen.Screen) *LoadingScreen {
	var est *progress.Estimator
	if plan.TestType == backend.TestTypeMock {
		est = progress.NewTaskCount(len(plan.Tasks), perTaskEstimateSeconds, "Generating Mock Test")
	} else {
		estimate := baseEstimateSeconds + perQuestionEstimateSeconds*plan.NumQuestions
		est = progress.NewSimulated(estimate, "Generating your test")
	}
	return &LoadingScreen{
		svc:      svc,
		attempts: attempts,
		plan:     plan,
		restart:  restart,
		est:      est,
	}
}

func (l *LoadingScreen) Init() tea.Cmd {
	if l.plan.TestType == backend.TestTypeMock {
		return tea.Batch(l.runTask(0), estimateTick())
	}
	return tea.Batch(l.generateSingle(), estimateTick())
}

func (l *LoadingScreen) Title() string {
	return "Generating"
}

// OwnsEsc blocks the app-level back navigation; a generation in flight
// cannot be resumed, so backing out mid-way is not offered.
func (l *LoadingScreen) OwnsEsc() bool {
	return true
}

func (l *LoadingScreen) KeyHints() []layout.KeyHint {
	if l.errMsg != "" {
		return []layout.KeyHint{{Key: "Enter", Description: "Back to start"}}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case estimateTickMsg:
		l.est.Tick()
		if l.est.Running() {
			return l, estimateTick()
		}
		return l, nil

	case generatedMsg:
		if msg.Err != nil {
			return l, l.fail(msg.Err.Error())
		}
		if len(msg.Questions) == 0 {
			return l, l.fail("The AI returned an empty question list. Please try again.")
		}
		return l, l.startSession(msg.Questions)

	case taskDoneMsg:
		return l.handleTaskDone(msg)

	case tea.KeyMsg:
		if l.errMsg != "" && msg.String() == "enter" {
			restart := l.restart
			return l, func() tea.Msg {
				return router.ResetScreenMsg{Screen: restart()}
			}
		}
	}
	return l, nil
}

func (l *LoadingScreen) handleTaskDone(msg taskDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Later subtasks are never issued; partial results are discarded.
		l.gathered = nil
		return l, l.fail(msg.Err.Error())
	}
	if len(msg.Questions) == 0 {
		task := l.plan.Tasks[msg.Index]
		l.warnings = append(l.warnings, fmt.Sprintf("No questions for %s, skipping.", exam.DisplayName(task.Topic)))
	}
	l.gathered = append(l.gathered, msg.Questions...)
	l.est.TaskDone()

	next := msg.Index + 1
	if next < len(l.plan.Tasks) {
		return l, l.runTask(next)
	}

	// Pipeline finished; assemble the paper.
	final := exam.AssembleMock(l.gathered)
	if len(final) == 0 {
		return l, l.fail("The AI could not generate any questions for this mock test. Please try again.")
	}
	return l, l.startSession(final)
}

// startSession builds the session and swaps in the test screen.
func (l *LoadingScreen) startSession(questions []exam.Question) tea.Cmd {
	l.est.Complete()

	sess, err := session.New(questions, l.plan.DurationSeconds, l.plan.Title, timing.SystemClock())
	if err != nil {
		return l.fail(err.Error())
	}

	meta := test.Meta{
		TestType:        l.plan.TestType,
		Subject:         l.plan.Subject,
		Unit:            l.plan.Unit,
		Topic:           l.plan.Topic,
		Language:        l.plan.Language,
		DurationSeconds: l.plan.DurationSeconds,
	}
	svc, attempts, restart := l.svc, l.attempts, l.restart
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: test.New(svc, attempts, sess, meta, restart),
		}
	}
}

func (l *LoadingScreen) fail(reason string) tea.Cmd {
	l.est.Fail()
	l.errMsg = reason
	return nil
}

// generateSingle issues the one topic-wise generation request.
func (l *LoadingScreen) generateSingle() tea.Cmd {
	svc, plan := l.svc, l.plan
	return func() tea.Msg {
		qs, err := svc.GenerateTest(context.Background(), backend.GenerateRequest{
			Subject:      plan.Subject,
			Unit:         plan.Unit,
			Topic:        plan.Topic,
			Language:     plan.Language,
			NumQuestions: plan.NumQuestions,
			TestType:     plan.TestType,
		})
		return generatedMsg{Questions: qs, Err: err}
	}
}

// runTask issues one mock subtask request. The next subtask is only
// started once this one resolves, so the progress count stays
// monotonic.
func (l *LoadingScreen) runTask(i int) tea.Cmd {
	svc, plan := l.svc, l.plan
	task := plan.Tasks[i]
	return func() tea.Msg {
		qs, err := svc.GenerateTest(context.Background(), backend.GenerateRequest{
			Subject:      plan.Subject,
			Unit:         task.Unit,
			Topic:        task.Topic,
			Language:     plan.Language,
			NumQuestions: plan.PerTask,
			TestType:     plan.TestType,
		})
		return taskDoneMsg{Index: i, Questions: qs, Err: err}
	}
}

func (l *LoadingScreen) View(width, height int) string {
	var b strings.Builder

	if l.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Generation failed"))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(l.errMsg))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Press Enter to return to the start."))
	} else {
		b.WriteString(theme.Body.Bold(true).Render(l.plan.Title))
		b.WriteString("\n\n")
		bar := components.NewProgressBar(l.est.Percent(), 46)
		b.WriteString(bar.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(l.est.Label()))
		if l.plan.TestType == backend.TestTypeMock {
			b.WriteString("\n")
			b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Topics done: %d/%d", l.est.TasksDone(), len(l.plan.Tasks))))
		}
		for _, w := range l.warnings {
			b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Warning).Render(w))
		}
	}

	card := theme.Card.Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func estimateTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return estimateTickMsg(t)
	})
}
