// Package test renders a running attempt: the question card, the
// answer palette, the timers, the pause state, and the hint chat. All
// scoring and timing rules live in the session package.
package test

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/arulmurugan/vidhai/internal/backend"
	"github.com/arulmurugan/vidhai/internal/exam"
	"github.com/arulmurugan/vidhai/internal/router"
	"github.com/arulmurugan/vidhai/internal/screen"
	"github.com/arulmurugan/vidhai/internal/screens/results"
	"github.com/arulmurugan/vidhai/internal/session"
	"github.com/arulmurugan/vidhai/internal/store"
	"github.com/arulmurugan/vidhai/internal/timing"
	"github.com/arulmurugan/vidhai/internal/ui/components"
	"github.com/arulmurugan/vidhai/internal/ui/layout"
)

// advanceDelay keeps the chosen option highlighted briefly before the
// cursor moves on.
const advanceDelay = 400 * time.Millisecond

// Meta carries the selection that produced this attempt, for the
// history row written at submission.
type Meta struct {
	TestType        string
	Subject         string
	Unit            string
	Topic           string
	Language        string
	DurationSeconds int
}

// confirmKind tags which confirmation dialog is open.
type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmSubmit
	confirmLeave
)

type chatLine struct {
	fromUser bool
	text     string
}

// TestScreen drives one attempt from first question to submission.
type TestScreen struct {
	svc      backend.Service
	attempts store.AttemptRepo
	restart  func() screen.Screen

	sess *session.Session
	meta Meta

	optionCursor   int
	advancePending bool

	confirm       confirmKind
	confirmCursor int

	chatOpen    bool
	chatPending bool
	chatInput   components.TextInput
	chatLogs    map[int][]chatLine
}

var _ screen.Screen = (*TestScreen)(nil)
var _ screen.EscOwner = (*TestScreen)(nil)
var _ screen.KeyHintProvider = (*TestScreen)(nil)
var _ screen.StatusProvider = (*TestScreen)(nil)

// New creates the test screen over an already-started session.
func New(svc backend.Service, attempts store.AttemptRepo, sess *session.Session, meta Meta, restart func() screen.Screen) *TestScreen {
	return &TestScreen{
		svc:       svc,
		attempts:  attempts,
		restart:   restart,
		sess:      sess,
		meta:      meta,
		chatInput: components.NewTextInput("Ask for a hint...", false, 120),
		chatLogs:  map[int][]chatLine{},
	}
}

func (t *TestScreen) Init() tea.Cmd {
	return tickCmd()
}

func (t *TestScreen) Title() string {
	return t.sess.Title()
}

// Status puts the countdown in the header, with the pause marker when
// the clock is stopped.
func (t *TestScreen) Status() string {
	clock := "⏱ " + timing.FormatClock(t.sess.Remaining())
	if t.sess.Paused() {
		return clock + "  ⏸ PAUSED"
	}
	return clock
}

func (t *TestScreen) OwnsEsc() bool {
	return true
}

func (t *TestScreen) KeyHints() []layout.KeyHint {
	switch {
	case t.confirm != confirmNone:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Cancel"},
		}
	case t.chatOpen:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Close chat"},
		}
	case t.sess.Paused():
		return []layout.KeyHint{
			{Key: "P", Description: "Resume"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "←→", Description: "Question"},
			{Key: "H", Description: "Hint"},
			{Key: "P", Description: "Pause"},
			{Key: "S", Description: "Submit"},
		}
	}
}

func (t *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if t.sess.Submitted() {
			return t, nil
		}
		if t.sess.Tick() {
			// Time up: submit without confirmation.
			return t, t.submit()
		}
		return t, tickCmd()

	case advanceMsg:
		t.advancePending = false
		if !t.sess.Submitted() && msg.FromQuestion == t.sess.Current() {
			t.sess.Next()
			t.optionCursor = t.cursorForCurrent()
		}
		return t, nil

	case chatReplyMsg:
		return t.handleChatReply(msg)

	case tea.KeyMsg:
		return t.handleKey(msg)
	}

	if t.chatOpen && !t.chatPending {
		var cmd tea.Cmd
		t.chatInput, cmd = t.chatInput.Update(msg)
		return t, cmd
	}
	return t, nil
}

func (t *TestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if t.confirm != confirmNone {
		return t.handleConfirmKey(key)
	}
	if t.chatOpen {
		return t.handleChatKey(msg)
	}

	if t.sess.Paused() {
		if key == "p" {
			t.sess.Resume()
		}
		return t, nil
	}

	switch key {
	case "p":
		t.sess.Pause()
		return t, nil
	case "h":
		t.chatOpen = true
		t.chatInput = components.NewTextInput("Ask for a hint...", false, 120)
		return t, t.chatInput.Init()
	case "s":
		t.confirm = confirmSubmit
		t.confirmCursor = 1 // default to No
		return t, nil
	case "esc":
		t.confirm = confirmLeave
		t.confirmCursor = 1
		return t, nil
	case "left":
		t.sess.Prev()
		t.optionCursor = t.cursorForCurrent()
		return t, nil
	case "right":
		t.sess.Next()
		t.optionCursor = t.cursorForCurrent()
		return t, nil
	case "up", "k":
		if t.optionCursor > 0 {
			t.optionCursor--
		}
		return t, nil
	case "down", "j":
		if t.optionCursor < len(t.currentQuestion().Options)-1 {
			t.optionCursor++
		}
		return t, nil
	case "enter":
		return t, t.choose(t.optionCursor)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(t.currentQuestion().Options) {
			t.optionCursor = idx
			return t, t.choose(idx)
		}
		return t, nil
	}
	return t, nil
}

// choose records an answer and schedules the auto-advance.
func (t *TestScreen) choose(option int) tea.Cmd {
	q := t.sess.Current()
	autoAdvance := t.sess.SelectAnswer(q, option)
	if !autoAdvance || t.advancePending {
		return nil
	}
	t.advancePending = true
	return tea.Tick(advanceDelay, func(time.Time) tea.Msg {
		return advanceMsg{FromQuestion: q}
	})
}

func (t *TestScreen) handleConfirmKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "left", "right", "tab":
		t.confirmCursor = 1 - t.confirmCursor
	case "esc", "n":
		t.confirm = confirmNone
	case "y":
		return t.confirmAccepted()
	case "enter":
		if t.confirmCursor == 0 {
			return t.confirmAccepted()
		}
		t.confirm = confirmNone
	}
	return t, nil
}

func (t *TestScreen) confirmAccepted() (screen.Screen, tea.Cmd) {
	kind := t.confirm
	t.confirm = confirmNone
	switch kind {
	case confirmSubmit:
		return t, t.submit()
	case confirmLeave:
		restart := t.restart
		return t, func() tea.Msg {
			return router.ResetScreenMsg{Screen: restart()}
		}
	}
	return t, nil
}

func (t *TestScreen) handleChatKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		t.chatOpen = false
		return t, nil
	case "enter":
		if t.chatPending {
			return t, nil
		}
		query := t.chatInput.Value()
		if query == "" {
			return t, nil
		}
		q := t.sess.Current()
		t.chatLogs[q] = append(t.chatLogs[q], chatLine{fromUser: true, text: query})
		t.chatPending = true
		t.chatInput = components.NewTextInput("Ask for a hint...", false, 120)
		return t, tea.Batch(t.chatInput.Init(), t.askTutor(q, query))
	}

	if !t.chatPending {
		var cmd tea.Cmd
		t.chatInput, cmd = t.chatInput.Update(msg)
		return t, cmd
	}
	return t, nil
}

// askTutor sends one hint request scoped to the question on screen.
func (t *TestScreen) askTutor(q int, query string) tea.Cmd {
	svc := t.svc
	question := t.sess.Question(q)
	return func() tea.Msg {
		reply, err := svc.ChatSupport(context.Background(), backend.ChatRequest{
			UserQuery:    query,
			QuestionText: question.Text,
			Topic:        question.Topic,
		})
		return chatReplyMsg{Question: q, Reply: reply, Err: err}
	}
}

func (t *TestScreen) handleChatReply(msg chatReplyMsg) (screen.Screen, tea.Cmd) {
	t.chatPending = false
	line := chatLine{text: msg.Reply}
	if msg.Err != nil {
		line.text = "Sorry, I could not get a hint right now. Please try again."
	}
	t.chatLogs[msg.Question] = append(t.chatLogs[msg.Question], line)
	return t, nil
}

// submit finalizes the session, writes the history row, and swaps in
// the results screen.
func (t *TestScreen) submit() tea.Cmd {
	res := t.sess.Submit()

	if t.attempts != nil {
		_ = t.attempts.Append(context.Background(), store.AttemptData{
			TestType:      t.meta.TestType,
			Subject:       t.meta.Subject,
			Unit:          t.meta.Unit,
			Topic:         t.meta.Topic,
			Language:      t.meta.Language,
			TotalQs:       res.Total,
			Score:         res.Score,
			Unanswered:    res.Unanswered,
			DurationSecs:  t.meta.DurationSeconds,
			TimeTakenSecs: res.TakenSeconds,
		})
	}

	questions := t.sess.Questions()
	answers := t.sess.Answers()
	restart := t.restart
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: results.New(res, questions, answers, restart),
		}
	}
}

func (t *TestScreen) currentQuestion() exam.Question {
	return t.sess.Question(t.sess.Current())
}

// cursorForCurrent puts the option cursor on the saved answer, or the
// first option when the question is untouched.
func (t *TestScreen) cursorForCurrent() int {
	if a := t.sess.Answer(t.sess.Current()); a != session.Unanswered {
		return a
	}
	return 0
}

// submitPrompt picks the confirmation wording: answering everything and
// leaving gaps read differently.
func (t *TestScreen) submitPrompt() string {
	if n := t.sess.UnansweredCount(); n > 0 {
		return fmt.Sprintf("You have %d unanswered question(s). Submit anyway?", n)
	}
	return "Submit the test?"
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(tm time.Time) tea.Msg {
		return timerTickMsg(tm)
	})
}
