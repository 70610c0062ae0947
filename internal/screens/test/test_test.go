package test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/arulmurugan/vidhai/internal/backend"
	"github.com/arulmurugan/vidhai/internal/exam"
	"github.com/arulmurugan/vidhai/internal/router"
	"github.com/arulmurugan/vidhai/internal/screen"
	"github.com/arulmurugan/vidhai/internal/session"
	"github.com/arulmurugan/vidhai/internal/store"
)

// mockService implements backend.Service for testing.
type mockService struct {
	chatReply string
	chatErr   error
	chatCalls []backend.ChatRequest
}

func (m *mockService) Structure(_ context.Context) (exam.Structure, error) {
	return exam.Structure{}, nil
}

func (m *mockService) GenerateTest(_ context.Context, _ backend.GenerateRequest) ([]exam.Question, error) {
	return nil, errors.New("not used")
}

func (m *mockService) ChatSupport(_ context.Context, req backend.ChatRequest) (string, error) {
	m.chatCalls = append(m.chatCalls, req)
	return m.chatReply, m.chatErr
}

// mockAttemptRepo implements store.AttemptRepo for testing.
type mockAttemptRepo struct {
	appended []store.AttemptData
}

func (m *mockAttemptRepo) Append(_ context.Context, data store.AttemptData) error {
	m.appended = append(m.appended, data)
	return nil
}

func (m *mockAttemptRepo) Recent(_ context.Context, _ int) ([]store.AttemptRow, error) {
	return nil, nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func threeQuestions() []exam.Question {
	qs := make([]exam.Question, 3)
	for i := range qs {
		qs[i] = exam.Question{
			Text:         "q",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 1,
			Topic:        "ratio_and_proportion",
		}
	}
	return qs
}

func newTestScreen(t *testing.T) (*TestScreen, *mockService, *mockAttemptRepo, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	sess, err := session.New(threeQuestions(), 600, "Ratio and Proportion", clk)
	if err != nil {
		t.Fatal(err)
	}
	svc := &mockService{chatReply: "Think about cross-multiplication."}
	repo := &mockAttemptRepo{}
	meta := Meta{
		TestType:        backend.TestTypeTopicWise,
		Subject:         exam.SubjectGeneralStudies,
		Topic:           "ratio_and_proportion",
		Language:        "English",
		DurationSeconds: 600,
	}
	ts := New(svc, repo, sess, meta, func() screen.Screen { return nil })
	return ts, svc, repo, clk
}

func TestAnswerKeyRecordsAndSchedulesAdvance(t *testing.T) {
	ts, _, _, _ := newTestScreen(t)

	var scr screen.Screen = ts
	_, cmd := scr.Update(keyPress('2'))

	if got := ts.sess.Answer(0); got != 1 {
		t.Errorf("answer = %d, want 1", got)
	}
	if cmd == nil {
		t.Error("expected an advance command after answering")
	}
}

func TestAdvanceSkippedAfterManualNavigation(t *testing.T) {
	ts, _, _, _ := newTestScreen(t)

	var scr screen.Screen = ts
	scr.Update(keyPress('1'))
	scr.Update(specialKey(tea.KeyRight))
	scr.Update(advanceMsg{FromQuestion: 0})

	if got := ts.sess.Current(); got != 1 {
		t.Errorf("current = %d, want 1 (stale advance must not move again)", got)
	}
}

func TestPauseBlocksAnswering(t *testing.T) {
	ts, _, _, _ := newTestScreen(t)

	var scr screen.Screen = ts
	scr.Update(keyPress('p'))
	if !ts.sess.Paused() {
		t.Fatal("expected session paused")
	}

	scr.Update(keyPress('2'))
	if got := ts.sess.Answer(0); got != session.Unanswered {
		t.Errorf("answer = %d, want unanswered while paused", got)
	}

	scr.Update(keyPress('p'))
	if ts.sess.Paused() {
		t.Error("expected session resumed")
	}
}

func TestSubmitConfirmDefaultsToNo(t *testing.T) {
	ts, _, repo, _ := newTestScreen(t)

	var scr screen.Screen = ts
	scr.Update(keyPress('s'))
	if ts.confirm != confirmSubmit {
		t.Fatal("expected submit confirmation")
	}

	scr.Update(specialKey(tea.KeyEnter))
	if ts.confirm != confirmNone {
		t.Error("expected confirmation dismissed")
	}
	if ts.sess.Submitted() {
		t.Error("default choice must not submit")
	}
	if len(repo.appended) != 0 {
		t.Errorf("attempts = %d, want 0", len(repo.appended))
	}
}

func TestSubmitWritesAttemptAndSwapsToResults(t *testing.T) {
	ts, _, repo, _ := newTestScreen(t)

	var scr screen.Screen = ts
	scr.Update(keyPress('2'))
	scr.Update(keyPress('s'))
	_, cmd := scr.Update(keyPress('y'))

	if !ts.sess.Submitted() {
		t.Fatal("expected session submitted")
	}
	if cmd == nil {
		t.Fatal("expected a command after submit")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected a ReplaceScreenMsg to the results screen")
	}

	if len(repo.appended) != 1 {
		t.Fatalf("attempts = %d, want 1", len(repo.appended))
	}
	row := repo.appended[0]
	if row.Score != 1 || row.TotalQs != 3 || row.Unanswered != 2 {
		t.Errorf("row = %+v, want score 1/3 with 2 unanswered", row)
	}
	if row.TestType != backend.TestTypeTopicWise {
		t.Errorf("test type = %q", row.TestType)
	}
}

func TestLeaveConfirmResetsToStart(t *testing.T) {
	ts, _, repo, _ := newTestScreen(t)

	var scr screen.Screen = ts
	scr.Update(specialKey(tea.KeyEscape))
	if ts.confirm != confirmLeave {
		t.Fatal("expected leave confirmation")
	}

	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after leaving")
	}
	if _, ok := cmd().(router.ResetScreenMsg); !ok {
		t.Error("expected a ResetScreenMsg back to the start")
	}
	if len(repo.appended) != 0 {
		t.Error("abandoned attempt must not be recorded")
	}
}

func TestExpiryForcesSubmission(t *testing.T) {
	ts, _, repo, clk := newTestScreen(t)

	// The countdown drains one second per tick; expiry fires on the
	// tick that would take the 600s budget negative.
	var scr screen.Screen = ts
	var cmd tea.Cmd
	for i := 0; i <= 600; i++ {
		clk.now = clk.now.Add(time.Second)
		_, cmd = scr.Update(timerTickMsg(clk.now))
		if ts.sess.Submitted() {
			break
		}
	}

	if !ts.sess.Submitted() {
		t.Fatal("expected forced submission at expiry")
	}
	if cmd == nil {
		t.Error("expected a command carrying the results swap")
	}
	if len(repo.appended) != 1 {
		t.Errorf("attempts = %d, want 1", len(repo.appended))
	}
}

func TestChatSendsScopedRequest(t *testing.T) {
	ts, svc, _, _ := newTestScreen(t)

	var scr screen.Screen = ts
	scr.Update(keyPress('h'))
	if !ts.chatOpen {
		t.Fatal("expected chat open")
	}

	ts.chatInput.Model.SetValue("what is a ratio?")
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a chat command")
	}
	if !ts.chatPending {
		t.Fatal("expected chat pending while the request is in flight")
	}

	scr.Update(chatReplyMsg{Question: 0, Reply: "Think about cross-multiplication."})
	if ts.chatPending {
		t.Error("expected pending cleared after reply")
	}
	lines := ts.chatLogs[0]
	if len(lines) != 2 || !lines[0].fromUser || lines[1].fromUser {
		t.Errorf("chat log = %+v, want user line then reply", lines)
	}

	// The request itself carries the question on screen.
	reply, ok := ts.askTutor(0, "what is a ratio?")().(chatReplyMsg)
	if !ok {
		t.Fatal("expected a chatReplyMsg from the tutor command")
	}
	if reply.Reply != svc.chatReply {
		t.Errorf("reply = %q, want %q", reply.Reply, svc.chatReply)
	}
	if len(svc.chatCalls) != 1 || svc.chatCalls[0].QuestionText != "q" || svc.chatCalls[0].Topic != "ratio_and_proportion" {
		t.Errorf("chat calls = %+v, want one call scoped to the current question", svc.chatCalls)
	}
}

func TestChatFailureShowsGenericMessage(t *testing.T) {
	ts, svc, _, _ := newTestScreen(t)
	svc.chatErr = errors.New("upstream rate limited")

	var scr screen.Screen = ts
	scr.Update(keyPress('h'))
	ts.chatInput.Model.SetValue("what is a ratio?")
	scr.Update(specialKey(tea.KeyEnter))

	scr.Update(chatReplyMsg{Question: 0, Err: svc.chatErr})
	if ts.chatPending {
		t.Error("expected pending cleared after a failed request")
	}

	lines := ts.chatLogs[0]
	if len(lines) != 2 {
		t.Fatalf("chat log = %+v, want user line then failure line", lines)
	}
	if got := lines[1].text; got != "Sorry, I could not get a hint right now. Please try again." {
		t.Errorf("failure line = %q, want the generic message", got)
	}
	if strings.Contains(lines[1].text, "rate limited") {
		t.Error("raw error text must not reach the chat log")
	}
}

func TestStatusShowsPausedMarker(t *testing.T) {
	ts, _, _, _ := newTestScreen(t)

	if got := ts.Status(); got != "⏱ 10:00" {
		t.Errorf("status = %q, want the full countdown", got)
	}

	var scr screen.Screen = ts
	scr.Update(keyPress('p'))
	if got := ts.Status(); got != "⏱ 10:00  ⏸ PAUSED" {
		t.Errorf("status = %q, want the paused marker", got)
	}
}

func TestViewStatesNonEmpty(t *testing.T) {
	ts, _, _, _ := newTestScreen(t)

	if ts.View(100, 30) == "" {
		t.Error("expected non-empty question view")
	}

	var scr screen.Screen = ts
	scr.Update(keyPress('s'))
	if ts.View(100, 30) == "" {
		t.Error("expected non-empty confirm view")
	}
	scr.Update(specialKey(tea.KeyEscape))

	scr.Update(keyPress('p'))
	if ts.View(100, 30) == "" {
		t.Error("expected non-empty paused view")
	}
}
