package loading

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/arulmurugan/vidhai/internal/backend"
	"github.com/arulmurugan/vidhai/internal/exam"
	"github.com/arulmurugan/vidhai/internal/router"
	"github.com/arulmurugan/vidhai/internal/screen"
)

// mockService implements backend.Service with a scripted reply per
// generation call, in call order.
type mockService struct {
	replies []func() ([]exam.Question, error)
	calls   []backend.GenerateRequest
}

func (m *mockService) Structure(_ context.Context) (exam.Structure, error) {
	return exam.Structure{}, nil
}

func (m *mockService) GenerateTest(_ context.Context, req backend.GenerateRequest) ([]exam.Question, error) {
	m.calls = append(m.calls, req)
	if len(m.replies) == 0 {
		return nil, errors.New("unscripted call")
	}
	next := m.replies[0]
	m.replies = m.replies[1:]
	return next()
}

func (m *mockService) ChatSupport(_ context.Context, _ backend.ChatRequest) (string, error) {
	return "", errors.New("not used")
}

func questions(n int) []exam.Question {
	qs := make([]exam.Question, n)
	for i := range qs {
		qs[i] = exam.Question{
			Text:         "q",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 0,
		}
	}
	return qs
}

func ok(n int) func() ([]exam.Question, error) {
	return func() ([]exam.Question, error) { return questions(n), nil }
}

func fail(msg string) func() ([]exam.Question, error) {
	return func() ([]exam.Question, error) { return nil, errors.New(msg) }
}

func topicPlan() Plan {
	return Plan{
		TestType:        backend.TestTypeTopicWise,
		Subject:         "General Studies",
		Unit:            "unit_8_aptitude",
		Topic:           "ratio_and_proportion",
		Language:        "English",
		NumQuestions:    10,
		DurationSeconds: 600,
		Title:           "Ratio And Proportion",
	}
}

func mockPlan() Plan {
	return Plan{
		TestType:        backend.TestTypeMock,
		Subject:         "General Studies",
		Language:        "English",
		NumQuestions:    exam.MockQuestionCap,
		DurationSeconds: 7200,
		Title:           "General Studies Mock Test",
		Tasks: []exam.Task{
			{Unit: "unit_1", Topic: "t1"},
			{Unit: "unit_1", Topic: "t2"},
			{Unit: "unit_2", Topic: "t3"},
		},
		PerTask: 34,
	}
}

// drive feeds every generation message back through Update until no
// command remains, mimicking the runtime loop without the estimator
// ticks. Returns the final message that was not produced by this
// screen.
func drive(t *testing.T, l *LoadingScreen, cmd tea.Cmd) tea.Msg {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		switch msg.(type) {
		case generatedMsg, taskDoneMsg:
			var scr screen.Screen
			scr, cmd = l.Update(msg)
			l = scr.(*LoadingScreen)
		default:
			return msg
		}
	}
	return nil
}

// start picks the first generation command the screen would issue from
// Init, skipping the estimator tick.
func start(l *LoadingScreen) tea.Cmd {
	if l.plan.TestType == backend.TestTypeMock {
		return l.runTask(0)
	}
	return l.generateSingle()
}

func TestTopicWiseSuccessStartsTest(t *testing.T) {
	svc := &mockService{replies: []func() ([]exam.Question, error){ok(10)}}
	l := New(svc, nil, topicPlan(), func() screen.Screen { return nil })

	msg := drive(t, l, start(l))
	if _, isReplace := msg.(router.ReplaceScreenMsg); !isReplace {
		t.Fatalf("final msg = %T, want ReplaceScreenMsg", msg)
	}

	if len(svc.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(svc.calls))
	}
	req := svc.calls[0]
	if req.Topic != "ratio_and_proportion" || req.NumQuestions != 10 || req.TestType != backend.TestTypeTopicWise {
		t.Errorf("request = %+v", req)
	}
}

func TestTopicWiseEmptyIsHardError(t *testing.T) {
	svc := &mockService{replies: []func() ([]exam.Question, error){ok(0)}}
	l := New(svc, nil, topicPlan(), func() screen.Screen { return nil })

	drive(t, l, start(l))
	if l.errMsg == "" {
		t.Fatal("expected an error for an empty question list")
	}
	if !strings.Contains(l.errMsg, "empty question list") {
		t.Errorf("errMsg = %q", l.errMsg)
	}
}

func TestMockPipelineRunsSequentially(t *testing.T) {
	svc := &mockService{replies: []func() ([]exam.Question, error){ok(34), ok(34), ok(34)}}
	l := New(svc, nil, mockPlan(), func() screen.Screen { return nil })

	msg := drive(t, l, start(l))
	if _, isReplace := msg.(router.ReplaceScreenMsg); !isReplace {
		t.Fatalf("final msg = %T, want ReplaceScreenMsg", msg)
	}

	if len(svc.calls) != 3 {
		t.Fatalf("calls = %d, want 3", len(svc.calls))
	}
	for i, topic := range []string{"t1", "t2", "t3"} {
		if svc.calls[i].Topic != topic {
			t.Errorf("call %d topic = %q, want %q", i, svc.calls[i].Topic, topic)
		}
	}
	if l.est.TasksDone() != 3 {
		t.Errorf("tasks done = %d, want 3", l.est.TasksDone())
	}
}

func TestMockSubtaskErrorAbortsPipeline(t *testing.T) {
	svc := &mockService{replies: []func() ([]exam.Question, error){ok(34), fail("rate limited")}}
	l := New(svc, nil, mockPlan(), func() screen.Screen { return nil })

	drive(t, l, start(l))
	if l.errMsg == "" {
		t.Fatal("expected pipeline abort")
	}
	if len(svc.calls) != 2 {
		t.Errorf("calls = %d, want 2 (third subtask must not start)", len(svc.calls))
	}
	if l.gathered != nil {
		t.Error("partial results must be discarded")
	}
}

func TestMockEmptySubtaskWarnsAndContinues(t *testing.T) {
	svc := &mockService{replies: []func() ([]exam.Question, error){ok(34), ok(0), ok(34)}}
	l := New(svc, nil, mockPlan(), func() screen.Screen { return nil })

	msg := drive(t, l, start(l))
	if _, isReplace := msg.(router.ReplaceScreenMsg); !isReplace {
		t.Fatalf("final msg = %T, want ReplaceScreenMsg (empty subtask only warns)", msg)
	}
	if len(l.warnings) != 1 {
		t.Fatalf("warnings = %v, want one skip notice", l.warnings)
	}
	if !strings.Contains(l.warnings[0], "skipping") {
		t.Errorf("warning = %q", l.warnings[0])
	}
}

func TestMockAllEmptyFails(t *testing.T) {
	svc := &mockService{replies: []func() ([]exam.Question, error){ok(0), ok(0), ok(0)}}
	l := New(svc, nil, mockPlan(), func() screen.Screen { return nil })

	drive(t, l, start(l))
	if l.errMsg == "" {
		t.Fatal("expected failure when no topic produced questions")
	}
}

func TestErrorStateOffersRestart(t *testing.T) {
	svc := &mockService{replies: []func() ([]exam.Question, error){fail("boom")}}
	l := New(svc, nil, topicPlan(), func() screen.Screen { return nil })

	drive(t, l, start(l))
	if l.errMsg == "" {
		t.Fatal("expected error state")
	}

	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a restart command")
	}
	if _, ok := cmd().(router.ResetScreenMsg); !ok {
		t.Error("expected a ResetScreenMsg")
	}
}
