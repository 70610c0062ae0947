package session

import (
	"testing"
	"time"

	"github.com/arulmurugan/vidhai/internal/exam"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func fiveQuestions() []exam.Question {
	correct := []int{0, 1, 2, 0, 3}
	qs := make([]exam.Question, 5)
	for i := range qs {
		qs[i] = exam.Question{
			Text:         "q",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: correct[i],
			Explanation:  "e",
			Topic:        "t",
		}
	}
	return qs
}

func newTestSession(t *testing.T) (*Session, *fakeClock) {
	t.Helper()
	clk := newFakeClock()
	s, err := New(fiveQuestions(), 600, "Unit Test", clk)
	if err != nil {
		t.Fatal(err)
	}
	return s, clk
}

func TestNew_RejectsEmptySet(t *testing.T) {
	if _, err := New(nil, 600, "t", newFakeClock()); err == nil {
		t.Fatal("expected error for empty question set")
	}
}

func TestNew_AnswersMatchQuestionCount(t *testing.T) {
	s, _ := newTestSession(t)
	if len(s.Answers()) != s.Len() {
		t.Fatalf("answers len %d != questions len %d", len(s.Answers()), s.Len())
	}
	if got := s.UnansweredCount(); got != 5 {
		t.Errorf("UnansweredCount = %d, want 5", got)
	}
}

func TestSelectAnswer_OverwriteAndAutoAdvance(t *testing.T) {
	s, _ := newTestSession(t)

	if adv := s.SelectAnswer(0, 2); !adv {
		t.Error("expected auto-advance from question 0")
	}
	// Overwriting is allowed until submission.
	s.SelectAnswer(0, 0)
	if got := s.Answer(0); got != 0 {
		t.Errorf("Answer(0) = %d, want 0 after overwrite", got)
	}
	// No auto-advance on the last question.
	if adv := s.SelectAnswer(4, 1); adv {
		t.Error("auto-advance must be suppressed on the last question")
	}
}

func TestSelectAnswer_IgnoredWhilePaused(t *testing.T) {
	s, _ := newTestSession(t)
	s.Pause()
	if adv := s.SelectAnswer(0, 1); adv {
		t.Error("selection while paused must not advance")
	}
	if got := s.Answer(0); got != Unanswered {
		t.Errorf("Answer(0) = %d, want Unanswered while paused", got)
	}
}

func TestSelectAnswer_InvalidIndicesIgnored(t *testing.T) {
	s, _ := newTestSession(t)
	s.SelectAnswer(-1, 0)
	s.SelectAnswer(5, 0)
	s.SelectAnswer(0, 4)
	s.SelectAnswer(0, -2)
	if got := s.UnansweredCount(); got != 5 {
		t.Errorf("UnansweredCount = %d, want 5 (all invalid)", got)
	}
}

func TestNavigation_Clamped(t *testing.T) {
	s, _ := newTestSession(t)
	s.Prev()
	if s.Current() != 0 {
		t.Errorf("Prev at first question moved to %d", s.Current())
	}
	s.GoTo(99)
	if s.Current() != 4 {
		t.Errorf("GoTo(99) = %d, want clamp to 4", s.Current())
	}
	s.Next()
	if s.Current() != 4 {
		t.Errorf("Next at last question moved to %d", s.Current())
	}
	s.GoTo(-3)
	if s.Current() != 0 {
		t.Errorf("GoTo(-3) = %d, want clamp to 0", s.Current())
	}
}

func TestScore_KnownTrace(t *testing.T) {
	// Answers [0, -, 2, 1, -] against correct [0, 1, 2, 0, 3]:
	// q1 and q3 match, score 2, unanswered 2.
	s, _ := newTestSession(t)
	s.SelectAnswer(0, 0)
	s.SelectAnswer(2, 2)
	s.SelectAnswer(3, 1)

	if got := s.Score(); got != 2 {
		t.Errorf("Score = %d, want 2", got)
	}
	if got := s.UnansweredCount(); got != 2 {
		t.Errorf("UnansweredCount = %d, want 2", got)
	}
}

func TestScore_InvariantUnderNavigationOrder(t *testing.T) {
	answers := map[int]int{0: 0, 2: 2, 3: 1}

	forward, _ := newTestSession(t)
	for qi := 0; qi < 5; qi++ {
		forward.GoTo(qi)
		if oi, ok := answers[qi]; ok {
			forward.SelectAnswer(qi, oi)
		}
	}

	scattered, _ := newTestSession(t)
	for _, qi := range []int{3, 0, 4, 2, 1, 0, 3} {
		scattered.GoTo(qi)
		if oi, ok := answers[qi]; ok {
			scattered.SelectAnswer(qi, oi)
		}
	}

	if forward.Score() != scattered.Score() {
		t.Errorf("score depends on navigation order: %d vs %d", forward.Score(), scattered.Score())
	}
}

func TestSubmit_PauseAccounting(t *testing.T) {
	// Duration 600s, pause at t=10 for 5s, submit at t=30:
	// elapsed-for-scoring = 30 - 5 = 25s.
	s, clk := newTestSession(t)

	clk.advance(10 * time.Second)
	s.Pause()
	clk.advance(5 * time.Second)
	s.Resume()
	clk.advance(15 * time.Second)

	res := s.Submit()
	if res.TakenSeconds != 25 {
		t.Errorf("TakenSeconds = %d, want 25", res.TakenSeconds)
	}
}

func TestSubmit_WhilePausedFinalizesOpenInterval(t *testing.T) {
	s, clk := newTestSession(t)
	clk.advance(20 * time.Second)
	s.Pause()
	clk.advance(100 * time.Second)

	res := s.Submit()
	if res.TakenSeconds != 20 {
		t.Errorf("TakenSeconds = %d, want 20 (open pause excluded)", res.TakenSeconds)
	}
}

func TestTick_PausedTicksDoNotDrainCountdown(t *testing.T) {
	s, _ := newTestSession(t)
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	s.Pause()
	for i := 0; i < 5; i++ {
		if s.Tick() {
			t.Fatal("tick while paused must not expire")
		}
	}
	s.Resume()
	for i := 0; i < 15; i++ {
		s.Tick()
	}
	if got := s.Remaining(); got != 575 {
		t.Errorf("Remaining = %d, want 575", got)
	}
}

func TestTick_ExpiryFiresOnce(t *testing.T) {
	clk := newFakeClock()
	s, err := New(fiveQuestions(), 2, "t", clk)
	if err != nil {
		t.Fatal(err)
	}
	fired := 0
	for i := 0; i < 10; i++ {
		if s.Tick() {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("expiry fired %d times, want exactly 1", fired)
	}
}

func TestSubmit_Result(t *testing.T) {
	s, clk := newTestSession(t)
	s.SelectAnswer(0, 0)
	clk.advance(90 * time.Second)

	res := s.Submit()
	if res.Score != 1 || res.Total != 5 || res.Unanswered != 4 {
		t.Errorf("result = %+v", res)
	}
	if res.Percent != 20 {
		t.Errorf("Percent = %f, want 20", res.Percent)
	}
	if res.TakenSeconds != 90 {
		t.Errorf("TakenSeconds = %d, want 90", res.TakenSeconds)
	}
	if !s.Submitted() {
		t.Error("Submitted() = false after Submit")
	}
	// Post-submission selections are ignored.
	s.SelectAnswer(1, 1)
	if s.Answer(1) != Unanswered {
		t.Error("answer recorded after submission")
	}
}
