package results

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/arulmurugan/vidhai/internal/exam"
	"github.com/arulmurugan/vidhai/internal/router"
	"github.com/arulmurugan/vidhai/internal/screen"
	"github.com/arulmurugan/vidhai/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newResultsScreen() *ResultsScreen {
	questions := []exam.Question{
		{Text: "q1", Options: []string{"a", "b"}, CorrectIndex: 0, Explanation: "because"},
		{Text: "q2", Options: []string{"a", "b"}, CorrectIndex: 1},
	}
	answers := []int{0, session.Unanswered}
	res := session.Result{
		Title:        "Indian Polity",
		Score:        1,
		Total:        2,
		Percent:      50,
		Unanswered:   1,
		TakenSeconds: 312,
	}
	return New(res, questions, answers, func() screen.Screen { return nil })
}

func TestReviewToggle(t *testing.T) {
	r := newResultsScreen()

	var scr screen.Screen = r
	scr.Update(keyPress('r'))
	if !r.reviewing {
		t.Fatal("expected review mode")
	}
	if r.Title() != "Review" {
		t.Errorf("title = %q, want Review", r.Title())
	}

	scr.Update(specialKey(tea.KeyEscape))
	if r.reviewing {
		t.Error("expected summary after esc")
	}
}

func TestReviewNavigationClamped(t *testing.T) {
	r := newResultsScreen()

	var scr screen.Screen = r
	scr.Update(keyPress('r'))
	scr.Update(specialKey(tea.KeyLeft))
	if got := r.cursor.Index(); got != 0 {
		t.Errorf("index = %d, want 0 at the left edge", got)
	}
	scr.Update(specialKey(tea.KeyRight))
	scr.Update(specialKey(tea.KeyRight))
	if got := r.cursor.Index(); got != 1 {
		t.Errorf("index = %d, want 1 at the right edge", got)
	}
}

func TestEnterOnSummaryStartsOver(t *testing.T) {
	r := newResultsScreen()

	var scr screen.Screen = r
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from the summary")
	}
	if _, ok := cmd().(router.ResetScreenMsg); !ok {
		t.Error("expected a ResetScreenMsg back to the start")
	}
}

func TestViewStatesNonEmpty(t *testing.T) {
	r := newResultsScreen()

	if r.View(100, 30) == "" {
		t.Error("expected non-empty summary view")
	}

	var scr screen.Screen = r
	scr.Update(keyPress('r'))
	if r.View(100, 30) == "" {
		t.Error("expected non-empty review view")
	}
}
