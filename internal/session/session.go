// Package session owns the state of one test attempt: the question
// set, the parallel answers array, the navigation cursor, and the
// timing engine. It exposes data-in/data-out operations only; screens
// render from it and forward user commands into it.
package session

import (
	"fmt"

	"github.com/arulmurugan/vidhai/internal/exam"
	"github.com/arulmurugan/vidhai/internal/timing"
)

// Unanswered marks a question with no recorded choice. It never equals
// a valid option index, so unanswered questions always score incorrect.
const Unanswered = -1

// Session is one in-progress test attempt. Created once per attempt
// and discarded with the process; nothing is persisted until the
// summary row is written after submission.
type Session struct {
	title     string
	questions []exam.Question
	answers   []int
	current   int

	clock     timing.Clock
	stopwatch *timing.Stopwatch
	countdown *timing.Countdown

	durationSeconds int
	submitted       bool
}

// New validates the question set and starts the attempt clock. An empty
// set is a hard error: callers must have rejected it already, this is
// the backstop.
func New(questions []exam.Question, durationSeconds int, title string, clock timing.Clock) (*Session, error) {
	if err := exam.ValidateAll(questions); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = Unanswered
	}
	return &Session{
		title:           title,
		questions:       questions,
		answers:         answers,
		clock:           clock,
		stopwatch:       timing.NewStopwatch(clock.Now()),
		countdown:       timing.NewCountdown(durationSeconds),
		durationSeconds: durationSeconds,
	}, nil
}

// Title returns the test title.
func (s *Session) Title() string { return s.title }

// Len returns the question count.
func (s *Session) Len() int { return len(s.questions) }

// Question returns the question at index i.
func (s *Session) Question(i int) exam.Question { return s.questions[i] }

// Questions returns the full question slice. Treated as read-only by
// callers; the review screen walks it after submission.
func (s *Session) Questions() []exam.Question { return s.questions }

// Answers returns the recorded answer per question (Unanswered where
// no choice was made).
func (s *Session) Answers() []int { return s.answers }

// Answer returns the recorded choice for question i.
func (s *Session) Answer(i int) int { return s.answers[i] }

// Current returns the index of the question being displayed.
func (s *Session) Current() int { return s.current }

// Submitted reports whether the attempt has been finalized.
func (s *Session) Submitted() bool { return s.submitted }

// Paused reports whether the attempt timer is paused.
func (s *Session) Paused() bool { return s.stopwatch.Paused() }

// DurationSeconds returns the configured time budget.
func (s *Session) DurationSeconds() int { return s.durationSeconds }

// Remaining returns the countdown seconds left, clamped at zero.
func (s *Session) Remaining() int { return s.countdown.Remaining() }

// SelectAnswer records optionIndex for questionIndex, overwriting any
// prior choice. Answers stay mutable until submission. The returned
// flag tells the caller to auto-advance after its confirmation delay;
// it is false on the last question. Selections while paused or after
// submission are ignored.
func (s *Session) SelectAnswer(questionIndex, optionIndex int) bool {
	if s.submitted || s.stopwatch.Paused() {
		return false
	}
	if questionIndex < 0 || questionIndex >= len(s.questions) {
		return false
	}
	if optionIndex < 0 || optionIndex >= len(s.questions[questionIndex].Options) {
		return false
	}
	s.answers[questionIndex] = optionIndex
	return questionIndex < len(s.questions)-1
}

// GoTo moves the cursor to index i, clamped to the valid range.
// Stepping past either end is a no-op, not an error.
func (s *Session) GoTo(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(s.questions)-1 {
		i = len(s.questions) - 1
	}
	s.current = i
}

// Next advances the cursor by one, clamped at the last question.
func (s *Session) Next() { s.GoTo(s.current + 1) }

// Prev steps the cursor back by one, clamped at the first question.
func (s *Session) Prev() { s.GoTo(s.current - 1) }

// Pause suspends the attempt timer.
func (s *Session) Pause() {
	if s.submitted {
		return
	}
	s.stopwatch.Pause(s.clock.Now())
}

// Resume restarts the attempt timer.
func (s *Session) Resume() {
	if s.submitted {
		return
	}
	s.stopwatch.Resume(s.clock.Now())
}

// Tick advances the countdown by one second. Ticks while paused are
// skipped. Returns true exactly once, when time runs out; the caller
// must then force submission without confirmation.
func (s *Session) Tick() bool {
	if s.submitted {
		return false
	}
	return s.countdown.Tick(s.stopwatch.Paused())
}

// UnansweredCount returns how many questions carry no answer; the
// submit confirmation prompt depends on it.
func (s *Session) UnansweredCount() int {
	n := 0
	for _, a := range s.answers {
		if a == Unanswered {
			n++
		}
	}
	return n
}

// Score counts questions whose recorded answer matches the correct
// option. Unanswered never matches.
func (s *Session) Score() int {
	score := 0
	for i, q := range s.questions {
		if s.answers[i] == q.CorrectIndex {
			score++
		}
	}
	return score
}

// Submit stops the countdown, finalizes any open pause interval, and
// returns the scored result. Safe to call while paused. Subsequent
// calls return the same scores but do not restart anything.
func (s *Session) Submit() Result {
	taken := s.stopwatch.Finalize(s.clock.Now())
	s.submitted = true

	score := s.Score()
	total := len(s.questions)
	return Result{
		Title:        s.title,
		Score:        score,
		Total:        total,
		Percent:      float64(score) / float64(total) * 100,
		Unanswered:   s.UnansweredCount(),
		TakenSeconds: int(taken.Seconds()),
	}
}
