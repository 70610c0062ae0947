// Package review walks a finalized attempt read-only: an independent
// cursor over the same question/answer arrays, plus the per-option
// correctness classification shown on the results screen.
package review

import (
	"github.com/arulmurugan/vidhai/internal/exam"
)

// Mark classifies one option of a reviewed question.
type Mark int

const (
	// Neutral is neither the correct option nor the user's wrong pick.
	Neutral Mark = iota
	// Correct is the correct option; marked even when the user chose it.
	Correct
	// Incorrect is the user's choice when it differs from the correct one.
	Incorrect
)

// Cursor navigates the finalized question/answer arrays. Created at
// submission time; never mutates them.
type Cursor struct {
	questions []exam.Question
	answers   []int
	index     int
}

// NewCursor starts a review at question 0.
func NewCursor(questions []exam.Question, answers []int) *Cursor {
	return &Cursor{questions: questions, answers: answers}
}

// Index returns the current review position.
func (c *Cursor) Index() int { return c.index }

// Len returns the question count.
func (c *Cursor) Len() int { return len(c.questions) }

// Question returns the question under review.
func (c *Cursor) Question() exam.Question { return c.questions[c.index] }

// Answer returns the user's recorded choice for the question under
// review (the session's unanswered marker when none).
func (c *Cursor) Answer() int { return c.answers[c.index] }

// GoTo moves to index i, clamped to the valid range.
func (c *Cursor) GoTo(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(c.questions)-1 {
		i = len(c.questions) - 1
	}
	c.index = i
}

// Next advances by one, clamped at the last question.
func (c *Cursor) Next() { c.GoTo(c.index + 1) }

// Prev steps back by one, clamped at the first question.
func (c *Cursor) Prev() { c.GoTo(c.index - 1) }

// Marks classifies every option of the question under review.
func (c *Cursor) Marks() []Mark {
	return Classify(c.Question(), c.Answer())
}

// Classify assigns each option exactly one mark. The correct option is
// always marked Correct, even when it was also the user's choice; the
// user's choice is Incorrect only when it differs from the correct
// index; everything else is Neutral. An unanswered question yields no
// Incorrect mark (the unanswered marker matches no option index).
func Classify(q exam.Question, answer int) []Mark {
	marks := make([]Mark, len(q.Options))
	for i := range marks {
		switch {
		case i == q.CorrectIndex:
			marks[i] = Correct
		case i == answer:
			marks[i] = Incorrect
		default:
			marks[i] = Neutral
		}
	}
	return marks
}
