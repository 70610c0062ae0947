package review

import (
	"testing"

	"github.com/arulmurugan/vidhai/internal/exam"
	"github.com/arulmurugan/vidhai/internal/session"
)

func question(correct int) exam.Question {
	return exam.Question{
		Text:         "q",
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: correct,
		Explanation:  "e",
	}
}

func countMarks(marks []Mark) (correct, incorrect, neutral int) {
	for _, m := range marks {
		switch m {
		case Correct:
			correct++
		case Incorrect:
			incorrect++
		case Neutral:
			neutral++
		}
	}
	return
}

func TestClassify_WrongAnswer(t *testing.T) {
	marks := Classify(question(1), 3)
	if marks[1] != Correct {
		t.Error("correct option not marked Correct")
	}
	if marks[3] != Incorrect {
		t.Error("user's wrong choice not marked Incorrect")
	}
	c, i, n := countMarks(marks)
	if c != 1 || i != 1 || n != 2 {
		t.Errorf("marks = %d correct, %d incorrect, %d neutral", c, i, n)
	}
}

func TestClassify_RightAnswer(t *testing.T) {
	// When the user picked the correct option it stays Correct and
	// nothing is marked Incorrect.
	marks := Classify(question(2), 2)
	c, i, _ := countMarks(marks)
	if c != 1 {
		t.Errorf("correct marks = %d, want exactly 1", c)
	}
	if i != 0 {
		t.Errorf("incorrect marks = %d, want 0", i)
	}
}

func TestClassify_Unanswered(t *testing.T) {
	marks := Classify(question(0), session.Unanswered)
	c, i, n := countMarks(marks)
	if c != 1 || i != 0 || n != 3 {
		t.Errorf("marks = %d correct, %d incorrect, %d neutral", c, i, n)
	}
}

func TestClassify_ExactlyOneCorrectAlways(t *testing.T) {
	for answer := -1; answer < 4; answer++ {
		for correct := 0; correct < 4; correct++ {
			c, i, _ := countMarks(Classify(question(correct), answer))
			if c != 1 {
				t.Errorf("correct=%d answer=%d: %d Correct marks", correct, answer, c)
			}
			if i > 1 {
				t.Errorf("correct=%d answer=%d: %d Incorrect marks", correct, answer, i)
			}
		}
	}
}

func TestCursor_ClampedNavigation(t *testing.T) {
	questions := []exam.Question{question(0), question(1), question(2)}
	answers := []int{0, session.Unanswered, 1}
	c := NewCursor(questions, answers)

	c.Prev()
	if c.Index() != 0 {
		t.Errorf("Prev at start moved to %d", c.Index())
	}
	c.Next()
	c.Next()
	c.Next()
	if c.Index() != 2 {
		t.Errorf("Next past end moved to %d", c.Index())
	}
	c.GoTo(1)
	if c.Answer() != session.Unanswered {
		t.Errorf("Answer at 1 = %d, want Unanswered", c.Answer())
	}
	if got := c.Marks(); got[1] != Correct {
		t.Errorf("Marks at 1 = %v", got)
	}
}
