package exam

import "fmt"

// Question is a single multiple-choice question as received from the
// question service. Immutable once received.
type Question struct {
	Text         string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_answer_index"`
	Explanation  string   `json:"explanation"`
	Topic        string   `json:"topic"`
}

// Validate checks the structural invariants of a received question.
func (q *Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("question has empty text")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %q has %d options, need at least 2", q.Text, len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("question %q has correct index %d out of range [0,%d)", q.Text, q.CorrectIndex, len(q.Options))
	}
	return nil
}

// ValidateAll validates every question in a set and rejects empty sets.
func ValidateAll(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("empty question list")
	}
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}
