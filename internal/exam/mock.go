package exam

import (
	"math/rand/v2"
	"time"
)

// MockQuestionCap is the total size of an assembled whole-subject mock test.
const MockQuestionCap = 100

// Mock test durations per subject, from the exam pattern.
const (
	MockDurationGeneralTamil   = 90 * time.Minute
	MockDurationGeneralStudies = 120 * time.Minute
)

// Task identifies one generation subtask of a whole-subject mock test.
type Task struct {
	Unit  string
	Topic string
}

// MockTasks flattens a subject's units into the ordered list of per-topic
// generation tasks. Units are visited in sorted order so the pipeline is
// deterministic for a given structure.
func MockTasks(s Structure, subject string) []Task {
	var tasks []Task
	for _, unit := range s.Units(subject) {
		for _, topic := range s.Topics(subject, unit) {
			tasks = append(tasks, Task{Unit: unit, Topic: topic})
		}
	}
	return tasks
}

// QuestionsPerTask returns how many questions to request per subtask so the
// aggregate reaches the cap: ceil(cap / tasks).
func QuestionsPerTask(taskCount int) int {
	if taskCount <= 0 {
		return 0
	}
	return (MockQuestionCap + taskCount - 1) / taskCount
}

// AssembleMock shuffles the aggregated questions and trims to the cap.
func AssembleMock(questions []Question) []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if len(out) > MockQuestionCap {
		out = out[:MockQuestionCap]
	}
	return out
}
