package exam

import "testing"

func validQuestion() Question {
	return Question{
		Text:         "Which river flows through Tiruchirappalli?",
		Options:      []string{"Vaigai", "Kaveri", "Palar", "Thamirabarani"},
		CorrectIndex: 1,
		Explanation:  "The Kaveri flows through Tiruchirappalli.",
		Topic:        "Rivers_of_Tamil_Nadu",
	}
}

func TestQuestion_Validate(t *testing.T) {
	q := validQuestion()
	if err := q.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestQuestion_Validate_TooFewOptions(t *testing.T) {
	q := validQuestion()
	q.Options = []string{"Kaveri"}
	if err := q.Validate(); err == nil {
		t.Error("expected error for single-option question")
	}
}

func TestQuestion_Validate_IndexOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 4, 99} {
		q := validQuestion()
		q.CorrectIndex = idx
		if err := q.Validate(); err == nil {
			t.Errorf("CorrectIndex=%d: expected error", idx)
		}
	}
}

func TestValidateAll_Empty(t *testing.T) {
	if err := ValidateAll(nil); err == nil {
		t.Error("expected error for empty question list")
	}
}

func TestStructure_SubjectsSorted(t *testing.T) {
	s := Structure{
		"General Tamil":   {"unit_1": {"a"}},
		"General Studies": {"unit_1": {"b"}},
	}
	subjects := s.Subjects()
	if len(subjects) != 2 || subjects[0] != "General Studies" || subjects[1] != "General Tamil" {
		t.Errorf("Subjects() = %v, want sorted pair", subjects)
	}
}

func TestStructure_MissingSubject(t *testing.T) {
	s := Structure{}
	if got := s.Units("Nope"); len(got) != 0 {
		t.Errorf("Units(missing) = %v, want empty", got)
	}
	if got := s.Topics("Nope", "unit"); got != nil {
		t.Errorf("Topics(missing) = %v, want nil", got)
	}
}

func TestMockTasks_Order(t *testing.T) {
	s := Structure{
		"General Tamil": {
			"unit_2_grammar":    {"ilakkanam", "porul"},
			"unit_1_literature": {"sangam"},
		},
	}
	tasks := MockTasks(s, "General Tamil")
	want := []Task{
		{Unit: "unit_1_literature", Topic: "sangam"},
		{Unit: "unit_2_grammar", Topic: "ilakkanam"},
		{Unit: "unit_2_grammar", Topic: "porul"},
	}
	if len(tasks) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(tasks), len(want))
	}
	for i := range want {
		if tasks[i] != want[i] {
			t.Errorf("task %d = %+v, want %+v", i, tasks[i], want[i])
		}
	}
}

func TestQuestionsPerTask(t *testing.T) {
	cases := []struct {
		tasks int
		want  int
	}{
		{0, 0},
		{1, 100},
		{3, 34}, // ceil(100/3)
		{25, 4},
		{100, 1},
		{150, 1},
	}
	for _, c := range cases {
		if got := QuestionsPerTask(c.tasks); got != c.want {
			t.Errorf("QuestionsPerTask(%d) = %d, want %d", c.tasks, got, c.want)
		}
	}
}

func TestAssembleMock_CapsAt100(t *testing.T) {
	questions := make([]Question, 130)
	for i := range questions {
		questions[i] = validQuestion()
	}
	got := AssembleMock(questions)
	if len(got) != MockQuestionCap {
		t.Errorf("len = %d, want %d", len(got), MockQuestionCap)
	}
}

func TestAssembleMock_DoesNotMutateInput(t *testing.T) {
	questions := []Question{validQuestion(), validQuestion(), validQuestion()}
	questions[0].Text = "first"
	AssembleMock(questions)
	if questions[0].Text != "first" {
		t.Error("input slice was mutated")
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("Rivers_of_Tamil_Nadu"); got != "Rivers of Tamil Nadu" {
		t.Errorf("DisplayName = %q", got)
	}
}
