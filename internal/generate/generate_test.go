package generate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arulmurugan/vidhai/internal/backend"
	"github.com/arulmurugan/vidhai/internal/exam"
	"github.com/arulmurugan/vidhai/internal/llm"
)

func init() {
	attemptPause = time.Millisecond
}

const twoQuestionJSON = `[
	{"question":"q1","options":["a","b","c","d"],"correct_answer_index":0,"explanation":"e1"},
	{"question":"q2","options":["a","b","c","d"],"correct_answer_index":2,"explanation":"e2"}
]`

// writeMaterial lays out a minimal source tree and returns its root.
func writeMaterial(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	unit := filepath.Join(root, "general_tamil", "unit_1")
	if err := os.MkdirAll(unit, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, topic := range []string{"sangam_literature", "bhakti_literature"} {
		path := filepath.Join(unit, topic+".txt")
		if err := os.WriteFile(path, []byte("notes on "+topic), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	apt := filepath.Join(root, "general_studies", "unit_9")
	if err := os.MkdirAll(apt, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(apt, "percentage.txt"), []byte("percentage notes"), 0o644); err != nil {
		t.Fatal(err)
	}

	return root
}

func TestLibrary_Structure(t *testing.T) {
	lib := NewLibrary(writeMaterial(t))

	tree, err := lib.Structure()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	topics := tree.Topics(exam.SubjectGeneralTamil, "unit_1")
	if len(topics) != 2 || topics[0] != "bhakti_literature" || topics[1] != "sangam_literature" {
		t.Fatalf("unexpected topics: %v", topics)
	}
	if got := tree.Topics(exam.SubjectGeneralStudies, "unit_9"); len(got) != 1 || got[0] != "percentage" {
		t.Fatalf("unexpected topics: %v", got)
	}
}

func TestLibrary_StructureMissingRoot(t *testing.T) {
	lib := NewLibrary(filepath.Join(t.TempDir(), "nope"))
	if _, err := lib.Structure(); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestLibrary_Context(t *testing.T) {
	lib := NewLibrary(writeMaterial(t))

	text, ok := lib.Context("General Tamil", "unit_1", "sangam_literature")
	if !ok {
		t.Fatal("expected context to be found")
	}
	if text != "notes on sangam_literature" {
		t.Fatalf("unexpected context: %q", text)
	}

	if _, ok := lib.Context("General Tamil", "unit_1", "missing"); ok {
		t.Fatal("expected missing topic to report no context")
	}
	if _, ok := lib.Context("Unknown Subject", "unit_1", "sangam_literature"); ok {
		t.Fatal("expected unknown subject to report no context")
	}
}

func TestExtractJSONArray(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"bare", `[{"a":1}]`, `[{"a":1}]`},
		{"prose around", "Here you go:\n[{\"a\":1}]\nEnjoy!", `[{"a":1}]`},
		{"fenced no brackets", "```json\n{}\n```", "{}"},
		{"padded fences", "  ```json\n{}\n```  ", "{}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSONArray(tc.in); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGenerateTest_TagsAndShuffles(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Sure!\n" + twoQuestionJSON})
	svc := NewService(mock, NewLibrary(writeMaterial(t)))

	qs, err := svc.GenerateTest(context.Background(), backend.GenerateRequest{
		Subject:      "General Tamil",
		Topic:        "sangam_literature",
		Language:     "Tamil",
		NumQuestions: 2,
		TestType:     backend.TestTypeMock,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	for _, q := range qs {
		if q.Topic != "sangam_literature" {
			t.Fatalf("question not tagged with topic: %+v", q)
		}
	}
}

func TestGenerateTest_TopicWiseSplitsContextAndGeneral(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: twoQuestionJSON},
		llm.MockResponse{Text: twoQuestionJSON},
	)
	svc := NewService(mock, NewLibrary(writeMaterial(t)))

	_, err := svc.GenerateTest(context.Background(), backend.GenerateRequest{
		Subject:      "General Tamil",
		Unit:         "unit_1",
		Topic:        "sangam_literature",
		Language:     "Tamil",
		NumQuestions: 10,
		TestType:     backend.TestTypeTopicWise,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 generation calls, got %d", mock.CallCount())
	}

	// 70% of 10 rounds up to 7 context questions, 3 general.
	first, second := mock.Calls[0].Prompt, mock.Calls[1].Prompt
	if !strings.Contains(first, "generate 7 ") {
		t.Fatalf("first call should ask for 7 questions:\n%s", first)
	}
	if !strings.Contains(first, "notes on sangam_literature") {
		t.Fatal("first call should carry the study context")
	}
	if !strings.Contains(first, "sangam_literature (from unit_1)") {
		t.Fatal("first call should use the unit-qualified topic")
	}
	if !strings.Contains(second, "generate 3 ") {
		t.Fatalf("second call should ask for 3 questions:\n%s", second)
	}
	if !strings.Contains(second, noContextText) {
		t.Fatal("second call should fall back to general knowledge")
	}
}

func TestGenerateTest_AptitudeTopicUsesSimplePrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: twoQuestionJSON},
		llm.MockResponse{Text: twoQuestionJSON},
	)
	svc := NewService(mock, NewLibrary(writeMaterial(t)))

	_, err := svc.GenerateTest(context.Background(), backend.GenerateRequest{
		Subject:      "General Studies",
		Unit:         "unit_9",
		Topic:        "percentage",
		Language:     "English",
		NumQuestions: 5,
		TestType:     backend.TestTypeTopicWise,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, call := range mock.Calls {
		if !strings.Contains(call.Prompt, "Aptitude and Mental Ability") {
			t.Fatal("aptitude topics should use the simple MCQ prompt")
		}
	}
}

func TestGenerateTest_FallbackPromptOnBadJSON(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "I cannot answer that."},
		llm.MockResponse{Text: twoQuestionJSON},
	)
	svc := NewService(mock, NewLibrary(writeMaterial(t)))

	qs, err := svc.GenerateTest(context.Background(), backend.GenerateRequest{
		Subject:      "General Tamil",
		Topic:        "sangam_literature",
		Language:     "Tamil",
		NumQuestions: 2,
		TestType:     backend.TestTypeMock,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions from fallback, got %d", len(qs))
	}
	if !strings.Contains(mock.Calls[1].Prompt, "Simple MCQs are perfect") {
		t.Fatal("second attempt should use the fallback prompt")
	}
}

func TestGenerateTest_AllAttemptsFail(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "nope"},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := NewService(mock, NewLibrary(writeMaterial(t)))

	_, err := svc.GenerateTest(context.Background(), backend.GenerateRequest{
		Subject:      "General Tamil",
		Topic:        "sangam_literature",
		Language:     "Tamil",
		NumQuestions: 2,
		TestType:     backend.TestTypeMock,
	})
	if err == nil {
		t.Fatal("expected error")
	}

	var svcErr *backend.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %T", err)
	}
	if !strings.Contains(svcErr.Reason, "failed to generate questions for the topic 'sangam_literature'") {
		t.Fatalf("unexpected reason: %q", svcErr.Reason)
	}
}

func TestGenerateTest_SchemaRejectsMalformedQuestions(t *testing.T) {
	// Options array too short; both attempts return the same bad set.
	bad := `[{"question":"q","options":["only one"],"correct_answer_index":0}]`
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: bad},
		llm.MockResponse{Text: bad},
	)
	svc := NewService(mock, NewLibrary(writeMaterial(t)))

	_, err := svc.GenerateTest(context.Background(), backend.GenerateRequest{
		Subject:      "General Tamil",
		Topic:        "sangam_literature",
		Language:     "Tamil",
		NumQuestions: 1,
		TestType:     backend.TestTypeMock,
	})
	if err == nil {
		t.Fatal("expected error for malformed question set")
	}
}

func TestGenerateTest_ZeroQuestionsSkipsModel(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, NewLibrary(writeMaterial(t)))

	_, err := svc.GenerateTest(context.Background(), backend.GenerateRequest{
		Subject:      "General Tamil",
		Topic:        "sangam_literature",
		Language:     "Tamil",
		NumQuestions: 0,
		TestType:     backend.TestTypeMock,
	})
	if err == nil {
		t.Fatal("expected error: zero questions yields an empty set")
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no model calls, got %d", mock.CallCount())
	}
}

func TestChatSupport_HintAndAptitudeNote(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Think about the base value first."})
	svc := NewService(mock, NewLibrary(writeMaterial(t)))

	reply, err := svc.ChatSupport(context.Background(), backend.ChatRequest{
		UserQuery:    "how do I start?",
		QuestionText: "What is 20% of 150?",
		Topic:        "percentage and math",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Think about the base value first." {
		t.Fatalf("unexpected reply: %q", reply)
	}

	prompt := mock.Calls[0].Prompt
	if !strings.Contains(prompt, `"VidhAI"`) {
		t.Fatal("hint prompt should carry the tutor persona")
	}
	if !strings.Contains(prompt, "Special Instruction for Aptitude") {
		t.Fatal("math topics should get the aptitude note")
	}
}

func TestChatSupport_RequiresQueryAndQuestion(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), NewLibrary(writeMaterial(t)))

	_, err := svc.ChatSupport(context.Background(), backend.ChatRequest{Topic: "x"})
	var svcErr *backend.ServiceError
	if !errors.As(err, &svcErr) || svcErr.Status != 400 {
		t.Fatalf("expected 400 ServiceError, got %v", err)
	}
}

func TestIsAptitudeTopic(t *testing.T) {
	cases := []struct {
		topic string
		want  bool
	}{
		{"simplification_basics", true},
		{"Time_and_Work", true},
		{"sangam_literature", false},
		{"HISTORY", false},
	}
	for _, tc := range cases {
		if got := isAptitudeTopic(tc.topic); got != tc.want {
			t.Fatalf("isAptitudeTopic(%q) = %v, want %v", tc.topic, got, tc.want)
		}
	}
}
