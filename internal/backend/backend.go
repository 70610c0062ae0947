// Package backend defines the contract the client consumes from the
// question service: the structure listing, test generation, and the
// hint chat. Implementations are the HTTP client in this package and
// the in-process generator in internal/generate.
package backend

import (
	"context"

	"github.com/arulmurugan/vidhai/internal/exam"
)

// Test types accepted by the generation endpoint.
const (
	TestTypeTopicWise = "topic-wise"
	TestTypeMock      = "mock"
)

// GenerateRequest is the body of one generation call.
type GenerateRequest struct {
	Subject      string `json:"subject"`
	Unit         string `json:"unit"`
	Topic        string `json:"topic"`
	Language     string `json:"language"`
	NumQuestions int    `json:"num_questions"`
	TestType     string `json:"test_type"`
}

// ChatRequest is one hint-chat exchange, scoped to the question the
// user is currently looking at.
type ChatRequest struct {
	UserQuery    string `json:"user_query"`
	QuestionText string `json:"question_text"`
	Topic        string `json:"topic"`
}

// Service is the collaborator the client talks to. Every call may
// suspend on the network; failures carry the service's reason text.
type Service interface {
	// Structure fetches the subject → unit → topics tree.
	Structure(ctx context.Context) (exam.Structure, error)

	// GenerateTest requests a question set. An empty result is returned
	// as-is; callers decide whether that is fatal (single-topic tests)
	// or a warning (one subtask of a mock pipeline).
	GenerateTest(ctx context.Context, req GenerateRequest) ([]exam.Question, error)

	// ChatSupport sends one hint request and returns the reply text.
	ChatSupport(ctx context.Context, req ChatRequest) (string, error)
}
