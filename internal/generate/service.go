package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/arulmurugan/vidhai/internal/backend"
	"github.com/arulmurugan/vidhai/internal/exam"
	"github.com/arulmurugan/vidhai/internal/llm"
)

// aptitudeKeywords mark topics that get the simple-MCQ prompt. Complex
// formats like match-the-following read badly for numeric problems.
var aptitudeKeywords = []string{
	"aptitude", "mental ability", "math", "simplification", "percentage",
	"h.c.f", "l.c.m", "ratio", "proportion", "interest", "time and work",
	"area", "volume", "logical reasoning",
}

func isAptitudeTopic(topic string) bool {
	lower := strings.ReplaceAll(strings.ToLower(topic), "_", " ")
	for _, kw := range aptitudeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// attemptPause is the wait between the primary and fallback attempts.
var attemptPause = 1500 * time.Millisecond

// completionTokens bounds a single generation call. Question sets with
// explanations run long.
const completionTokens = 8192

// Service produces tests and hints locally through an LLM provider,
// with study material from a Library.
type Service struct {
	provider llm.Provider
	library  *Library
}

// NewService creates an in-process question service.
func NewService(provider llm.Provider, library *Library) *Service {
	return &Service{provider: provider, library: library}
}

var _ backend.Service = (*Service)(nil)

func (s *Service) Structure(ctx context.Context) (exam.Structure, error) {
	return s.library.Structure()
}

// GenerateTest produces a shuffled question set for one topic. Topic-wise
// tests with available study material split 70/30 between context-grounded
// and general-knowledge questions; mock subtasks draw entirely from
// context when it exists.
func (s *Service) GenerateTest(ctx context.Context, req backend.GenerateRequest) ([]exam.Question, error) {
	contextText, haveContext := s.library.Context(req.Subject, req.Unit, req.Topic)
	if !haveContext {
		contextText = noContextText
	}

	topicDisplay := req.Topic
	if haveContext {
		topicDisplay = fmt.Sprintf("%s (from %s)", req.Topic, req.Unit)
	}

	aptitude := isAptitudeTopic(req.Topic)

	var all []exam.Question
	if req.TestType == backend.TestTypeTopicWise && haveContext {
		fromContext := int(math.Ceil(float64(req.NumQuestions) * 0.7))
		fromGeneral := req.NumQuestions - fromContext

		qs, err := s.generateForTopic(ctx, fromContext, req.Language, topicDisplay, contextText, aptitude, req.Topic)
		if err != nil {
			return nil, err
		}
		all = append(all, qs...)

		qs, err = s.generateForTopic(ctx, fromGeneral, req.Language, req.Topic, noContextText, aptitude, req.Topic)
		if err != nil {
			return nil, err
		}
		all = append(all, qs...)
	} else {
		qs, err := s.generateForTopic(ctx, req.NumQuestions, req.Language, topicDisplay, contextText, aptitude, req.Topic)
		if err != nil {
			return nil, err
		}
		all = qs
	}

	rand.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	if len(all) == 0 {
		return nil, &backend.ServiceError{
			Status: http.StatusInternalServerError,
			Reason: fmt.Sprintf("The AI failed to generate questions for the topic '%s' after multiple attempts. Please try again.", req.Topic),
		}
	}
	return all, nil
}

// generateForTopic runs up to two prompt attempts for one topic: the
// standard (or aptitude) prompt first, then the simplified fallback.
// Model failures yield an empty set, not an error; only context
// cancellation aborts.
func (s *Service) generateForTopic(ctx context.Context, n int, language, topic, contextText string, aptitude bool, tag string) ([]exam.Question, error) {
	if n <= 0 {
		return nil, nil
	}

	for attempt := range 2 {
		var prompt string
		switch {
		case attempt > 0:
			prompt = buildFallbackPrompt(n, language, topic, contextText)
		case aptitude:
			prompt = buildSimpleMCQPrompt(n, language, topic, contextText)
		default:
			prompt = buildStandardPrompt(n, language, topic, contextText)
		}

		qs, err := s.complete(ctx, prompt, tag)
		if err == nil && len(qs) > 0 {
			return qs, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt == 1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(attemptPause):
		}
	}

	return nil, nil
}

func (s *Service) complete(ctx context.Context, prompt, tag string) ([]exam.Question, error) {
	text, err := s.provider.Complete(ctx, llm.Request{
		Prompt:    prompt,
		MaxTokens: completionTokens,
	})
	if err != nil {
		return nil, err
	}

	raw := []byte(extractJSONArray(text))
	if err := validateQuestionJSON(raw); err != nil {
		return nil, err
	}

	var qs []exam.Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, err
	}
	if err := exam.ValidateAll(qs); err != nil {
		return nil, err
	}

	// Tag every question with its base topic so the hint chat can scope
	// itself later.
	for i := range qs {
		qs[i].Topic = tag
	}
	return qs, nil
}

// ChatSupport answers one hint request in the VidhAI tutor persona.
func (s *Service) ChatSupport(ctx context.Context, req backend.ChatRequest) (string, error) {
	if req.UserQuery == "" || req.QuestionText == "" {
		return "", &backend.ServiceError{
			Status: http.StatusBadRequest,
			Reason: "Missing user_query or question_text",
		}
	}

	topic := req.Topic
	if topic == "" {
		topic = "General"
	}

	reply, err := s.provider.Complete(ctx, llm.Request{
		Prompt:    buildHintPrompt(req.UserQuery, req.QuestionText, topic),
		MaxTokens: 1024,
	})
	if err != nil {
		return "", &backend.ServiceError{
			Status: http.StatusInternalServerError,
			Reason: fmt.Sprintf("An error occurred while getting a hint: %v", err),
		}
	}
	return reply, nil
}
