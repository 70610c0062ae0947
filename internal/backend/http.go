package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arulmurugan/vidhai/internal/exam"
)

// API paths on the question service.
const (
	pathStructure = "/api/get-structure"
	pathGenerate  = "/api/generate-test"
	pathChat      = "/api/chat-support"
)

// HTTPService talks to a remote question service over its JSON API.
type HTTPService struct {
	baseURL string
	client  *http.Client
}

// NewHTTPService creates a client for the service at baseURL. The
// generous timeout covers LLM-backed generation calls.
func NewHTTPService(baseURL string) *HTTPService {
	return &HTTPService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Minute},
	}
}

var _ Service = (*HTTPService)(nil)

func (s *HTTPService) Structure(ctx context.Context) (exam.Structure, error) {
	var out exam.Structure
	if err := s.get(ctx, pathStructure, &out); err != nil {
		return nil, fmt.Errorf("fetch structure: %w", err)
	}
	return out, nil
}

func (s *HTTPService) GenerateTest(ctx context.Context, req GenerateRequest) ([]exam.Question, error) {
	var out []exam.Question
	if err := s.post(ctx, pathGenerate, req, &out); err != nil {
		return nil, fmt.Errorf("generate test: %w", err)
	}
	return out, nil
}

func (s *HTTPService) ChatSupport(ctx context.Context, req ChatRequest) (string, error) {
	var out struct {
		Reply string `json:"reply"`
	}
	if err := s.post(ctx, pathChat, req, &out); err != nil {
		return "", fmt.Errorf("chat support: %w", err)
	}
	return out.Reply, nil
}

func (s *HTTPService) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}
	return s.do(req, out)
}

func (s *HTTPService) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return s.do(req, out)
}

func (s *HTTPService) do(req *http.Request, out any) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError extracts the failure reason from a non-success response:
// JSON bodies are read as {"error": "..."}; anything else is surfaced
// as opaque text.
func decodeError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &ServiceError{Status: resp.StatusCode, Reason: resp.Status}
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
			return &ServiceError{Status: resp.StatusCode, Reason: payload.Error}
		}
	}

	reason := strings.TrimSpace(string(body))
	if reason == "" {
		reason = resp.Status
	}
	return &ServiceError{Status: resp.StatusCode, Reason: reason}
}
