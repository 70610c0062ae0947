// Package llm abstracts the language models that back local question
// generation and the hint chat. The original service ran on Gemini;
// OpenAI and Anthropic are supported as drop-in alternatives.
package llm

import "context"

// Provider is a text-completion backend. The generation layer extracts
// and validates JSON out of the returned text itself, because models
// asked for "a single JSON array" still decorate it with prose or
// markdown fences often enough.
type Provider interface {
	// Complete sends one prompt and returns the model's text.
	Complete(ctx context.Context, req Request) (string, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request is a single-turn completion request.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user-turn content.
	Prompt string

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means provider default.
	Temperature float64
}
