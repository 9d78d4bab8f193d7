// Package report produces long-form valuation reports with an LLM, falling
// back to deterministic templates whenever generation is unavailable.
package report

import (
	"context"
	"errors"
)

// FormatJSON is the format string for requesting JSON mode from LLM backends.
const FormatJSON = "json"

// ErrRateLimited is wrapped by backends when the provider answers 429.
var ErrRateLimited = errors.New("rate limited")

// ErrNotConfigured is returned by backends missing their credentials.
var ErrNotConfigured = errors.New("llm backend not configured")

// GenerateRequest defines the input for an LLM generation call.
type GenerateRequest struct {
	Prompt      string
	SystemMsg   string
	Format      string // FormatJSON for JSON mode
	Temperature float64
	MaxTokens   int
}

// TokenUsage tracks LLM token consumption.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Content string
	Model   string
	Usage   TokenUsage
}

// LLMBackend defines the interface for LLM text generation.
type LLMBackend interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Name() string
}
