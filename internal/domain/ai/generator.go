package ai

import "context"

// Request is a single text-generation request to the model provider.
type Request struct {
	// System is the system instruction establishing the response contract.
	System string
	// Prompt is the user-facing prompt body.
	Prompt string
}

// TokenUsage holds token accounting metadata returned by the provider.
type TokenUsage struct {
	CandidatesTokens int32
	Model            string
	PromptTokens     int32
	TotalTokens      int32
}

// Generator issues text-generation requests to an external model provider
// and returns the raw completion text.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, *TokenUsage, error)
}
