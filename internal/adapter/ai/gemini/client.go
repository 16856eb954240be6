// Package gemini implements the survey classifier and roadmap planner on top
// of the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/personapath/api/internal/adapter/ai/reliability"
	"github.com/personapath/api/internal/domain/ai"
)

const (
	defaultModel = "gemini-2.5-flash"

	// Structured output wants determinism; a little temperature keeps the
	// plan content from being identical across users with the same archetype.
	defaultTemperature = float32(0.2)

	defaultMaxOutputTokens = int32(65536)
)

// Config holds configuration for the Gemini provider. Immutable after
// construction.
type Config struct {
	APIKey          string
	Model           string // default: gemini-2.5-flash
	MaxOutputTokens int32  // default: 65536
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("gemini API key is required")
	}
	return nil
}

// Provider issues text-generation requests to Gemini. It implements
// ai.Generator plus the survey.Classifier and roadmap.Planner domain
// interfaces.
type Provider struct {
	client          *genai.Client
	model           string
	maxOutputTokens int32

	rateLimiter *reliability.RateLimiter
	retryer     *reliability.Retryer
}

// NewProvider creates a new Gemini provider.
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := config.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxOutputTokens
	}

	return &Provider{
		client:          client,
		model:           model,
		maxOutputTokens: maxTokens,
		rateLimiter:     reliability.NewRateLimiter(0, 0),
		retryer:         reliability.NewRetryer(reliability.DefaultRetryConfig()),
	}, nil
}

// Close releases resources held by the provider.
func (p *Provider) Close() error {
	// genai.Client doesn't require explicit close
	return nil
}

// Generate sends one prompt and returns the raw completion text. Transient
// transport failures are retried with backoff; parse-level failures never
// reach this layer.
func (p *Provider) Generate(ctx context.Context, req ai.Request) (string, *ai.TokenUsage, error) {
	var text string
	var usage *ai.TokenUsage

	err := p.retryer.Do(ctx, func() error {
		var innerErr error
		text, usage, innerErr = p.generateContent(ctx, req.System, req.Prompt)
		return innerErr
	})
	if err != nil {
		return "", nil, mapProviderError(err)
	}
	return text, usage, nil
}

// generateContent calls the Gemini API once, behind the rate limiter.
func (p *Provider) generateContent(ctx context.Context, systemPrompt, userPrompt string) (string, *ai.TokenUsage, error) {
	if err := p.rateLimiter.Wait(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("%w: %v", ai.ErrRateLimited, err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(defaultTemperature),
		MaxOutputTokens:  p.maxOutputTokens,
		ResponseMIMEType: "application/json",
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		// Disable thinking: roadmap windows are large and the thinking budget
		// eats into output tokens needed for a month of daily cards.
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(int32(0)),
		},
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(userPrompt), config)
	if err != nil {
		slog.WarnContext(ctx, "gemini API call failed",
			"model", p.model,
			"error", err,
		)
		if reliability.IsRetryable(err) {
			return "", nil, &reliability.RetryableError{Err: err}
		}
		return "", nil, err
	}

	if len(result.Candidates) > 0 {
		candidate := result.Candidates[0]
		switch candidate.FinishReason {
		case genai.FinishReasonMaxTokens:
			slog.WarnContext(ctx, "gemini output truncated due to token limit",
				"model", p.model,
				"finish_reason", candidate.FinishReason,
				"finish_message", candidate.FinishMessage,
			)
			return "", nil, fmt.Errorf("%w: narrow the generation window", ai.ErrOutputTruncated)
		case genai.FinishReasonSafety, genai.FinishReasonRecitation, genai.FinishReasonBlocklist, genai.FinishReasonProhibitedContent, genai.FinishReasonSPII:
			slog.WarnContext(ctx, "gemini output blocked by safety filters",
				"model", p.model,
				"finish_reason", candidate.FinishReason,
			)
			return "", nil, fmt.Errorf("%w: content blocked (%s)", ai.ErrUpstream, candidate.FinishReason)
		}
	}

	text := result.Text()
	if text == "" {
		return "", nil, fmt.Errorf("%w: empty completion", ai.ErrUpstream)
	}

	var usage *ai.TokenUsage
	if result.UsageMetadata != nil {
		usage = &ai.TokenUsage{
			CandidatesTokens: result.UsageMetadata.CandidatesTokenCount,
			Model:            p.model,
			PromptTokens:     result.UsageMetadata.PromptTokenCount,
			TotalTokens:      result.UsageMetadata.TotalTokenCount,
		}
	}

	return text, usage, nil
}

// mapProviderError folds transport errors into the gateway taxonomy after the
// retry budget is spent. Errors already carrying a taxonomy sentinel pass
// through unchanged.
func mapProviderError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ai.ErrUpstream),
		errors.Is(err, ai.ErrRateLimited),
		errors.Is(err, ai.ErrOutputTruncated):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: timeout: %v", ai.ErrUpstream, err)
	case errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w: %v", ai.ErrUpstream, err)
	}
}

// truncateForLog truncates a string for logging purposes.
func truncateForLog(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
