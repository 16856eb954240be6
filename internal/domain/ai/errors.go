package ai

import "errors"

var (
	// ErrUpstream covers network failures, non-2xx provider responses,
	// timeouts, and empty completions. Safe for the caller to retry.
	ErrUpstream = errors.New("upstream AI provider failure")

	// ErrRateLimited indicates the provider or the local admission gate
	// rejected the request due to rate limits.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrOutputTruncated indicates the completion hit the output token limit.
	ErrOutputTruncated = errors.New("AI output truncated due to token limit")

	// ErrMalformedResponse indicates the model returned content that could not
	// be parsed into the expected schema, even after repair. Retrying the
	// identical prompt is likely to reproduce the same shape, so callers must
	// not retry automatically.
	ErrMalformedResponse = errors.New("malformed AI response")
)
