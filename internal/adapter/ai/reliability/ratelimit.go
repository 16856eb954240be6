package reliability

import (
	"context"

	"golang.org/x/time/rate"
)

const (
	// defaultRequestsPerMinute stays under the Gemini free-tier quota with
	// headroom for concurrent month-chunk generation.
	defaultRequestsPerMinute = 30
	defaultBurst             = 5
)

// RateLimiter is a token-bucket admission gate bounding in-flight requests to
// the model provider across all inbound HTTP requests.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing requestsPerMinute sustained calls
// with the given burst. Non-positive values fall back to defaults.
func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = defaultRequestsPerMinute
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), burst),
	}
}

// Wait blocks until a token is available or the context is done.
func (l *RateLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
