package reliability

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"
)

// RetryConfig holds configuration for retry logic.
type RetryConfig struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64 // Backoff multiplier (default: 2.0)
	JitterFactor   float64 // Random jitter factor 0-1 (default: 0.1)
}

// DefaultRetryConfig bounds generation retries to a small fixed count.
// Retrying resends the full prompt, never a partial resume, so idempotence is
// preserved by construction.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: 2 * time.Second,
		MaxBackoff:     30 * time.Second,
		Multiplier:     2.0,
		JitterFactor:   0.1,
	}
}

// RetryableError marks an error as transient so the retryer resends.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// IsRetryable checks if an error should trigger a retry. Parse and validation
// failures never qualify: the same prompt would reproduce the same shape.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return true
	}

	// The caller's deadline is spent either way.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"quota exceeded",
		"too many requests",
		"service unavailable",
		"internal server error",
		"timeout",
		"connection reset",
		"connection refused",
		"temporary failure",
	}
	for _, pattern := range retryablePatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}

// Retryer performs operations with bounded exponential-backoff retry.
type Retryer struct {
	config RetryConfig
}

// NewRetryer creates a new retryer with the given configuration.
func NewRetryer(config RetryConfig) *Retryer {
	if config.Multiplier == 0 {
		config.Multiplier = 2.0
	}
	if config.JitterFactor == 0 {
		config.JitterFactor = 0.1
	}
	return &Retryer{config: config}
}

// Do executes the operation, resending on retryable failures until the
// attempt budget is spent.
func (r *Retryer) Do(ctx context.Context, operation func() error) error {
	var lastErr error

	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		if !IsRetryable(err) {
			return err
		}
		if attempt == r.config.MaxAttempts {
			break
		}

		backoff := r.calculateBackoff(attempt)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return lastErr
}

// calculateBackoff calculates the backoff duration with exponential increase
// and jitter.
func (r *Retryer) calculateBackoff(attempt int) time.Duration {
	backoff := float64(r.config.InitialBackoff) * math.Pow(r.config.Multiplier, float64(attempt-1))

	if backoff > float64(r.config.MaxBackoff) {
		backoff = float64(r.config.MaxBackoff)
	}

	jitter := (rand.Float64()*2 - 1) * r.config.JitterFactor
	backoff *= (1 + jitter)

	return time.Duration(backoff)
}
