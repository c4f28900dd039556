// ABOUTME: Retry decorator for the Embedder and Generator collaborators
// ABOUTME: Adds exponential backoff with jitter plus client-side rate limiting
package llm

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultMaxRetries is the number of additional attempts after the first
	DefaultMaxRetries = 3
	// DefaultRetryDelay is the base delay doubled on each attempt
	DefaultRetryDelay = 2 * time.Second
	// DefaultRequestsPerSecond limits outbound API calls
	DefaultRequestsPerSecond = 2
)

// RetryingClient wraps an Embedder and Generator with retry and rate limiting.
// Retry policy lives here so the ranking logic stays a pure computation.
type RetryingClient struct {
	embedder   Embedder
	generator  Generator
	maxRetries int
	retryDelay time.Duration
	limiter    *rate.Limiter
}

// RetryOption configures a RetryingClient
type RetryOption func(*RetryingClient)

// WithMaxRetries sets the number of retries after the initial attempt
func WithMaxRetries(n int) RetryOption {
	return func(c *RetryingClient) {
		c.maxRetries = n
	}
}

// WithRetryDelay sets the base backoff delay
func WithRetryDelay(d time.Duration) RetryOption {
	return func(c *RetryingClient) {
		c.retryDelay = d
	}
}

// WithRateLimit sets the outbound requests-per-second limit
func WithRateLimit(rps float64) RetryOption {
	return func(c *RetryingClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewRetryingClient wraps the given collaborators with retry behavior.
// The embedder and generator may be the same underlying client.
func NewRetryingClient(embedder Embedder, generator Generator, opts ...RetryOption) *RetryingClient {
	c := &RetryingClient{
		embedder:   embedder,
		generator:  generator,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
		limiter:    rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EmbedBatch delegates to the wrapped embedder with retries
func (c *RetryingClient) EmbedBatch(texts []string) ([][]float64, error) {
	var vectors [][]float64
	err := c.withRetries("embedding", func() error {
		var callErr error
		vectors, callErr = c.embedder.EmbedBatch(texts)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return vectors, nil
}

// Generate delegates to the wrapped generator with retries
func (c *RetryingClient) Generate(systemInstruction, userPrompt string) (string, error) {
	var answer string
	err := c.withRetries("generation", func() error {
		var callErr error
		answer, callErr = c.generator.Generate(systemInstruction, userPrompt)
		return callErr
	})
	if err != nil {
		return "", err
	}
	return answer, nil
}

// withRetries runs call until it succeeds or attempts are exhausted
func (c *RetryingClient) withRetries(op string, call func() error) error {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff(c.retryDelay, attempt))
		}

		if err := c.limiter.Wait(context.Background()); err != nil {
			return fmt.Errorf("%s rate limiter: %w", op, err)
		}

		if err := call(); err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		return nil
	}

	return fmt.Errorf("%s failed after %d attempts: %w", op, c.maxRetries+1, lastErr)
}

// backoff returns exponential backoff with up to +/-25% jitter, capped at 30s.
// A non-positive base delay means no waiting between attempts.
func backoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if attempt > 30 {
		attempt = 30
	}
	delay := baseDelay * time.Duration(1<<uint(attempt))
	if delay <= 0 {
		return 0
	}
	if delay > 30*time.Second {
		delay = 30 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(delay)/2)) - delay/4
	return delay + jitter
}
