package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Retry defaults for rate-limited generation calls.
const (
	DefaultMaxAttempts = 3
	DefaultRetryBase   = time.Second
)

// Client wraps an LLMBackend with request spacing and bounded retries for
// rate-limit responses. Other failures are returned immediately.
type Client struct {
	backend     LLMBackend
	maxAttempts int
	retryBase   time.Duration
	minInterval time.Duration
	log         *slog.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	mu          sync.Mutex
	lastRequest time.Time
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithMaxAttempts sets the total attempts made for a rate-limited call.
func WithMaxAttempts(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithRetryBase sets the first retry delay; each later delay doubles.
func WithRetryBase(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.retryBase = d
		}
	}
}

// WithMinInterval sets the minimum spacing between outbound requests.
func WithMinInterval(d time.Duration) ClientOption {
	return func(c *Client) {
		c.minInterval = d
	}
}

// WithClientLogger sets the logger.
func WithClientLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithClock replaces the time source and sleeper, for tests.
func WithClock(now func() time.Time, sleep func(context.Context, time.Duration) error) ClientOption {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// NewClient creates a Client around backend.
func NewClient(backend LLMBackend, opts ...ClientOption) *Client {
	c := &Client{
		backend:     backend,
		maxAttempts: DefaultMaxAttempts,
		retryBase:   DefaultRetryBase,
		log:         slog.Default(),
		now:         time.Now,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the wrapped backend's name.
func (c *Client) Name() string {
	return c.backend.Name()
}

// Generate calls the backend, waiting out the minimum interval first and
// retrying ErrRateLimited with exponential backoff.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	delay := c.retryBase
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := c.throttle(ctx); err != nil {
			return GenerateResponse{}, err
		}

		resp, err := c.backend.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !errors.Is(err, ErrRateLimited) {
			return GenerateResponse{}, err
		}
		lastErr = err

		if attempt == c.maxAttempts {
			break
		}
		c.log.Warn("llm rate limited, backing off",
			"backend", c.backend.Name(),
			"attempt", attempt,
			"delay", delay,
		)
		if err := c.sleep(ctx, delay); err != nil {
			return GenerateResponse{}, err
		}
		delay *= 2
	}
	return GenerateResponse{}, fmt.Errorf("giving up after %d attempts: %w", c.maxAttempts, lastErr)
}

// throttle enforces minInterval between requests and stamps lastRequest.
func (c *Client) throttle(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.minInterval > 0 && !c.lastRequest.IsZero() {
		if wait := c.minInterval - c.now().Sub(c.lastRequest); wait > 0 {
			if err := c.sleep(ctx, wait); err != nil {
				return err
			}
		}
	}
	c.lastRequest = c.now()
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
