// Package retry runs fallible operations with exponential backoff. It wraps
// avast/retry-go behind a small interface so callers can swap or mock it.
//
//	r := retry.New(retry.WithAttempts(5), retry.WithDelay(500*time.Millisecond))
//	err := r.Execute(ctx, func() error {
//	    return fetchPage(ctx, page)
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, the attempts run out, or
// the context is done.
type Retry interface {
	// Execute runs operation with the configured retry policy. The operation
	// must be safe to call more than once.
	Execute(ctx context.Context, operation func() error) error
}

// config holds the retry policy.
type config struct {
	attempts    uint             // total attempts, including the first
	delay       time.Duration    // base backoff delay
	maxDelay    time.Duration    // backoff ceiling
	lastErrOnly bool             // return only the last error instead of all of them
	retryIf     func(error) bool // decides whether an error is worth another attempt
}

// Option configures the retry policy.
type Option func(*config)

// retrier implements Retry on top of retry-go.
type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry with the given options applied over these defaults:
//
//   - attempts:    3
//   - delay:       1 second
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
//   - retryIf:     every error is retried
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		retryIf:     retry.IsRecoverable,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute runs operation immediately and, on failure, again after an
// exponentially growing delay.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.RetryIf(r.cfg.retryIf),
		retry.Context(ctx),
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the total number of attempts. Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base backoff delay. Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the backoff delay. Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly controls whether only the final error is returned, or
// all attempt errors joined together. Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf sets the predicate deciding whether an error is retried.
// Errors for which f returns false end the loop immediately.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}
