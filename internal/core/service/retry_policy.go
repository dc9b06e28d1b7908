package service

import "time"

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = time.Second
)

// RetryPolicy bounds the summary endpoint retries. Attempts are 0-based.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryPolicy allows 3 attempts with 1s, 2s waits between them.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: defaultMaxAttempts, BaseDelay: defaultBaseDelay}
}

// Backoff returns the wait after a rate-limited attempt: BaseDelay * 2^attempt.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	return p.BaseDelay * time.Duration(1<<uint(attempt))
}

// CanRetry reports whether another attempt may follow attempt.
func (p RetryPolicy) CanRetry(attempt int) bool {
	return attempt+1 < p.MaxAttempts
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = defaultMaxAttempts
	}
	if p.BaseDelay < 0 {
		p.BaseDelay = 0
	}
	return p
}
