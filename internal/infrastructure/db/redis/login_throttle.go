package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle keeps failed login counters in Redis.
// Key format: login_failures:<username>, expiring window after the latest failure.
type LoginThrottle struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewLoginThrottle locks a username once limit failures land within window.
func NewLoginThrottle(client *redis.Client, limit int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{client: client, limit: limit, window: window}
}

// Locked reports whether username has reached the failure limit.
func (t *LoginThrottle) Locked(ctx context.Context, username string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(username)).Int()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("login throttle check: %w", err)
	}
	return n >= t.limit, nil
}

// RecordFailure bumps the counter and restarts the window.
func (t *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	key := t.key(username)
	_, err := t.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, t.window)
		return nil
	})
	if err != nil {
		return fmt.Errorf("login throttle record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	if err := t.client.Del(ctx, t.key(username)).Err(); err != nil {
		return fmt.Errorf("login throttle reset: %w", err)
	}
	return nil
}

func (t *LoginThrottle) key(username string) string {
	return "login_failures:" + strings.ToLower(strings.TrimSpace(username))
}
