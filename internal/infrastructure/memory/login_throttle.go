package memory

import (
	"context"
	"strings"
	"sync"
	"time"
)

type failureCounter struct {
	count   int
	expires time.Time
}

// LoginThrottle is the in-process throttle used when Redis is not configured.
// Counters are per process, so each API instance locks independently.
type LoginThrottle struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	counters map[string]failureCounter
	now      func() time.Time
}

func NewLoginThrottle(limit int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{
		limit:    limit,
		window:   window,
		counters: make(map[string]failureCounter),
		now:      time.Now,
	}
}

func (t *LoginThrottle) Locked(_ context.Context, username string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	c, ok := t.liveLocked(normalizeUsername(username))
	return ok && c.count >= t.limit, nil
}

func (t *LoginThrottle) RecordFailure(_ context.Context, username string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := normalizeUsername(username)
	c, _ := t.liveLocked(key)
	c.count++
	c.expires = t.now().Add(t.window)
	t.counters[key] = c
	return nil
}

func (t *LoginThrottle) Reset(_ context.Context, username string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.counters, normalizeUsername(username))
	return nil
}

// liveLocked returns the counter for key, dropping it once expired.
func (t *LoginThrottle) liveLocked(key string) (failureCounter, bool) {
	c, ok := t.counters[key]
	if !ok {
		return failureCounter{}, false
	}
	if !t.now().Before(c.expires) {
		delete(t.counters, key)
		return failureCounter{}, false
	}
	return c, true
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
