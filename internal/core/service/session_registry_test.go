package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/99minutos/wms-console/internal/core/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestRegistry() (*SessionRegistry, *managerFixture, *fakeClock) {
	f := newManagerFixture()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	cfg := testManagerConfig(f)
	cfg.Now = clock.Now
	return NewSessionRegistry(cfg), f, clock
}

func TestSessionRegistry_CreateGetClose(t *testing.T) {
	reg, f, _ := newTestRegistry()

	m := reg.Create()
	if m.ID() == "" {
		t.Fatalf("expected a session id")
	}
	got, err := reg.Get(m.ID())
	if err != nil || got != m {
		t.Fatalf("Get returned %v, %v", got, err)
	}

	loginAs(t, m, "admin")
	if err := reg.Close(context.Background(), m.ID()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if m.Snapshot().Authenticated() {
		t.Fatalf("closed session must be logged out")
	}
	if _, err := reg.Get(m.ID()); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := reg.Close(context.Background(), m.ID()); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("double close: expected ErrSessionNotFound, got %v", err)
	}

	kinds := f.audit.kinds()
	if kinds[len(kinds)-1] != domain.EventSessionClosed {
		t.Fatalf("expected session_closed audit last, got %v", kinds)
	}
}

func TestSessionRegistry_InstancesAreIndependent(t *testing.T) {
	reg, _, _ := newTestRegistry()

	a := reg.Create()
	b := reg.Create()
	if a.ID() == b.ID() {
		t.Fatalf("session ids must be unique")
	}

	loginAs(t, a, "admin")
	if b.Snapshot().Authenticated() {
		t.Fatalf("login on one instance leaked into another")
	}
}

func TestSessionRegistry_Sweep(t *testing.T) {
	reg, _, clock := newTestRegistry()

	stale := reg.Create()
	clock.Advance(20 * time.Minute)
	fresh := reg.Create()

	if n := reg.Sweep(context.Background(), 15*time.Minute); n != 1 {
		t.Fatalf("expected 1 swept session, got %d", n)
	}
	if _, err := reg.Get(stale.ID()); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("stale session survived the sweep")
	}
	if _, err := reg.Get(fresh.ID()); err != nil {
		t.Fatalf("fresh session was swept: %v", err)
	}
}

func TestSessionRegistry_ExpireKeepsSessionTouchedAfterSelection(t *testing.T) {
	reg, f, clock := newTestRegistry()

	m := reg.Create()
	clock.Advance(20 * time.Minute)
	cutoff := clock.Now().Add(-15 * time.Minute)

	// Activity lands between selection and close.
	loginAs(t, m, "staff")

	if reg.expire(context.Background(), m.ID(), cutoff) {
		t.Fatalf("a session that changed after selection must not be expired")
	}
	if _, err := reg.Get(m.ID()); err != nil {
		t.Fatalf("busy session was removed: %v", err)
	}
	if !m.Snapshot().Authenticated() {
		t.Fatalf("busy session was logged out")
	}
	for _, k := range f.audit.kinds() {
		if k == domain.EventSessionClosed {
			t.Fatalf("busy session must not be audited as closed")
		}
	}

	clock.Advance(20 * time.Minute)
	if !reg.expire(context.Background(), m.ID(), clock.Now().Add(-15*time.Minute)) {
		t.Fatalf("idle session was not expired")
	}
	if m.Snapshot().Authenticated() {
		t.Fatalf("expired session must be logged out")
	}
}

func TestSessionRegistry_RunStopsOnCancel(t *testing.T) {
	reg, _, _ := newTestRegistry()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		reg.Run(ctx, time.Millisecond, time.Hour)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
}
