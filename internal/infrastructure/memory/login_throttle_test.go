package memory

import (
	"context"
	"testing"
	"time"
)

func TestLoginThrottle_LocksAtLimit(t *testing.T) {
	throttle := NewLoginThrottle(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := throttle.RecordFailure(ctx, "admin"); err != nil {
			t.Fatalf("RecordFailure: %v", err)
		}
	}
	if locked, _ := throttle.Locked(ctx, "admin"); locked {
		t.Fatalf("locked before reaching the limit")
	}

	_ = throttle.RecordFailure(ctx, " ADMIN ")
	if locked, _ := throttle.Locked(ctx, "admin"); !locked {
		t.Fatalf("expected admin locked after 3 failures")
	}
	if locked, _ := throttle.Locked(ctx, "staff"); locked {
		t.Fatalf("other usernames must not be affected")
	}
}

func TestLoginThrottle_WindowExpires(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	throttle := NewLoginThrottle(1, time.Minute)
	throttle.now = func() time.Time { return now }
	ctx := context.Background()

	_ = throttle.RecordFailure(ctx, "manager")
	if locked, _ := throttle.Locked(ctx, "manager"); !locked {
		t.Fatalf("expected manager locked")
	}

	now = now.Add(2 * time.Minute)
	if locked, _ := throttle.Locked(ctx, "manager"); locked {
		t.Fatalf("lock must lapse after the window")
	}
	if len(throttle.counters) != 0 {
		t.Fatalf("expired counter not dropped: %v", throttle.counters)
	}
}

func TestLoginThrottle_Reset(t *testing.T) {
	throttle := NewLoginThrottle(1, time.Minute)
	ctx := context.Background()

	_ = throttle.RecordFailure(ctx, "staff")
	if err := throttle.Reset(ctx, "staff"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if locked, _ := throttle.Locked(ctx, "staff"); locked {
		t.Fatalf("reset must clear the lock")
	}
}
