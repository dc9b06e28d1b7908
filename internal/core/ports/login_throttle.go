package ports

import "context"

// LoginThrottle counts failed logins per username. Backed by Redis it is
// shared by every API instance.
type LoginThrottle interface {
	Locked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
