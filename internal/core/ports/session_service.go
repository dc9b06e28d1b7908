package ports

import (
	"context"

	"github.com/99minutos/wms-console/internal/core/domain"
)

// SessionOverview is a session snapshot with its derived navigation surface.
type SessionOverview struct {
	Session  domain.Session
	NavItems []domain.NavItem
}

// SessionService is the transport-facing facade over all client instances.
type SessionService interface {
	Open(ctx context.Context) (*SessionOverview, error)
	Close(ctx context.Context, sessionID string) error
	Overview(ctx context.Context, sessionID string) (*SessionOverview, error)
	Login(ctx context.Context, sessionID string, creds domain.Credentials) (*SessionOverview, error)
	Register(ctx context.Context, sessionID string, profile domain.RegistrationProfile) (*SessionOverview, error)
	Logout(ctx context.Context, sessionID string) (*SessionOverview, error)
	// Navigate changes the active view. A forbidden view leaves the active
	// view untouched and yields the denial marker, not an error.
	Navigate(ctx context.Context, sessionID string, view domain.ViewID) (*domain.View, error)
	RenderView(ctx context.Context, sessionID string, view domain.ViewID) (*domain.View, error)
	Summary(ctx context.Context, sessionID string) (*domain.SummaryState, error)
}
