package service

import (
	"context"
	"errors"

	"github.com/99minutos/wms-console/internal/core/domain"
	"github.com/99minutos/wms-console/internal/core/ports"
)

// SessionService routes transport calls to the right client instance.
type SessionService struct {
	registry *SessionRegistry
	router   *ViewRouter
}

func NewSessionService(registry *SessionRegistry, router *ViewRouter) *SessionService {
	return &SessionService{registry: registry, router: router}
}

var _ ports.SessionService = (*SessionService)(nil)

func (s *SessionService) Open(_ context.Context) (*ports.SessionOverview, error) {
	return overview(s.registry.Create().Snapshot()), nil
}

func (s *SessionService) Close(ctx context.Context, sessionID string) error {
	return s.registry.Close(ctx, sessionID)
}

func (s *SessionService) Overview(_ context.Context, sessionID string) (*ports.SessionOverview, error) {
	m, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return overview(m.Snapshot()), nil
}

func (s *SessionService) Login(ctx context.Context, sessionID string, creds domain.Credentials) (*ports.SessionOverview, error) {
	m, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	snap, err := m.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return overview(snap), nil
}

func (s *SessionService) Register(ctx context.Context, sessionID string, profile domain.RegistrationProfile) (*ports.SessionOverview, error) {
	m, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	snap, err := m.Register(ctx, profile)
	if err != nil {
		return nil, err
	}
	return overview(snap), nil
}

func (s *SessionService) Logout(ctx context.Context, sessionID string) (*ports.SessionOverview, error) {
	m, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return overview(m.Logout(ctx)), nil
}

// Navigate activates view and renders it. A forbidden view renders the denial
// marker while the previously active view stays active.
func (s *SessionService) Navigate(_ context.Context, sessionID string, view domain.ViewID) (*domain.View, error) {
	m, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	snap, err := m.Navigate(view)
	switch {
	case err == nil:
		return s.router.Render(snap.Role, snap.ActiveView, snap.Summary), nil
	case errors.Is(err, domain.ErrUnauthorizedView):
		return s.router.Render(snap.Role, view, snap.Summary), nil
	default:
		return nil, err
	}
}

// RenderView renders view for the session's current role without changing
// the active view. An empty view means the active one.
func (s *SessionService) RenderView(_ context.Context, sessionID string, view domain.ViewID) (*domain.View, error) {
	m, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	snap := m.Snapshot()
	if view == "" {
		view = snap.ActiveView
	}
	return s.router.Render(snap.Role, view, snap.Summary), nil
}

func (s *SessionService) Summary(_ context.Context, sessionID string) (*domain.SummaryState, error) {
	m, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	snap := m.Snapshot()
	if snap.ActiveView != domain.ViewDashboard {
		return &domain.SummaryState{Status: domain.SummaryIdle}, nil
	}
	return &snap.Summary, nil
}

func overview(snap domain.Session) *ports.SessionOverview {
	return &ports.SessionOverview{Session: snap, NavItems: domain.VisibleNavItems(snap.Role)}
}
