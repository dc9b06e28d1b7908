package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/wms-console/internal/core/domain"
	"github.com/99minutos/wms-console/internal/core/ports"
	"github.com/99minutos/wms-console/internal/pkg/metrics"
)

// ManagerConfig carries the collaborators shared by every SessionManager.
type ManagerConfig struct {
	Verifier  ports.CredentialVerifier
	Fetcher   ports.SummaryFetcher
	Scheduler ports.SummaryScheduler
	Router    *ViewRouter
	// Audit is optional; audit failures never fail a transition.
	Audit ports.SessionEventRepository
	// Throttle is optional. Throttle errors let the attempt through.
	Throttle ports.LoginThrottle
	// LoginLatency is the simulated authentication delay; zero disables it.
	LoginLatency time.Duration
	// BaseContext parents every summary fetch. Defaults to context.Background().
	BaseContext context.Context
	Sleep       SleepFunc
	Now         func() time.Time
	Logger      zerolog.Logger
}

func (c ManagerConfig) withDefaults() ManagerConfig {
	if c.LoginLatency < 0 {
		c.LoginLatency = 0
	}
	if c.BaseContext == nil {
		c.BaseContext = context.Background()
	}
	if c.Sleep == nil {
		c.Sleep = sleepContext
	}
	if c.Now == nil {
		c.Now = func() time.Time { return time.Now().UTC() }
	}
	return c
}

// SessionManager owns the authentication state of one client instance.
//
// States: unauthenticated → authenticating → authenticated → unauthenticated.
// All mutation happens under mu; collaborators are never called with mu held.
type SessionManager struct {
	cfg ManagerConfig

	mu      sync.Mutex
	session domain.Session
	// authGen invalidates pending logins; bumped by every logout.
	authGen     uint64
	cancelLogin context.CancelFunc
	// viewGen invalidates in-flight summary fetches; bumped by every view change.
	viewGen    uint64
	cancelView context.CancelFunc
}

// NewSessionManager returns an unauthenticated session sitting on the login view.
func NewSessionManager(id string, cfg ManagerConfig) *SessionManager {
	cfg = cfg.withDefaults()
	now := cfg.Now()
	return &SessionManager{
		cfg: cfg,
		session: domain.Session{
			ID:         id,
			State:      domain.StateUnauthenticated,
			ActiveView: domain.ViewLogin,
			Summary:    domain.SummaryState{Status: domain.SummaryIdle},
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
}

// ID returns the client instance id.
func (m *SessionManager) ID() string {
	return m.session.ID
}

// Snapshot returns a copy of the current session.
func (m *SessionManager) Snapshot() domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// VisibleNavItems derives the navigation surface for the current role.
func (m *SessionManager) VisibleNavItems() []domain.NavItem {
	return domain.VisibleNavItems(m.Snapshot().Role)
}

// Login verifies creds and, after the simulated latency, authenticates the
// session with the verified role. A mismatch leaves the session untouched.
func (m *SessionManager) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	if err := m.requireUnauthenticated(); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return m.Snapshot(), err
	}

	if m.throttled(ctx, creds.Username) {
		metrics.LoginAttemptsTotal.WithLabelValues("throttled").Inc()
		m.cfg.Logger.Warn().Str("session_id", m.ID()).Str("username", creds.Username).Msg("login throttled")
		return m.Snapshot(), domain.ErrTooManyAttempts
	}

	role, err := m.cfg.Verifier.Verify(ctx, creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
			m.recordFailure(ctx, creds.Username)
			m.audit(ctx, domain.EventLoginFailed, domain.RoleNone, creds.Username)
			m.cfg.Logger.Info().Str("session_id", m.ID()).Str("username", creds.Username).Msg("login rejected")
			return m.Snapshot(), domain.ErrInvalidCredentials
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return m.Snapshot(), fmt.Errorf("verify credentials: %w", err)
	}

	snap, err := m.authenticate(ctx, role)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(failureLabel(err)).Inc()
		return snap, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	m.resetFailures(ctx, creds.Username)
	m.audit(ctx, domain.EventLoginSucceeded, role, creds.Username)
	m.cfg.Logger.Info().Str("session_id", m.ID()).Str("role", string(role)).Msg("session authenticated")
	return snap, nil
}

// Register grants access with profile.Position as the role once every field
// is filled in. Nothing is persisted.
func (m *SessionManager) Register(ctx context.Context, profile domain.RegistrationProfile) (domain.Session, error) {
	if err := m.requireUnauthenticated(); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return m.Snapshot(), err
	}

	role, err := validateProfile(profile)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("incomplete").Inc()
		return m.Snapshot(), err
	}

	snap, err := m.authenticate(ctx, role)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(failureLabel(err)).Inc()
		return snap, err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	m.audit(ctx, domain.EventRegistered, role, "")
	m.cfg.Logger.Info().Str("session_id", m.ID()).Str("role", string(role)).Msg("session registered")
	return snap, nil
}

// Logout unconditionally returns the session to the login view. Any pending
// login or in-flight summary fetch is cancelled.
func (m *SessionManager) Logout(ctx context.Context) domain.Session {
	m.mu.Lock()
	prevRole := m.session.Role
	m.resetLocked()
	snap := m.snapshotLocked()
	m.mu.Unlock()

	metrics.LogoutsTotal.Inc()
	m.audit(ctx, domain.EventLoggedOut, prevRole, "")
	m.cfg.Logger.Info().Str("session_id", m.ID()).Msg("session logged out")
	return snap
}

// Navigate makes view the active view. A view the role may not open returns
// ErrUnauthorizedView and leaves the active view unchanged; unknown views
// land on the default view.
func (m *SessionManager) Navigate(view domain.ViewID) (domain.Session, error) {
	m.mu.Lock()
	if m.session.State != domain.StateAuthenticated {
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap, domain.ErrNotAuthenticated
	}

	target, err := m.cfg.Router.Resolve(m.session.Role, view)
	if err != nil {
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap, err
	}

	var job *ports.SummaryJob
	if target != m.session.ActiveView {
		job = m.activateLocked(target)
		m.touchLocked()
	}
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.schedule(job)
	return snap, nil
}

// close tears the session down for good. Used by the registry.
func (m *SessionManager) close(ctx context.Context) {
	m.mu.Lock()
	prevRole := m.session.Role
	m.resetLocked()
	m.mu.Unlock()

	m.audit(ctx, domain.EventSessionClosed, prevRole, "")
}

// closeIfIdle tears the session down when it has not changed since cutoff.
// The check and the reset happen under one lock.
func (m *SessionManager) closeIfIdle(cutoff time.Time) (domain.Role, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.session.UpdatedAt.Before(cutoff) {
		return domain.RoleNone, false
	}
	prevRole := m.session.Role
	m.resetLocked()
	return prevRole, true
}

// idleSince reports when the session last changed.
func (m *SessionManager) idleSince() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.UpdatedAt
}

func (m *SessionManager) requireUnauthenticated() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session.State != domain.StateUnauthenticated {
		return domain.ErrAlreadyAuthenticated
	}
	return nil
}

// authenticate runs authenticating → authenticated for role.
func (m *SessionManager) authenticate(ctx context.Context, role domain.Role) (domain.Session, error) {
	m.mu.Lock()
	if m.session.State != domain.StateUnauthenticated {
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap, domain.ErrAlreadyAuthenticated
	}
	gen := m.authGen
	loginCtx, cancel := context.WithCancel(ctx)
	m.cancelLogin = cancel
	m.session.State = domain.StateAuthenticating
	m.touchLocked()
	m.mu.Unlock()

	waitErr := m.cfg.Sleep(loginCtx, m.cfg.LoginLatency)
	cancel()

	m.mu.Lock()
	if gen != m.authGen || m.session.State != domain.StateAuthenticating {
		// A logout landed while we were waiting; it already reset the state.
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap, domain.ErrLoginInterrupted
	}
	m.cancelLogin = nil
	if waitErr != nil {
		m.session.State = domain.StateUnauthenticated
		m.touchLocked()
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap, fmt.Errorf("%w: %v", domain.ErrLoginInterrupted, waitErr)
	}

	m.session.State = domain.StateAuthenticated
	m.session.Role = role
	job := m.activateLocked(domain.DefaultView)
	m.touchLocked()
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.schedule(job)
	return snap, nil
}

// resetLocked returns the session to unauthenticated/login and cancels pending work.
func (m *SessionManager) resetLocked() {
	m.authGen++
	if m.cancelLogin != nil {
		m.cancelLogin()
		m.cancelLogin = nil
	}
	m.deactivateLocked()
	m.session.State = domain.StateUnauthenticated
	m.session.Role = domain.RoleNone
	m.session.ActiveView = domain.ViewLogin
	m.touchLocked()
}

func (m *SessionManager) deactivateLocked() {
	m.viewGen++
	if m.cancelView != nil {
		m.cancelView()
		m.cancelView = nil
	}
	m.session.Summary = domain.SummaryState{Status: domain.SummaryIdle}
}

// activateLocked switches the active view. Activating the dashboard returns
// the summary job to schedule once mu is released.
func (m *SessionManager) activateLocked(view domain.ViewID) *ports.SummaryJob {
	m.deactivateLocked()
	m.session.ActiveView = view
	if view != domain.ViewDashboard {
		return nil
	}

	fetchCtx, cancel := context.WithCancel(m.cfg.BaseContext)
	m.cancelView = cancel
	m.session.Summary = domain.SummaryState{Status: domain.SummaryPending}
	gen := m.viewGen

	return &ports.SummaryJob{
		SessionID: m.session.ID,
		Ctx:       fetchCtx,
		Run: func(ctx context.Context) {
			m.deliverSummary(ctx, gen, m.cfg.Fetcher.FetchSummary(ctx))
		},
	}
}

func (m *SessionManager) schedule(job *ports.SummaryJob) {
	if job == nil {
		return
	}
	if !m.cfg.Scheduler.Schedule(*job) {
		m.cfg.Logger.Warn().Str("session_id", m.ID()).Msg("summary job dropped, serving fallback")
		m.mu.Lock()
		gen := m.viewGen
		m.mu.Unlock()
		m.deliverSummary(job.Ctx, gen, fallbackSummary())
	}
}

// deliverSummary stores result unless the activation that asked for it is gone.
func (m *SessionManager) deliverSummary(ctx context.Context, gen uint64, result domain.SummaryResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.viewGen || ctx.Err() != nil {
		m.cfg.Logger.Debug().Str("session_id", m.session.ID).Msg("discarding stale summary")
		return
	}
	m.session.Summary = domain.SummaryState{Status: domain.SummaryReady, Result: &result}
	m.touchLocked()
}

func (m *SessionManager) audit(ctx context.Context, kind domain.SessionEventKind, role domain.Role, username string) {
	if m.cfg.Audit == nil {
		return
	}
	event := &domain.SessionEvent{
		SessionID: m.ID(),
		Kind:      kind,
		Role:      role,
		Username:  username,
		Timestamp: m.cfg.Now(),
	}
	if err := m.cfg.Audit.InsertEvent(context.WithoutCancel(ctx), event); err != nil {
		m.cfg.Logger.Warn().Err(err).Str("session_id", m.ID()).Str("kind", string(kind)).Msg("failed to insert session event")
	}
}

func (m *SessionManager) throttled(ctx context.Context, username string) bool {
	if m.cfg.Throttle == nil {
		return false
	}
	locked, err := m.cfg.Throttle.Locked(ctx, strings.TrimSpace(username))
	if err != nil {
		m.cfg.Logger.Warn().Err(err).Str("session_id", m.ID()).Msg("login throttle unavailable")
		return false
	}
	return locked
}

func (m *SessionManager) recordFailure(ctx context.Context, username string) {
	if m.cfg.Throttle == nil {
		return
	}
	if err := m.cfg.Throttle.RecordFailure(context.WithoutCancel(ctx), strings.TrimSpace(username)); err != nil {
		m.cfg.Logger.Warn().Err(err).Str("session_id", m.ID()).Msg("failed to record login failure")
	}
}

func (m *SessionManager) resetFailures(ctx context.Context, username string) {
	if m.cfg.Throttle == nil {
		return
	}
	if err := m.cfg.Throttle.Reset(context.WithoutCancel(ctx), strings.TrimSpace(username)); err != nil {
		m.cfg.Logger.Warn().Err(err).Str("session_id", m.ID()).Msg("failed to reset login failures")
	}
}

func (m *SessionManager) touchLocked() {
	m.session.UpdatedAt = m.cfg.Now()
}

func (m *SessionManager) snapshotLocked() domain.Session {
	snap := m.session
	if r := m.session.Summary.Result; r != nil {
		copied := *r
		snap.Summary.Result = &copied
	}
	return snap
}

// validateProfile requires every registration field and a grantable position.
func validateProfile(p domain.RegistrationProfile) (domain.Role, error) {
	fields := []struct{ name, value string }{
		{"name", p.Name},
		{"email", p.Email},
		{"address", p.Address},
		{"position", p.Position},
		{"password", p.Password},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return domain.RoleNone, fmt.Errorf("%w: %s is required", domain.ErrIncompleteProfile, f.name)
		}
	}
	role, ok := domain.ParseRole(p.Position)
	if !ok {
		return domain.RoleNone, fmt.Errorf("%w: unknown position %q", domain.ErrIncompleteProfile, p.Position)
	}
	return role, nil
}

func failureLabel(err error) string {
	if errors.Is(err, domain.ErrLoginInterrupted) {
		return "interrupted"
	}
	return "error"
}
