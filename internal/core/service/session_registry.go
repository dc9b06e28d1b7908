package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/wms-console/internal/core/domain"
	"github.com/99minutos/wms-console/internal/pkg/metrics"
)

// SessionRegistry holds every live client instance in memory. Sessions are
// never persisted; a restart logs everyone out.
type SessionRegistry struct {
	cfg ManagerConfig
	now func() time.Time
	log zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]*SessionManager
}

func NewSessionRegistry(cfg ManagerConfig) *SessionRegistry {
	cfg = cfg.withDefaults()
	return &SessionRegistry{
		cfg:      cfg,
		now:      cfg.Now,
		log:      cfg.Logger,
		sessions: make(map[string]*SessionManager),
	}
}

// Create starts a new unauthenticated client instance.
func (r *SessionRegistry) Create() *SessionManager {
	m := NewSessionManager(uuid.NewString(), r.cfg)

	r.mu.Lock()
	r.sessions[m.ID()] = m
	n := len(r.sessions)
	r.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	r.log.Debug().Str("session_id", m.ID()).Msg("session opened")
	return m
}

// Get returns the client instance for id or ErrSessionNotFound.
func (r *SessionRegistry) Get(id string) (*SessionManager, error) {
	r.mu.RLock()
	m, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return m, nil
}

// Close logs the instance out, cancels its pending work and forgets it.
func (r *SessionRegistry) Close(ctx context.Context, id string) error {
	r.mu.Lock()
	m, ok := r.sessions[id]
	delete(r.sessions, id)
	n := len(r.sessions)
	r.mu.Unlock()
	if !ok {
		return domain.ErrSessionNotFound
	}

	m.close(ctx)
	metrics.ActiveSessions.Set(float64(n))
	r.log.Debug().Str("session_id", id).Msg("session closed")
	return nil
}

// Sweep closes instances that have not changed for longer than idle and
// returns how many were closed.
func (r *SessionRegistry) Sweep(ctx context.Context, idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.RLock()
	var candidates []string
	for id, m := range r.sessions {
		if m.idleSince().Before(cutoff) {
			candidates = append(candidates, id)
		}
	}
	r.mu.RUnlock()

	closed := 0
	for _, id := range candidates {
		if r.expire(ctx, id, cutoff) {
			closed++
		}
	}
	if closed > 0 {
		r.log.Info().Int("closed", closed).Dur("idle", idle).Msg("swept idle sessions")
	}
	return closed
}

// expire closes id only if it is still idle since cutoff. A session that
// changed after Sweep picked it is kept.
func (r *SessionRegistry) expire(ctx context.Context, id string, cutoff time.Time) bool {
	r.mu.Lock()
	m, ok := r.sessions[id]
	if !ok {
		r.mu.Unlock()
		return false
	}
	prevRole, idle := m.closeIfIdle(cutoff)
	if !idle {
		r.mu.Unlock()
		return false
	}
	delete(r.sessions, id)
	n := len(r.sessions)
	r.mu.Unlock()

	m.audit(ctx, domain.EventSessionClosed, prevRole, "")
	metrics.ActiveSessions.Set(float64(n))
	r.log.Debug().Str("session_id", id).Msg("idle session expired")
	return true
}

// Run sweeps idle instances every interval until ctx is cancelled.
func (r *SessionRegistry) Run(ctx context.Context, interval, idle time.Duration) {
	if interval <= 0 || idle <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(ctx, idle)
		}
	}
}
