package domain

import "time"

// SessionEventKind names an audited session transition.
type SessionEventKind string

const (
	EventLoginSucceeded SessionEventKind = "login_succeeded"
	EventLoginFailed    SessionEventKind = "login_failed"
	EventRegistered     SessionEventKind = "registered"
	EventLoggedOut      SessionEventKind = "logged_out"
	EventSessionClosed  SessionEventKind = "session_closed"
)

// SessionEvent is an audit record of a session transition. Passwords are never recorded.
type SessionEvent struct {
	SessionID string
	Kind      SessionEventKind
	Role      Role
	Username  string // login attempts only
	Timestamp time.Time
}
