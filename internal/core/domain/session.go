package domain

import "time"

// SessionState is a node of the authentication state machine.
type SessionState string

const (
	StateUnauthenticated SessionState = "unauthenticated"
	StateAuthenticating  SessionState = "authenticating"
	StateAuthenticated   SessionState = "authenticated"
)

// Session is a point-in-time copy of one client instance's authentication state.
// Role is RoleNone unless State is StateAuthenticated.
type Session struct {
	ID         string       `json:"id"`
	State      SessionState `json:"state"`
	Role       Role         `json:"role,omitempty"`
	ActiveView ViewID       `json:"active_view"`
	Summary    SummaryState `json:"summary"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// Authenticated reports whether the session has a granted role.
func (s Session) Authenticated() bool {
	return s.State == StateAuthenticated
}
