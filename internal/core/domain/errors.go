package domain

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrIncompleteProfile    = errors.New("incomplete registration profile")
	ErrRateLimited          = errors.New("summary endpoint rate limited")
	ErrSummaryUnavailable   = errors.New("summary unavailable")
	ErrUnauthorizedView     = errors.New("view not permitted for role")
	ErrSessionNotFound      = errors.New("session not found")
	ErrLoginInterrupted     = errors.New("login interrupted")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrAlreadyAuthenticated = errors.New("session already authenticated")
	ErrInvalidToken         = errors.New("invalid session token")
	ErrTooManyAttempts      = errors.New("too many failed login attempts")
)

// InvalidCredentialsMessage is shown to the user after a failed login.
const InvalidCredentialsMessage = `Invalid credentials. Try "admin", "manager", or "staff" with password "123".`

// TooManyAttemptsMessage is shown while a username is locked out.
const TooManyAttemptsMessage = "Too many failed login attempts. Try again later."

// IncompleteProfileMessage is shown when a registration field is missing.
const IncompleteProfileMessage = "Please fill out all registration fields."
