package domain

// Credentials is a single login attempt. It is never stored.
type Credentials struct {
	Username string
	Password string
}

// RegistrationProfile is a registration attempt. Registration grants access
// with Position as the role; no account is created.
type RegistrationProfile struct {
	Name     string
	Email    string
	Address  string
	Position string
	Password string
}
