package domain

import "strings"

// Role determines which sections of the console a session may reach.
type Role string

const (
	RoleNone    Role = ""
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleStaff   Role = "Staff"
)

// Roles returns every grantable role, most privileged first.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleStaff}
}

// IsValid reports whether r is one of the grantable roles.
func (r Role) IsValid() bool {
	for _, known := range Roles() {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRole maps a case-insensitive role name to a Role.
// Unknown names yield RoleNone and false.
func ParseRole(s string) (Role, bool) {
	for _, known := range Roles() {
		if strings.EqualFold(strings.TrimSpace(s), string(known)) {
			return known, true
		}
	}
	return RoleNone, false
}
