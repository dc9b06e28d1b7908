package credentials

import (
	"context"
	"strings"

	"github.com/99minutos/wms-console/internal/core/domain"
)

// DefaultDemoPassword is shared by every demo identity.
const DefaultDemoPassword = "123"

// StaticVerifier authenticates against the fixed demo identity table.
// Usernames are case-sensitive; there is no lockout.
type StaticVerifier struct {
	accounts map[string]domain.Role
	password string
}

// NewStaticVerifier returns the admin/manager/staff table. An empty password
// falls back to DefaultDemoPassword.
func NewStaticVerifier(password string) *StaticVerifier {
	if password == "" {
		password = DefaultDemoPassword
	}
	return &StaticVerifier{
		accounts: map[string]domain.Role{
			"admin":   domain.RoleAdmin,
			"manager": domain.RoleManager,
			"staff":   domain.RoleStaff,
		},
		password: password,
	}
}

func (v *StaticVerifier) Verify(_ context.Context, username, password string) (domain.Role, error) {
	role, ok := v.accounts[strings.TrimSpace(username)]
	if !ok || password != v.password {
		return domain.RoleNone, domain.ErrInvalidCredentials
	}
	return role, nil
}
