package ports

import (
	"context"

	"github.com/99minutos/wms-console/internal/core/domain"
)

// CredentialVerifier resolves a username/password pair to a granted role.
// Implementations return domain.ErrInvalidCredentials on mismatch.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (domain.Role, error)
}
