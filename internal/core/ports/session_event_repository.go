package ports

import (
	"context"

	"github.com/99minutos/wms-console/internal/core/domain"
)

// SessionEventRepository persists the session audit trail.
type SessionEventRepository interface {
	InsertEvent(ctx context.Context, event *domain.SessionEvent) error
}
