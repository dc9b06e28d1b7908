package ports

import "github.com/99minutos/wms-console/internal/core/domain"

// ViewRenderer produces the read-only content of a permitted view.
// It is never asked to render a view the role may not open.
type ViewRenderer interface {
	Render(view domain.ViewID, role domain.Role, summary domain.SummaryState) (*domain.View, error)
}
