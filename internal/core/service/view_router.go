package service

import (
	"github.com/rs/zerolog"

	"github.com/99minutos/wms-console/internal/core/domain"
	"github.com/99minutos/wms-console/internal/core/ports"
	"github.com/99minutos/wms-console/internal/pkg/metrics"
)

// ViewRouter decides what a role sees for a requested view.
type ViewRouter struct {
	renderer ports.ViewRenderer
	log      zerolog.Logger
}

func NewViewRouter(renderer ports.ViewRenderer, log zerolog.Logger) *ViewRouter {
	return &ViewRouter{renderer: renderer, log: log}
}

// Resolve maps a requested view to the view that should become active.
//   - RoleNone resolves to the login view with ErrNotAuthenticated.
//   - Unknown ids resolve to the default view.
//   - Restricted views return ErrUnauthorizedView.
func (r *ViewRouter) Resolve(role domain.Role, view domain.ViewID) (domain.ViewID, error) {
	if !role.IsValid() {
		return domain.ViewLogin, domain.ErrNotAuthenticated
	}
	item, ok := domain.LookupNavItem(view)
	if !ok {
		return domain.DefaultView, nil
	}
	if !item.Allows(role) {
		return view, domain.ErrUnauthorizedView
	}
	return view, nil
}

// Render returns the view for role, the denial marker when role may not open
// it, or the login view when there is no role. It never fails.
func (r *ViewRouter) Render(role domain.Role, view domain.ViewID, summary domain.SummaryState) *domain.View {
	target, err := r.Resolve(role, view)
	switch err {
	case nil:
	case domain.ErrNotAuthenticated:
		role = domain.RoleNone
	case domain.ErrUnauthorizedView:
		metrics.ViewRendersTotal.WithLabelValues(string(view), "denied").Inc()
		item, _ := domain.LookupNavItem(view)
		return domain.DeniedView(view, item.Label, role)
	}

	rendered, renderErr := r.renderer.Render(target, role, summary)
	if renderErr != nil || rendered == nil {
		r.log.Warn().Err(renderErr).Str("view", string(target)).Msg("view renderer failed")
		rendered = &domain.View{ID: target, Role: role, Notice: "This section is temporarily unavailable."}
	}
	metrics.ViewRendersTotal.WithLabelValues(string(target), "rendered").Inc()
	return rendered
}
