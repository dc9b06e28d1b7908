package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/wms-console/internal/core/domain"
	"github.com/99minutos/wms-console/internal/core/ports"
)

// RequireAuthenticated lets the request through only when the client
// instance is authenticated, and injects its role into context. Must run
// after Auth.
func RequireAuthenticated(sessions ports.SessionService) echo.MiddlewareFunc {
	return RequireRole(sessions, domain.Roles()...)
}

// RequireRole enforces role-based access control on the client instance.
func RequireRole(sessions ports.SessionService, allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID, _ := c.Get(KeySessionID).(string)
			if sessionID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
			}

			ov, err := sessions.Overview(c.Request().Context(), sessionID)
			if err != nil {
				return err
			}
			if !ov.Session.Authenticated() {
				return domain.ErrNotAuthenticated
			}
			if _, ok := allowed[ov.Session.Role]; !ok {
				return domain.ErrUnauthorizedView
			}

			c.Set(KeyRole, ov.Session.Role)
			return next(c)
		}
	}
}

// RequireView admits the roles the navigation catalog allows for view.
func RequireView(sessions ports.SessionService, view domain.ViewID) echo.MiddlewareFunc {
	var roles []domain.Role
	for _, r := range domain.Roles() {
		if domain.CanAccess(r, view) {
			roles = append(roles, r)
		}
	}
	return RequireRole(sessions, roles...)
}
