package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/wms-console/internal/core/service"
)

// Context keys set by Auth.
const (
	KeySessionID = "session_id"
	KeyToken     = "session_token"
	KeyRole      = "role"
)

// TokenParser verifies a raw bearer token.
type TokenParser interface {
	Parse(raw string) (*service.SessionToken, error)
}

// Auth validates the client instance token and injects the session id into
// context. A closed instance is rejected later by the session lookup.
func Auth(tokens TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			tok, err := tokens.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(KeySessionID, tok.SessionID)
			c.Set(KeyToken, tok)

			return next(c)
		}
	}
}
