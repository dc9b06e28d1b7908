package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/wms-console/internal/api/middleware"
	"github.com/99minutos/wms-console/internal/core/service"
)

// ctxSession extracts the client instance injected by the Auth middleware.
// A missing id means the route was registered without Auth.
func ctxSession(c echo.Context) (string, error) {
	sessionID, _ := c.Get(middleware.KeySessionID).(string)
	if sessionID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sessionID, nil
}

func ctxToken(c echo.Context) (*service.SessionToken, error) {
	tok, _ := c.Get(middleware.KeyToken).(*service.SessionToken)
	if tok == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
	}
	return tok, nil
}
