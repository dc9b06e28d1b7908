package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/wms-console/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.InvalidCredentialsMessage
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, domain.TooManyAttemptsMessage
	case errors.Is(err, domain.ErrIncompleteProfile):
		return http.StatusUnprocessableEntity, domain.IncompleteProfileMessage
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "session not found"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, domain.ErrLoginInterrupted):
		return http.StatusConflict, "login interrupted"
	case errors.Is(err, domain.ErrAlreadyAuthenticated):
		return http.StatusConflict, "session already authenticated, log out first"
	case errors.Is(err, domain.ErrUnauthorizedView):
		return http.StatusForbidden, domain.AccessDeniedNotice
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
