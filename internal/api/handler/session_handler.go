package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/wms-console/internal/core/domain"
	"github.com/99minutos/wms-console/internal/core/ports"
	"github.com/99minutos/wms-console/internal/core/service"
)

// TokenIssuer signs client instance tokens.
type TokenIssuer interface {
	Issue(sessionID string) (*service.SessionToken, error)
}

type SessionHandler struct {
	sessions ports.SessionService
	tokens   TokenIssuer
	log      zerolog.Logger
}

func NewSessionHandler(sessions ports.SessionService, tokens TokenIssuer, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, tokens: tokens, log: log}
}

// Open starts a new client instance.
//
// @Summary      Open a client instance
// @Description  Creates an unauthenticated session and returns the bearer token that identifies it.
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  openSessionResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/sessions [post]
func (h *SessionHandler) Open(c echo.Context) error {
	ctx := c.Request().Context()

	ov, err := h.sessions.Open(ctx)
	if err != nil {
		return err
	}

	tok, err := h.tokens.Issue(ov.Session.ID)
	if err != nil {
		_ = h.sessions.Close(ctx, ov.Session.ID)
		return err
	}

	return c.JSON(http.StatusCreated, openSessionResponse{
		Token:           tok.Token,
		ExpiresAt:       tok.ExpiresAt,
		sessionResponse: toSessionResponse(ov),
	})
}

// Close ends the client instance. Its token stops resolving immediately.
//
// @Summary      Close the client instance
// @Tags         sessions
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/sessions [delete]
func (h *SessionHandler) Close(c echo.Context) error {
	tok, err := ctxToken(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if err := h.sessions.Close(ctx, tok.SessionID); err != nil {
		return err
	}
	h.log.Debug().Str("session_id", tok.SessionID).Str("token_id", tok.TokenID).Msg("client instance closed")

	return c.NoContent(http.StatusNoContent)
}

// Get returns the session snapshot and its navigation surface.
//
// @Summary      Current session
// @Tags         session
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	sessionID, err := ctxSession(c)
	if err != nil {
		return err
	}

	ov, err := h.sessions.Overview(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(ov))
}

// Login authenticates the client instance with a demo identity.
//
// @Summary      Login
// @Tags         session
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /v1/session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	sessionID, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ov, err := h.sessions.Login(c.Request().Context(), sessionID, domain.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(ov))
}

// Register grants access with the chosen position. Nothing is stored.
//
// @Summary      Register
// @Tags         session
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration profile"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/session/register [post]
func (h *SessionHandler) Register(c echo.Context) error {
	sessionID, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ov, err := h.sessions.Register(c.Request().Context(), sessionID, domain.RegistrationProfile{
		Name:     req.Name,
		Email:    req.Email,
		Address:  req.Address,
		Position: req.Position,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(ov))
}

// Logout returns the client instance to the login view.
//
// @Summary      Logout
// @Tags         session
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	sessionID, err := ctxSession(c)
	if err != nil {
		return err
	}

	ov, err := h.sessions.Logout(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(ov))
}
