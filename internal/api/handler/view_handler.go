package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/wms-console/internal/api/middleware"
	"github.com/99minutos/wms-console/internal/core/domain"
	"github.com/99minutos/wms-console/internal/core/ports"
)

type ViewHandler struct {
	sessions ports.SessionService
}

func NewViewHandler(sessions ports.SessionService) *ViewHandler {
	return &ViewHandler{sessions: sessions}
}

// Navigate activates a view and renders it.
//
// @Summary      Navigate
// @Description  A view the role may not open renders the denial marker (denied=true) and the active view is unchanged. Unknown views land on the dashboard.
// @Tags         views
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      navigateRequest  true  "Target view"
// @Success      200   {object}  domain.View
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/session/view [put]
func (h *ViewHandler) Navigate(c echo.Context) error {
	sessionID, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req navigateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.sessions.Navigate(c.Request().Context(), sessionID, domain.ViewID(req.View))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Current renders the active view, or the login view when unauthenticated.
//
// @Summary      Active view
// @Tags         views
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  domain.View
// @Failure      401  {object}  errorResponse
// @Router       /v1/session/view [get]
func (h *ViewHandler) Current(c echo.Context) error {
	sessionID, err := ctxSession(c)
	if err != nil {
		return err
	}

	view, err := h.sessions.RenderView(c.Request().Context(), sessionID, "")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Nav lists the sections the current role may open.
//
// @Summary      Navigation
// @Tags         views
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  navResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/nav [get]
func (h *ViewHandler) Nav(c echo.Context) error {
	role, _ := c.Get(middleware.KeyRole).(domain.Role)
	return c.JSON(http.StatusOK, navResponse{Role: role, Items: domain.VisibleNavItems(role)})
}

// Summary returns the dashboard KPI panel state.
//
// @Summary      Dashboard summary
// @Description  status is pending until the fetch settles. The text is never cached between dashboard visits.
// @Tags         views
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  summaryResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/dashboard/summary [get]
func (h *ViewHandler) Summary(c echo.Context) error {
	sessionID, err := ctxSession(c)
	if err != nil {
		return err
	}

	st, err := h.sessions.Summary(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSummaryResponse(st))
}

// Section serves a restricted section's content. The route must be guarded
// by middleware.RequireView for the same view.
func (h *ViewHandler) Section(view domain.ViewID) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, err := ctxSession(c)
		if err != nil {
			return err
		}

		v, err := h.sessions.RenderView(c.Request().Context(), sessionID, view)
		if err != nil {
			return err
		}
		if v.Denied {
			return domain.ErrUnauthorizedView
		}
		return c.JSON(http.StatusOK, v)
	}
}

// Users lists the managed user accounts.
//
// @Summary      User accounts
// @Tags         sections
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  domain.View
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *ViewHandler) Users(c echo.Context) error {
	return h.Section(domain.ViewAdmin)(c)
}

// Reports lists the available warehouse reports.
//
// @Summary      Reports
// @Tags         sections
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  domain.View
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/reports [get]
func (h *ViewHandler) Reports(c echo.Context) error {
	return h.Section(domain.ViewReports)(c)
}
