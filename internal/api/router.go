package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/99minutos/wms-console/docs"
	"github.com/99minutos/wms-console/internal/api/handler"
	"github.com/99minutos/wms-console/internal/api/middleware"
	"github.com/99minutos/wms-console/internal/core/domain"
	"github.com/99minutos/wms-console/internal/core/ports"
	"github.com/99minutos/wms-console/internal/core/service"
	"github.com/99minutos/wms-console/internal/infrastructure/http/handlers"
)

// Deps are the collaborators the HTTP surface needs. Mongo and Redis are
// optional and only feed the readiness check.
type Deps struct {
	Sessions ports.SessionService
	Tokens   *service.TokenService
	Mongo    *mongo.Database
	Redis    *redis.Client
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(middleware.Metrics())

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(d.Sessions, d.Tokens, d.Logger)
	viewHandler := handler.NewViewHandler(d.Sessions)
	auth := middleware.Auth(d.Tokens)
	authenticated := middleware.RequireAuthenticated(d.Sessions)

	// --- Client instances ---
	e.POST("/v1/sessions", sessionHandler.Open)
	e.DELETE("/v1/sessions", sessionHandler.Close, auth)

	// --- Session state machine ---
	s := e.Group("/v1/session", auth)
	s.GET("", sessionHandler.Get)
	s.POST("/login", sessionHandler.Login)
	s.POST("/register", sessionHandler.Register)
	s.POST("/logout", sessionHandler.Logout)
	s.GET("/view", viewHandler.Current)
	s.PUT("/view", viewHandler.Navigate)

	// --- Authenticated surface ---
	e.GET("/v1/nav", viewHandler.Nav, auth, authenticated)
	e.GET("/v1/dashboard/summary", viewHandler.Summary, auth, authenticated)

	// --- Restricted sections (403 for roles outside the allow-list) ---
	e.GET("/v1/reports", viewHandler.Reports, auth, middleware.RequireView(d.Sessions, domain.ViewReports))
	e.GET("/v1/admin/users", viewHandler.Users, auth, middleware.RequireView(d.Sessions, domain.ViewAdmin))

	// --- Health checks, metrics and docs (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are configured dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
