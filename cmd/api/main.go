// @title        WMS Console API
// @version      1.0
// @description  Role-gated warehouse management console: sessions, navigation and dashboard summary.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/wms-console/internal/api"
	"github.com/99minutos/wms-console/internal/core/ports"
	"github.com/99minutos/wms-console/internal/core/service"
	"github.com/99minutos/wms-console/internal/infrastructure/credentials"
	"github.com/99minutos/wms-console/internal/infrastructure/db/mongo"
	"github.com/99minutos/wms-console/internal/infrastructure/db/redis"
	"github.com/99minutos/wms-console/internal/infrastructure/memory"
	"github.com/99minutos/wms-console/internal/infrastructure/queue"
	"github.com/99minutos/wms-console/internal/infrastructure/summary"
	"github.com/99minutos/wms-console/internal/infrastructure/views"
	"github.com/99minutos/wms-console/internal/pkg/config"
	"github.com/99minutos/wms-console/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "wms-console",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Optional stores ---
	var (
		store   *mongo.Store
		mongoDB *mongodriver.Database
		audit   ports.SessionEventRepository
	)
	if cfg.Mongo.URI != "" {
		var err error
		store, err = mongo.Open(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		repo := mongo.NewSessionEventRepository(store.DB)
		if err := repo.EnsureIndexes(ctx, cfg.Mongo.AuditRetention); err != nil {
			log.Warn().Err(err).Msg("failed to ensure session_events indexes")
		}
		mongoDB, audit = store.DB, repo
		log.Info().Str("database", cfg.Mongo.Database).Msg("session audit trail enabled")
	}

	var (
		redisClient *goredis.Client
		throttle    ports.LoginThrottle = memory.NewLoginThrottle(cfg.Session.MaxFailures, cfg.Session.FailureWindow)
	)
	if cfg.Redis.Addr != "" {
		var err error
		redisClient, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		throttle = redis.NewLoginThrottle(redisClient, cfg.Session.MaxFailures, cfg.Session.FailureWindow)
		log.Info().Msg("login throttle shared through redis")
	}

	// --- Dashboard summary ---
	var transport ports.SummaryTransport
	if cfg.SummaryEnabled() {
		transport = summary.NewHTTPTransport(cfg.Summary.APIURL, cfg.Summary.APIKey, cfg.Summary.Timeout)
	} else {
		log.Warn().Msg("SUMMARY_API_KEY not set, dashboard will serve mock data")
	}
	fetcher := service.NewSummaryService(transport, service.DefaultRetryPolicy(), log)

	dispatcher := queue.NewDispatcher(cfg.Summary.Workers, log)
	dispatcher.Start(ctx)

	// --- Sessions ---
	router := service.NewViewRouter(views.NewCatalog(fetcher.Configured()), log)
	registry := service.NewSessionRegistry(service.ManagerConfig{
		Verifier:     credentials.NewStaticVerifier(cfg.Session.DemoPassword),
		Fetcher:      fetcher,
		Scheduler:    dispatcher,
		Router:       router,
		Audit:        audit,
		Throttle:     throttle,
		LoginLatency: cfg.Session.LoginLatency,
		BaseContext:  ctx,
		Logger:       log,
	})
	go registry.Run(ctx, cfg.Session.SweepInterval, cfg.Session.TTL)

	e := api.NewRouter(api.Deps{
		Sessions: service.NewSessionService(registry, router),
		Tokens:   service.NewTokenService(cfg.JWTSecret, cfg.Session.TTL),
		Mongo:    mongoDB,
		Redis:    redisClient,
		Logger:   log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting wms console api")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
	dispatcher.Wait()
	closeStores(shutdownCtx, log, store, redisClient)
}

func closeStores(ctx context.Context, log zerolog.Logger, store *mongo.Store, rc *goredis.Client) {
	if store != nil {
		if err := store.Close(ctx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}
	if rc != nil {
		if err := rc.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}
}
