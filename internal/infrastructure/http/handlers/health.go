package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler handles GET /health (liveness).
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthDependenciesHandler handles GET /health/ready (readiness).
// Only configured dependencies are checked; sessions live in memory, so a
// console without MongoDB or Redis is still ready.
type HealthDependenciesHandler struct {
	mongo *mongo.Database
	redis *redis.Client
}

// NewHealthDependenciesHandler accepts nil for dependencies that are not configured.
func NewHealthDependenciesHandler(db *mongo.Database, rdb *redis.Client) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{
		mongo: db,
		redis: rdb,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := map[string]dependencyStatus{
		"mongodb": h.checkMongo(ctx),
		"redis":   h.checkRedis(ctx),
	}

	status := "ok"
	httpStatus := http.StatusOK
	for _, d := range deps {
		if d.Status == "unhealthy" {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
			break
		}
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}

func (h *HealthDependenciesHandler) checkMongo(ctx context.Context) dependencyStatus {
	if h.mongo == nil {
		return dependencyStatus{Status: "disabled"}
	}
	if err := h.mongo.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return dependencyStatus{Status: "unhealthy", Error: err.Error()}
	}
	return dependencyStatus{Status: "ok"}
}

func (h *HealthDependenciesHandler) checkRedis(ctx context.Context) dependencyStatus {
	if h.redis == nil {
		return dependencyStatus{Status: "disabled"}
	}
	if _, err := h.redis.Ping(ctx).Result(); err != nil {
		return dependencyStatus{Status: "unhealthy", Error: err.Error()}
	}
	return dependencyStatus{Status: "ok"}
}
