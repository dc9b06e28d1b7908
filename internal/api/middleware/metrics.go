package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/wms-console/internal/pkg/metrics"
)

// Metrics records request count and latency per route pattern.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else if !c.Response().Committed {
					status = http.StatusInternalServerError
				}
			}

			method := c.Request().Method
			metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
