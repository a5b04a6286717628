package middleware

import (
	"strconv"
	"time"

	"rxconsole/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route
type MetricsMiddleware struct{}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{}
}

// Handle observes the request after the handler and error handler have run
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		// Route template keeps label cardinality bounded
		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request().Method

		metrics.HTTPRequests.WithLabelValues(path, method, strconv.Itoa(c.Response().Status)).Inc()
		metrics.HTTPDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())

		return nil
	}
}
