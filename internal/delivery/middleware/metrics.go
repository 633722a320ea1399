package middleware

import (
	"time"

	"townscoffee/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records Prometheus HTTP metrics per route template
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle records in-flight, count and latency of every request except the
// metrics endpoint itself.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().URL.Path == "/metrics" {
			return next(c)
		}

		done := m.metrics.RequestStarted()
		defer done()

		start := time.Now()
		err := next(c)

		m.metrics.RecordHTTPRequest(c.Request().Method, c.Path(), c.Response().Status, time.Since(start))

		return err
	}
}
