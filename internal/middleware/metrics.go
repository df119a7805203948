package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// InitMetrics creates the HTTP request metrics for serviceName on reg.
// Each server gets its own registry so tests can build several apps in one process.
func InitMetrics(reg *prometheus.Registry, serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.NewWithRegistry(reg, serviceName, "http", "", nil)
}

// MetricsMiddleware records request count, latency and in-flight requests.
// The /metrics scrape itself is skipped.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	handler := prom.Middleware
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}
		return handler(c)
	}
}
