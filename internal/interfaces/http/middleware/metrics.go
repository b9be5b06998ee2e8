package middleware

import (
	"time"

	"go-folder-cleanup/internal/domain/metrics"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func MetricsMiddleware(metricsCollector metrics.MetricsCollector, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		status := c.Response().StatusCode()
		duration := time.Since(startTime)

		metricsCollector.IncHttpRequests(path, method, status)

		if status == fiber.StatusRequestTimeout {
			metricsCollector.IncHttpTimeout(path, method)
		}

		if status >= 500 {
			errorType := "server_error"
			switch status {
			case fiber.StatusServiceUnavailable:
				errorType = "service_unavailable"
			case fiber.StatusGatewayTimeout:
				errorType = "gateway_timeout"
			case fiber.StatusInternalServerError:
				errorType = "internal_server_error"
			}
			metricsCollector.IncHttpError(path, method, status, errorType)
		}

		logger.Debug("Request processed",
			zap.String("path", path),
			zap.String("method", method),
			zap.Int("status", status),
			zap.Duration("duration", duration))

		return err
	}
}
