package router

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go-folder-cleanup/internal/domain/metrics"
	"go-folder-cleanup/internal/interfaces/http/handlers"
	"go-folder-cleanup/internal/interfaces/http/middleware"
	"go-folder-cleanup/pkg/constants"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

type FiberApp struct {
	*fiber.App
}

func NewFiberApp(logger *zap.Logger) *FiberApp {
	app := fiber.New(fiber.Config{
		AppName:               constants.ServiceName,
		DisableStartupMessage: true,
		IdleTimeout:           60 * time.Second,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		DisableKeepalive:      false,
		ServerHeader:          constants.ServiceName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			message := "Internal Server Error"

			var fiberError *fiber.Error
			if errors.As(err, &fiberError) {
				status = fiberError.Code
				message = fiberError.Message
			} else {
				switch {
				case errors.Is(err, fiber.ErrRequestTimeout):
					status = fiber.StatusRequestTimeout
					message = "Request Timeout"
				case errors.Is(err, fiber.ErrTooManyRequests):
					status = fiber.StatusTooManyRequests
					message = "Too Many Requests"
				case strings.Contains(err.Error(), "deadline exceeded"):
					status = fiber.StatusGatewayTimeout
					message = "Gateway Timeout"
				case strings.Contains(err.Error(), "broken pipe"):
					status = fiber.StatusBadRequest
					message = "Client Disconnected"
				}
			}

			if c.Path() == "/favicon.ico" {
				return nil
			}

			logErr := logger.Error
			if status < http.StatusInternalServerError {
				logErr = logger.Warn
			}

			logErr("Request failed",
				zap.Error(err),
				zap.String("url", c.Path()),
				zap.String("method", c.Method()),
				zap.Int("status", status),
				zap.String("ip", c.IP()))

			return c.Status(status).JSON(ErrorResponse{
				Status:  status,
				Message: message,
				Path:    c.Path(),
			})
		},
	})

	return &FiberApp{app}
}

func SetupRoutes(app *FiberApp, h *handlers.Handlers, metricsCollector metrics.MetricsCollector, logger *zap.Logger) {
	app.Use(middleware.Recovery(logger))
	app.Use(middleware.Logger(logger))
	app.Use(middleware.MetricsMiddleware(metricsCollector, logger))

	app.Get("/favicon.ico", func(c *fiber.Ctx) error {
		return c.SendStatus(204) // No Content
	})

	app.Get("/health", h.Health.Status)
	app.Get("/metrics", h.Metrics.Handle)
	app.Get("/version", h.Version.GetVersion)

	api := app.Group("/api/" + constants.APIVersion)
	setupAPIRoutes(api, h)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Status:  fiber.StatusNotFound,
			Message: "Route not found",
			Path:    c.Path(),
		})
	})
}

func setupAPIRoutes(router fiber.Router, h *handlers.Handlers) {
	router.Post("/cleanup", h.Cleanup.TriggerCleanup)
	router.Get("/cleanup/last", h.Cleanup.LastReport)
	router.Get("/reports", h.Reports.List)
	router.Get("/reports/latest", h.Reports.Latest)
	router.Get("/reports/:id", h.Reports.Get)
}
