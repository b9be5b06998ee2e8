package handlers

import (
	"context"
	"time"

	"go-folder-cleanup/internal/usecases/cleanup"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CleanupHandler struct {
	cleanupUseCase cleanup.CleanupUseCase
	logger         *zap.Logger
}

func NewCleanupHandler(cleanupUseCase cleanup.CleanupUseCase, logger *zap.Logger) *CleanupHandler {
	return &CleanupHandler{
		cleanupUseCase: cleanupUseCase,
		logger:         logger,
	}
}

// TriggerCleanup starts one cleanup cycle outside the schedule.
func (h *CleanupHandler) TriggerCleanup(c *fiber.Ctx) error {
	h.logger.Info("Cleanup API endpoint called",
		zap.String("ip", c.IP()),
		zap.String("method", c.Method()))

	// Run in the background; a cycle can take a while and the batch
	// itself must not be torn down with the request.
	go func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if _, err := h.cleanupUseCase.Cleanup(ctx); err != nil {
			h.logger.Error("API-triggered cleanup failed", zap.Error(err))
		}
	}()

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"status":  "accepted",
		"message": "Cleanup cycle has been triggered",
		"time":    time.Now().Format(time.RFC3339),
	})
}

// LastReport returns the in-memory report of the most recent cycle.
func (h *CleanupHandler) LastReport(c *fiber.Ctx) error {
	report := h.cleanupUseCase.LastReport()
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "not_found",
			"message": "No cleanup cycle has completed yet",
		})
	}
	return c.JSON(report)
}
