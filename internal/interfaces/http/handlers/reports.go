package handlers

import (
	"go-folder-cleanup/internal/domain/repositories"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultReportLimit = 20
	maxReportLimit     = 100
)

type ReportsHandler struct {
	repo   repositories.CycleReportRepository
	logger *zap.Logger
}

func NewReportsHandler(repo repositories.CycleReportRepository, logger *zap.Logger) *ReportsHandler {
	return &ReportsHandler{
		repo:   repo,
		logger: logger,
	}
}

// Latest returns the most recent persisted cycle report.
func (h *ReportsHandler) Latest(c *fiber.Ctx) error {
	report, err := h.repo.GetLatestReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "not_found",
			"message": "No cycle reports recorded yet",
		})
	}
	return c.JSON(report)
}

// Get returns one persisted cycle report by ID.
func (h *ReportsHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	report, err := h.repo.GetReportByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "not_found",
			"message": "Report not found",
			"id":      id,
		})
	}
	return c.JSON(report)
}

// List returns persisted cycle reports, newest first.
func (h *ReportsHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultReportLimit)
	if limit <= 0 || limit > maxReportLimit {
		limit = defaultReportLimit
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	reports, err := h.repo.GetReports(c.Context(), limit, offset)
	if err != nil {
		h.logger.Error("Failed to list cycle reports", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to list reports",
		})
	}

	return c.JSON(fiber.Map{
		"reports": reports,
		"limit":   limit,
		"offset":  offset,
	})
}
