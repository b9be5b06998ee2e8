package handlers

import (
	"go-folder-cleanup/internal/domain/metrics"
	"go-folder-cleanup/internal/domain/repositories"
	"go-folder-cleanup/internal/usecases/cleanup"

	"go.uber.org/zap"
)

type Handlers struct {
	Health  *HealthHandler
	Version *VersionHandler
	Metrics *MetricsHandler
	Cleanup *CleanupHandler
	Reports *ReportsHandler
	logger  *zap.Logger
}

func NewHandlers(
	logger *zap.Logger,
	version, buildTime string,
	metricsCollector metrics.MetricsCollector,
	cleanupUseCase cleanup.CleanupUseCase,
	reportRepo repositories.CycleReportRepository,
) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(logger),
		Version: NewVersionHandler(version, buildTime),
		Metrics: NewMetricsHandler(metricsCollector, logger),
		Cleanup: NewCleanupHandler(cleanupUseCase, logger),
		Reports: NewReportsHandler(reportRepo, logger),
		logger:  logger,
	}
}
