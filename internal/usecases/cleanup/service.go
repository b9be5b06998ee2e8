package cleanup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go-folder-cleanup/internal/domain/metrics"
	"go-folder-cleanup/internal/domain/models"
	"go-folder-cleanup/internal/domain/notification"
	"go-folder-cleanup/internal/domain/repositories"
	"go-folder-cleanup/pkg/helper"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// accessDeniedReason is the reported reason for a file that survived
// every deletion attempt.
const accessDeniedReason = "access denied"

// Ensure CleanupService implements CleanupUseCase
var _ CleanupUseCase = (*CleanupService)(nil)

// CleanupService deletes every direct child of the configured folder
// except the keep set. One entry's failure never aborts its siblings;
// the cycle always runs to completion and accounts for every entry it
// saw.
type CleanupService struct {
	folder    string
	keep      models.KeepSet
	repo      repositories.FolderRepository
	reports   repositories.CycleReportRepository
	notifier  notification.Notifier
	metrics   metrics.MetricsCollector
	validator FolderValidator
	logger    *zap.Logger

	mu   sync.Mutex
	last *models.DeletionReport
}

func NewCleanupService(
	folder string,
	keep models.KeepSet,
	repo repositories.FolderRepository,
	reports repositories.CycleReportRepository,
	notifier notification.Notifier,
	metricsCollector metrics.MetricsCollector,
	validator FolderValidator,
	logger *zap.Logger,
) *CleanupService {
	return &CleanupService{
		folder:    folder,
		keep:      keep,
		repo:      repo,
		reports:   reports,
		notifier:  notifier,
		metrics:   metricsCollector,
		validator: validator,
		logger:    logger,
	}
}

// Cleanup runs one cycle. The folder is re-validated first so a target
// that was remounted or replaced since startup is refused rather than
// purged. A validation or enumeration failure fails the cycle as a
// whole; per-entry failures are recorded in the report and the cycle
// carries on.
func (s *CleanupService) Cleanup(ctx context.Context) (*models.DeletionReport, error) {
	startTime := time.Now()

	if err := s.validator.ValidateFolder(s.folder); err != nil {
		s.metrics.IncCycleErrors()
		return nil, fmt.Errorf("folder no longer safe to clean: %w", err)
	}

	entries, err := s.repo.ListEntries(ctx, s.folder)
	if err != nil {
		s.metrics.IncCycleErrors()
		return nil, fmt.Errorf("failed to list folder entries: %w", err)
	}

	report := &models.DeletionReport{}
	for _, entry := range entries {
		s.processEntry(ctx, entry, report)
	}

	endTime := time.Now()
	duration := endTime.Sub(startTime)

	s.metrics.ObserveCycleDuration(duration)
	s.metrics.SetLastCycleTime(endTime)

	s.logger.Info("Cleanup cycle completed",
		zap.String("folder", s.folder),
		zap.Int("total", report.Total()),
		zap.Int("deleted", len(report.Deleted)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("errors", len(report.Errors)),
		zap.Duration("duration", duration))

	s.persistReport(ctx, report, startTime, endTime)
	s.notify(report, startTime, endTime)

	s.mu.Lock()
	s.last = report
	s.mu.Unlock()

	return report, nil
}

// LastReport returns the most recent cycle's report, or nil.
func (s *CleanupService) LastReport() *models.DeletionReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *CleanupService) processEntry(ctx context.Context, entry models.Entry, report *models.DeletionReport) {
	if s.keep.Contains(entry.Name) {
		report.Skipped = append(report.Skipped, entry.Name)
		s.metrics.IncEntriesSkipped()
		s.logger.Debug("Keeping entry", zap.String("name", entry.Name))
		return
	}

	path := filepath.Join(s.folder, entry.Name)

	switch entry.Kind {
	case models.EntryFile:
		if err := s.repo.RemoveFile(ctx, path); err != nil {
			report.Errors = append(report.Errors, models.EntryError{
				Name:   entry.Name,
				Reason: accessDeniedReason,
			})
			s.metrics.IncEntryErrors()
			s.logger.Warn("Failed to delete file",
				zap.String("name", entry.Name),
				zap.Error(err))
			return
		}
		report.Deleted = append(report.Deleted, entry.Name)
		s.metrics.IncEntriesDeleted()

	case models.EntryDir:
		if err := s.repo.RemoveTree(ctx, path); err != nil {
			report.Errors = append(report.Errors, models.EntryError{
				Name:   entry.Name,
				Reason: err.Error(),
			})
			s.metrics.IncEntryErrors()
			s.logger.Warn("Failed to delete directory",
				zap.String("name", entry.Name),
				zap.Error(err))
			return
		}
		// Trailing slash marks the entry as a deleted directory.
		report.Deleted = append(report.Deleted, entry.Name+"/")
		s.metrics.IncEntriesDeleted()

	default:
		report.Skipped = append(report.Skipped, entry.Name)
		s.metrics.IncEntriesSkipped()
		s.logger.Debug("Skipping special entry", zap.String("name", entry.Name))
	}
}

func (s *CleanupService) persistReport(ctx context.Context, report *models.DeletionReport, startTime, endTime time.Time) {
	if s.reports == nil {
		return
	}

	record := repositories.CycleReport{
		ID:          uuid.New().String(),
		Folder:      s.folder,
		HostInfo:    hostInfo(),
		StartTime:   startTime,
		EndTime:     endTime,
		Duration:    endTime.Sub(startTime),
		TotalCount:  report.Total(),
		Deleted:     len(report.Deleted),
		Skipped:     len(report.Skipped),
		Errors:      len(report.Errors),
		FirstErrors: helper.FormatFirstErrors(report.Errors),
		CreatedAt:   time.Now(),
	}

	if err := s.reports.SaveReport(ctx, record); err != nil {
		s.logger.Error("Failed to save cycle report", zap.Error(err))
	}
}

func (s *CleanupService) notify(report *models.DeletionReport, startTime, endTime time.Time) {
	if s.notifier == nil {
		return
	}

	message := helper.FormatCycleMessage(
		hostInfo(), s.folder,
		startTime, endTime,
		len(report.Deleted), len(report.Skipped), len(report.Errors))

	if err := s.notifier.SendNotification(message); err != nil {
		s.logger.Error("Failed to send notification", zap.Error(err))
	}
}

func hostInfo() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown host"
	}
	return hostname
}
