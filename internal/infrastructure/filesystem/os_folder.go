package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-folder-cleanup/internal/domain/models"
	"go-folder-cleanup/internal/domain/repositories"

	"go.uber.org/zap"
)

const (
	// Deletion targets are frequently locked for a moment by other
	// processes (antivirus scans, indexers). A short bounded retry
	// absorbs those races without risking an unbounded stall.
	fileRetryAttempts = 3
	fileRetryDelay    = 250 * time.Millisecond
)

// Ensure OSFolderRepository implements FolderRepository
var _ repositories.FolderRepository = (*OSFolderRepository)(nil)

// OSFolderRepository performs folder enumeration and deletion against
// the local filesystem.
type OSFolderRepository struct {
	logger   *zap.Logger
	attempts int
	delay    time.Duration
}

func NewOSFolderRepository(logger *zap.Logger) *OSFolderRepository {
	return &OSFolderRepository{
		logger:   logger,
		attempts: fileRetryAttempts,
		delay:    fileRetryDelay,
	}
}

// ListEntries returns the direct children of folder in the order the
// OS enumerates them.
func (r *OSFolderRepository) ListEntries(ctx context.Context, folder string) ([]models.Entry, error) {
	dirents, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %q: %w", folder, err)
	}

	entries := make([]models.Entry, 0, len(dirents))
	for _, d := range dirents {
		kind := models.EntryOther
		switch {
		case d.IsDir():
			kind = models.EntryDir
		case d.Type().IsRegular():
			kind = models.EntryFile
		}
		entries = append(entries, models.Entry{Name: d.Name(), Kind: kind})
	}

	r.logger.Debug("Enumerated folder",
		zap.String("folder", folder),
		zap.Int("count", len(entries)))
	return entries, nil
}

// RemoveFile deletes one regular file. Permission failures and files
// that vanish mid-attempt are retried up to the attempt bound with a
// fixed delay; any other failure is returned immediately. Once the
// bound is exhausted the last error is returned, never swallowed.
func (r *OSFolderRepository) RemoveFile(ctx context.Context, path string) error {
	var lastErr error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		err := os.Remove(path)
		if err == nil {
			return nil
		}
		if !os.IsPermission(err) && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %q: %w", path, err)
		}

		lastErr = err
		r.logger.Debug("Transient deletion failure",
			zap.String("path", path),
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt < r.attempts {
			time.Sleep(r.delay)
		}
	}
	return fmt.Errorf("failed to remove %q after %d attempts: %w",
		path, r.attempts, lastErr)
}

// RemoveTree deletes a directory subtree in a single attempt.
func (r *OSFolderRepository) RemoveTree(ctx context.Context, path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove tree %q: %w", filepath.Clean(path), err)
	}
	return nil
}
