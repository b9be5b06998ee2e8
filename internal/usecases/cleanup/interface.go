package cleanup

import (
	"context"

	"go-folder-cleanup/internal/domain/models"
)

// FolderValidator gates the cleanup target. Implemented by
// internal/infrastructure/safety.
type FolderValidator interface {
	ValidateFolder(path string) error
}

type CleanupUseCase interface {
	// Cleanup runs one full cycle over the target folder and returns
	// the per-entry outcome.
	Cleanup(ctx context.Context) (*models.DeletionReport, error)

	// LastReport returns the report of the most recent completed
	// cycle, or nil if no cycle has run yet.
	LastReport() *models.DeletionReport
}
