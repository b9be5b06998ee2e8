package repositories

import (
	"context"

	"go-folder-cleanup/internal/domain/models"
)

// FolderRepository abstracts filesystem access for the cleanup engine.
type FolderRepository interface {
	// ListEntries returns the direct children of folder in enumeration
	// order. It never recurses; subtree removal is RemoveTree's job.
	ListEntries(ctx context.Context, folder string) ([]models.Entry, error)

	// RemoveFile deletes a single regular file, retrying transient
	// failures a bounded number of times before giving up.
	RemoveFile(ctx context.Context, path string) error

	// RemoveTree deletes a directory and everything below it in one
	// attempt.
	RemoveTree(ctx context.Context, path string) error
}
