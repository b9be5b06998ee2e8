package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-folder-cleanup/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo() *OSFolderRepository {
	repo := NewOSFolderRepository(zap.NewNop())
	repo.delay = time.Millisecond
	return repo
}

func TestListEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	linkSupported := os.Symlink(filepath.Join(dir, "a.txt"), filepath.Join(dir, "link")) == nil

	repo := newTestRepo()
	entries, err := repo.ListEntries(context.Background(), dir)
	require.NoError(t, err)

	kinds := make(map[string]models.EntryKind, len(entries))
	for _, e := range entries {
		kinds[e.Name] = e.Kind
	}

	assert.Equal(t, models.EntryFile, kinds["a.txt"])
	assert.Equal(t, models.EntryDir, kinds["sub"])
	if linkSupported {
		assert.Equal(t, models.EntryOther, kinds["link"])
	}
}

func TestListEntriesMissingFolder(t *testing.T) {
	repo := newTestRepo()
	_, err := repo.ListEntries(context.Background(), filepath.Join(t.TempDir(), "gone"))
	assert.Error(t, err)
}

func TestRemoveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "victim.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	repo := newTestRepo()
	require.NoError(t, repo.RemoveFile(context.Background(), path))
	assert.NoFileExists(t, path)
}

func TestRemoveFileExhaustsRetries(t *testing.T) {
	repo := newTestRepo()
	path := filepath.Join(t.TempDir(), "never-there.txt")

	start := time.Now()
	err := repo.RemoveFile(context.Background(), path)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "after 3 attempts")
	// Two sleeps of one millisecond, not three: no delay after the
	// final attempt.
	assert.Less(t, elapsed, time.Second)
}

func TestRemoveTree(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested", "deeper"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "nested", "f.txt"), []byte("x"), 0644))

	repo := newTestRepo()
	require.NoError(t, repo.RemoveTree(context.Background(), root))
	assert.NoDirExists(t, root)
}
