package cleanup

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"go-folder-cleanup/internal/domain/models"
	"go-folder-cleanup/internal/domain/repositories"

	"go.uber.org/zap"
)

// Mock folder repository
type mockFolderRepository struct {
	entries      []models.Entry
	listErr      error
	fileErrs     map[string]error
	treeErrs     map[string]error
	removedFiles []string
	removedTrees []string
}

func (m *mockFolderRepository) ListEntries(ctx context.Context, folder string) ([]models.Entry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.entries, nil
}

func (m *mockFolderRepository) RemoveFile(ctx context.Context, path string) error {
	name := filepath.Base(path)
	if err := m.fileErrs[name]; err != nil {
		return err
	}
	m.removedFiles = append(m.removedFiles, name)
	return nil
}

func (m *mockFolderRepository) RemoveTree(ctx context.Context, path string) error {
	name := filepath.Base(path)
	if err := m.treeErrs[name]; err != nil {
		return err
	}
	m.removedTrees = append(m.removedTrees, name)
	return nil
}

// Mock cycle report repository
type mockCycleReportRepository struct {
	savedReports []repositories.CycleReport
}

func (m *mockCycleReportRepository) SaveReport(ctx context.Context, report repositories.CycleReport) error {
	m.savedReports = append(m.savedReports, report)
	return nil
}

func (m *mockCycleReportRepository) GetLatestReport(ctx context.Context) (*repositories.CycleReport, error) {
	if len(m.savedReports) == 0 {
		return nil, fmt.Errorf("no cycle reports found")
	}
	report := m.savedReports[len(m.savedReports)-1]
	return &report, nil
}

func (m *mockCycleReportRepository) GetReportByID(ctx context.Context, id string) (*repositories.CycleReport, error) {
	for _, report := range m.savedReports {
		if report.ID == id {
			return &report, nil
		}
	}
	return nil, fmt.Errorf("report with ID %s not found", id)
}

func (m *mockCycleReportRepository) GetReports(ctx context.Context, limit, offset int) ([]repositories.CycleReport, error) {
	total := len(m.savedReports)
	if offset >= total {
		return []repositories.CycleReport{}, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return m.savedReports[offset:end], nil
}

// Mock notifier
type mockNotifier struct {
	messages []string
}

func (m *mockNotifier) SendNotification(message string) error {
	m.messages = append(m.messages, message)
	return nil
}

// Mock validator
type mockValidator struct {
	err error
}

func (m *mockValidator) ValidateFolder(path string) error {
	return m.err
}

// Mock metrics collector
type mockMetricsCollector struct {
	entriesDeleted int
	entriesSkipped int
	entryErrors    int
	cycleErrors    int
	lastCycleTime  time.Time
	cycleDuration  time.Duration
}

func (m *mockMetricsCollector) IncEntriesDeleted() { m.entriesDeleted++ }
func (m *mockMetricsCollector) IncEntriesSkipped() { m.entriesSkipped++ }
func (m *mockMetricsCollector) IncEntryErrors()    { m.entryErrors++ }
func (m *mockMetricsCollector) IncCycleErrors()    { m.cycleErrors++ }

func (m *mockMetricsCollector) ObserveCycleDuration(duration time.Duration) {
	m.cycleDuration = duration
}

func (m *mockMetricsCollector) SetLastCycleTime(timestamp time.Time) {
	m.lastCycleTime = timestamp
}

func (m *mockMetricsCollector) IncHttpRequests(path, method string, status int)                   {}
func (m *mockMetricsCollector) IncHttpTimeout(path, method string)                                {}
func (m *mockMetricsCollector) IncHttpError(path, method string, status int, errorType string)    {}

func TestCleanupService(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name         string
		entries      []models.Entry
		keep         []string
		listErr      error
		validatorErr error
		fileErrs     map[string]error
		treeErrs     map[string]error
		wantErr      bool
		wantDeleted  []string
		wantSkipped  []string
		wantErrors   []models.EntryError
		wantNotified bool
		wantSaved    bool
	}{
		{
			name: "deletes everything except the keep set",
			entries: []models.Entry{
				{Name: "a.txt", Kind: models.EntryFile},
				{Name: "b.txt", Kind: models.EntryFile},
				{Name: "keep_me", Kind: models.EntryDir},
			},
			keep:         []string{"keep_me"},
			wantDeleted:  []string{"a.txt", "b.txt"},
			wantSkipped:  []string{"keep_me"},
			wantErrors:   nil,
			wantNotified: true,
			wantSaved:    true,
		},
		{
			name: "keep matching ignores case",
			entries: []models.Entry{
				{Name: "Node_Modules", Kind: models.EntryDir},
				{Name: "build", Kind: models.EntryDir},
			},
			keep:         []string{"NODE_MODULES"},
			wantDeleted:  []string{"build/"},
			wantSkipped:  []string{"Node_Modules"},
			wantErrors:   nil,
			wantNotified: true,
			wantSaved:    true,
		},
		{
			name: "file failure is reported as access denied",
			entries: []models.Entry{
				{Name: "a.txt", Kind: models.EntryFile},
				{Name: "locked.txt", Kind: models.EntryFile},
			},
			fileErrs:     map[string]error{"locked.txt": errors.New("permission denied")},
			wantDeleted:  []string{"a.txt"},
			wantSkipped:  nil,
			wantErrors:   []models.EntryError{{Name: "locked.txt", Reason: "access denied"}},
			wantNotified: true,
			wantSaved:    true,
		},
		{
			name: "directory failure captures the underlying reason",
			entries: []models.Entry{
				{Name: "logs", Kind: models.EntryDir},
			},
			treeErrs:     map[string]error{"logs": errors.New("directory in use")},
			wantDeleted:  nil,
			wantSkipped:  nil,
			wantErrors:   []models.EntryError{{Name: "logs", Reason: "directory in use"}},
			wantNotified: true,
			wantSaved:    true,
		},
		{
			name: "special entries are skipped not deleted",
			entries: []models.Entry{
				{Name: "socket", Kind: models.EntryOther},
				{Name: "a.txt", Kind: models.EntryFile},
			},
			wantDeleted:  []string{"a.txt"},
			wantSkipped:  []string{"socket"},
			wantErrors:   nil,
			wantNotified: true,
			wantSaved:    true,
		},
		{
			name:         "validation failure aborts the cycle",
			entries:      []models.Entry{{Name: "a.txt", Kind: models.EntryFile}},
			validatorErr: errors.New("folder replaced"),
			wantErr:      true,
		},
		{
			name:    "enumeration failure aborts the cycle",
			listErr: errors.New("folder vanished"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockFolderRepository{
				entries:  tt.entries,
				listErr:  tt.listErr,
				fileErrs: tt.fileErrs,
				treeErrs: tt.treeErrs,
			}
			reportRepo := &mockCycleReportRepository{}
			notifier := &mockNotifier{}
			metrics := &mockMetricsCollector{}
			validator := &mockValidator{err: tt.validatorErr}

			service := NewCleanupService(
				"/data/app/cache", models.NewKeepSet(tt.keep...),
				repo, reportRepo, notifier, metrics, validator, logger)

			report, err := service.Cleanup(context.Background())

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if metrics.cycleErrors != 1 {
					t.Errorf("expected 1 cycle error, got %d", metrics.cycleErrors)
				}
				if len(repo.removedFiles)+len(repo.removedTrees) != 0 {
					t.Error("nothing should be deleted when the cycle fails upfront")
				}
				if len(reportRepo.savedReports) != 0 {
					t.Error("no report should be saved when the cycle fails upfront")
				}
				if service.LastReport() != nil {
					t.Error("failed cycle must not replace the last report")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(report.Deleted, tt.wantDeleted) {
				t.Errorf("deleted = %v, want %v", report.Deleted, tt.wantDeleted)
			}
			if !reflect.DeepEqual(report.Skipped, tt.wantSkipped) {
				t.Errorf("skipped = %v, want %v", report.Skipped, tt.wantSkipped)
			}
			if !reflect.DeepEqual(report.Errors, tt.wantErrors) {
				t.Errorf("errors = %v, want %v", report.Errors, tt.wantErrors)
			}

			// Every enumerated entry is accounted for in exactly one
			// bucket.
			if report.Total() != len(tt.entries) {
				t.Errorf("report accounts for %d entries, folder had %d",
					report.Total(), len(tt.entries))
			}

			if metrics.entriesDeleted != len(tt.wantDeleted) {
				t.Errorf("deleted metric = %d, want %d", metrics.entriesDeleted, len(tt.wantDeleted))
			}
			if metrics.entriesSkipped != len(tt.wantSkipped) {
				t.Errorf("skipped metric = %d, want %d", metrics.entriesSkipped, len(tt.wantSkipped))
			}
			if metrics.entryErrors != len(tt.wantErrors) {
				t.Errorf("error metric = %d, want %d", metrics.entryErrors, len(tt.wantErrors))
			}
			if metrics.lastCycleTime.IsZero() {
				t.Error("last cycle time not recorded")
			}

			if tt.wantNotified && len(notifier.messages) == 0 {
				t.Error("expected notification, but none was sent")
			}

			if tt.wantSaved {
				if len(reportRepo.savedReports) != 1 {
					t.Fatalf("expected 1 saved report, got %d", len(reportRepo.savedReports))
				}
				saved := reportRepo.savedReports[0]
				if saved.TotalCount != report.Total() {
					t.Errorf("saved total = %d, want %d", saved.TotalCount, report.Total())
				}
				if saved.Errors != len(report.Errors) {
					t.Errorf("saved errors = %d, want %d", saved.Errors, len(report.Errors))
				}
			}

			if service.LastReport() != report {
				t.Error("LastReport should return the report of the completed cycle")
			}
		})
	}
}

func TestCleanupDirectoriesMarkedWithSlash(t *testing.T) {
	repo := &mockFolderRepository{
		entries: []models.Entry{{Name: "old_builds", Kind: models.EntryDir}},
	}
	service := NewCleanupService(
		"/data/app/cache", models.NewKeepSet(),
		repo, &mockCycleReportRepository{}, nil, &mockMetricsCollector{},
		&mockValidator{}, zap.NewNop())

	report, err := service.Cleanup(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Deleted) != 1 || report.Deleted[0] != "old_builds/" {
		t.Errorf("deleted = %v, want [old_builds/]", report.Deleted)
	}
}

func TestCleanupSecondRunIsEmpty(t *testing.T) {
	repo := &mockFolderRepository{
		entries: []models.Entry{
			{Name: "a.txt", Kind: models.EntryFile},
			{Name: "keep_me", Kind: models.EntryDir},
		},
	}
	service := NewCleanupService(
		"/data/app/cache", models.NewKeepSet("keep_me"),
		repo, &mockCycleReportRepository{}, nil, &mockMetricsCollector{},
		&mockValidator{}, zap.NewNop())

	first, err := service.Cleanup(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Deleted) != 1 {
		t.Fatalf("first run deleted = %v, want one entry", first.Deleted)
	}

	// Only the kept entry remains for the second pass.
	repo.entries = []models.Entry{{Name: "keep_me", Kind: models.EntryDir}}

	second, err := service.Cleanup(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second.Deleted) != 0 {
		t.Errorf("second run deleted = %v, want none", second.Deleted)
	}
	if len(second.Errors) != 0 {
		t.Errorf("second run errors = %v, want none", second.Errors)
	}
}
