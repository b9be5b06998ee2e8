package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-folder-cleanup/internal/domain/repositories"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"go.uber.org/zap"
)

// Ensure SQLiteCycleReportRepository implements CycleReportRepository
var _ repositories.CycleReportRepository = (*SQLiteCycleReportRepository)(nil)

type SQLiteCycleReportRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSQLiteCycleReportRepository(dbPath string, logger *zap.Logger) (*SQLiteCycleReportRepository, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo := &SQLiteCycleReportRepository{
		db:     db,
		logger: logger,
	}

	if err := repo.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return repo, nil
}

func (r *SQLiteCycleReportRepository) initSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS cycle_reports (
			id TEXT PRIMARY KEY,
			folder TEXT NOT NULL,
			host_info TEXT NOT NULL,
			start_time TIMESTAMP NOT NULL,
			end_time TIMESTAMP NOT NULL,
			duration_ms INTEGER NOT NULL,
			total_count INTEGER NOT NULL,
			deleted INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			errors INTEGER NOT NULL,
			first_errors TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_cycle_reports_start_time ON cycle_reports(start_time);
		CREATE INDEX IF NOT EXISTS idx_cycle_reports_created_at ON cycle_reports(created_at);
	`)
	return err
}

func (r *SQLiteCycleReportRepository) Close() error {
	return r.db.Close()
}

// SaveReport persists the outcome of one cleanup cycle.
func (r *SQLiteCycleReportRepository) SaveReport(ctx context.Context, report repositories.CycleReport) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cycle_reports
		(id, folder, host_info, start_time, end_time, duration_ms, total_count, deleted, skipped, errors, first_errors, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		report.ID,
		report.Folder,
		report.HostInfo,
		report.StartTime,
		report.EndTime,
		report.Duration.Milliseconds(),
		report.TotalCount,
		report.Deleted,
		report.Skipped,
		report.Errors,
		report.FirstErrors,
		report.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save cycle report: %w", err)
	}

	r.logger.Info("Cycle report saved to SQLite",
		zap.String("id", report.ID))

	return nil
}

// GetLatestReport returns the most recent cycle report.
func (r *SQLiteCycleReportRepository) GetLatestReport(ctx context.Context) (*repositories.CycleReport, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, folder, host_info, start_time, end_time, duration_ms, total_count, deleted, skipped, errors, first_errors, created_at
		FROM cycle_reports
		ORDER BY start_time DESC
		LIMIT 1
	`)

	return r.scanReport(row)
}

// GetReportByID returns one cycle report by its ID.
func (r *SQLiteCycleReportRepository) GetReportByID(ctx context.Context, id string) (*repositories.CycleReport, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, folder, host_info, start_time, end_time, duration_ms, total_count, deleted, skipped, errors, first_errors, created_at
		FROM cycle_reports
		WHERE id = ?
	`, id)

	return r.scanReport(row)
}

// GetReports returns cycle reports newest first, paginated.
func (r *SQLiteCycleReportRepository) GetReports(ctx context.Context, limit, offset int) ([]repositories.CycleReport, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, folder, host_info, start_time, end_time, duration_ms, total_count, deleted, skipped, errors, first_errors, created_at
		FROM cycle_reports
		ORDER BY start_time DESC
		LIMIT ? OFFSET ?
	`, limit, offset)

	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []repositories.CycleReport
	for rows.Next() {
		var id, folder, hostInfo, firstErrors string
		var startTime, endTime, createdAt time.Time
		var durationMs, totalCount, deleted, skipped, errors int64

		err := rows.Scan(&id, &folder, &hostInfo, &startTime, &endTime, &durationMs,
			&totalCount, &deleted, &skipped, &errors, &firstErrors, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		reports = append(reports, repositories.CycleReport{
			ID:          id,
			Folder:      folder,
			HostInfo:    hostInfo,
			StartTime:   startTime,
			EndTime:     endTime,
			Duration:    time.Duration(durationMs) * time.Millisecond,
			TotalCount:  int(totalCount),
			Deleted:     int(deleted),
			Skipped:     int(skipped),
			Errors:      int(errors),
			FirstErrors: firstErrors,
			CreatedAt:   createdAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return reports, nil
}

func (r *SQLiteCycleReportRepository) scanReport(row *sql.Row) (*repositories.CycleReport, error) {
	var id, folder, hostInfo, firstErrors string
	var startTime, endTime, createdAt time.Time
	var durationMs, totalCount, deleted, skipped, errors int64

	err := row.Scan(&id, &folder, &hostInfo, &startTime, &endTime, &durationMs,
		&totalCount, &deleted, &skipped, &errors, &firstErrors, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no cycle reports found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan report: %w", err)
	}

	return &repositories.CycleReport{
		ID:          id,
		Folder:      folder,
		HostInfo:    hostInfo,
		StartTime:   startTime,
		EndTime:     endTime,
		Duration:    time.Duration(durationMs) * time.Millisecond,
		TotalCount:  int(totalCount),
		Deleted:     int(deleted),
		Skipped:     int(skipped),
		Errors:      int(errors),
		FirstErrors: firstErrors,
		CreatedAt:   createdAt,
	}, nil
}
