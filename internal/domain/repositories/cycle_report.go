package repositories

import (
	"context"
	"time"
)

// CycleReport is the persisted record of one cleanup cycle.
type CycleReport struct {
	ID          string        `json:"id"`
	Folder      string        `json:"folder"`
	HostInfo    string        `json:"host_info"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Duration    time.Duration `json:"duration"`
	TotalCount  int           `json:"total_count"`
	Deleted     int           `json:"deleted"`
	Skipped     int           `json:"skipped"`
	Errors      int           `json:"errors"`
	FirstErrors string        `json:"first_errors,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// CycleReportRepository stores cleanup cycle outcomes.
type CycleReportRepository interface {
	// SaveReport persists the outcome of one cycle.
	SaveReport(ctx context.Context, report CycleReport) error

	// GetLatestReport returns the most recent cycle.
	GetLatestReport(ctx context.Context) (*CycleReport, error)

	// GetReportByID returns one cycle by its ID.
	GetReportByID(ctx context.Context, id string) (*CycleReport, error)

	// GetReports returns cycles ordered newest first, paginated.
	GetReports(ctx context.Context, limit, offset int) ([]CycleReport, error)
}
