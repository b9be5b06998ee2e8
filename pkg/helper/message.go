package helper

import (
	"fmt"
	"strings"
	"time"

	"go-folder-cleanup/internal/domain/models"
)

// maxErrorDetails caps how many per-entry failures are spelled out in
// summaries and persisted reports.
const maxErrorDetails = 5

// FormatCycleMessage formats the notification sent after each cycle.
func FormatCycleMessage(
	hostInfo string,
	folder string,
	startTime time.Time,
	endTime time.Time,
	deleted int,
	skipped int,
	errors int,
) string {
	return fmt.Sprintf(`🧹 Folder cleanup completed on %s
Folder: %s

⏱ Time Information:
Started: %s
Finished: %s
Duration: %s

📊 Results:
✅ Deleted: %d
⏭ Skipped: %d
❌ Errors: %d`,
		hostInfo,
		folder,
		startTime.Format("2006-01-02 15:04:05"),
		endTime.Format("2006-01-02 15:04:05"),
		endTime.Sub(startTime).Round(time.Second),
		deleted,
		skipped,
		errors)
}

// FormatFirstErrors renders up to five entry failures as one line per
// entry, for persistence alongside the cycle counters.
func FormatFirstErrors(errs []models.EntryError) string {
	if len(errs) == 0 {
		return ""
	}

	n := len(errs)
	if n > maxErrorDetails {
		n = maxErrorDetails
	}

	lines := make([]string, 0, n)
	for _, e := range errs[:n] {
		lines = append(lines, fmt.Sprintf("%s: %s", e.Name, e.Reason))
	}
	return strings.Join(lines, "\n")
}
