package metrics

import "time"

type MetricsCollector interface {
	IncEntriesDeleted()
	IncEntriesSkipped()
	IncEntryErrors()
	ObserveCycleDuration(duration time.Duration)
	SetLastCycleTime(timestamp time.Time)
	IncCycleErrors()

	// HTTP surface metrics
	IncHttpRequests(path, method string, status int)
	IncHttpTimeout(path, method string)
	IncHttpError(path, method string, status int, errorType string)
}
