package metrics

import (
	"time"

	"go-folder-cleanup/internal/domain/metrics"
)

// Ensure PrometheusMetrics implements the domain collector
var _ metrics.MetricsCollector = (*PrometheusMetrics)(nil)

func (p *PrometheusMetrics) IncEntriesDeleted() {
	p.EntriesDeleted.WithLabelValues(p.hostname).Inc()
}

func (p *PrometheusMetrics) IncEntriesSkipped() {
	p.EntriesSkipped.WithLabelValues(p.hostname).Inc()
}

func (p *PrometheusMetrics) IncEntryErrors() {
	p.EntryErrors.WithLabelValues(p.hostname).Inc()
}

func (p *PrometheusMetrics) ObserveCycleDuration(duration time.Duration) {
	p.CycleDuration.WithLabelValues(p.hostname).Observe(duration.Seconds())
}

func (p *PrometheusMetrics) SetLastCycleTime(timestamp time.Time) {
	p.LastCycleTime.WithLabelValues(p.hostname).Set(float64(timestamp.Unix()))
}

func (p *PrometheusMetrics) IncCycleErrors() {
	p.CycleErrors.WithLabelValues(p.hostname).Inc()
}
