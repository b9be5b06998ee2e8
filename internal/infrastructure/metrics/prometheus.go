package metrics

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

type PrometheusMetrics struct {
	registry           *prometheus.Registry
	EntriesDeleted     *prometheus.CounterVec
	EntriesSkipped     *prometheus.CounterVec
	EntryErrors        *prometheus.CounterVec
	CycleDuration      *prometheus.HistogramVec
	LastCycleTime      *prometheus.GaugeVec
	CycleErrors        *prometheus.CounterVec
	HttpRequestTotal   *prometheus.CounterVec
	HttpRequestTimeout *prometheus.CounterVec
	HttpRequestErrors  *prometheus.CounterVec
	hostname           string
	logger             *zap.Logger
}

func (p *PrometheusMetrics) GetRegistry() *prometheus.Registry {
	return p.registry
}

func NewPrometheusMetrics(logger *zap.Logger) *PrometheusMetrics {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
		logger.Error("Failed to get hostname", zap.Error(err))
	}

	// Use default registry
	registry := prometheus.DefaultRegisterer.(*prometheus.Registry)

	m := &PrometheusMetrics{
		registry: registry,
		EntriesDeleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folder_cleanup",
			Name:      "entries_deleted_total",
			Help:      "The total number of folder entries deleted",
		}, []string{"hostname"}),

		EntriesSkipped: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folder_cleanup",
			Name:      "entries_skipped_total",
			Help:      "The total number of folder entries skipped (kept or unclassified)",
		}, []string{"hostname"}),

		EntryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folder_cleanup",
			Name:      "entry_errors_total",
			Help:      "The total number of entries that failed to delete",
		}, []string{"hostname"}),

		CycleDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "folder_cleanup",
			Name:      "cycle_duration_seconds",
			Help:      "Time spent running one cleanup cycle",
			Buckets:   prometheus.DefBuckets,
		}, []string{"hostname"}),

		LastCycleTime: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "folder_cleanup",
			Name:      "last_cycle_timestamp",
			Help:      "Timestamp of the last cleanup cycle",
		}, []string{"hostname"}),

		CycleErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folder_cleanup",
			Name:      "cycle_errors_total",
			Help:      "The total number of cycles that failed before deleting anything",
		}, []string{"hostname"}),

		HttpRequestTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folder_cleanup",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"hostname", "code", "method", "path"}),

		HttpRequestTimeout: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folder_cleanup",
			Name:      "http_request_timeouts_total",
			Help:      "Total number of HTTP request timeouts",
		}, []string{"hostname", "path", "method"}),

		HttpRequestErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folder_cleanup",
			Name:      "http_request_errors_total",
			Help:      "Total number of HTTP request errors",
		}, []string{"hostname", "path", "method", "status", "error_type"}),

		hostname: hostname,
		logger:   logger,
	}

	logger.Info("Prometheus metrics initialized",
		zap.String("hostname", hostname))

	return m
}
