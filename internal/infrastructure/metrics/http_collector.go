package metrics

import (
	"strconv"

	"go.uber.org/zap"
)

func (p *PrometheusMetrics) IncHttpRequests(path, method string, status int) {
	code := strconv.Itoa(status)

	p.HttpRequestTotal.WithLabelValues(
		p.hostname,
		code,
		method,
		path,
	).Inc()

	p.logger.Debug("HTTP request metric incremented",
		zap.String("path", path),
		zap.String("method", method),
		zap.String("code", code))
}

func (p *PrometheusMetrics) IncHttpTimeout(path, method string) {
	p.HttpRequestTimeout.WithLabelValues(
		p.hostname,
		path,
		method,
	).Inc()
}

func (p *PrometheusMetrics) IncHttpError(path, method string, status int, errorType string) {
	p.HttpRequestErrors.WithLabelValues(
		p.hostname,
		path,
		method,
		strconv.Itoa(status),
		errorType,
	).Inc()
}
