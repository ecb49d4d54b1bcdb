package metrics

import (
	"time"
)

// RecordExternalAPIRequest records metrics for a call to an external service
// such as the S3 backup target
func (m *Metrics) RecordExternalAPIRequest(endpoint, method string, statusCode int, duration time.Duration) {
	m.safeExecute("RecordExternalAPIRequest", func() {
		status := categorizeStatus(statusCode)
		m.ExternalAPIRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
		m.ExternalAPIRequestDuration.WithLabelValues(endpoint, status).Observe(duration.Seconds())
	})
}

// RecordExternalAPIError records an external API failure
func (m *Metrics) RecordExternalAPIError(endpoint, errorType string) {
	m.safeExecute("RecordExternalAPIError", func() {
		m.ExternalAPIErrors.WithLabelValues(endpoint, errorType).Inc()
	})
}
