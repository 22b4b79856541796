package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	portalRequestsTotal   *prometheus.CounterVec
	portalLatencySeconds  *prometheus.HistogramVec
	remindersGeneratedSum prometheus.Counter
	messagesSentTotal     prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used by the portal.
func RegisterMetrics() {
	registerOnce.Do(func() {
		portalRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_requests_total",
			Help: "Total number of portal API requests served.",
		}, []string{"method", "route", "status"})

		portalLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portal_request_latency_seconds",
			Help:    "Latency distribution for portal API requests.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"method", "route"})

		remindersGeneratedSum = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portal_reminders_generated_total",
			Help: "Total number of reminder notifications generated.",
		})

		messagesSentTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portal_messages_sent_total",
			Help: "Total number of chat messages appended to the global room.",
		})

		prometheus.MustRegister(portalRequestsTotal, portalLatencySeconds, remindersGeneratedSum, messagesSentTotal)
	})
}

// PortalRequests exposes the request counter.
func PortalRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return portalRequestsTotal
}

// PortalLatency exposes the request latency histogram.
func PortalLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return portalLatencySeconds
}

// RemindersGenerated exposes the reminder counter.
func RemindersGenerated() prometheus.Counter {
	RegisterMetrics()
	return remindersGeneratedSum
}

// MessagesSent exposes the chat message counter.
func MessagesSent() prometheus.Counter {
	RegisterMetrics()
	return messagesSentTotal
}
