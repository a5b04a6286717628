// Package metrics holds the console's prometheus collectors.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTPRequests counts console API requests.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rxconsole_http_requests_total",
			Help: "Total number of console API requests",
		},
		[]string{"path", "method", "status"},
	)

	// HTTPDuration observes console API latency.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rxconsole_http_request_duration_seconds",
			Help:    "Histogram of console API response durations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	// BackendRequests counts calls to the platform REST API by outcome.
	BackendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rxconsole_backend_requests_total",
			Help: "Number of platform API calls",
		},
		[]string{"resource", "method", "status"},
	)

	// BackendDuration observes platform API latency.
	BackendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rxconsole_backend_request_duration_seconds",
			Help:    "Duration of platform API calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource", "method"},
	)

	// SocketEvents counts events received on the notification socket.
	SocketEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rxconsole_socket_events_total",
			Help: "Events received on the notification socket",
		},
		[]string{"event"},
	)

	// SocketReconnects counts reconnection attempts by result.
	SocketReconnects = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rxconsole_socket_reconnects_total",
			Help: "Notification socket reconnection attempts",
		},
		[]string{"result"},
	)

	// Exports counts generated export files.
	Exports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rxconsole_exports_total",
			Help: "Number of export files generated",
		},
		[]string{"resource", "format"},
	)
)

var initOnce sync.Once

// Init registers the collectors with the default registry. Later calls are no-ops.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			HTTPRequests,
			HTTPDuration,
			BackendRequests,
			BackendDuration,
			SocketEvents,
			SocketReconnects,
			Exports,
		)
	})
}
