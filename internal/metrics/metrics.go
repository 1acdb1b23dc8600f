// Package metrics defines Prometheus metrics for reloj-control.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reloj_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reloj_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reloj_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	ClockEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reloj_clock_events_total",
			Help: "Total clock events registered, by kind",
		},
		[]string{"kind"},
	)

	OpenShift = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "reloj_open_shift",
			Help: "1 while a shift is open, 0 otherwise",
		},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "reloj_websocket_connections",
			Help: "Active WebSocket connections",
		},
	)
)

// Register adds all metric vectors to the given registerer.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		RequestDuration,
		RequestsTotal,
		ErrorsTotal,
		ClockEventsTotal,
		OpenShift,
		WSConnections,
	)
}
