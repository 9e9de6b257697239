package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	// API metrics
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sbxd_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"route", "method", "code"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sbxd_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	ActiveRequests = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sbxd_active_requests",
		Help: "Current in-flight requests",
	})

	// Registry metrics
	WorkspacesRegistered = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sbxd_workspaces_registered",
		Help: "Currently registered workspaces",
	})

	SyncWaitTimeoutsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sbxd_sync_wait_timeouts_total",
		Help: "Sync-wait requests that timed out",
	})

	// Health check metrics
	HealthChecksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sbxd_health_checks_total",
		Help: "Health check outcomes",
	}, []string{"checker", "result"})

	HealthCheckDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sbxd_health_check_duration_seconds",
		Help:    "Individual health check duration",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	}, []string{"checker"})
)

func RegisterAll(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequestsTotal, HTTPRequestDuration, ActiveRequests,
		WorkspacesRegistered, SyncWaitTimeoutsTotal,
		HealthChecksTotal, HealthCheckDuration,
	)
}
