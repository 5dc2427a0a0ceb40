package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP
// surface and the two solver engines. Adapted from the reference
// MetricsService, trading its cache/DB collectors (no cache or database in
// this service) for solve-specific ones.
type MetricsService struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec

	solveDuration     prometheus.Histogram
	backtrackAttempts prometheus.Histogram
	solveFailures     *prometheus.CounterVec
	hallsUsed         prometheus.Histogram

	requestCount         uint64
	requestDurationTotal uint64
}

// NewMetricsService registers the Prometheus collector set.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	solveDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_solve_duration_seconds",
		Help:    "Duration of a full generate (scheduler + hall allocator) call",
		Buckets: prometheus.DefBuckets,
	})

	backtrackAttempts := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_backtrack_attempts",
		Help:    "Backtracking recursive calls made by a single scheduler run",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16),
	})

	solveFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_solve_failures_total",
		Help: "Generate calls that failed, by error kind",
	}, []string{"kind"})

	hallsUsed := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_halls_used",
		Help:    "Number of halls consumed per occupied slot",
		Buckets: prometheus.LinearBuckets(1, 1, 10),
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, solveDuration, backtrackAttempts, solveFailures, hallsUsed, goroutines)

	return &MetricsService{
		registry:          registry,
		handler:           promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:   requestDuration,
		requestTotal:      requestTotal,
		solveDuration:     solveDuration,
		backtrackAttempts: backtrackAttempts,
		solveFailures:     solveFailures,
		hallsUsed:         hallsUsed,
	}
}

// Handler exposes the Prometheus HTTP handler for GET /metrics.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request latency and count metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// ObserveSolve records a completed generate call's duration and search cost.
func (m *MetricsService) ObserveSolve(duration time.Duration, backtrackAttempts int) {
	if m == nil {
		return
	}
	m.solveDuration.Observe(duration.Seconds())
	m.backtrackAttempts.Observe(float64(backtrackAttempts))
}

// ObserveSolveFailure records a generate call that failed with the given
// error code (INVALID_CONFIG, INSUFFICIENT_SLOTS, NO_SOLUTION,
// INSUFFICIENT_HALL_CAPACITY), used as the "kind" label value.
func (m *MetricsService) ObserveSolveFailure(kind string) {
	if m == nil {
		return
	}
	m.solveFailures.WithLabelValues(kind).Inc()
}

// ObserveHallsUsed records how many halls a single occupied slot consumed.
func (m *MetricsService) ObserveHallsUsed(count int) {
	if m == nil {
		return
	}
	m.hallsUsed.Observe(float64(count))
}
