package monitoring

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aadishiv23/aadios/internal/shared/types"
)

const namespace = "aadios"

// Metrics holds all Prometheus metrics on a private registry
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Desktop metrics
	WindowOps      *prometheus.CounterVec
	OpenWindows    prometheus.Gauge
	SessionsActive prometheus.Gauge
	SessionsTotal  prometheus.Counter

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	// Preference metrics
	PrefWriteFailures *prometheus.CounterVec
	BreakerState      *prometheus.GaugeVec

	startTime time.Time

	// Snapshot for the JSON summary
	mu       sync.RWMutex
	snapshot counters
}

type counters struct {
	totalRequests int64
	totalErrors   int64
	totalDuration float64
	openWindows   int64
	sessions      int64
	wsConnections int64
}

// Summary holds current values for the JSON API
type Summary struct {
	TotalRequests    int64   `json:"total_requests"`
	AverageLatencyMs float64 `json:"average_latency_ms"`
	ErrorRate        float64 `json:"error_rate"`
	ActiveSessions   int64   `json:"active_sessions"`
	OpenWindows      int64   `json:"open_windows"`
	WSConnections    int64   `json:"ws_connections"`
	UptimeSeconds    float64 `json:"uptime_seconds"`
}

// NewMetrics creates a metrics collector with its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	m := &Metrics{
		registry:  reg,
		startTime: time.Now(),

		// HTTP metrics
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "path"},
		),
		ResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_response_size_bytes",
				Help:      "HTTP response size in bytes",
				Buckets:   []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),

		// Desktop metrics
		WindowOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "window_operations_total",
				Help:      "Window lifecycle operations by outcome",
			},
			[]string{"op", "outcome"},
		),
		OpenWindows: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "open_windows",
				Help:      "Open windows across all desktop sessions",
			},
		),
		SessionsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "desktop_sessions_active",
				Help:      "Number of live desktop sessions",
			},
		),
		SessionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "desktop_sessions_total",
				Help:      "Total number of desktop sessions created",
			},
		),

		// WebSocket metrics
		WSConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "ws_connections",
				Help:      "Number of active WebSocket connections",
			},
		),
		WSMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ws_messages_total",
				Help:      "Total number of WebSocket messages",
			},
			[]string{"direction", "type"},
		),

		// Preference metrics
		PrefWriteFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "preference_write_failures_total",
				Help:      "Preference writes that did not reach the store",
			},
			[]string{"key"},
		),
		BreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "circuit_breaker_state",
				Help:      "Circuit breaker state (0 closed, 1 half-open, 2 open)",
			},
			[]string{"name"},
		),
	}

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "uptime_seconds",
			Help:      "Service uptime in seconds",
		},
		m.uptime,
	)

	return m
}

// Registry returns the private registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) uptime() float64 {
	return time.Since(m.startTime).Seconds()
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))

	m.mu.Lock()
	m.snapshot.totalRequests++
	m.snapshot.totalDuration += duration.Seconds()
	if status >= 400 {
		m.snapshot.totalErrors++
	}
	m.mu.Unlock()
}

// ObserveWindowOp counts a window operation as applied or ignored
func (m *Metrics) ObserveWindowOp(op types.Op, changed bool) {
	outcome := "ignored"
	if changed {
		outcome = "applied"
	}
	m.WindowOps.WithLabelValues(string(op), outcome).Inc()
}

// AddOpenWindows adjusts the open window gauge
func (m *Metrics) AddOpenWindows(delta int) {
	m.OpenWindows.Add(float64(delta))
	m.mu.Lock()
	m.snapshot.openWindows += int64(delta)
	m.mu.Unlock()
}

// SessionOpened records a new desktop session
func (m *Metrics) SessionOpened() {
	m.SessionsActive.Inc()
	m.SessionsTotal.Inc()
	m.mu.Lock()
	m.snapshot.sessions++
	m.mu.Unlock()
}

// SessionClosed records a closed desktop session
func (m *Metrics) SessionClosed() {
	m.SessionsActive.Dec()
	m.mu.Lock()
	m.snapshot.sessions--
	m.mu.Unlock()
}

// PreferenceWriteFailed counts a failed preference write
func (m *Metrics) PreferenceWriteFailed(key string) {
	m.PrefWriteFailures.WithLabelValues(key).Inc()
}

// SetBreakerState exports a circuit breaker state
func (m *Metrics) SetBreakerState(name string, state int) {
	m.BreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordWSMessage records a WebSocket message
func (m *Metrics) RecordWSMessage(direction, msgType string) {
	m.WSMessages.WithLabelValues(direction, msgType).Inc()
}

// IncWSConnections increments WebSocket connections
func (m *Metrics) IncWSConnections() {
	m.WSConnections.Inc()
	m.mu.Lock()
	m.snapshot.wsConnections++
	m.mu.Unlock()
}

// DecWSConnections decrements WebSocket connections
func (m *Metrics) DecWSConnections() {
	m.WSConnections.Dec()
	m.mu.Lock()
	m.snapshot.wsConnections--
	m.mu.Unlock()
}

// Summary returns current values for the JSON API
func (m *Metrics) Summary() Summary {
	m.mu.RLock()
	s := m.snapshot
	m.mu.RUnlock()

	out := Summary{
		TotalRequests:  s.totalRequests,
		ActiveSessions: s.sessions,
		OpenWindows:    s.openWindows,
		WSConnections:  s.wsConnections,
		UptimeSeconds:  m.uptime(),
	}
	if s.totalRequests > 0 {
		out.AverageLatencyMs = s.totalDuration / float64(s.totalRequests) * 1000
		out.ErrorRate = float64(s.totalErrors) / float64(s.totalRequests)
	}
	return out
}
