// Package metrics provides Prometheus metrics for the passnet service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the passnet service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Render Metrics - one render per team panel
	rendersTotal    *prometheus.CounterVec
	renderLatency   prometheus.Histogram
	renderLinks     prometheus.Histogram
	renderPlayers   prometheus.Histogram
	renderNoPasses  prometheus.Counter
	networksBuilt   prometheus.Counter
	matchesLoaded   prometheus.Gauge
	eventsProcessed prometheus.Counter

	// Source Metrics - event data fetches
	sourceFetchLatency *prometheus.HistogramVec
	sourceFetchErrors  *prometheus.CounterVec
	sourceBytes        *prometheus.CounterVec

	// Job Queue Metrics - bounded render pool
	queueSize        prometheus.Gauge
	queueCapacity    prometheus.Gauge
	queueRejected    *prometheus.CounterVec
	queueWaitLatency prometheus.Histogram
	workersBusy      prometheus.Gauge
	workerCount      prometheus.Gauge
	jobsProcessed    *prometheus.CounterVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
	errorLatency         *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "passnet",
		subsystem:        "network",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// name applies the optional metric prefix.
func (m *Manager) name(n string) string {
	if m.metricPrefix == "" {
		return n
	}
	return m.metricPrefix + "_" + n
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.rendersTotal = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("renders_total"),
		Help:        "Total number of team panels rendered by side",
		ConstLabels: labels,
	}, []string{"side"})

	m.renderLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("render_latency_milliseconds"),
		Help:        "Histogram of end-to-end network render latency in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.renderLinks = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("pass_links"),
		Help:        "Number of distinct pass-links per team network",
		Buckets:     []float64{5, 10, 20, 40, 60, 80, 100, 150},
		ConstLabels: labels,
	})

	m.renderPlayers = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("players"),
		Help:        "Number of players per team network",
		Buckets:     []float64{6, 8, 10, 11, 12, 14, 16},
		ConstLabels: labels,
	})

	m.renderNoPasses = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("no_passes_total"),
		Help:        "Total number of team networks without any qualifying pass",
		ConstLabels: labels,
	})

	m.networksBuilt = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("networks_built_total"),
		Help:        "Total number of team networks aggregated",
		ConstLabels: labels,
	})

	m.matchesLoaded = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("matches_loaded"),
		Help:        "Number of selectable matches",
		ConstLabels: labels,
	})

	m.eventsProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("events_processed_total"),
		Help:        "Total number of match events read from the event source",
		ConstLabels: labels,
	})

	// Source Metrics
	m.sourceFetchLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("source_fetch_latency_milliseconds"),
		Help:        "Event source fetch latency in milliseconds by resource",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	}, []string{"resource"})

	m.sourceFetchErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("source_fetch_errors_total"),
		Help:        "Event source fetch errors by resource and kind",
		ConstLabels: labels,
	}, []string{"resource", "kind"})

	m.sourceBytes = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("source_bytes_total"),
		Help:        "Bytes read from the event source by resource",
		ConstLabels: labels,
	}, []string{"resource"})

	// HTTP Performance Metrics
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("http_requests_total"),
			Help:        "Total number of HTTP requests by endpoint and method",
			ConstLabels: labels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("http_request_duration_milliseconds"),
			Help:        "HTTP request duration in milliseconds",
			Buckets:     m.histogramBuckets,
			ConstLabels: labels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// Error Metrics
	m.errorRateByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("errors_by_component_total"),
		Help:        "Total number of errors by component",
		ConstLabels: labels,
	}, []string{"component", "error_type"})

	m.errorRateByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("errors_by_type_total"),
		Help:        "Total number of errors by type and severity",
		ConstLabels: labels,
	}, []string{"error_type", "severity"})

	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("errors_by_endpoint_total"),
		Help:        "Total number of errors by endpoint",
		ConstLabels: labels,
	}, []string{"endpoint", "method", "error_type"})

	m.errorLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("error_latency_milliseconds"),
		Help:        "Latency of failed operations in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	}, []string{"component", "error_type"})

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("system_memory_usage_bytes"),
		Help:        "System memory usage in bytes",
		ConstLabels: labels,
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("system_goroutine_count"),
		Help:        "Number of goroutines",
		ConstLabels: labels,
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("queue_size"),
		Help:        "Current number of render jobs waiting in the queue",
		ConstLabels: labels,
	})

	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("queue_capacity"),
		Help:        "Maximum number of render jobs the queue accepts",
		ConstLabels: labels,
	})

	m.queueRejected = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("queue_rejected_total"),
		Help:        "Total number of render jobs rejected by reason",
		ConstLabels: labels,
	}, []string{"reason"})

	m.queueWaitLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("queue_wait_milliseconds"),
		Help:        "Time render jobs spend queued before a worker picks them up",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.workersBusy = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("workers_busy"),
		Help:        "Number of workers currently running a render job",
		ConstLabels: labels,
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("workers"),
		Help:        "Number of render workers",
		ConstLabels: labels,
	})

	m.jobsProcessed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("jobs_processed_total"),
		Help:        "Total number of render jobs processed by result",
		ConstLabels: labels,
	}, []string{"result"})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("system_gc_pause_time_milliseconds"),
		Help:        "GC pause time in milliseconds",
		Buckets:     []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		ConstLabels: labels,
	})
}

// Enabled reports whether recording is active.
func (m *Manager) Enabled() bool { return m.enabled }

// RecordRender increments the render counter of a side.
func RecordRender(side string) {
	if !globalManager.enabled {
		return
	}
	globalManager.rendersTotal.WithLabelValues(side).Inc()
}

// RecordRenderLatency records render latency in milliseconds.
func RecordRenderLatency(latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.renderLatency.Observe(latencyMs)
}

// RecordNetworkSize records the number of links and players of a team network.
func RecordNetworkSize(links, players int) {
	if !globalManager.enabled {
		return
	}
	globalManager.networksBuilt.Inc()
	globalManager.renderLinks.Observe(float64(links))
	globalManager.renderPlayers.Observe(float64(players))
}

// RecordNoPasses counts a team network without qualifying passes.
func RecordNoPasses() {
	if !globalManager.enabled {
		return
	}
	globalManager.renderNoPasses.Inc()
}

// UpdateMatchesLoaded sets the number of selectable matches.
func UpdateMatchesLoaded(count int) {
	globalManager.matchesLoaded.Set(float64(count))
}

// RecordEventsProcessed adds n events read from the source.
func RecordEventsProcessed(n int) {
	if !globalManager.enabled {
		return
	}
	globalManager.eventsProcessed.Add(float64(n))
}

// RecordSourceFetch records the latency and size of a source fetch.
func RecordSourceFetch(resource string, latencyMs float64, bytes int64) {
	if !globalManager.enabled {
		return
	}
	globalManager.sourceFetchLatency.WithLabelValues(resource).Observe(latencyMs)
	if bytes > 0 {
		globalManager.sourceBytes.WithLabelValues(resource).Add(float64(bytes))
	}
}

// RecordSourceError counts a failed source fetch.
func RecordSourceError(resource, kind string) {
	globalManager.sourceFetchErrors.WithLabelValues(resource, kind).Inc()
}

// UpdateQueueSize sets the number of queued render jobs.
func UpdateQueueSize(size int) {
	globalManager.queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the queue capacity.
func UpdateQueueCapacity(capacity int) {
	globalManager.queueCapacity.Set(float64(capacity))
}

// RecordQueueRejected counts a job the queue refused.
func RecordQueueRejected(reason string) {
	globalManager.queueRejected.WithLabelValues(reason).Inc()
}

// RecordQueueWait records how long a job waited for a worker.
func RecordQueueWait(waitMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.queueWaitLatency.Observe(waitMs)
}

// UpdateWorkersBusy adds delta to the number of busy workers.
func UpdateWorkersBusy(delta int) {
	globalManager.workersBusy.Add(float64(delta))
}

// UpdateWorkerCount sets the number of render workers.
func UpdateWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// RecordJobProcessed counts a finished job by result ("ok" or "error").
func RecordJobProcessed(result string) {
	globalManager.jobsProcessed.WithLabelValues(result).Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error by component.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByType records an error by type and severity.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error by endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of a failed operation.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// UpdateSystemMemoryUsage updates system memory usage.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount updates the goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom registry used for metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RefreshInterval returns how often gauge metrics should be refreshed.
func RefreshInterval() time.Duration {
	return globalManager.refreshInterval
}
