package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	rowsLoaded       *prometheus.CounterVec
	loadErrors       *prometheus.CounterVec
	cacheHits        *prometheus.CounterVec
	actualDivergence *prometheus.CounterVec
	latency          *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		rowsLoaded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spreadcast_rows_loaded_total",
				Help: "Total number of forecast rows parsed from the source",
			},
			[]string{"source"},
		),
		loadErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spreadcast_load_errors_total",
				Help: "Total number of load failures by type",
			},
			[]string{"type"},
		),
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spreadcast_cache_hits_total",
				Help: "Total number of record-cache hits",
			},
			[]string{"source"},
		),
		actualDivergence: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spreadcast_actual_divergence_total",
				Help: "Days observed with more than one distinct actual value",
			},
			[]string{"source"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spreadcast_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordRowsLoaded records the number of rows parsed from a source.
func (r *Recorder) RecordRowsLoaded(source string, n int) {
	r.rowsLoaded.WithLabelValues(source).Add(float64(n))
}

// RecordLoadError records a load failure by error type.
func (r *Recorder) RecordLoadError(kind string) {
	r.loadErrors.WithLabelValues(kind).Inc()
}

// RecordCacheHit records a record-cache hit for a source.
func (r *Recorder) RecordCacheHit(source string) {
	r.cacheHits.WithLabelValues(source).Inc()
}

// RecordActualDivergence records a day whose rows disagree on the actual value.
func (r *Recorder) RecordActualDivergence(source string) {
	r.actualDivergence.WithLabelValues(source).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
