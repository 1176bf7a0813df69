// Package metrics exposes seeding outcomes as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/JonMunkholm/seeder/internal/core"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "seeder"

// Recorder counts outcomes per kind and status and observes processing latency.
// It registers its collectors on a private registry so several recorders can
// coexist in one process.
type Recorder struct {
	registry *prometheus.Registry
	outcomes *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ core.MetricsRecorder = (*Recorder)(nil)

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Records processed, by entity kind and outcome status.",
		}, []string{"kind", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "record_duration_seconds",
			Help:      "Time spent validating and inserting one record.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"kind"}),
	}
	r.registry.MustRegister(r.outcomes, r.duration)
	return r
}

// ObserveOutcome records one processed record.
func (r *Recorder) ObserveOutcome(kind core.Kind, status core.Status, duration time.Duration) {
	r.outcomes.WithLabelValues(string(kind), string(status)).Inc()
	r.duration.WithLabelValues(string(kind)).Observe(duration.Seconds())
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the current metrics in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
