// Package metrics publishes store operation counters for host processes
// that scrape them. The store itself only sees the Observer interface; this
// package is the Prometheus-backed implementation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder counts store operation outcomes by operation and status.
type Recorder struct {
	ops *prometheus.CounterVec
}

// NewRecorder registers the counters with reg. A nil registerer falls back
// to the default registry.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &Recorder{
		ops: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "shoebox",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Store operations by operation and outcome.",
		}, []string{"operation", "status"}),
	}
}

// Observe records one operation outcome. Implements store.Observer.
func (r *Recorder) Observe(operation string, success bool) {
	status := "error"
	if success {
		status = "ok"
	}
	r.ops.WithLabelValues(operation, status).Inc()
}
