// Package metrics exposes Prometheus collectors for resolution runs. Embedding
// callers (e.g. a build daemon) scrape them from the default registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	resolutionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wireplan_resolutions_total",
			Help: "Number of resolution runs started.",
		},
	)
	resolutionFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wireplan_resolution_failures_total",
			Help: "Number of failed resolution runs by diagnostic kind.",
		},
		[]string{"kind"},
	)
	resolutionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wireplan_resolution_duration_seconds",
			Help:    "Time taken to resolve a wiring plan.",
			Buckets: prometheus.DefBuckets,
		},
	)
	plannedComponents = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wireplan_planned_components",
			Help: "Number of components in the last successfully resolved plan.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		resolutionsTotal,
		resolutionFailuresTotal,
		resolutionDuration,
		plannedComponents,
	)
}

// RunStarted records the start of a resolution run.
func RunStarted() {
	resolutionsTotal.Inc()
}

// RunFailed records a fatal diagnostic of the given kind.
func RunFailed(kind string) {
	resolutionFailuresTotal.WithLabelValues(kind).Inc()
}

// RunCompleted records a successful run.
func RunCompleted(d time.Duration, components int) {
	resolutionDuration.Observe(d.Seconds())
	plannedComponents.Set(float64(components))
}
