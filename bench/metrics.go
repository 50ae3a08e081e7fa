package bench

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the benchmark collectors on their own registry.
type Metrics struct {
	registry *prometheus.Registry

	duration *prometheus.HistogramVec
	solved   *prometheus.CounterVec
	relError *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "knapsack_solve_duration_seconds",
				Help:    "Wall time of a single solver call",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14),
			},
			[]string{"solver"},
		),
		solved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "knapsack_solved_total",
				Help: "Total number of instances solved",
			},
			[]string{"solver"},
		),
		relError: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "knapsack_relative_error",
				Help:    "Relative error against the known optimum",
				Buckets: []float64{0, 0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1},
			},
			[]string{"solver"},
		),
	}
	m.registry.MustRegister(m.duration, m.solved, m.relError)
	return m
}

// Registry exposes the private registry, e.g. for testutil or a gatherer.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Solved returns the solved counter of one solver.
func (m *Metrics) Solved(name string) prometheus.Counter {
	return m.solved.WithLabelValues(name)
}

func (m *Metrics) observeSolve(name string, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(name).Observe(d.Seconds())
	m.solved.WithLabelValues(name).Inc()
}

func (m *Metrics) observeError(name string, rel float64) {
	if m == nil {
		return
	}
	m.relError.WithLabelValues(name).Observe(rel)
}
