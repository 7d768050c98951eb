package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PromHooks implements SearchHooks with Prometheus collectors held in a
// private registry, so several instances never collide.
type PromHooks struct {
	registry *prometheus.Registry

	solves         *prometheus.CounterVec
	depthSearches  *prometheus.CounterVec
	solveDuration  *prometheus.HistogramVec
	solutionLength *prometheus.HistogramVec
}

// NewPromHooks creates and registers the solver metrics.
func NewPromHooks() *PromHooks {
	h := &PromHooks{
		registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "permsolve_solves_total",
				Help: "Total number of solves, by puzzle and result",
			},
			[]string{"puzzle", "result"},
		),
		depthSearches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "permsolve_depth_searches_total",
				Help: "Total number of exact-depth searches, by puzzle and depth",
			},
			[]string{"puzzle", "depth"},
		),
		solveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "permsolve_solve_duration_seconds",
				Help: "Duration of solves in seconds",
				// From trivial scrambles to exhaustive deep searches.
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
			},
			[]string{"puzzle"},
		),
		solutionLength: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "permsolve_solution_length_moves",
				Help:    "Length of solutions found",
				Buckets: prometheus.LinearBuckets(0, 1, 15),
			},
			[]string{"puzzle"},
		),
	}
	h.registry.MustRegister(h.solves, h.depthSearches, h.solveDuration, h.solutionLength)
	return h
}

// Registry returns the registry holding the solver metrics.
func (h *PromHooks) Registry() *prometheus.Registry {
	return h.registry
}

// OnSolveStart does nothing; solves are counted on completion.
func (h *PromHooks) OnSolveStart(context.Context, string, string, int) {}

// OnDepthComplete counts one exact-depth search.
func (h *PromHooks) OnDepthComplete(_ context.Context, puzzle string, depth int, _ bool, _ time.Duration) {
	h.depthSearches.WithLabelValues(puzzle, strconv.Itoa(depth)).Inc()
}

// OnSolveComplete counts the solve and records its duration and length.
func (h *PromHooks) OnSolveComplete(_ context.Context, puzzle string, found bool, length int, duration time.Duration) {
	result := "unsolved"
	if found {
		result = "solved"
		h.solutionLength.WithLabelValues(puzzle).Observe(float64(length))
	}
	h.solves.WithLabelValues(puzzle, result).Inc()
	h.solveDuration.WithLabelValues(puzzle).Observe(duration.Seconds())
}

// WriteTextfile writes the metrics in the text exposition format, for the
// node_exporter textfile collector.
func (h *PromHooks) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, h.registry)
}

// Ensure PromHooks implements SearchHooks.
var _ SearchHooks = (*PromHooks)(nil)
