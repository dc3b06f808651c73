package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rootr_solves_total",
		Help: "Solver invocations by method and outcome.",
	}, []string{"method", "outcome"})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rootr_solve_duration_seconds",
		Help:    "Wall-clock duration of solver invocations.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
	})
)

func observeSolve(method string, solveErr error, elapsed time.Duration) {
	outcome := "converged"
	if solveErr != nil {
		outcome = "not_found"
	}
	solvesTotal.WithLabelValues(method, outcome).Inc()
	solveDuration.Observe(elapsed.Seconds())
}
