// SPDX-License-Identifier: MIT

// Package metrics records batch-run statistics as Prometheus collectors.
//
// A Recorder owns a private registry, so several Recorders (one per batch,
// one per test) never collide. Metrics are exported by writing the text
// exposition format to a file once a batch finishes; axisep is a batch
// tool and runs no HTTP listener.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Instance outcome labels for axisep_instances_total.
const (
	StatusSolved     = "solved"
	StatusIncomplete = "incomplete"
	StatusFailed     = "failed"
)

// Recorder collects per-instance statistics. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	registry *prometheus.Registry

	instances  *prometheus.CounterVec
	lines      prometheus.Histogram
	skipped    prometheus.Counter
	incomplete prometheus.Counter
	duration   prometheus.Histogram
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		instances: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "axisep_instances_total",
			Help: "Instances processed, by outcome",
		}, []string{"status"}),
		lines: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "axisep_lines_committed",
			Help:    "Lines committed per solved instance",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "axisep_candidates_skipped_total",
			Help: "Candidate lines tested and rejected for lacking a live crossing",
		}),
		incomplete: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "axisep_incomplete_solutions_total",
			Help: "Runs that stopped with unseparated pairs left",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "axisep_solve_duration_seconds",
			Help:    "Time to build and solve one instance",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
	}
	r.registry.MustRegister(r.instances, r.lines, r.skipped, r.incomplete, r.duration)

	return r
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.registry
}

// ObserveSolved records one finished run.
func (r *Recorder) ObserveSolved(lines, skipped int, complete bool, took time.Duration) {
	if r == nil {
		return
	}
	status := StatusSolved
	if !complete {
		status = StatusIncomplete
		r.incomplete.Inc()
	}
	r.instances.WithLabelValues(status).Inc()
	r.lines.Observe(float64(lines))
	r.skipped.Add(float64(skipped))
	r.duration.Observe(took.Seconds())
}

// ObserveFailed records an instance that could not be solved.
func (r *Recorder) ObserveFailed() {
	if r == nil {
		return
	}
	r.instances.WithLabelValues(StatusFailed).Inc()
}

// WriteFile writes the current metrics to path in the Prometheus text
// format, atomically.
func (r *Recorder) WriteFile(path string) error {
	if r == nil {
		return nil
	}

	return prometheus.WriteToTextfile(path, r.registry)
}
