// Package metrics exposes prometheus metrics of account update batches.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Batch outcomes.
const (
	OutcomeCommitted = "committed"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// Metrics holds the batch collectors.
type Metrics struct {
	batches          *prometheus.CounterVec
	actions          *prometheus.CounterVec
	batchDuration    prometheus.Histogram
	dispatchFailures prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "credit",
			Name:      "batches_total",
			Help:      "Account update batches by outcome.",
		}, []string{"outcome"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "credit",
			Name:      "actions_total",
			Help:      "Actions applied by committed batches by kind.",
		}, []string{"kind"}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "credit",
			Name:      "batch_duration_seconds",
			Help:      "Time spent running an account update batch.",
			Buckets:   prometheus.DefBuckets,
		}),
		dispatchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "credit",
			Name:      "dispatch_failures_total",
			Help:      "Committed messages that could not be dispatched and stay in the outbox.",
		}),
	}

	reg.MustRegister(m.batches, m.actions, m.batchDuration, m.dispatchFailures)

	return m
}

// ObserveBatch records a finished batch.
func (m *Metrics) ObserveBatch(outcome string, took time.Duration) {
	m.batches.WithLabelValues(outcome).Inc()
	m.batchDuration.Observe(took.Seconds())
}

// AddAction records an applied action.
func (m *Metrics) AddAction(kind string) {
	m.actions.WithLabelValues(kind).Inc()
}

// AddDispatchFailure records a failed dispatch.
func (m *Metrics) AddDispatchFailure() {
	m.dispatchFailures.Inc()
}
