package audit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the audit pipeline. One instance is
// shared by the Publisher and the Worker.
type Metrics struct {
	Published       prometheus.Counter
	Dropped         prometheus.Counter
	Persisted       prometheus.Counter
	PersistFailures prometheus.Counter
	BreakerDropped  prometheus.Counter
	BreakerState    prometheus.Gauge
}

// NewMetrics registers and returns the audit pipeline metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		Published: promauto.NewCounter(prometheus.CounterOpts{
			Name: "paylens_audit_events_published_total",
			Help: "Total number of audit events accepted into the buffer",
		}),
		Dropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "paylens_audit_events_dropped_total",
			Help: "Total number of audit events dropped because the buffer was full",
		}),
		Persisted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "paylens_audit_events_persisted_total",
			Help: "Total number of audit events successfully persisted",
		}),
		PersistFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "paylens_audit_persist_failures_total",
			Help: "Total number of audit event persistence failures",
		}),
		BreakerDropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "paylens_audit_breaker_dropped_total",
			Help: "Total number of audit events dropped while the store circuit was open",
		}),
		BreakerState: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "paylens_audit_breaker_state",
			Help: "Audit store circuit breaker state (0=closed/healthy, 1=open/unhealthy)",
		}),
	}
}

// IncPublished increments the published counter.
func (m *Metrics) IncPublished() {
	m.Published.Inc()
}

// IncDropped increments the buffer-full drop counter.
func (m *Metrics) IncDropped() {
	m.Dropped.Inc()
}

// IncPersisted increments the persisted counter.
func (m *Metrics) IncPersisted() {
	m.Persisted.Inc()
}

// IncPersistFailures increments the persist failures counter.
func (m *Metrics) IncPersistFailures() {
	m.PersistFailures.Inc()
}

// IncBreakerDropped increments the circuit breaker drop counter.
func (m *Metrics) IncBreakerDropped() {
	m.BreakerDropped.Inc()
}

// SetBreakerState sets the circuit breaker state gauge.
func (m *Metrics) SetBreakerState(open bool) {
	if open {
		m.BreakerState.Set(1)
	} else {
		m.BreakerState.Set(0)
	}
}
