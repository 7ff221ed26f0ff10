package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	QueriesTotal         *prometheus.CounterVec
	QueryDuration        *prometheus.HistogramVec
	PaymentsRecorded     prometheus.Counter
	StatementsExported   *prometheus.CounterVec
	SnapshotSizeObserved prometheus.Gauge
}

func New() *Metrics {
	return &Metrics{
		QueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "paylens_payment_queries_total",
			Help: "Total number of payment report queries served, by operation",
		}, []string{"operation"}),
		QueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "paylens_payment_query_duration_seconds",
			Help:    "Payment report query duration in seconds, by operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		PaymentsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "paylens_payments_recorded_total",
			Help: "Total number of payments accepted through the ingest endpoint",
		}),
		StatementsExported: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "paylens_statements_exported_total",
			Help: "Total number of monthly statements exported, by format",
		}, []string{"format"}),
		SnapshotSizeObserved: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "paylens_payment_snapshot_size",
			Help: "Number of payments in the most recently loaded snapshot",
		}),
	}
}

func (m *Metrics) ObserveQuery(operation string, took time.Duration) {
	m.QueriesTotal.WithLabelValues(operation).Inc()
	m.QueryDuration.WithLabelValues(operation).Observe(took.Seconds())
}

func (m *Metrics) IncrementPaymentsRecorded() {
	m.PaymentsRecorded.Inc()
}

func (m *Metrics) IncrementStatementsExported(format string) {
	m.StatementsExported.WithLabelValues(format).Inc()
}

func (m *Metrics) ObserveSnapshotSize(count int) {
	m.SnapshotSizeObserved.Set(float64(count))
}
