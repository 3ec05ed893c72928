package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LedgerMetrics records ledger operation counters and durations via
// prometheus.
type LedgerMetrics struct {
	categoriesCreated   prometheus.Counter
	transactionsCreated prometheus.Counter
	importRows          *prometheus.CounterVec
	summaryQueries      prometheus.Counter
	summaryDuration     prometheus.Histogram
	importDuration      prometheus.Histogram
}

func NewLedgerMetrics() MetricsRecorderInterface {
	return &LedgerMetrics{
		categoriesCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_categories_created_total",
				Help: "Total number of categories created",
			},
		),
		transactionsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transactions_created_total",
				Help: "Total number of transactions created",
			},
		),
		importRows: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_import_rows_total",
				Help: "Total number of CSV import rows by outcome",
			},
			[]string{"status"},
		),
		summaryQueries: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_summary_queries_total",
				Help: "Total number of category summary aggregations",
			},
		),
		summaryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_summary_duration_milliseconds",
				Help:    "Category summary aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		importDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_import_duration_milliseconds",
				Help:    "CSV import duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
	}
}

func (m *LedgerMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "category.created":
		m.categoriesCreated.Inc()
	case "transaction.created":
		m.transactionsCreated.Inc()
	case "import.row":
		if status := tags["status"]; status != "" {
			m.importRows.WithLabelValues(status).Inc()
		}
	case "summary.query":
		m.summaryQueries.Inc()
	}
}

func (m *LedgerMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "summary.query":
		m.summaryDuration.Observe(float64(duration.Milliseconds()))
	case "import.run":
		m.importDuration.Observe(float64(duration.Milliseconds()))
	}
}
