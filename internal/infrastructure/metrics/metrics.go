package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Posting metrics
	TransactionsPosted *prometheus.CounterVec
	PostingDuration    prometheus.Histogram
	PostingAmount      prometheus.Histogram
	PostingErrors      *prometheus.CounterVec
	PostingRetries     prometheus.Counter

	// Account metrics
	AccountsCreated   prometheus.Counter
	AccountOperations *prometheus.CounterVec

	// Report metrics
	CashflowReports   prometheus.Counter
	ConsistencyChecks prometheus.Counter
	BalanceDrifts     prometheus.Gauge

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Posting metrics
		TransactionsPosted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bizsense_transactions_posted_total",
				Help: "Total number of transactions posted by type",
			},
			[]string{"type"},
		),
		PostingDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bizsense_posting_duration_seconds",
			Help:    "Duration of posting operations",
			Buckets: prometheus.DefBuckets,
		}),
		PostingAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bizsense_posting_amount",
			Help:    "Posted transaction amounts",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
		}),
		PostingErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bizsense_posting_errors_total",
				Help: "Total number of posting errors by type",
			},
			[]string{"error_type"},
		),
		PostingRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bizsense_posting_retries_total",
			Help: "Total number of posting transaction retries",
		}),

		// Account metrics
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bizsense_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AccountOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bizsense_account_operations_total",
				Help: "Total account operations by type",
			},
			[]string{"operation"},
		),

		// Report metrics
		CashflowReports: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bizsense_cashflow_reports_total",
			Help: "Total number of cashflow reports served",
		}),
		ConsistencyChecks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bizsense_consistency_checks_total",
			Help: "Total number of ledger consistency checks",
		}),
		BalanceDrifts: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "bizsense_balance_drifts",
			Help: "Number of drifted accounts found by the last consistency check",
		}),

		// Authentication metrics
		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bizsense_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),

		// Cache metrics
		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bizsense_cache_hits_total",
				Help: "Total cache hits",
			},
			[]string{"key"},
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bizsense_cache_misses_total",
				Help: "Total cache misses",
			},
			[]string{"key"},
		),
	}
}
