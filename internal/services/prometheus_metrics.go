package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	operationsTotal     *prometheus.CounterVec
	rejectionsTotal     *prometheus.CounterVec
	operationDuration   *prometheus.HistogramVec
	accountBalance      prometheus.Gauge
	accountActive       prometheus.Gauge
	accountsOpenedTotal prometheus.Counter
}

// NewPrometheusMetrics registers the console metrics on reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_operations_total",
				Help: "Total number of account operations by outcome",
			},
			[]string{"operation", "status"},
		),
		rejectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_operation_rejections_total",
				Help: "Total number of rejected account operations by reason",
			},
			[]string{"operation", "reason"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bank_operation_duration_seconds",
				Help:    "Account operation duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10),
			},
			[]string{"operation"},
		),
		accountBalance: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bank_account_balance",
				Help: "Current balance of the session account",
			},
		),
		accountActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bank_account_active",
				Help: "1 while the session account is active, 0 once closed",
			},
		),
		accountsOpenedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bank_accounts_opened_total",
				Help: "Total number of accounts opened",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]

	switch name {
	case "operation.success":
		m.operationsTotal.WithLabelValues(operation, "success").Inc()
	case "operation.rejected":
		m.operationsTotal.WithLabelValues(operation, "rejected").Inc()
		if reason := tags["reason"]; reason != "" {
			m.rejectionsTotal.WithLabelValues(operation, reason).Inc()
		}
	case "account.opened":
		m.accountsOpenedTotal.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.operationDuration.WithLabelValues(name).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "account.balance":
		m.accountBalance.Set(value)
	case "account.active":
		m.accountActive.Set(value)
	}
}

// NoopMetrics discards everything; used when metrics are disabled
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface {
	return NoopMetrics{}
}

func (NoopMetrics) IncrementCounter(string, map[string]string)     {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
