package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	m.IncrementCounter("operation.success", map[string]string{"operation": OperationDeposit})
	m.IncrementCounter("operation.success", map[string]string{"operation": OperationDeposit})
	m.IncrementCounter("operation.rejected", map[string]string{"operation": OperationWithdraw, "reason": "insufficient_funds"})
	m.IncrementCounter("account.opened", nil)
	m.IncrementCounter("unknown.metric", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues(OperationDeposit, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues(OperationWithdraw, "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejectionsTotal.WithLabelValues(OperationWithdraw, "insufficient_funds")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.accountsOpenedTotal))
}

func TestPrometheusMetrics_Gauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	m.RecordGauge("account.balance", 150.25, nil)
	m.RecordGauge("account.active", 1, nil)

	assert.Equal(t, 150.25, testutil.ToFloat64(m.accountBalance))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.accountActive))
}

func TestPrometheusMetrics_ProcessingTime(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)

	m.RecordProcessingTime(OperationClose, 3*time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "bank_operation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}

func TestNoopMetrics(t *testing.T) {
	m := NewNoopMetrics()
	assert.NotPanics(t, func() {
		m.IncrementCounter("operation.success", nil)
		m.RecordGauge("account.balance", 1, nil)
		m.RecordProcessingTime(OperationDeposit, time.Second)
	})
}
