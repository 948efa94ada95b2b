package cli

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/proto"
)

func TestSampleName(t *testing.T) {
	plain := &dto.Metric{}
	assert.Equal(t, "bank_account_balance", sampleName("bank_account_balance", plain))

	labelled := &dto.Metric{Label: []*dto.LabelPair{
		{Name: proto.String("operation"), Value: proto.String("deposit")},
		{Name: proto.String("status"), Value: proto.String("success")},
	}}
	assert.Equal(t, "bank_operations_total{operation=deposit,status=success}",
		sampleName("bank_operations_total", labelled))
}

func TestSampleValue(t *testing.T) {
	counter := &dto.Metric{Counter: &dto.Counter{Value: proto.Float64(3)}}
	value, ok := sampleValue(dto.MetricType_COUNTER, counter)
	assert.True(t, ok)
	assert.Equal(t, 3.0, value)

	gauge := &dto.Metric{Gauge: &dto.Gauge{Value: proto.Float64(12.5)}}
	value, ok = sampleValue(dto.MetricType_GAUGE, gauge)
	assert.True(t, ok)
	assert.Equal(t, 12.5, value)

	histogram := &dto.Metric{Histogram: &dto.Histogram{SampleCount: proto.Uint64(4)}}
	value, ok = sampleValue(dto.MetricType_HISTOGRAM, histogram)
	assert.True(t, ok)
	assert.Equal(t, 4.0, value)

	_, ok = sampleValue(dto.MetricType_SUMMARY, &dto.Metric{})
	assert.False(t, ok)
}

func TestLogMetricsSummary(t *testing.T) {
	reg := prometheus.NewRegistry()
	promauto.With(reg).NewGauge(prometheus.GaugeOpts{Name: "test_gauge"}).Set(7)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logMetricsSummary(context.Background(), logger, reg)

	assert.Contains(t, buf.String(), "session metrics")
	assert.Contains(t, buf.String(), "test_gauge=7")
}
