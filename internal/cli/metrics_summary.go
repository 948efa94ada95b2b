package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// logMetricsSummary writes every counter and gauge sample gathered from reg
// as one info record at the end of the session
func logMetricsSummary(ctx context.Context, logger *slog.Logger, reg prometheus.Gatherer) {
	families, err := reg.Gather()
	if err != nil {
		logger.WarnContext(ctx, "failed to gather session metrics", slog.String("error", err.Error()))
		return
	}

	attrs := make([]any, 0, len(families))
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			value, ok := sampleValue(family.GetType(), metric)
			if !ok {
				continue
			}
			attrs = append(attrs, slog.Float64(sampleName(family.GetName(), metric), value))
		}
	}

	logger.InfoContext(ctx, "session metrics", attrs...)
}

func sampleValue(kind dto.MetricType, metric *dto.Metric) (float64, bool) {
	switch kind {
	case dto.MetricType_COUNTER:
		return metric.GetCounter().GetValue(), true
	case dto.MetricType_GAUGE:
		return metric.GetGauge().GetValue(), true
	case dto.MetricType_HISTOGRAM:
		return float64(metric.GetHistogram().GetSampleCount()), true
	default:
		return 0, false
	}
}

// sampleName renders name{k=v,...} in label order
func sampleName(name string, metric *dto.Metric) string {
	labels := metric.GetLabel()
	if len(labels) == 0 {
		return name
	}

	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		parts = append(parts, label.GetName()+"="+label.GetValue())
	}
	return name + "{" + strings.Join(parts, ",") + "}"
}
