package reporting

import (
	"bench-report/internal/shared/metrics"
)

const (
	operationGenerate  = "generate"
	operationSummarize = "summarize"
)

var (
	metricReportsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "generated_total",
		},
		[]string{"operation", metrics.FieldErrorCode},
	)
)
