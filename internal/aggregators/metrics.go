package aggregators

import (
	"bench-report/internal/shared/metrics"
)

const (
	resultParsed    = "parsed"
	resultSkipped   = "skipped"
	resultMalformed = "malformed"
	resultUnsorted  = "unsorted"
)

// metricLinesTotal counts benchmark log lines by outcome.
//
// A failing pass stops at the first bad line, so malformed/unsorted grow by one per
// failed run while parsed/skipped are only added for passes that complete.
var (
	metricLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "lines_total",
		},
		[]string{metrics.FieldResult},
	)

	metricGroupsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "size_groups_total",
		},
	)
)
