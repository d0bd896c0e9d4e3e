package aggregators

import (
	"context"
	"errors"

	"bench-report/internal/models"
	"bench-report/internal/shared/loggers"
)

//go:generate mockgen -source=aggregator.go -destination=./mocks/aggregator_mock.go -package=mocks
type Aggregator interface {
	// Aggregate averages the sample values of each contiguous size-label run.
	// lines are 1-based numbered in order; blank lines are skipped.
	Aggregate(ctx context.Context, lines []string) (*models.AggregateResult, error)
}

type aggregator struct{}

func NewAggregator() Aggregator {
	return &aggregator{}
}

func (a *aggregator) Aggregate(ctx context.Context, lines []string) (*models.AggregateResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started aggregating %d lines", len(lines))

	acc := NewAccumulator()
	for i, text := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := acc.AddLine(i+1, text); err != nil {
			metricLinesTotal.WithLabelValues(resultOf(err)).Inc()
			logger.Debug().Err(err).Int(loggers.FieldLineNumber, i+1).Msg("aggregation stopped")
			return nil, err
		}
	}

	result, err := acc.Finish()
	if err != nil {
		metricLinesTotal.WithLabelValues(resultOf(err)).Inc()
		return nil, err
	}

	metricLinesTotal.WithLabelValues(resultParsed).Add(float64(result.LinesRead - result.LinesSkipped))
	metricLinesTotal.WithLabelValues(resultSkipped).Add(float64(result.LinesSkipped))
	metricGroupsTotal.Add(float64(len(result.Rows)))

	for _, row := range result.Rows {
		logger.Debug().
			Str(loggers.FieldSizeLabel, row.Label).
			Int("samples", row.Samples).
			Floats64("averages", row.Values).
			Msg("size group finalized")
	}

	return result, nil
}

func resultOf(err error) string {
	var unsorted *UnsortedInputError
	if errors.As(err, &unsorted) {
		return resultUnsorted
	}
	return resultMalformed
}
