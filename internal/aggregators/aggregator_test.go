package aggregators

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"bench-report/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_Scenario(t *testing.T) {
	t.Parallel()

	lines := []string{
		"64B 1 a 10.0 b 20.0",
		"64B 1 a 30.0 b 40.0",
		"512B 1 a 5.0 b 5.0",
	}

	result, err := NewAggregator().Aggregate(context.Background(), lines)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, result.Metrics)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, &models.OutputRow{Label: "64B", Values: []float64{20, 30}, Samples: 2}, result.Rows[0])
	assert.Equal(t, &models.OutputRow{Label: "512B", Values: []float64{5, 5}, Samples: 1}, result.Rows[1])
	assert.Equal(t, 3, result.LinesRead)
	assert.Equal(t, 0, result.LinesSkipped)
}

func TestAggregate_SingleLine(t *testing.T) {
	t.Parallel()

	result, err := NewAggregator().Aggregate(context.Background(), []string{"128K bw 6.25 tp 12.5"})
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "128K", result.Rows[0].Label)
	assert.Equal(t, []float64{6.25, 12.5}, result.Rows[0].Values)
}

func TestAggregate_RowsFollowContiguousRuns(t *testing.T) {
	t.Parallel()

	labels := []string{"64B", "512B", "1K", "2K", "4K", "16K", "64K", "128K", "256K", "1M"}
	var lines []string
	expected := make(map[string][]float64)
	for i, label := range labels {
		repeats := i%3 + 1
		var sum float64
		for r := 0; r < repeats; r++ {
			v := float64(i*10 + r)
			sum += v
			lines = append(lines, fmt.Sprintf("%s bw %g", label, v))
		}
		expected[label] = []float64{sum / float64(repeats)}
	}

	result, err := NewAggregator().Aggregate(context.Background(), lines)
	require.NoError(t, err)

	// more labels than the original fixed eight-label header
	assert.Equal(t, labels, result.Labels())
	for _, row := range result.Rows {
		assert.Equal(t, expected[row.Label], row.Values, "size %s", row.Label)
	}
}

func TestAggregate_AverageIsOrderIndependentWithinRun(t *testing.T) {
	t.Parallel()

	values := []float64{0.5, 1.5, 2.5, 3.5, 4.5, 5.5, 6.5, 7.5}
	build := func(order []float64) []string {
		lines := make([]string, 0, len(order))
		for _, v := range order {
			lines = append(lines, fmt.Sprintf("2K lat %g", v))
		}
		return lines
	}

	shuffled := append([]float64(nil), values...)
	rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	first, err := NewAggregator().Aggregate(context.Background(), build(values))
	require.NoError(t, err)
	second, err := NewAggregator().Aggregate(context.Background(), build(shuffled))
	require.NoError(t, err)

	assert.Equal(t, []float64{4}, first.Rows[0].Values)
	assert.Equal(t, first.Rows, second.Rows)
}

func TestAggregate_Idempotent(t *testing.T) {
	t.Parallel()

	lines := []string{"64B bw 1.1 tp 2.2", "64B bw 3.3 tp 4.4", "1K bw 0.7 tp 0.9"}
	aggregator := NewAggregator()

	first, err := aggregator.Aggregate(context.Background(), lines)
	require.NoError(t, err)
	second, err := aggregator.Aggregate(context.Background(), lines)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregate_SkipsBlankLines(t *testing.T) {
	t.Parallel()

	lines := []string{"", "64B bw 2", "   ", "64B bw 4", ""}

	result, err := NewAggregator().Aggregate(context.Background(), lines)
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, []float64{3}, result.Rows[0].Values)
	assert.Equal(t, 5, result.LinesRead)
	assert.Equal(t, 3, result.LinesSkipped)
}

func TestAggregate_EmptyInput(t *testing.T) {
	t.Parallel()

	for name, lines := range map[string][]string{
		"no lines":    nil,
		"blank lines": {"", " ", "\t"},
	} {
		t.Run(name, func(t *testing.T) {
			result, err := NewAggregator().Aggregate(context.Background(), lines)
			assert.Nil(t, result)

			var malformed *MalformedLineError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, 0, malformed.Line)
			assert.Contains(t, err.Error(), "no header line")
		})
	}
}

func TestAggregate_MalformedLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		lines        []string
		expectedLine int
		expectedText string
	}{
		{
			name:         "non numeric value",
			lines:        []string{"64B bw 1.0", "64B bw oops"},
			expectedLine: 2,
			expectedText: "not a finite number",
		},
		{
			name:         "too few tokens",
			lines:        []string{"64B"},
			expectedLine: 1,
			expectedText: "no metric/value pairs",
		},
		{
			name:         "column count differs from header",
			lines:        []string{"64B bw 1.0 tp 2.0", "512B bw 1.0"},
			expectedLine: 2,
			expectedText: "expected 2 metric columns, got 1",
		},
		{
			name:         "metric name differs from header",
			lines:        []string{"64B bw 1.0 tp 2.0", "64B bw 1.0 lat 2.0"},
			expectedLine: 2,
			expectedText: `metric 2 is "lat", header has "tp"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := NewAggregator().Aggregate(context.Background(), tt.lines)
			assert.Nil(t, result)

			var malformed *MalformedLineError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.expectedLine, malformed.Line)
			assert.Contains(t, malformed.Reason, tt.expectedText)
		})
	}
}

func TestAggregate_UnsortedInput(t *testing.T) {
	t.Parallel()

	lines := []string{
		"64B bw 1",
		"64B bw 2",
		"512B bw 3",
		"64B bw 4",
	}

	result, err := NewAggregator().Aggregate(context.Background(), lines)
	assert.Nil(t, result)

	var unsorted *UnsortedInputError
	require.ErrorAs(t, err, &unsorted)
	assert.Equal(t, "64B", unsorted.Label)
	assert.Equal(t, 1, unsorted.FirstLine)
	assert.Equal(t, 4, unsorted.Line)
}

func TestAggregate_FirstLabelMayLookLikeSentinel(t *testing.T) {
	t.Parallel()

	result, err := NewAggregator().Aggregate(context.Background(), []string{"0 bw 2", "0 bw 4", "1 bw 6"})
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1"}, result.Labels())
	assert.Equal(t, []float64{3}, result.Rows[0].Values)
}

func TestAggregate_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := NewAggregator().Aggregate(ctx, []string{"64B bw 1"})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}
