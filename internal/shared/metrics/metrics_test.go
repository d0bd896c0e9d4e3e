package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var metricTestCounter = NewCounterVec(
	CounterOpts{
		Namespace: Namespace,
		Subsystem: "test",
		Name:      "textfile_total",
	},
	[]string{FieldResult},
)

func TestWriteTextfile(t *testing.T) {
	t.Parallel()

	metricTestCounter.WithLabelValues("ok").Add(3)

	path := filepath.Join(t.TempDir(), "bench.prom")
	require.NoError(t, WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `bench_report_test_textfile_total{result="ok"} 3`)
}
