package sheets

import (
	"bytes"
	"strconv"
	"testing"

	"bench-report/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWorkbook_RenderAndWrite(t *testing.T) {
	t.Parallel()

	workbook := NewWorkbook()
	defer workbook.Close()

	sheet, err := workbook.Sheet("demo")
	require.NoError(t, err)

	result := &models.AggregateResult{
		Metrics: []string{"bw", "tp"},
		Rows: []*models.OutputRow{
			{Label: "64B", Values: []float64{20, 30.5}, Samples: 2},
			{Label: "512B", Values: []float64{5, 0.125}, Samples: 1},
		},
	}
	require.NoError(t, NewReportRenderer().Render(sheet, result))

	var buf bytes.Buffer
	n, err := workbook.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{"demo"}, file.GetSheetList())

	rows, err := file.GetRows("demo")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"size", "bw", "tp"}, rows[0])
	assert.Equal(t, "64B", rows[1][0])
	assert.Equal(t, "512B", rows[2][0])

	expected := map[string]float64{"B2": 20, "C2": 30.5, "B3": 5, "C3": 0.125}
	for ref, want := range expected {
		raw, err := file.GetCellValue("demo", ref, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		got, err := strconv.ParseFloat(raw, 64)
		require.NoError(t, err, "cell %s", ref)
		assert.Equal(t, want, got, "cell %s", ref)
	}
}

func TestWorkbook_SheetReuseAndAdditionalSheets(t *testing.T) {
	t.Parallel()

	workbook := NewWorkbook()
	defer workbook.Close()

	first, err := workbook.Sheet("demo")
	require.NoError(t, err)
	require.NoError(t, first.SetCell(0, 0, "size"))

	again, err := workbook.Sheet("demo")
	require.NoError(t, err)
	require.NoError(t, again.SetCell(0, 1, "bw"))

	_, err = workbook.Sheet("raw")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = workbook.WriteTo(&buf)
	require.NoError(t, err)

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{"demo", "raw"}, file.GetSheetList())
	rows, err := file.GetRows("demo")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"size", "bw"}}, rows)
}

func TestSheet_SetCell_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	workbook := NewWorkbook()
	defer workbook.Close()

	sheet, err := workbook.Sheet("demo")
	require.NoError(t, err)

	assert.Error(t, sheet.SetCell(-1, 0, "x"))
}
