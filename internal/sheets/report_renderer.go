package sheets

import (
	"fmt"

	"bench-report/internal/models"
)

// HeaderSizeLabel heads the size-label column.
const HeaderSizeLabel = "size"

// ReportRenderer lays an aggregation result out on a sheet:
//
//	row 0:     size | <metric 1> | ... | <metric N>
//	row 1..K:  <size label> | <average 1> | ... | <average N>
//
//go:generate mockgen -source=report_renderer.go -destination=./mocks/report_renderer_mock.go -package=mocks
type ReportRenderer interface {
	Render(sheet Sheet, result *models.AggregateResult) error
}

type reportRenderer struct{}

func NewReportRenderer() ReportRenderer {
	return &reportRenderer{}
}

func (r *reportRenderer) Render(sheet Sheet, result *models.AggregateResult) error {
	if err := sheet.SetCell(0, 0, HeaderSizeLabel); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for col, name := range result.Metrics {
		if err := sheet.SetCell(0, col+1, name); err != nil {
			return fmt.Errorf("failed to write header %q: %w", name, err)
		}
	}

	for i, row := range result.Rows {
		if err := sheet.SetCell(i+1, 0, row.Label); err != nil {
			return fmt.Errorf("failed to write size %q: %w", row.Label, err)
		}
		for col, value := range row.Values {
			if err := sheet.SetCell(i+1, col+1, value); err != nil {
				return fmt.Errorf("failed to write size %q column %d: %w", row.Label, col+1, err)
			}
		}
	}

	return nil
}
