package models

import "fmt"

// SizeGroup is a maximal run of consecutive LogLines sharing one size label.
type SizeGroup struct {
	Label     string
	FirstLine int
	Sums      []float64
	Count     int
}

// NewSizeGroup seeds a group from its first line.
func NewSizeGroup(line *LogLine) *SizeGroup {
	sums := make([]float64, len(line.Values))
	copy(sums, line.Values)
	return &SizeGroup{
		Label:     line.Label,
		FirstLine: line.Number,
		Sums:      sums,
		Count:     1,
	}
}

// Add accumulates a line carrying the same label into the running sums.
func (g *SizeGroup) Add(line *LogLine) error {
	if line.Label != g.Label {
		return fmt.Errorf("label mismatch: group=%q, line=%q", g.Label, line.Label)
	}
	if len(line.Values) != len(g.Sums) {
		return fmt.Errorf("column count mismatch: group=%d, line=%d", len(g.Sums), len(line.Values))
	}
	for i, v := range line.Values {
		g.Sums[i] += v
	}
	g.Count++
	return nil
}

// Finalize averages the running sums into an OutputRow.
func (g *SizeGroup) Finalize() *OutputRow {
	values := make([]float64, len(g.Sums))
	for i, sum := range g.Sums {
		values[i] = sum / float64(g.Count)
	}
	return &OutputRow{
		Label:   g.Label,
		Values:  values,
		Samples: g.Count,
	}
}
