package models

// LogLine is one parsed benchmark sample row:
//
//	64B bw 5120.3 tp 4800.1
//	64B 1 bw 5120.3 tp 4800.1   (with run ordinal)
//
// Label is token 0. Metric names and values alternate after the label (and after the
// optional integer run ordinal).
type LogLine struct {
	Number  int // 1-based line number in the source
	Label   string
	Ordinal *int
	Metrics []string
	Values  []float64
}

// Columns is the number of metric columns the line carries.
func (l *LogLine) Columns() int {
	return len(l.Values)
}
