package aggregators

import (
	"strings"

	"bench-report/internal/models"
)

// Accumulator folds benchmark log lines, in order, into averaged size buckets.
//
// The first non-blank line fixes the header (metric names). A group stays open while
// its label repeats on the following lines and is finalized the moment another label
// shows up. A finalized label may not come back.
type Accumulator struct {
	metrics []string
	current *models.SizeGroup
	closed  map[string]int // label -> first line of its finalized run
	rows    []*models.OutputRow

	linesRead    int
	linesSkipped int
}

func NewAccumulator() *Accumulator {
	return &Accumulator{closed: make(map[string]int)}
}

// AddLine parses and accumulates one raw line. Blank lines are skipped.
func (a *Accumulator) AddLine(number int, text string) error {
	a.linesRead++
	if strings.TrimSpace(text) == "" {
		a.linesSkipped++
		return nil
	}

	line, err := ParseLine(number, text)
	if err != nil {
		return err
	}
	return a.add(line, text)
}

// Finish closes the open group and returns the rows in first-seen order.
// It fails when no line carried a header.
func (a *Accumulator) Finish() (*models.AggregateResult, error) {
	if a.metrics == nil {
		return nil, &MalformedLineError{Reason: "no header line: input is empty"}
	}
	a.finalizeCurrent()

	return &models.AggregateResult{
		Metrics:      a.metrics,
		Rows:         a.rows,
		LinesRead:    a.linesRead,
		LinesSkipped: a.linesSkipped,
	}, nil
}

func (a *Accumulator) add(line *models.LogLine, text string) error {
	if a.metrics == nil {
		a.metrics = append([]string(nil), line.Metrics...)
	} else if err := a.checkHeader(line, text); err != nil {
		return err
	}

	if a.current != nil && a.current.Label == line.Label {
		return a.current.Add(line)
	}

	if firstLine, ok := a.closed[line.Label]; ok {
		return &UnsortedInputError{Label: line.Label, FirstLine: firstLine, Line: line.Number}
	}

	a.finalizeCurrent()
	a.current = models.NewSizeGroup(line)
	return nil
}

func (a *Accumulator) checkHeader(line *models.LogLine, text string) error {
	if line.Columns() != len(a.metrics) {
		return errMalformed(line.Number, text, "expected %d metric columns, got %d", len(a.metrics), line.Columns())
	}
	for i, name := range line.Metrics {
		if name != a.metrics[i] {
			return errMalformed(line.Number, text, "metric %d is %q, header has %q", i+1, name, a.metrics[i])
		}
	}
	return nil
}

func (a *Accumulator) finalizeCurrent() {
	if a.current == nil {
		return
	}
	a.rows = append(a.rows, a.current.Finalize())
	a.closed[a.current.Label] = a.current.FirstLine
	a.current = nil
}
