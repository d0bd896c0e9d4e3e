package aggregators

import "fmt"

// MalformedLineError reports a line that does not follow the `label [ordinal] (name value)+`
// layout, or that disagrees with the header captured from the first line.
// Line is 0 when the failure is not tied to a line (empty input).
type MalformedLineError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("malformed input: %s", e.Reason)
	}
	return fmt.Sprintf("malformed line %d: %s", e.Line, e.Reason)
}

// UnsortedInputError reports a size label that shows up again after its run was closed.
// Runs of one label must be contiguous.
type UnsortedInputError struct {
	Label     string
	FirstLine int // first line of the closed run
	Line      int // line where the label reappears
}

func (e *UnsortedInputError) Error() string {
	return fmt.Sprintf("unsorted input: size %q at line %d reappears after its run starting at line %d was closed",
		e.Label, e.Line, e.FirstLine)
}

func errMalformed(line int, text, format string, args ...any) *MalformedLineError {
	return &MalformedLineError{Line: line, Text: text, Reason: fmt.Sprintf(format, args...)}
}
