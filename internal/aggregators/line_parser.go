package aggregators

import (
	"math"
	"strconv"
	"strings"

	"bench-report/internal/models"
)

// ParseLine splits one benchmark log row into a LogLine.
//
// Layout: `label (name value)+`, i.e. an odd token count >= 3. An integer run ordinal
// may sit between the label and the first pair (`64B 1 bw 10.0 tp 20.0`); it is
// recognised by the even token count and dropped from the metric columns.
func ParseLine(number int, text string) (*models.LogLine, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, errMalformed(number, text, "empty line")
	}

	line := &models.LogLine{Number: number, Label: tokens[0]}
	rest := tokens[1:]

	if len(rest)%2 == 1 {
		ordinal, err := strconv.Atoi(rest[0])
		if err != nil {
			return nil, errMalformed(number, text,
				"expected size label followed by metric/value pairs, got %d tokens", len(tokens))
		}
		line.Ordinal = &ordinal
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return nil, errMalformed(number, text, "size %q has no metric/value pairs", line.Label)
	}

	line.Metrics = make([]string, 0, len(rest)/2)
	line.Values = make([]float64, 0, len(rest)/2)
	for i := 0; i < len(rest); i += 2 {
		name, raw := rest[i], rest[i+1]
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, errMalformed(number, text, "metric %q: value %q is not a finite number", name, raw)
		}
		line.Metrics = append(line.Metrics, name)
		line.Values = append(line.Values, value)
	}

	return line, nil
}
