package models

import "time"

// AggregateResult is the outcome of one aggregation pass over a benchmark log.
type AggregateResult struct {
	Metrics      []string     `json:"metrics"`
	Rows         []*OutputRow `json:"rows"`
	LinesRead    int          `json:"linesRead"`
	LinesSkipped int          `json:"linesSkipped"`
}

// Report is an AggregateResult tagged with the run that produced it.
//
// Example JSON:
//
//	{
//	  "runId": "01JAA3NDEKTSV4RRFFQ69G5FAV",
//	  "tableName": "data-cas-sequential",
//	  "generatedAt": "2026-10-16T09:12:44Z",
//	  "metrics": ["bw", "tp"],
//	  "rows": [
//	    {"size": "64B", "values": [20, 30], "samples": 2},
//	    {"size": "512B", "values": [5, 5], "samples": 1}
//	  ],
//	  "linesRead": 3,
//	  "linesSkipped": 0
//	}
type Report struct {
	RunID       string    `json:"runId"`
	TableName   string    `json:"tableName,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
	AggregateResult
}

// Labels returns the size labels in output order.
func (r *AggregateResult) Labels() []string {
	labels := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		labels = append(labels, row.Label)
	}
	return labels
}
