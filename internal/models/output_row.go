package models

// OutputRow is one averaged size bucket.
type OutputRow struct {
	Label   string    `json:"size"`
	Values  []float64 `json:"values"`
	Samples int       `json:"samples"`
}
