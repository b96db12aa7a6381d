// Package schema has models, enums and defaults shared by all parts of metaboscore.
package schema

import "time"

// AxisWeights maps an axis to its weight. Any finite weight is accepted by the scorer;
// the adjustable bounds only apply to user overrides.
type AxisWeights map[AxisName]float64

// PatientRow is one input row: an identifier plus a sparse set of axis values.
// An axis missing from Values has no value for this patient, which is different from 0.
type PatientRow struct {
	ID     string
	Values map[AxisName]float64
}

// ScoreResult is the final score of one patient.
type ScoreResult struct {
	ID    string  `json:"patient"`
	Score float64 `json:"final_score"` // upper-clamped at MaxFinalScore, one decimal
}

// AxisResolution is the outcome of reconciling input columns with the built-in axes.
type AxisResolution struct {
	Effective      []AxisName `json:"effective"`       // axes both known and present, in input order
	MissingInInput []AxisName `json:"missing_in_input"` // known axes absent from the input
	Unrecognized   []string   `json:"unrecognized"`     // input columns that are not known axes
}

// Table is a raw spreadsheet: a header row and string cells.
// Rows may be shorter than Columns; missing cells read as blank.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ScoreRun is everything produced by one scoring pass.
type ScoreRun struct {
	Source     string         `json:"source"`
	IDColumn   string         `json:"id_column"`
	Alpha      float64        `json:"alpha"`
	Weights    AxisWeights    `json:"weights"`
	WeightSum  float64        `json:"weight_sum"`
	Resolution AxisResolution `json:"resolution"`
	Advisories []string       `json:"advisories"`
	Skipped    int            `json:"skipped_rows"` // rows dropped for a blank identifier
	Results    []ScoreResult  `json:"results"`
	Duration   time.Duration  `json:"-"`
}
