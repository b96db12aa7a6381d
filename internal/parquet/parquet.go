// Package parquet provides data structures and functions for exporting scoring
// results to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/metaboscore/metaboscore/schema"
	"github.com/parquet-go/parquet-go"
)

// ScoreRecord is the final score of one patient.
type ScoreRecord struct {
	// Patient is the identifier taken from the id column
	Patient string `parquet:"patient,snappy"`

	// FinalScore is the rounded score in the 0-5 range (may be negative)
	FinalScore float64 `parquet:"final_score,snappy"`
}

// WeightRecord is one axis weight of the run that produced the scores.
type WeightRecord struct {
	// Axis is the built-in axis name
	Axis string `parquet:"axis,snappy"`

	// Weight is the effective weight after overrides
	Weight float64 `parquet:"weight,snappy"`

	// Alpha is the low-value exponent of the run, repeated per row
	Alpha float64 `parquet:"alpha,snappy"`

	// Custom is true when the weight came from an override
	Custom bool `parquet:"custom"`
}

// ScoreRecordsFromResults converts score results into Parquet rows.
func ScoreRecordsFromResults(results []schema.ScoreResult) []ScoreRecord {
	records := make([]ScoreRecord, len(results))
	for i, r := range results {
		records[i] = ScoreRecord{Patient: r.ID, FinalScore: r.Score}
	}
	return records
}

// WeightRecordsFromRun converts the weights of a run into Parquet rows in display order.
// custom marks the axes whose weight was overridden.
func WeightRecordsFromRun(weights schema.AxisWeights, custom schema.AxisWeights, alpha float64) []WeightRecord {
	ordered := weights.Ordered()
	records := make([]WeightRecord, len(ordered))
	for i, aw := range ordered {
		_, isCustom := custom[aw.Axis]
		records[i] = WeightRecord{
			Axis:   string(aw.Axis),
			Weight: aw.Weight,
			Alpha:  alpha,
			Custom: isCustom,
		}
	}
	return records
}

// WeightsPath returns the sibling path used for the weights file of a scores export,
// e.g. "scores.parquet" becomes "scores.weights.parquet".
func WeightsPath(scoresPath string) string {
	ext := filepath.Ext(scoresPath)
	return strings.TrimSuffix(scoresPath, ext) + ".weights.parquet"
}

// WriteScoresParquet writes a slice of ScoreRecord structs to a Parquet file.
func WriteScoresParquet(data []ScoreRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteWeightsParquet writes a slice of WeightRecord structs to a Parquet file.
func WriteWeightsParquet(data []WeightRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes rows to a new file, inferring the schema from the struct tags of T.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
