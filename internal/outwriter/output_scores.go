package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/metaboscore/metaboscore/internal/contract"
	"github.com/metaboscore/metaboscore/internal/parquet"
	"github.com/metaboscore/metaboscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Column headers shared by the tabular score outputs.
const (
	patientHeader    = "Patient"
	finalScoreHeader = "Final score"
)

// WriteScoreResults outputs the scoring results, dispatching based on the output format configured.
func WriteScoreResults(run schema.ScoreRun, cfg *contract.Config) error {
	fmtFloat := createFormatters(contract.DefaultPrecision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, run)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoresCSV(w, run.Results, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeScoresParquet(run, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	case schema.XLSXOut:
		if err := writeScoresXLSX(run, cfg.CustomWeights, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing XLSX output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreTable(w, run, cfg, fmtFloat)
		}, "Wrote table")
	}
	return nil
}

// writeScoreTable generates and writes the human-readable table.
func writeScoreTable(w io.Writer, run schema.ScoreRun, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", patientHeader, finalScoreHeader})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignRight
	})

	idWidth := GetMaxTableIDWidth(cfg)
	data := make([][]string, 0, len(run.Results))
	for i, r := range run.Results {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateID(r.ID, idWidth),
			fmtFloat(r.Score),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Scored %d patients on %d of %d axes (%s = %.2f, alpha = %.2f)\n",
		len(run.Results), len(run.Resolution.Effective), len(schema.AllAxes),
		contract.WeightColor.Sprint("Σ weights"), run.WeightSum, run.Alpha); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Scoring completed in %v with %d workers.\n", run.Duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}

// writeScoresCSV writes one row per patient with the score at display precision.
func writeScoresCSV(w io.Writer, results []schema.ScoreResult, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, []string{patientHeader, finalScoreHeader}, func(cw *csv.Writer) error {
		for _, r := range results {
			if err := cw.Write([]string{r.ID, fmtFloat(r.Score)}); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeScoresParquet writes the scores to the output file and the run's weights to a sibling file.
func writeScoresParquet(run schema.ScoreRun, cfg *contract.Config) error {
	if err := parquet.WriteScoresParquet(parquet.ScoreRecordsFromResults(run.Results), cfg.OutputFile); err != nil {
		return err
	}
	weightsPath := parquet.WeightsPath(cfg.OutputFile)
	records := parquet.WeightRecordsFromRun(run.Weights, cfg.CustomWeights, run.Alpha)
	if err := parquet.WriteWeightsParquet(records, weightsPath); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s and %s\n", cfg.OutputFile, weightsPath)
	return nil
}
