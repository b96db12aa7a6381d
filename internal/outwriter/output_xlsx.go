package outwriter

import (
	"fmt"
	"os"

	"github.com/metaboscore/metaboscore/schema"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook export.
const (
	resultsSheet = "Results"
	weightsSheet = "Weights"
)

// writeScoresXLSX saves a workbook with a results sheet and a sheet recording the
// weights and alpha that produced it. Scores are stored as numbers.
func writeScoresXLSX(run schema.ScoreRun, custom schema.AxisWeights, outputFile string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return err
	}
	if err := setRow(f, resultsSheet, 1, []any{patientHeader, finalScoreHeader}); err != nil {
		return err
	}
	for i, r := range run.Results {
		if err := setRow(f, resultsSheet, i+2, []any{r.ID, r.Score}); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(weightsSheet); err != nil {
		return err
	}
	if err := setRow(f, weightsSheet, 1, []any{"Axis", "Weight", "Custom"}); err != nil {
		return err
	}
	ordered := run.Weights.Ordered()
	for i, aw := range ordered {
		_, isCustom := custom[aw.Axis]
		if err := setRow(f, weightsSheet, i+2, []any{string(aw.Axis), aw.Weight, isCustom}); err != nil {
			return err
		}
	}
	footer := len(ordered) + 2
	if err := setRow(f, weightsSheet, footer, []any{"Σ weights", run.WeightSum}); err != nil {
		return err
	}
	if err := setRow(f, weightsSheet, footer+1, []any{"alpha", run.Alpha}); err != nil {
		return err
	}

	if err := f.SaveAs(outputFile); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote XLSX to %s\n", outputFile)
	return nil
}

// setRow writes values starting at column A of the given 1-based row.
func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
