package cmd

import (
	"github.com/metaboscore/metaboscore/core"
	"github.com/metaboscore/metaboscore/internal/contract"
	"github.com/metaboscore/metaboscore/internal/table"
	"github.com/spf13/cobra"
)

// scoreCmd scores every patient in a risks spreadsheet.
var scoreCmd = &cobra.Command{
	Use:   "score <risks.xlsx|risks.csv>",
	Short: "Compute the final metabolic risk score of every patient in a spreadsheet",
	Long: `Read a spreadsheet with one row per patient and one column per axis, then print
one final score per patient.

Each axis value is on a 0-10 scale where 10 is healthy. Values below 7 are raised to
alpha before weighting; values from 7 up contribute linearly. The weighted sum is
scaled to 0-5 and rounded to one decimal.

Columns that do not match a built-in axis and built-in axes that are missing from the
file are reported as advisories on stderr. Scoring continues with the axes that match.
A missing identifier column stops the run.

Examples:
  # Score a workbook with the default weights
  metaboscore score risks.xlsx

  # Use a different sheet and identifier column
  metaboscore score risks.xlsx --sheet "March" --id-column "Patient ID"

  # Override one weight and a steeper alpha
  metaboscore score risks.csv --weight "Liver function status=0.2" --alpha 2.2

  # Export results with the weights that produced them
  metaboscore score risks.xlsx --output xlsx --output-file scores.xlsx`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg, table.NewFileReader()); err != nil {
			contract.LogFatal("Cannot score patients", err)
		}
	},
}
