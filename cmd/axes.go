package cmd

import (
	"github.com/metaboscore/metaboscore/core"
	"github.com/metaboscore/metaboscore/internal/contract"
	"github.com/spf13/cobra"
)

// axesCmd displays the built-in axes with their active weights.
var axesCmd = &cobra.Command{
	Use:   "axes",
	Short: "Display the built-in axes, their weights and the scoring formula",
	Long: `Show every built-in axis with the weight that a score run would use, the
total of all weights, alpha and the formula.

Weights overridden through --weight or the weights block of .metaboscore.yaml are
marked. No spreadsheet is read.

Examples:
  # Show the default weights
  metaboscore axes

  # Preview an override before scoring
  metaboscore axes --weight "Microbiota status=0.15"`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAxes(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display axes", err)
		}
	},
}
