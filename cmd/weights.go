package cmd

import (
	"github.com/metaboscore/metaboscore/core"
	"github.com/metaboscore/metaboscore/internal/contract"
	"github.com/spf13/cobra"
)

// weightsCmd prints the active weights as a config block.
var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Print the active alpha and weights in config file format",
	Long: `Print alpha and every axis weight as YAML that can be pasted into
.metaboscore.yaml, so that a tuned set of weights can be kept between runs.

Examples:
  # Save the current overrides
  metaboscore weights --weight "Krebs cycle and amino-acid balance=0.12" --output-file .metaboscore.yaml

  # Start over from the defaults
  metaboscore weights --reset-weights`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWeights(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot print weights", err)
		}
	},
}
