// Package cmd defines the command-line interface for metaboscore.
package cmd

import (
	"github.com/metaboscore/metaboscore/internal/contract"
	"github.com/metaboscore/metaboscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(axesCmd)
	rootCmd.AddCommand(weightsCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Float64("alpha", schema.DefaultAlpha, "Exponent for axis values below 7 (1.0 to 3.0)")
	rootCmd.PersistentFlags().StringArray("weight", nil, "Override an axis weight, e.g. --weight 'Liver function status=0.2' (repeatable)")
	rootCmd.PersistentFlags().Bool("reset-weights", false, "Ignore all custom weights and use the built-in defaults")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet or xlsx")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored advisories and headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("id-column", schema.DefaultIDColumn, "Name of the column holding the patient identifier")
	rootCmd.PersistentFlags().String("ignore-columns", schema.DefaultIgnoreColumn, "Comma-separated list of columns to skip without an advisory")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scoreCmd to Viper
	scoreCmd.Flags().String("sheet", "", "Worksheet to read from an .xlsx file (default: first sheet)")
	if err := viper.BindPFlags(scoreCmd.Flags()); err != nil {
		contract.LogFatal("Error binding score flags", err)
	}
}
