// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/metaboscore/metaboscore/internal/contract"
	"github.com/metaboscore/metaboscore/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteScores prints the results of a scoring run using the configured output format.
func (ow *OutWriter) WriteScores(run schema.ScoreRun, cfg *contract.Config) error {
	return WriteScoreResults(run, cfg)
}

// WriteAxes prints the built-in axes with their active weights.
func (ow *OutWriter) WriteAxes(weights schema.AxisWeights, cfg *contract.Config) error {
	return WriteAxesDefinitions(weights, cfg)
}

// WriteWeightsConfig prints the active weights as a config file block.
func (ow *OutWriter) WriteWeightsConfig(weights schema.AxisWeights, cfg *contract.Config) error {
	return WriteWeightsBlock(weights, cfg)
}

// GetMaxTableIDWidth calculates the maximum width for patient identifiers in table output
// based on terminal width.
func GetMaxTableIDWidth(cfg *contract.Config) int {
	termWidth := cfg.Width
	if termWidth <= 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Final score columns plus borders and padding
	available := termWidth - 30
	if available < 12 {
		return 12
	}
	if available > 60 {
		return 60
	}
	return available
}
