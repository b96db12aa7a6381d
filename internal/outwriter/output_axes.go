package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/metaboscore/metaboscore/internal/contract"
	"github.com/metaboscore/metaboscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteAxesDefinitions displays the built-in axes, their active weights and the scoring formula.
// This is a static display that does not read any input file.
func WriteAxesDefinitions(weights schema.AxisWeights, cfg *contract.Config) error {
	model := buildAxesRenderModel(weights, cfg.Alpha)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAxesCSV(w, model)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAxesText(w, model)
		}, "Wrote text")
	}
}

// buildAxesRenderModel constructs the render model with all processed data.
func buildAxesRenderModel(weights schema.AxisWeights, alpha float64) *schema.AxesRenderModel {
	return &schema.AxesRenderModel{
		Title:       "Metabolic Risk Axes",
		Description: "Each axis is rated 0-10 where 10 is healthy; lower values raise the score",
		Formula: []string{
			fmt.Sprintf("value < %.0f:  contribution = weight * (1 - (value/%.0f)^alpha)", schema.LinearThreshold, schema.RawScale),
			fmt.Sprintf("value >= %.0f: contribution = weight * (1 - value/%.0f)", schema.LinearThreshold, schema.RawScale),
			fmt.Sprintf("final score = min(%.0f, %.0f * sum of contributions), one decimal", schema.MaxFinalScore, schema.MaxFinalScore),
		},
		Alpha:     alpha,
		Axes:      weights.Ordered(),
		WeightSum: weights.Sum(),
	}
}

// writeAxesText displays the axes in human-readable text format.
// Weights that differ from the built-in defaults are highlighted.
func writeAxesText(w io.Writer, model *schema.AxesRenderModel) error {
	if _, err := contract.HeaderColor.Fprintf(w, "%s\n", model.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", model.Description); err != nil {
		return err
	}

	defaults := schema.DefaultWeights()
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Axis", "Weight"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.PerColumn = []tw.Align{tw.AlignLeft, tw.AlignRight}
	})
	data := make([][]string, 0, len(model.Axes))
	for _, aw := range model.Axes {
		weight := fmt.Sprintf("%.2f", aw.Weight)
		if aw.Weight != defaults[aw.Axis] {
			weight = contract.WeightColor.Sprint(weight + " *")
		}
		data = append(data, []string{string(aw.Axis), weight})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Σ weights = %.2f, alpha = %.2f\n\n", model.WeightSum, model.Alpha); err != nil {
		return err
	}
	for _, line := range model.Formula {
		if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// writeAxesCSV writes one row per axis.
func writeAxesCSV(w io.Writer, model *schema.AxesRenderModel) error {
	return writeCSVWithHeader(w, []string{"axis", "weight", "alpha"}, func(cw *csv.Writer) error {
		alpha := fmt.Sprintf("%.2f", model.Alpha)
		for _, aw := range model.Axes {
			if err := cw.Write([]string{string(aw.Axis), fmt.Sprintf("%.2f", aw.Weight), alpha}); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
