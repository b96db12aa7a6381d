// Package core has core logic for axis resolution, scoring and run orchestration.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/metaboscore/metaboscore/internal/contract"
	"github.com/metaboscore/metaboscore/internal/outwriter"
	"github.com/metaboscore/metaboscore/schema"
)

// ExecuteScore reads the configured risks file, scores every patient and writes the
// results in the configured output format. It is the entry point for the 'score' command.
func ExecuteScore(ctx context.Context, cfg *contract.Config, reader contract.TableReader) error {
	run, err := RunScoring(ctx, cfg, reader)
	if err != nil {
		return err
	}
	reportRun(run)
	return outwriter.NewOutWriter().WriteScores(run, cfg)
}

// ExecuteAxes displays the built-in axes with their active weights and the formula.
func ExecuteAxes(_ context.Context, cfg *contract.Config) error {
	return outwriter.NewOutWriter().WriteAxes(cfg.Weights, cfg)
}

// ExecuteWeights prints the active weights as a config file block.
func ExecuteWeights(_ context.Context, cfg *contract.Config) error {
	return outwriter.NewOutWriter().WriteWeightsConfig(cfg.Weights, cfg)
}

// RunScoring performs one scoring pass without writing any output.
// A missing identifier column stops the pass before anything is scored.
func RunScoring(ctx context.Context, cfg *contract.Config, reader contract.TableReader) (schema.ScoreRun, error) {
	start := time.Now()

	table, err := reader.ReadTable(ctx, cfg.InputPath, cfg.Sheet)
	if err != nil {
		return schema.ScoreRun{}, fmt.Errorf("cannot read risks file: %w", err)
	}

	resolution, err := ResolveAxes(table.Columns, cfg.IDColumn, cfg.IgnoreColumns)
	if err != nil {
		return schema.ScoreRun{}, err
	}

	if err := ctx.Err(); err != nil {
		return schema.ScoreRun{}, err
	}

	rows, skipped := BuildPatientRows(table, cfg.IDColumn, resolution.Effective)

	// The scorer gets its own snapshot of the weights
	weights := cfg.Weights.Clone()
	results := ComputeAllScoresParallel(rows, weights, resolution.Effective, cfg.Alpha, cfg.Workers)

	return schema.ScoreRun{
		Source:     cfg.InputPath,
		IDColumn:   cfg.IDColumn,
		Alpha:      cfg.Alpha,
		Weights:    weights,
		WeightSum:  weights.Sum(),
		Resolution: resolution,
		Advisories: resolution.Advisories(),
		Skipped:    skipped,
		Results:    results,
		Duration:   time.Since(start),
	}, nil
}

// reportRun surfaces the non-fatal conditions of a run on stderr.
func reportRun(run schema.ScoreRun) {
	for _, msg := range run.Advisories {
		contract.LogAdvisory(msg)
	}
	if run.Skipped > 0 {
		contract.LogWarn("Skipped rows", fmt.Errorf("%d rows have a blank %q cell", run.Skipped, run.IDColumn))
	}
}
