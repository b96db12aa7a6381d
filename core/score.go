package core

import (
	"math"
	"sync"

	"github.com/metaboscore/metaboscore/schema"
)

// ComputeAxisContribution returns one axis's share of a patient's raw score.
// A value that is not present contributes nothing. Below the linear threshold the
// normalized value is raised to alpha; at or above it the contribution is linear.
// Neither the normalized value nor the contribution is clamped.
func ComputeAxisContribution(value float64, present bool, weight, alpha float64) float64 {
	if !present {
		return 0
	}
	x := value / schema.RawScale
	if value < schema.LinearThreshold {
		return weight * (1 - math.Pow(x, alpha))
	}
	return weight * (1 - x)
}

// ComputeFinalScore sums the contributions of the effective axes for one row and
// scales the sum to the 0-5 range. Only the upper bound is enforced.
// Axes without a weight contribute with weight 0.
func ComputeFinalScore(row schema.PatientRow, weights schema.AxisWeights, effective []schema.AxisName, alpha float64) schema.ScoreResult {
	var sum float64
	for _, axis := range effective {
		value, ok := row.Values[axis]
		sum += ComputeAxisContribution(value, ok, weights[axis], alpha)
	}

	score := schema.MaxFinalScore * sum
	// NaN (a negative raw value under a fractional alpha) saturates to the bound.
	if math.IsNaN(score) || score > schema.MaxFinalScore {
		score = schema.MaxFinalScore
	}
	return schema.ScoreResult{ID: row.ID, Score: roundTenth(score)}
}

// ComputeAllScores scores every row, preserving input order.
func ComputeAllScores(rows []schema.PatientRow, weights schema.AxisWeights, effective []schema.AxisName, alpha float64) []schema.ScoreResult {
	results := make([]schema.ScoreResult, len(rows))
	for i, row := range rows {
		results[i] = ComputeFinalScore(row, weights, effective, alpha)
	}
	return results
}

// ComputeAllScoresParallel scores rows on a pool of workers. Each worker writes only
// its own result index and reads the shared inputs, so the output is identical to
// ComputeAllScores.
func ComputeAllScoresParallel(rows []schema.PatientRow, weights schema.AxisWeights, effective []schema.AxisName, alpha float64, workers int) []schema.ScoreResult {
	if workers <= 1 || len(rows) < 2 {
		return ComputeAllScores(rows, weights, effective, alpha)
	}
	workers = min(workers, len(rows))

	results := make([]schema.ScoreResult, len(rows))
	indexCh := make(chan int, len(rows))
	var wg sync.WaitGroup

	// Start worker pool
	for range workers {
		wg.Go(func() {
			for i := range indexCh {
				results[i] = ComputeFinalScore(rows[i], weights, effective, alpha)
			}
		})
	}

	for i := range rows {
		indexCh <- i
	}
	close(indexCh)

	wg.Wait()
	return results
}

// roundTenth rounds to one decimal place, halves away from zero. The value is first
// snapped to 1e-9 so that binary noise (5*0.1*(1-0.9) = 0.04999999999999999) rounds
// the way its decimal form does. Negative zero is returned as zero.
func roundTenth(v float64) float64 {
	snapped := math.Round(v*1e9) / 1e9
	rounded := math.Round(snapped*10) / 10
	if rounded == 0 {
		return 0
	}
	return rounded
}
