package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/metaboscore/metaboscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleAxisRow builds a row with only the mitochondrial axis set.
func singleAxisRow(value float64) schema.PatientRow {
	return schema.PatientRow{ID: "P1", Values: map[schema.AxisName]float64{schema.AxisMitochondria: value}}
}

// allAxesRow builds a row with every built-in axis set to value.
func allAxesRow(id string, value float64) schema.PatientRow {
	values := make(map[schema.AxisName]float64, len(schema.AllAxes))
	for _, a := range schema.AllAxes {
		values[a] = value
	}
	return schema.PatientRow{ID: id, Values: values}
}

func TestComputeAxisContribution(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		present  bool
		weight   float64
		alpha    float64
		expected float64
	}{
		{"absent", 5, false, 0.10, 1.7, 0},
		{"zero value", 0, true, 0.10, 1.7, 0.10},
		{"low branch", 5, true, 0.10, 1.7, 0.10 * (1 - math.Pow(0.5, 1.7))},
		{"low branch alpha 1", 5, true, 0.10, 1.0, 0.05},
		{"low branch alpha 3", 2, true, 0.20, 3.0, 0.20 * (1 - 0.008)},
		{"just below threshold", 6.999, true, 0.10, 1.7, 0.10 * (1 - math.Pow(0.6999, 1.7))},
		{"threshold is linear", 7, true, 0.10, 1.7, 0.10 * 0.3},
		{"high branch", 9, true, 0.10, 1.7, 0.10 * (1 - 0.9)},
		{"top of scale", 10, true, 0.10, 1.7, 0},
		{"above scale is unclamped", 15, true, 0.10, 1.7, -0.05},
		{"negative weight", 0, true, -0.2, 1.7, -0.2},
		{"weight outside bounds", 5, true, 2.0, 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAxisContribution(tt.value, tt.present, tt.weight, tt.alpha)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestComputeAxisContributionBranches(t *testing.T) {
	const weight, alpha = 0.37, 2.3
	for v := 0.0; v < 7; v += 0.25 {
		want := weight * (1 - math.Pow(v/10, alpha))
		assert.InDelta(t, want, ComputeAxisContribution(v, true, weight, alpha), 1e-12, "value %v", v)
	}
	for v := 7.0; v <= 10; v += 0.25 {
		want := weight * (1 - v/10)
		assert.InDelta(t, want, ComputeAxisContribution(v, true, weight, alpha), 1e-12, "value %v", v)
	}
}

func TestComputeFinalScoreScenarios(t *testing.T) {
	mito := []schema.AxisName{schema.AxisMitochondria}
	weights := schema.AxisWeights{schema.AxisMitochondria: 0.10}

	t.Run("low branch value 5", func(t *testing.T) {
		got := ComputeFinalScore(singleAxisRow(5), weights, mito, 1.7)
		assert.Equal(t, "P1", got.ID)
		assert.InDelta(t, 0.3, got.Score, 1e-12)
	})

	t.Run("high branch value 9", func(t *testing.T) {
		got := ComputeFinalScore(singleAxisRow(9), weights, mito, 1.7)
		assert.InDelta(t, 0.1, got.Score, 1e-12)
	})

	t.Run("boundary value 7", func(t *testing.T) {
		got := ComputeFinalScore(singleAxisRow(7), weights, mito, 1.7)
		assert.InDelta(t, 0.2, got.Score, 1e-12) // 5 * 0.03 = 0.15
	})

	t.Run("missing value", func(t *testing.T) {
		row := schema.PatientRow{ID: "P1", Values: map[schema.AxisName]float64{}}
		got := ComputeFinalScore(row, weights, mito, 1.7)
		assert.Zero(t, got.Score)
	})

	t.Run("all default axes at zero", func(t *testing.T) {
		got := ComputeFinalScore(allAxesRow("P1", 0), schema.DefaultWeights(), schema.AllAxes, 1.7)
		// every axis contributes its full weight: 5 * 0.73 = 3.65
		assert.InDelta(t, 3.7, got.Score, 1e-12)
	})
}

func TestComputeFinalScoreAbsentDiffersFromZero(t *testing.T) {
	axes := []schema.AxisName{schema.AxisMitochondria, schema.AxisLiver}
	weights := schema.AxisWeights{schema.AxisMitochondria: 0.10, schema.AxisLiver: 0.20}

	absent := schema.PatientRow{ID: "A", Values: map[schema.AxisName]float64{schema.AxisMitochondria: 10}}
	zero := schema.PatientRow{ID: "Z", Values: map[schema.AxisName]float64{schema.AxisMitochondria: 10, schema.AxisLiver: 0}}

	assert.Zero(t, ComputeFinalScore(absent, weights, axes, 1.7).Score)
	assert.InDelta(t, 1.0, ComputeFinalScore(zero, weights, axes, 1.7).Score, 1e-12)
}

func TestComputeFinalScoreClamp(t *testing.T) {
	t.Run("upper clamp", func(t *testing.T) {
		weights := schema.AxisWeights{}
		for _, a := range schema.AllAxes {
			weights[a] = 0.5
		}
		got := ComputeFinalScore(allAxesRow("P1", 0), weights, schema.AllAxes, 1.7)
		assert.InDelta(t, 5.0, got.Score, 1e-12)
	})

	t.Run("no lower clamp", func(t *testing.T) {
		weights := schema.AxisWeights{schema.AxisLiver: -0.3, schema.AxisKrebs: -0.1}
		row := schema.PatientRow{ID: "P1", Values: map[schema.AxisName]float64{schema.AxisLiver: 0, schema.AxisKrebs: 0}}
		got := ComputeFinalScore(row, weights, []schema.AxisName{schema.AxisLiver, schema.AxisKrebs}, 1.7)
		assert.InDelta(t, -2.0, got.Score, 1e-12)
	})

	t.Run("values above scale go negative", func(t *testing.T) {
		row := singleAxisRow(30)
		got := ComputeFinalScore(row, schema.AxisWeights{schema.AxisMitochondria: 0.5}, []schema.AxisName{schema.AxisMitochondria}, 1.7)
		assert.InDelta(t, -5.0, got.Score, 1e-12) // 5 * 0.5 * (1 - 3)
	})

	t.Run("negative value under fractional alpha saturates", func(t *testing.T) {
		got := ComputeFinalScore(singleAxisRow(-1), schema.AxisWeights{schema.AxisMitochondria: 0.1}, []schema.AxisName{schema.AxisMitochondria}, 1.7)
		assert.InDelta(t, 5.0, got.Score, 1e-12)
	})

	t.Run("negative value under integer alpha", func(t *testing.T) {
		got := ComputeFinalScore(singleAxisRow(-10), schema.AxisWeights{schema.AxisMitochondria: 0.1}, []schema.AxisName{schema.AxisMitochondria}, 2.0)
		assert.Zero(t, got.Score) // 0.1 * (1 - 1)
	})
}

func TestComputeFinalScoreUnweightedAxis(t *testing.T) {
	got := ComputeFinalScore(singleAxisRow(0), schema.AxisWeights{}, []schema.AxisName{schema.AxisMitochondria}, 1.7)
	assert.Zero(t, got.Score)
}

func TestComputeFinalScoreOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	weights := schema.DefaultWeights()

	for i := range 50 {
		row := schema.PatientRow{ID: "P", Values: map[schema.AxisName]float64{}}
		for _, a := range schema.AllAxes {
			if rng.Intn(4) > 0 {
				row.Values[a] = rng.Float64() * 10
			}
		}
		axes := append([]schema.AxisName(nil), schema.AllAxes...)
		want := ComputeFinalScore(row, weights, axes, 1.7)

		rng.Shuffle(len(axes), func(a, b int) { axes[a], axes[b] = axes[b], axes[a] })
		got := ComputeFinalScore(row, weights, axes, 1.7)
		assert.InDelta(t, want.Score, got.Score, 1e-9, "iteration %d", i)
	}
}

func TestComputeAllScores(t *testing.T) {
	rows := []schema.PatientRow{
		singleAxisRow(5),
		{ID: "P2", Values: map[schema.AxisName]float64{schema.AxisMitochondria: 9}},
		{ID: "P3", Values: map[schema.AxisName]float64{}},
	}
	weights := schema.AxisWeights{schema.AxisMitochondria: 0.10}
	axes := []schema.AxisName{schema.AxisMitochondria}

	first := ComputeAllScores(rows, weights, axes, 1.7)
	require.Len(t, first, 3)
	assert.Equal(t, []schema.ScoreResult{{ID: "P1", Score: 0.3}, {ID: "P2", Score: 0.1}, {ID: "P3", Score: 0}}, first)

	second := ComputeAllScores(rows, weights, axes, 1.7)
	assert.Equal(t, first, second)
	assert.InDelta(t, 0.10, weights[schema.AxisMitochondria], 1e-12)
	assert.Len(t, rows[2].Values, 0)
}

func TestComputeAllScoresEmpty(t *testing.T) {
	got := ComputeAllScores(nil, schema.DefaultWeights(), schema.AllAxes, 1.7)
	assert.Empty(t, got)
}

func TestComputeAllScoresParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rows := make([]schema.PatientRow, 500)
	for i := range rows {
		rows[i] = schema.PatientRow{ID: string(rune('A'+i%26)) + string(rune('0'+i%10)), Values: map[schema.AxisName]float64{}}
		for _, a := range schema.AllAxes {
			rows[i].Values[a] = rng.Float64() * 10
		}
	}
	weights := schema.DefaultWeights()

	want := ComputeAllScores(rows, weights, schema.AllAxes, 1.7)
	for _, workers := range []int{0, 1, 3, 8, 1000} {
		got := ComputeAllScoresParallel(rows, weights, schema.AllAxes, 1.7, workers)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestRoundTenth(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0.04999999999999999, 0.1},
		{0.15, 0.2},
		{3.65, 3.7},
		{0.34, 0.3},
		{-0.25, -0.3},
		{-0.04, 0},
		{5.0, 5.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, roundTenth(tt.input), 1e-12, "input %v", tt.input)
	}
	assert.False(t, math.Signbit(roundTenth(-0.04)), "negative zero should print as 0.0")
}

// BenchmarkComputeAllScores benchmarks scoring a sheet of patients on all axes.
func BenchmarkComputeAllScores(b *testing.B) {
	rows := make([]schema.PatientRow, 1000)
	for i := range rows {
		rows[i] = allAxesRow("P", float64(i%11))
	}
	weights := schema.DefaultWeights()

	for b.Loop() {
		ComputeAllScores(rows, weights, schema.AllAxes, 1.7)
	}
}
