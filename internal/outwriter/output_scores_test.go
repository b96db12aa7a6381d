package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/metaboscore/metaboscore/internal/contract"
	"github.com/metaboscore/metaboscore/internal/parquet"
	"github.com/metaboscore/metaboscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRun() schema.ScoreRun {
	weights := schema.DefaultWeights()
	return schema.ScoreRun{
		Source:    "risks.xlsx",
		IDColumn:  schema.DefaultIDColumn,
		Alpha:     schema.DefaultAlpha,
		Weights:   weights,
		WeightSum: weights.Sum(),
		Resolution: schema.AxisResolution{
			Effective: []schema.AxisName{schema.AxisMitochondria, schema.AxisLiver},
		},
		Results: []schema.ScoreResult{
			{ID: "P1", Score: 0.3},
			{ID: "P2", Score: 3.7},
			{ID: "P3", Score: -1.2},
		},
		Duration: 15 * time.Millisecond,
	}
}

func TestWriteScoreTable(t *testing.T) {
	color.NoColor = true
	cfg := &contract.Config{Output: schema.TextOut, Width: 120, Workers: 4}

	var buf bytes.Buffer
	require.NoError(t, writeScoreTable(&buf, sampleRun(), cfg, createFormatters(contract.DefaultPrecision)))

	output := buf.String()
	// Header case depends on the table renderer's auto-format setting
	assert.Contains(t, strings.ToUpper(output), "PATIENT")
	assert.Contains(t, strings.ToUpper(output), "FINAL SCORE")
	assert.Contains(t, output, "P2")
	assert.Contains(t, output, "3.7")
	assert.Contains(t, output, "-1.2")
	assert.Contains(t, output, "Scored 3 patients on 2 of 11 axes (Σ weights = 0.73, alpha = 1.70)")
	assert.Contains(t, output, "with 4 workers")
}

func TestWriteScoreTableTruncatesLongIDs(t *testing.T) {
	color.NoColor = true
	cfg := &contract.Config{Output: schema.TextOut, Width: 40, Workers: 1}
	run := sampleRun()
	run.Results = []schema.ScoreResult{{ID: "PATIENT-0000000000000000000001", Score: 1}}

	var buf bytes.Buffer
	require.NoError(t, writeScoreTable(&buf, run, cfg, createFormatters(1)))
	assert.Contains(t, buf.String(), "PATIENT-0...")
}

func TestWriteScoresCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeScoresCSV(&buf, sampleRun().Results, createFormatters(contract.DefaultPrecision)))
	assert.Equal(t, "Patient,Final score\nP1,0.3\nP2,3.7\nP3,-1.2\n", buf.String())
}

func TestWriteScoreResultsJSON(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "scores.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: outputFile}

	require.NoError(t, WriteScoreResults(sampleRun(), cfg))

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(content, &result))
	assert.Equal(t, "risks.xlsx", result["source"])
	assert.InDelta(t, 1.7, result["alpha"], 1e-12)
	results, ok := result["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 3)
	first := results[0].(map[string]any)
	assert.Equal(t, "P1", first["patient"])
	assert.InDelta(t, 0.3, first["final_score"], 1e-12)
	assert.NotContains(t, result, "Duration")
}

func TestWriteScoreResultsCSVFile(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "scores.csv")
	cfg := &contract.Config{Output: schema.CSVOut, OutputFile: outputFile}

	require.NoError(t, WriteScoreResults(sampleRun(), cfg))

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "Patient,Final score\nP1,0.3\nP2,3.7\nP3,-1.2\n", string(content))
}

func TestWriteScoreResultsParquet(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "scores.parquet")
	cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: outputFile}

	require.NoError(t, WriteScoreResults(sampleRun(), cfg))
	assert.FileExists(t, outputFile)
	assert.FileExists(t, parquet.WeightsPath(outputFile))
}

func TestWriteScoreResultsXLSX(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "scores.xlsx")
	cfg := &contract.Config{
		Output:        schema.XLSXOut,
		OutputFile:    outputFile,
		CustomWeights: schema.AxisWeights{schema.AxisLiver: 0.10},
	}

	require.NoError(t, WriteScoreResults(sampleRun(), cfg))

	f, err := excelize.OpenFile(outputFile)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{resultsSheet, weightsSheet}, f.GetSheetList())

	rows, err := f.GetRows(resultsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Patient", "Final score"}, rows[0])
	assert.Equal(t, "P2", rows[2][0])
	assert.Equal(t, "3.7", rows[2][1])

	weightRows, err := f.GetRows(weightsSheet)
	require.NoError(t, err)
	require.Len(t, weightRows, len(schema.AllAxes)+3)
	assert.Equal(t, string(schema.AllAxes[0]), weightRows[1][0])
	assert.Equal(t, "alpha", weightRows[len(weightRows)-1][0])
}

func TestWriteScoreResultsXLSXBadPath(t *testing.T) {
	cfg := &contract.Config{Output: schema.XLSXOut, OutputFile: "/nonexistent/dir/scores.xlsx"}
	err := WriteScoreResults(sampleRun(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "XLSX")
}
