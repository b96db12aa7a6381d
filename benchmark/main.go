// Package main provides a performance benchmarking tool for the metaboscore CLI.
// It generates synthetic risk spreadsheets of increasing size, scores each one with
// several worker counts, treats the first successful run as cold and averages the rest
// as warm, and writes a CSV summary for performance analysis and documentation.
//
// Prerequisites:
// - metaboscore binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where the synthetic spreadsheets are written
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/metaboscore/metaboscore/schema"
	"github.com/xuri/excelize/v2"
)

// BenchmarkResult holds the result of a benchmark suite (cold run and average of warm runs).
type BenchmarkResult struct {
	Patients int
	Format   string
	Workers  int
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir  string
	Timeout  time.Duration
	Runs     int
	Sizes    []int
	Workers  []int
	Formats  []string
	RandSeed uint64
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:  os.Args[1],
		Timeout:  5 * time.Minute,
		Runs:     4,
		Sizes:    []int{1_000, 10_000, 100_000},
		Workers:  []int{1, 4, 14},
		Formats:  []string{".csv", ".xlsx"},
		RandSeed: 42,
	}

	if _, err := exec.LookPath("metaboscore"); err != nil {
		fmt.Printf("Prerequisites check failed: metaboscore binary not found in PATH\n")
		os.Exit(1)
	}
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		fmt.Printf("Cannot create work dir: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// runBenchmarks generates every input and runs the scoring suite on it.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult
	rng := rand.New(rand.NewPCG(config.RandSeed, config.RandSeed))

	fmt.Printf("Starting benchmark: sizes %v, workers %v, %d runs, %v timeout\n",
		config.Sizes, config.Workers, config.Runs, config.Timeout)

	for _, size := range config.Sizes {
		rows := syntheticRows(rng, size)
		for _, format := range config.Formats {
			path := filepath.Join(config.WorkDir, fmt.Sprintf("risks_%d%s", size, format))
			if err := writeInput(path, rows); err != nil {
				fmt.Printf("Cannot write %s: %v\n", path, err)
				continue
			}
			for _, workers := range config.Workers {
				fmt.Printf("Scoring %d patients from %s with %d workers\n", size, format, workers)
				cold, warm := runBenchmark(config, path, workers)
				results = append(results, BenchmarkResult{
					Patients: size,
					Format:   format,
					Workers:  workers,
					ColdTime: cold,
					WarmTime: warm,
				})
			}
		}
	}

	return results
}

// syntheticRows builds a header plus n patients with every axis set.
// About one cell in twenty is left blank.
func syntheticRows(rng *rand.Rand, n int) [][]string {
	header := []string{schema.DefaultIDColumn}
	for _, axis := range schema.AllAxes {
		header = append(header, string(axis))
	}

	rows := make([][]string, 0, n+1)
	rows = append(rows, header)
	for i := range n {
		row := []string{fmt.Sprintf("P%06d", i+1)}
		for range schema.AllAxes {
			if rng.IntN(20) == 0 {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.FormatFloat(float64(rng.IntN(101))/10, 'f', -1, 64))
		}
		rows = append(rows, row)
	}
	return rows
}

// writeInput saves rows as CSV or as a single-sheet workbook based on the extension.
func writeInput(path string, rows [][]string) error {
	if filepath.Ext(path) == ".csv" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer func() { _ = file.Close() }()
		writer := csv.NewWriter(file)
		if err := writer.WriteAll(rows); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		return nil
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sw, err := f.NewStreamWriter("Sheet1")
	if err != nil {
		return err
	}
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, cells); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// runBenchmark scores the input several times and returns the cold time and warm average.
func runBenchmark(config BenchmarkConfig, path string, workers int) (string, string) {
	args := []string{"score", path, "--output", "csv", "--output-file", os.DevNull, "--workers", strconv.Itoa(workers)}

	var times []float64
	for range config.Runs {
		start := time.Now()
		cmd := exec.Command("metaboscore", args...)

		done := make(chan error, 1)
		go func() {
			done <- cmd.Run()
		}()

		select {
		case err := <-done:
			if err == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) == 0 {
		return "TIMEOUT", "TIMEOUT"
	}
	cold := fmt.Sprintf("%.3fs", times[0])
	if len(times) == 1 {
		return cold, "N/A"
	}
	var sum float64
	for _, t := range times[1:] {
		sum += t
	}
	return cold, fmt.Sprintf("%.3fs", sum/float64(len(times)-1))
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("metaboscore_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"patients", "format", "workers", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range results {
		record := []string{strconv.Itoa(r.Patients), r.Format, strconv.Itoa(r.Workers), r.ColdTime, r.WarmTime}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, r := range results {
		fmt.Printf("  %7d patients %-5s %2d workers: Cold: %s, Warm: %s\n", r.Patients, r.Format, r.Workers, r.ColdTime, r.WarmTime)
	}
}
