package contract

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/metaboscore/metaboscore/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1 // final scores are always shown with one decimal
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// SupportedInputExtensions lists the spreadsheet formats the table reader understands.
var SupportedInputExtensions = []string{".xlsx", ".csv"}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a scoring run.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath     string
	Sheet         string
	IDColumn      string
	IgnoreColumns []string

	Alpha float64

	// Weights is the effective weight map: defaults plus custom overrides.
	Weights schema.AxisWeights

	// CustomWeights holds only the overrides that were applied on top of the defaults.
	CustomWeights schema.AxisWeights

	ResetWeights bool
	Workers      int
	Output       schema.OutputMode
	OutputFile   string
	Width        int // Terminal width override (0 = auto-detect)

	UseColors bool // Enable colored advisories and headers
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Alpha         float64  `mapstructure:"alpha"`
	Weight        []string `mapstructure:"weight"`
	ResetWeights  bool     `mapstructure:"reset-weights"`
	Output        string   `mapstructure:"output"`
	OutputFile    string   `mapstructure:"output-file"`
	Width         int      `mapstructure:"width"`
	Color         string   `mapstructure:"color"`
	Workers       int      `mapstructure:"workers"`
	IDColumn      string   `mapstructure:"id-column"`
	IgnoreColumns string   `mapstructure:"ignore-columns"`

	// --- Fields from scoreCmd.Flags() ---
	Sheet string `mapstructure:"sheet"`

	// --- Custom weights from config file ---
	Weights map[string]float64 `mapstructure:"weights"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.IgnoreColumns != nil {
		clone.IgnoreColumns = slices.Clone(c.IgnoreColumns)
	}
	clone.Weights = c.Weights.Clone()
	clone.CustomWeights = c.CustomWeights.Clone()
	return &clone
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processAlpha(cfg, input); err != nil {
		return err
	}
	if err := processCustomWeights(cfg, input); err != nil {
		return err
	}
	if err := resolveInputPath(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-scoring fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Sheet = strings.TrimSpace(input.Sheet)
	cfg.ResetWeights = input.ResetWeights

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet, xlsx", input.Output)
	}
	if (cfg.Output == schema.ParquetOut || cfg.Output == schema.XLSXOut) && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for %s output", cfg.Output)
	}

	// --- 3. Column Names ---
	cfg.IDColumn = strings.TrimSpace(input.IDColumn)
	if cfg.IDColumn == "" {
		return fmt.Errorf("id-column cannot be empty")
	}
	cfg.IgnoreColumns = nil
	for p := range strings.SplitSeq(input.IgnoreColumns, ",") {
		trimmedP := strings.TrimSpace(p)
		if trimmedP == "" {
			continue
		}
		if trimmedP == cfg.IDColumn {
			return fmt.Errorf("id-column %q cannot also be ignored", cfg.IDColumn)
		}
		cfg.IgnoreColumns = append(cfg.IgnoreColumns, trimmedP)
	}

	return nil
}

// processAlpha validates the low-value exponent against the adjustable bounds.
func processAlpha(cfg *Config, input *ConfigRawInput) error {
	if math.IsNaN(input.Alpha) || input.Alpha < schema.MinAlpha || input.Alpha > schema.MaxAlpha {
		return fmt.Errorf("alpha must be between %.1f and %.1f (received %v)", schema.MinAlpha, schema.MaxAlpha, input.Alpha)
	}
	cfg.Alpha = input.Alpha
	return nil
}

// processCustomWeights builds the effective weight map from the defaults, the config
// file `weights:` block and --weight flags, in that order of precedence.
func processCustomWeights(cfg *Config, input *ConfigRawInput) error {
	cfg.Weights = schema.DefaultWeights()
	cfg.CustomWeights = schema.AxisWeights{}

	if cfg.ResetWeights {
		return nil
	}

	// Config file entries, in sorted order so errors are deterministic
	keys := make([]string, 0, len(input.Weights))
	for k := range input.Weights {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := applyWeightOverride(cfg, k, input.Weights[k]); err != nil {
			return fmt.Errorf("invalid weights entry in config: %w", err)
		}
	}

	// Flag entries override the config file
	for _, raw := range input.Weight {
		name, value, err := ParseWeightOverride(raw)
		if err != nil {
			return err
		}
		if err := applyWeightOverride(cfg, name, value); err != nil {
			return fmt.Errorf("invalid --weight %q: %w", raw, err)
		}
	}

	return nil
}

// applyWeightOverride validates a single override and records it in cfg.
func applyWeightOverride(cfg *Config, name string, value float64) error {
	axis, ok := schema.LookupAxis(name)
	if !ok {
		return fmt.Errorf("unknown axis %q", name)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("weight for %q must be a finite number", axis)
	}
	// A value equal to the built-in default is accepted as is and is not custom.
	if value == schema.DefaultWeights()[axis] {
		cfg.Weights[axis] = value
		delete(cfg.CustomWeights, axis)
		return nil
	}
	if value < schema.MinWeight || value > schema.MaxWeight {
		return fmt.Errorf("weight for %q must be between %.2f and %.2f (received %v)", axis, schema.MinWeight, schema.MaxWeight, value)
	}
	cfg.Weights[axis] = value
	cfg.CustomWeights[axis] = value
	return nil
}

// ParseWeightOverride parses an override in the form "Axis name=0.25".
// The last '=' separates the name from the value.
func ParseWeightOverride(raw string) (string, float64, error) {
	idx := strings.LastIndex(raw, "=")
	if idx <= 0 || idx == len(raw)-1 {
		return "", 0, fmt.Errorf("invalid weight override %q. expected 'Axis name=value'", raw)
	}
	name := strings.TrimSpace(raw[:idx])
	value, err := strconv.ParseFloat(strings.TrimSpace(raw[idx+1:]), 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid weight value in %q: %w", raw, err)
	}
	return name, value, nil
}

// ProcessProfilingConfig enables profiling when a file prefix was given.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// resolveInputPath checks the positional input file, when one was given.
func resolveInputPath(cfg *Config, input *ConfigRawInput) error {
	cfg.InputPath = ""
	if input.InputPathStr == "" {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(input.InputPathStr))
	if !slices.Contains(SupportedInputExtensions, ext) {
		return fmt.Errorf("unsupported input file %q. must be one of %s", input.InputPathStr, strings.Join(SupportedInputExtensions, ", "))
	}

	info, err := os.Stat(input.InputPathStr)
	if err != nil {
		return fmt.Errorf("cannot access input file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path %q is a directory", input.InputPathStr)
	}

	absPath, err := filepath.Abs(input.InputPathStr)
	if err != nil {
		return err
	}
	cfg.InputPath = absPath
	return nil
}
