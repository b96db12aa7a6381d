package contract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	AdvisoryColor = color.New(color.FgYellow)              // AdvisoryColor marks non-fatal input mismatches.
	HeaderColor   = color.New(color.FgCyan, color.Bold)    // HeaderColor marks section titles in text output.
	FatalColor    = color.New(color.FgRed, color.Bold)     // FatalColor marks errors that stop the run.
	WeightColor   = color.New(color.FgMagenta, color.Bold) // WeightColor highlights custom weights.
)

// stderr is where log helpers write. Tests swap it for a buffer.
var stderr io.Writer = os.Stderr

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateID truncates a patient identifier to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 to leave room for the "..." and at least one character.
func TruncateID(id string, maxWidth int) string {
	runes := []rune(id)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return id
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = FatalColor.Fprintf(stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(stderr, "Warn %s: %v\n", msg, err)
}

// LogAdvisory prints a non-fatal advisory to stderr.
func LogAdvisory(msg string) {
	_, _ = AdvisoryColor.Fprintf(stderr, "Advisory: %s\n", msg)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
