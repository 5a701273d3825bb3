package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/lumenkit/kbscore/schema"
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // healthy configuration
	GoodColor      = color.New(color.FgCyan)              // acceptable, room to grow
	NeedsWorkColor = color.New(color.FgYellow)            // standard caution, not bold
	CriticalColor  = color.New(color.FgRed, color.Bold)   // standard danger
)

// GetPlainLabel returns a plain text label for a 0-100 score. This is the
// core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch schema.ScoreToStatus(score) {
	case schema.StatusExcellent:
		return "Excellent"
	case schema.StatusGood:
		return "Good"
	case schema.StatusNeedsWork:
		return "Needs Work"
	default:
		return "Critical"
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)
	switch schema.ScoreToStatus(score) {
	case schema.StatusExcellent:
		return ExcellentColor.Sprint(text)
	case schema.StatusGood:
		return GoodColor.Sprint(text)
	case schema.StatusNeedsWork:
		return NeedsWorkColor.Sprint(text)
	default:
		return CriticalColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetResultsDBFilePath returns the path to the SQLite DB file for result storage.
func GetResultsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".kbscore_results.db"
	}
	return filepath.Join(homeDir, ".kbscore_results.db")
}

// TruncateLabel truncates a label to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and content.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
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
