package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/axees/scout/schema"
)

// Color variables for console output.
var (
	PremiumColor  = color.New(color.FgMagenta, color.Bold) // premiumColor marks the highest pricing class.
	StandardColor = color.New(color.FgYellow)              // standardColor marks the middle pricing class.
	BudgetColor   = color.New(color.FgCyan)                // budgetColor marks the entry pricing class.
)

// GetPlainLabel returns the plain text pricing label for a creator's
// estimated cost. This is the core logic used for CSV, JSON, and table
// printing.
func GetPlainLabel(cost int) string {
	return string(schema.CategoryForCost(cost))
}

// GetColorLabel returns a colored pricing label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(cost int) string {
	text := GetPlainLabel(cost)

	switch schema.TierCategory(text) {
	case schema.CategoryPremium:
		return PremiumColor.Sprint(text)
	case schema.CategoryStandard:
		return StandardColor.Sprint(text)
	default: // "Budget"
		return BudgetColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
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

// GetCatalogDBFilePath returns the path to the SQLite DB file for catalog storage.
func GetCatalogDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return schema.DefaultCatalogDB
	}
	return filepath.Join(homeDir, schema.DefaultCatalogDB)
}

// TruncateText truncates a string to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and content.
func TruncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
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
