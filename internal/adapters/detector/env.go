// Package detector provides environment detection for output format selection.
package detector

import (
	"os"

	"go.trai.ch/ccflags/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputFormat represents how resolved flags are printed.
type OutputFormat int

const (
	// FormatAuto picks text on a terminal and JSON otherwise.
	FormatAuto OutputFormat = iota
	// FormatText prints one flag per line.
	FormatText
	// FormatJSON prints one JSON object per file.
	FormatJSON
)

// String returns the flag value naming the format.
func (f OutputFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "auto"
	}
}

// ParseFormat converts a --format value into an OutputFormat.
func ParseFormat(value string) (OutputFormat, error) {
	switch value {
	case "auto", "":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, zerr.With(domain.ErrInvalidOutputFormat, "format", value)
	}
}

// DetectEnvironment returns the format suited to f.
// Editors and scripts read JSON; people at a terminal read text. CI is never a person.
func DetectEnvironment(f *os.File) OutputFormat {
	isTTY := f != nil && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return FormatJSON
	}
	return FormatText
}

// ResolveFormat applies the user's choice to the detected format.
func ResolveFormat(detected, requested OutputFormat) OutputFormat {
	if requested == FormatAuto {
		return detected
	}
	return requested
}
