package reporter

import (
	"fmt"
	"strings"
)

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatConsole    Format = "console"
	FormatText       Format = "text"
	FormatTable      Format = "table"
	FormatJSON       Format = "json"
	FormatJUnit      Format = "junit"
	FormatCheckstyle Format = "checkstyle"
	FormatInline     Format = "inline"
	FormatUnix       Format = "unix"
	FormatSARIF      Format = "sarif"
	FormatSummary    Format = "summary"
	FormatDiff       Format = "diff"
)

// Formats lists every supported format in display order.
var Formats = []Format{
	FormatConsole, FormatText, FormatTable, FormatJSON, FormatJUnit, FormatCheckstyle,
	FormatInline, FormatUnix, FormatSARIF, FormatSummary, FormatDiff,
}

// ParseFormat parses a format string, returning an error for unknown
// formats. An empty string selects the console format.
func ParseFormat(formatStr string) (Format, error) {
	if formatStr == "" {
		return FormatConsole, nil
	}
	format := Format(formatStr)
	if !format.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: %s", formatStr, FormatNames())
	}
	return format, nil
}

// FormatNames returns the supported formats as a comma-separated list.
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatConsole, FormatText, FormatTable, FormatJSON, FormatJUnit, FormatCheckstyle,
		FormatInline, FormatUnix, FormatSARIF, FormatSummary, FormatDiff:
		return true
	default:
		return false
	}
}
