// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Placeholder is shown in place of any absent value.
const Placeholder = "Not available"

const gib = 1024 * 1024 * 1024

// FormatString formats an optional string.
//
// Parameters:
//   - s: The value to format (may be nil)
//
// Returns:
//   - Placeholder if s is nil or empty
//   - The string itself otherwise
func FormatString(s *string) string {
	if s == nil || *s == "" {
		return Placeholder
	}
	return *s
}

// FormatValue formats any optional value by direct stringification.
// A nil pointer, or a pointer to an empty string, yields Placeholder.
//
// Example: FormatValue(&class) returns "TABLET"
func FormatValue[T any](v *T) string {
	if v == nil {
		return Placeholder
	}
	out := fmt.Sprint(*v)
	if out == "" {
		return Placeholder
	}
	return out
}

// FormatStorage renders free and total capacity in gigabytes.
//
// Parameters:
//   - total: Total capacity in bytes (may be nil)
//   - free: Free capacity in bytes (may be nil)
//
// Returns:
//   - Placeholder if either value is absent
//   - A string such as "1.00GB free of 2.00GB"
func FormatStorage(total, free *uint64) string {
	if total == nil || free == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.2fGB free of %.2fGB", float64(*free)/gib, float64(*total)/gib)
}

// FormatCoordinate renders latitude and longitude to six decimal places.
//
// Example: FormatCoordinate(&Coordinate{37.4219999, -122.0840575})
// returns "37.422000, -122.084058"
func FormatCoordinate(c *Coordinate) string {
	if c == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.6f, %.6f", c.Latitude, c.Longitude)
}

// TruncateString truncates a string to a maximum width and adds ellipsis if needed.
// Width is measured in terminal cells, and the cut never splits a rune, so
// wide (CJK) characters count as two cells each.
//
// Parameters:
//   - s: The string to truncate
//   - maxLen: Maximum display width of the resulting string
//
// Returns:
//   - The original string if it fits in maxLen cells
//   - A truncated string with "..." appended if wider than maxLen
//
// Example: TruncateString("Hello World", 8) returns "Hello..."
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 || runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}

// PadRight pads a string with spaces to reach a minimum display width.
//
// Example: PadRight("Hi", 5) returns "Hi   "
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
