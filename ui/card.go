package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"devicecard/ascii"
	"devicecard/sysinfo"
)

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

const cardTitle = "Device Info"

// Row is one labelled line of the card.
type Row struct {
	Label string
	Value string
}

// Absent reports whether the row shows the placeholder.
func (r Row) Absent() bool {
	return r.Value == sysinfo.Placeholder
}

// CardOptions tunes the card layout.
type CardOptions struct {
	// Compact selects the small icon art.
	Compact bool

	// Gap is the number of spaces between icon and rows.
	Gap int

	// MaxValueWidth truncates long values; zero disables truncation.
	MaxValueWidth int
}

// DefaultCardOptions matches the print-mode defaults.
func DefaultCardOptions() CardOptions {
	return CardOptions{Gap: 4, MaxValueWidth: 48}
}

// Rows maps a record to its labelled rows, in display order.
func Rows(rec sysinfo.Record) []Row {
	return []Row{
		{"Device type", sysinfo.FormatValue(rec.DeviceClass)},
		{"Model", sysinfo.FormatString(rec.ModelName)},
		{"OS", formatOS(rec.OSName, rec.OSVersion)},
		{"Network address", sysinfo.FormatString(rec.NetworkAddress)},
		{"Storage", sysinfo.FormatStorage(rec.TotalStorage, rec.FreeStorage)},
		{"Location", sysinfo.FormatCoordinate(rec.Coordinate)},
	}
}

// formatOS joins name and version; a missing version leaves the name alone.
func formatOS(name, version *string) string {
	n := sysinfo.FormatString(name)
	if n == sysinfo.Placeholder {
		return n
	}
	if v := sysinfo.FormatString(version); v != sysinfo.Placeholder {
		return n + " " + v
	}
	return n
}

// RenderCard draws the device icon beside the record's rows inside a
// bordered card.
func RenderCard(rec sysinfo.Record, theme Theme, opts CardOptions) string {
	icon, fallback := ascii.IconFor(rec.DeviceClass)
	iconStyle := theme.Icon
	if fallback {
		iconStyle = theme.Fallback
	}

	art := ascii.Art(icon, opts.Compact)
	logo := make([]string, len(art))
	for i, line := range art {
		logo[i] = iconStyle.Render(line)
	}

	rows := Rows(rec)
	labelWidth := 0
	for _, r := range rows {
		if len(r.Label) > labelWidth {
			labelWidth = len(r.Label)
		}
	}

	infoLines := []string{
		theme.Title.Render(cardTitle),
		strings.Repeat("-", labelWidth+2+len(sysinfo.Placeholder)),
	}
	for _, r := range rows {
		valueStyle := theme.Value
		if r.Absent() {
			valueStyle = theme.Placeholder
		}
		infoLines = append(infoLines, fmt.Sprintf("%s  %s",
			theme.Label.Render(sysinfo.PadRight(r.Label, labelWidth)),
			valueStyle.Render(sysinfo.TruncateString(r.Value, opts.MaxValueWidth)),
		))
	}

	return theme.Card.Render(sideBySide(logo, infoLines, opts.Gap))
}

// RenderPlain renders the rows as uncolored "Label: value" text, as copied
// to the clipboard.
func RenderPlain(rec sysinfo.Record) string {
	var b strings.Builder
	b.WriteString(cardTitle + "\n")
	for _, r := range Rows(rec) {
		fmt.Fprintf(&b, "%s: %s\n", r.Label, r.Value)
	}
	return b.String()
}

// sideBySide top-aligns logo and info, padding the logo column to its
// widest visible line.
func sideBySide(logo, info []string, gapSize int) string {
	if gapSize < 0 {
		gapSize = 0
	}

	logoWidth := 0
	for _, line := range logo {
		if w := getVisibleWidth(line); w > logoWidth {
			logoWidth = w
		}
	}

	maxLines := max(len(logo), len(info))
	gap := strings.Repeat(" ", gapSize)

	out := make([]string, 0, maxLines)
	for i := 0; i < maxLines; i++ {
		var logoLine, infoLine string

		if i < len(logo) {
			logoLine = logo[i]
			if pad := logoWidth - getVisibleWidth(logoLine); pad > 0 {
				logoLine += strings.Repeat(" ", pad)
			}
		} else {
			logoLine = strings.Repeat(" ", logoWidth)
		}

		if i < len(info) {
			infoLine = info[i]
		}

		out = append(out, strings.TrimRight(logoLine+gap+infoLine, " "))
	}

	return strings.Join(out, "\n")
}

// getVisibleWidth calculates the visible width of a string excluding ANSI escape codes.
func getVisibleWidth(s string) int {
	stripped := ansiRegex.ReplaceAllString(s, "")
	return runewidth.StringWidth(stripped)
}
