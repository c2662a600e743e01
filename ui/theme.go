// Package ui renders a device Record as a themed card, either printed once
// or inside an interactive, scrollable terminal screen.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var ErrUnknownScheme = errors.New("unknown color scheme")

// Scheme is the active color scheme.
type Scheme int

const (
	SchemeDark Scheme = iota
	SchemeLight
)

func (s Scheme) String() string {
	if s == SchemeLight {
		return "light"
	}
	return "dark"
}

// Dracula palette for dark terminals.
const (
	draculaForeground = "#F8F8F2"
	draculaCyan       = "#8BE9FD"
	draculaGreen      = "#50FA7B"
	draculaPink       = "#FF79C6"
	draculaPurple     = "#BD93F9"
	draculaComment    = "#6272A4"
)

// Alucard (Dracula light) palette for light terminals.
const (
	alucardForeground = "#1F1F1F"
	alucardCyan       = "#036A96"
	alucardGreen      = "#14710A"
	alucardPink       = "#A3144D"
	alucardPurple     = "#644AC9"
	alucardComment    = "#6C664B"
)

// ParseScheme parses "dark", "light" or "auto". Auto asks the terminal for
// its background color.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		if lipgloss.HasDarkBackground() {
			return SchemeDark, nil
		}
		return SchemeLight, nil
	case "dark":
		return SchemeDark, nil
	case "light":
		return SchemeLight, nil
	default:
		return SchemeDark, fmt.Errorf("%w: %q", ErrUnknownScheme, s)
	}
}

// Theme is the set of styles used to draw the card.
type Theme struct {
	Scheme Scheme

	Title       lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Placeholder lipgloss.Style
	Icon        lipgloss.Style
	Fallback    lipgloss.Style
	Card        lipgloss.Style
	Help        lipgloss.Style
}

// NewTheme builds the styles for scheme. Icons follow the scheme: a bright
// glyph on dark backgrounds, a deep one on light backgrounds.
func NewTheme(scheme Scheme) Theme {
	fg, cyan, green, pink, purple, comment := draculaForeground, draculaCyan, draculaGreen, draculaPink, draculaPurple, draculaComment
	if scheme == SchemeLight {
		fg, cyan, green, pink, purple, comment = alucardForeground, alucardCyan, alucardGreen, alucardPink, alucardPurple, alucardComment
	}

	return Theme{
		Scheme: scheme,
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(pink)).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cyan)),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fg)),
		Placeholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color(comment)).
			Italic(true),
		Icon: lipgloss.NewStyle().
			Foreground(lipgloss.Color(green)),
		Fallback: lipgloss.NewStyle().
			Foreground(lipgloss.Color(comment)),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(purple)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(comment)),
	}
}
